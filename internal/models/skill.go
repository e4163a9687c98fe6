package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillCategory string

const (
	SkillCategoryFrontend   SkillCategory = "FRONTEND"
	SkillCategoryBackend    SkillCategory = "BACKEND"
	SkillCategoryDatabase   SkillCategory = "DATABASE"
	SkillCategoryDevOps     SkillCategory = "DEVOPS"
	SkillCategoryCloud      SkillCategory = "CLOUD"
	SkillCategoryAIML       SkillCategory = "AI_ML"
	SkillCategoryMobile     SkillCategory = "MOBILE"
	SkillCategoryTools      SkillCategory = "TOOLS"
	SkillCategorySoftSkills SkillCategory = "SOFT_SKILLS"
	SkillCategoryOther      SkillCategory = "OTHER"
)

type Skill struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string        `gorm:"type:varchar(100);not null" json:"name"`
	Category   SkillCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Level      int           `gorm:"not null;default:0" json:"level"`
	YearsOfExp *int          `json:"years_of_exp,omitempty"`
	Icon       string        `gorm:"type:varchar(100)" json:"icon,omitempty"`
	Color      string        `gorm:"type:varchar(20)" json:"color,omitempty"`
	Order      int           `gorm:"not null;default:0" json:"order"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
