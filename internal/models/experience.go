package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentFreelance  EmploymentType = "FREELANCE"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentInternship EmploymentType = "INTERNSHIP"
)

type Experience struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Company        string         `gorm:"type:varchar(255);not null" json:"company"`
	Position       string         `gorm:"type:varchar(255);not null" json:"position"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	Location       string         `gorm:"type:varchar(255)" json:"location,omitempty"`
	EmploymentType EmploymentType `gorm:"type:varchar(20);not null;default:'FULL_TIME'" json:"employment_type"`
	StartDate      time.Time      `gorm:"not null" json:"start_date"`
	EndDate        *time.Time     `json:"end_date,omitempty"`
	Current        bool           `gorm:"not null;default:false" json:"current"`
	Skills         []string       `gorm:"serializer:json" json:"skills"`
	Achievements   []string       `gorm:"serializer:json" json:"achievements"`
	CompanyLogo    string         `gorm:"type:text" json:"company_logo,omitempty"`
	CompanyURL     string         `gorm:"type:text" json:"company_url,omitempty"`
	Order          int            `gorm:"not null;default:0" json:"order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
