package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryFrontend    Category = "FRONTEND"
	CategoryBackend     Category = "BACKEND"
	CategoryFullstack   Category = "FULLSTACK"
	CategoryMobile      Category = "MOBILE"
	CategoryAIML        Category = "AI_ML"
	CategoryCloud       Category = "CLOUD"
	CategoryDevOps      Category = "DEVOPS"
	CategoryDataScience Category = "DATA_SCIENCE"
	CategoryBlockchain  Category = "BLOCKCHAIN"
	CategoryGameDev     Category = "GAME_DEV"
	CategoryOther       Category = "OTHER"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

type Project struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	LongDescription string     `gorm:"type:text" json:"long_description,omitempty"`
	Technologies    []string   `gorm:"serializer:json" json:"technologies"`
	Category        Category   `gorm:"type:varchar(20);not null;index" json:"category"`
	GithubURL       string     `gorm:"type:text" json:"github_url,omitempty"`
	DemoURL         string     `gorm:"type:text" json:"demo_url,omitempty"`
	ImageURL        string     `gorm:"type:text" json:"image_url,omitempty"`
	Images          []string   `gorm:"serializer:json" json:"images"`
	Featured        bool       `gorm:"not null;default:false;index" json:"featured"`
	Status          Status     `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	Views           int64      `gorm:"not null;default:0" json:"views"`
	Likes           int64      `gorm:"not null;default:0" json:"likes"`
	GithubStars     *int       `json:"github_stars,omitempty"`
	GithubForks     *int       `json:"github_forks,omitempty"`
	GithubLanguage  *string    `gorm:"type:varchar(100)" json:"github_language,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relations
	Tags []Tag `gorm:"many2many:project_tags" json:"tags"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
