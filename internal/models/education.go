package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Education struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Institution string     `gorm:"type:varchar(255);not null" json:"institution"`
	Degree      string     `gorm:"type:varchar(255);not null" json:"degree"`
	Field       string     `gorm:"type:varchar(255);not null" json:"field"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     bool       `gorm:"not null;default:false" json:"current"`
	Grade       string     `gorm:"type:varchar(50)" json:"grade,omitempty"`
	Location    string     `gorm:"type:varchar(255)" json:"location,omitempty"`
	Logo        string     `gorm:"type:text" json:"logo,omitempty"`
	URL         string     `gorm:"type:text" json:"url,omitempty"`
	Order       int        `gorm:"not null;default:0" json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
