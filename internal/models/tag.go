package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Color string    `gorm:"type:varchar(20)" json:"color,omitempty"`

	// Relations
	Projects []Project `gorm:"many2many:project_tags" json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
