package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	Issuer        string     `gorm:"type:varchar(255);not null" json:"issuer"`
	IssueDate     time.Time  `gorm:"not null" json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CredentialID  string     `gorm:"type:varchar(255)" json:"credential_id,omitempty"`
	CredentialURL string     `gorm:"type:text" json:"credential_url,omitempty"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Skills        []string   `gorm:"serializer:json" json:"skills"`
	Logo          string     `gorm:"type:text" json:"logo,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
