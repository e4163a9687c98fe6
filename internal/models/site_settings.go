package models

import "time"

// SiteSettingsID is the primary key of the single settings row. The table
// holds exactly one record; readers create it lazily when missing.
const SiteSettingsID = "default"

type SiteSettings struct {
	ID                string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	FullName          string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Bio               string    `gorm:"type:text;not null" json:"bio"`
	Avatar            string    `gorm:"type:text" json:"avatar,omitempty"`
	Resume            string    `gorm:"type:text" json:"resume,omitempty"`
	AvailableForWork  bool      `gorm:"not null;default:true" json:"available_for_work"`
	AvailabilityText  string    `gorm:"type:varchar(255)" json:"availability_text,omitempty"`
	HourlyRate        string    `gorm:"type:varchar(50)" json:"hourly_rate,omitempty"`
	Email             string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone             string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Location          string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	Github            string    `gorm:"type:text" json:"github,omitempty"`
	Linkedin          string    `gorm:"type:text" json:"linkedin,omitempty"`
	Twitter           string    `gorm:"type:text" json:"twitter,omitempty"`
	Website           string    `gorm:"type:text" json:"website,omitempty"`
	Medium            string    `gorm:"type:text" json:"medium,omitempty"`
	Devto             string    `gorm:"type:text" json:"devto,omitempty"`
	MetaTitle         string    `gorm:"type:varchar(255)" json:"meta_title,omitempty"`
	MetaDescription   string    `gorm:"type:text" json:"meta_description,omitempty"`
	MetaKeywords      []string  `gorm:"serializer:json" json:"meta_keywords"`
	OgImage           string    `gorm:"type:text" json:"og_image,omitempty"`
	GithubUsername    string    `gorm:"type:varchar(100)" json:"github_username,omitempty"`
	GoogleAnalyticsID string    `gorm:"type:varchar(50)" json:"google_analytics_id,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the placeholder row created on first read.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:               SiteSettingsID,
		FullName:         "Your Name",
		Title:            "Software Developer",
		Bio:              "Tell us about yourself...",
		Email:            "contact@example.com",
		AvailableForWork: true,
	}
}
