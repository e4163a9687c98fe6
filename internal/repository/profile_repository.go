package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// GetSettings returns the singleton settings row
func (r *GormProfileRepository) GetSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := r.db.First(&settings, "id = ?", models.SiteSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// CreateSettings inserts the singleton row. When two first-readers race, one
// insert fails on the primary key; that error propagates to the caller.
func (r *GormProfileRepository) CreateSettings(settings *models.SiteSettings) error {
	return r.db.Create(settings).Error
}

// UpdateSettings persists changed settings fields
func (r *GormProfileRepository) UpdateSettings(settings *models.SiteSettings) error {
	return r.db.Save(settings).Error
}

// Experiences

func (r *GormProfileRepository) ListExperiences() ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.Order("current DESC").Order("start_date DESC").Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *GormProfileRepository) FindExperience(id uuid.UUID) (*models.Experience, error) {
	var exp models.Experience
	if err := r.db.First(&exp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *GormProfileRepository) CreateExperience(exp *models.Experience) error {
	return r.db.Create(exp).Error
}

func (r *GormProfileRepository) UpdateExperience(exp *models.Experience) error {
	return r.db.Save(exp).Error
}

func (r *GormProfileRepository) DeleteExperience(id uuid.UUID) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}

// Education

func (r *GormProfileRepository) ListEducation() ([]models.Education, error) {
	var education []models.Education
	err := r.db.Order("current DESC").Order("start_date DESC").Find(&education).Error
	if err != nil {
		return nil, err
	}
	return education, nil
}

func (r *GormProfileRepository) FindEducation(id uuid.UUID) (*models.Education, error) {
	var edu models.Education
	if err := r.db.First(&edu, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &edu, nil
}

func (r *GormProfileRepository) CreateEducation(edu *models.Education) error {
	return r.db.Create(edu).Error
}

func (r *GormProfileRepository) UpdateEducation(edu *models.Education) error {
	return r.db.Save(edu).Error
}

func (r *GormProfileRepository) DeleteEducation(id uuid.UUID) error {
	return r.db.Delete(&models.Education{}, "id = ?", id).Error
}

// Certificates

func (r *GormProfileRepository) ListCertificates() ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := r.db.Order("issue_date DESC").Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *GormProfileRepository) FindCertificate(id uuid.UUID) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.First(&cert, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *GormProfileRepository) CreateCertificate(cert *models.Certificate) error {
	return r.db.Create(cert).Error
}

func (r *GormProfileRepository) UpdateCertificate(cert *models.Certificate) error {
	return r.db.Save(cert).Error
}

func (r *GormProfileRepository) DeleteCertificate(id uuid.UUID) error {
	return r.db.Delete(&models.Certificate{}, "id = ?", id).Error
}
