package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// List retrieves all skills ordered by (category asc, order asc)
func (r *GormSkillRepository) List() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("category ASC").Order(`"order" ASC`).Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// ListByCategory retrieves one category's skills ordered by order asc
func (r *GormSkillRepository) ListByCategory(category models.SkillCategory) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("category = ?", category).Order(`"order" ASC`).Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// FindByID finds a skill by ID
func (r *GormSkillRepository) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// Create inserts a new skill
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update persists changed skill fields
func (r *GormSkillRepository) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill
func (r *GormSkillRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

// UpdateOrder sets a single skill's sort position
func (r *GormSkillRepository) UpdateOrder(id uuid.UUID, order int) error {
	result := r.db.Model(&models.Skill{}).
		Where("id = ?", id).
		UpdateColumn("order", order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
