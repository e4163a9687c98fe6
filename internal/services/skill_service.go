package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
)

var (
	ErrSkillNotFound = errors.New("skill not found")
)

// SkillService handles skill business logic
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// CreateSkillInput represents input for creating a skill
type CreateSkillInput struct {
	Name       string
	Category   models.SkillCategory
	Level      int
	YearsOfExp *int
	Icon       string
	Color      string
	Order      int
}

// UpdateSkillInput represents a partial skill update
type UpdateSkillInput struct {
	Name       *string
	Category   *models.SkillCategory
	Level      *int
	YearsOfExp *int
	Icon       *string
	Color      *string
	Order      *int
}

// SkillOrder pairs a skill id with its new sort position
type SkillOrder struct {
	ID    uuid.UUID
	Order int
}

// ListSkills returns all skills ordered by (category, order)
func (s *SkillService) ListSkills() ([]models.Skill, error) {
	skills, err := s.skillRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// ListSkillsByCategory returns one category's skills ordered by order
func (s *SkillService) ListSkillsByCategory(category models.SkillCategory) ([]models.Skill, error) {
	skills, err := s.skillRepo.ListByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// CreateSkill inserts a new skill
func (s *SkillService) CreateSkill(input CreateSkillInput) (*models.Skill, error) {
	skill := &models.Skill{
		Name:       input.Name,
		Category:   input.Category,
		Level:      input.Level,
		YearsOfExp: input.YearsOfExp,
		Icon:       input.Icon,
		Color:      input.Color,
		Order:      input.Order,
	}

	if err := s.skillRepo.Create(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// UpdateSkill applies a partial update
func (s *SkillService) UpdateSkill(id uuid.UUID, input UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	if input.Name != nil {
		skill.Name = *input.Name
	}
	if input.Category != nil {
		skill.Category = *input.Category
	}
	if input.Level != nil {
		skill.Level = *input.Level
	}
	if input.YearsOfExp != nil {
		skill.YearsOfExp = input.YearsOfExp
	}
	if input.Icon != nil {
		skill.Icon = *input.Icon
	}
	if input.Color != nil {
		skill.Color = *input.Color
	}
	if input.Order != nil {
		skill.Order = *input.Order
	}

	if err := s.skillRepo.Update(skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

// DeleteSkill removes a skill
func (s *SkillService) DeleteSkill(id uuid.UUID) error {
	if _, err := s.skillRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to find skill: %w", err)
	}

	if err := s.skillRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

// ReorderSkills applies each order update independently and concurrently.
// There is no transaction across the batch: a mid-batch failure leaves the
// already-applied updates in place.
func (s *SkillService) ReorderSkills(orders []SkillOrder) error {
	var g errgroup.Group

	for _, o := range orders {
		o := o
		g.Go(func() error {
			if err := s.skillRepo.UpdateOrder(o.ID, o.Order); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("skill %s: %w", o.ID, ErrSkillNotFound)
				}
				return fmt.Errorf("failed to reorder skill %s: %w", o.ID, err)
			}
			return nil
		})
	}

	return g.Wait()
}
