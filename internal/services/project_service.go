package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
	"github.com/mcarvalho/portfolio-api/internal/utils"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

var tagWhitespaceRe = regexp.MustCompile(`\s+`)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectFilters represents the optional list predicates
type ProjectFilters struct {
	Category *models.Category
	Status   *models.Status
	Featured *bool
	Tags     []string
	Search   string
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title           string
	Description     string
	LongDescription string
	Technologies    []string
	Category        models.Category
	GithubURL       string
	DemoURL         string
	ImageURL        string
	Images          []string
	Featured        bool
	Status          models.Status
	Tags            []string
	StartDate       *time.Time
	EndDate         *time.Time
}

// UpdateProjectInput represents a partial project update. Nil fields are left
// unchanged; a non-nil empty Tags slice clears the tag set.
type UpdateProjectInput struct {
	Title           *string
	Description     *string
	LongDescription *string
	Technologies    *[]string
	Category        *models.Category
	GithubURL       *string
	DemoURL         *string
	ImageURL        *string
	Images          *[]string
	Featured        *bool
	Status          *models.Status
	Tags            *[]string
	StartDate       *time.Time
	EndDate         *time.Time
}

// ListProjects returns projects matching the filters, featured first, newest
// next, with tags populated. The result set is unbounded by design.
func (s *ProjectService) ListProjects(filters ProjectFilters) ([]models.Project, error) {
	filter := repository.ProjectFilter{
		Category: filters.Category,
		Status:   filters.Status,
		Featured: filters.Featured,
		TagSlugs: filters.Tags,
		Search:   filters.Search,
	}

	projects, err := s.projectRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectBySlug fetches a project and counts the fetch as one view. The
// returned record carries the pre-increment view count; the bump is only
// visible on the next read.
func (s *ProjectService) GetProjectBySlug(slug string) (*models.Project, error) {
	project, err := s.projectRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.IncrementViews(project.ID); err != nil {
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}

	return project, nil
}

// CreateProject derives a unique slug from the title, reconciles tags by
// name and stores the project.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	slug, err := utils.GenerateUniqueSlug(input.Title, s.projectRepo.SlugExists)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}

	tags, err := s.reconcileTags(input.Tags)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.StatusDraft
	}

	project := &models.Project{
		Title:           input.Title,
		Slug:            slug,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Technologies:    input.Technologies,
		Category:        input.Category,
		GithubURL:       input.GithubURL,
		DemoURL:         input.DemoURL,
		ImageURL:        input.ImageURL,
		Images:          input.Images,
		Featured:        input.Featured,
		Status:          status,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Tags:            tags,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject applies a partial update. When Tags is present the project's
// tag set is fully replaced through the same upsert reconciliation used at
// creation; the slug never changes.
func (s *ProjectService) UpdateProject(id uuid.UUID, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.LongDescription != nil {
		project.LongDescription = *input.LongDescription
	}
	if input.Technologies != nil {
		project.Technologies = *input.Technologies
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.GithubURL != nil {
		project.GithubURL = *input.GithubURL
	}
	if input.DemoURL != nil {
		project.DemoURL = *input.DemoURL
	}
	if input.ImageURL != nil {
		project.ImageURL = *input.ImageURL
	}
	if input.Images != nil {
		project.Images = *input.Images
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if input.Tags != nil {
		tags, err := s.reconcileTags(*input.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.projectRepo.ReplaceTags(project, tags); err != nil {
			return nil, fmt.Errorf("failed to replace tags: %w", err)
		}
	}

	return s.projectRepo.FindByID(project.ID)
}

// DeleteProject hard-deletes a project. Tag rows are kept even when no
// project references them anymore.
func (s *ProjectService) DeleteProject(id uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// IncrementLikes bumps the like counter by one and returns the new value.
// There is no identity tracking; any caller may repeat this indefinitely.
func (s *ProjectService) IncrementLikes(id uuid.UUID) (int64, error) {
	likes, err := s.projectRepo.IncrementLikes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProjectNotFound
		}
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}
	return likes, nil
}

// GetProjectStats computes the aggregate counters, fresh on every call
func (s *ProjectService) GetProjectStats() (*repository.ProjectStats, error) {
	stats, err := s.projectRepo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute project stats: %w", err)
	}
	return stats, nil
}

// reconcileTags upserts one tag per distinct derived slug. Names that only
// differ in case or spacing collapse onto the same tag row; that merge is
// intended behavior.
func (s *ProjectService) reconcileTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		slug := TagSlug(name)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}

		tag, err := s.projectRepo.UpsertTag(name, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert tag %q: %w", name, err)
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

// TagSlug derives a tag's unique key from its display name: lowercase with
// whitespace runs replaced by hyphens.
func TagSlug(name string) string {
	return tagWhitespaceRe.ReplaceAllString(strings.ToLower(name), "-")
}
