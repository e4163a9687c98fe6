package repository

import (
	"github.com/google/uuid"

	"github.com/mcarvalho/portfolio-api/internal/models"
)

// ProjectFilter holds the optional predicates for listing projects. All
// present filters are combined with AND; TagSlugs matches projects carrying
// at least one of the given tags.
type ProjectFilter struct {
	Category *models.Category
	Status   *models.Status
	Featured *bool
	TagSlugs []string
	Search   string
}

// CategoryCount is one bucket of the per-category project breakdown.
type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int64           `json:"count"`
}

// ProjectStats aggregates counters across all projects.
type ProjectStats struct {
	Total      int64           `json:"total"`
	Published  int64           `json:"published"`
	ByCategory []CategoryCount `json:"by_category"`
	TotalViews int64           `json:"total_views"`
	TotalLikes int64           `json:"total_likes"`
}

// ProjectRepository defines the interface for project and tag data access
type ProjectRepository interface {
	// List retrieves projects matching the filter, tags preloaded, ordered
	// by (featured desc, created_at desc)
	List(filter ProjectFilter) ([]models.Project, error)

	// FindByID finds a project by ID with tags preloaded
	FindByID(id uuid.UUID) (*models.Project, error)

	// FindBySlug finds a project by its slug with tags preloaded
	FindBySlug(slug string) (*models.Project, error)

	// SlugExists reports whether a project with the slug already exists
	SlugExists(slug string) (bool, error)

	// Create inserts a project together with its tag associations
	Create(project *models.Project) error

	// Update persists changed project fields
	Update(project *models.Project) error

	// ReplaceTags swaps the project's tag set for the given one
	ReplaceTags(project *models.Project, tags []models.Tag) error

	// Delete hard-deletes a project; tag rows survive
	Delete(id uuid.UUID) error

	// UpsertTag creates the tag when its slug is unused, else returns the
	// existing row
	UpsertTag(name, slug string) (*models.Tag, error)

	// IncrementViews atomically bumps the view counter
	IncrementViews(id uuid.UUID) error

	// IncrementLikes atomically bumps the like counter and returns the new value
	IncrementLikes(id uuid.UUID) (int64, error)

	// Stats computes the aggregate project counters
	Stats() (*ProjectStats, error)
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	// List retrieves all skills ordered by (category asc, order asc)
	List() ([]models.Skill, error)

	// ListByCategory retrieves one category's skills ordered by order asc
	ListByCategory(category models.SkillCategory) ([]models.Skill, error)

	// FindByID finds a skill by ID
	FindByID(id uuid.UUID) (*models.Skill, error)

	// Create inserts a new skill
	Create(skill *models.Skill) error

	// Update persists changed skill fields
	Update(skill *models.Skill) error

	// Delete removes a skill
	Delete(id uuid.UUID) error

	// UpdateOrder sets a single skill's sort position
	UpdateOrder(id uuid.UUID, order int) error
}

// ProfileRepository defines the interface for site settings and the CV
// sub-resources (experience, education, certificates)
type ProfileRepository interface {
	// GetSettings returns the singleton settings row
	GetSettings() (*models.SiteSettings, error)

	// CreateSettings inserts the singleton row; a concurrent first read may
	// lose the race and surface the store's uniqueness error
	CreateSettings(settings *models.SiteSettings) error

	// UpdateSettings persists changed settings fields
	UpdateSettings(settings *models.SiteSettings) error

	ListExperiences() ([]models.Experience, error)
	FindExperience(id uuid.UUID) (*models.Experience, error)
	CreateExperience(exp *models.Experience) error
	UpdateExperience(exp *models.Experience) error
	DeleteExperience(id uuid.UUID) error

	ListEducation() ([]models.Education, error)
	FindEducation(id uuid.UUID) (*models.Education, error)
	CreateEducation(edu *models.Education) error
	UpdateEducation(edu *models.Education) error
	DeleteEducation(id uuid.UUID) error

	ListCertificates() ([]models.Certificate, error)
	FindCertificate(id uuid.UUID) (*models.Certificate, error)
	CreateCertificate(cert *models.Certificate) error
	UpdateCertificate(cert *models.Certificate) error
	DeleteCertificate(id uuid.UUID) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Create inserts a new user
	Create(user *models.User) error

	// UpdatePassword replaces the stored password hash
	UpdatePassword(id uuid.UUID, passwordHash string) error
}
