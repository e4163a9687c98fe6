package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mcarvalho/portfolio-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// List retrieves projects matching the filter with tags preloaded. Featured
// projects surface first regardless of recency.
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, error) {
	query := r.db.Model(&models.Project{})

	if filter.Category != nil {
		query = query.Where("projects.category = ?", *filter.Category)
	}
	if filter.Status != nil {
		query = query.Where("projects.status = ?", *filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("projects.featured = ?", *filter.Featured)
	}
	if len(filter.TagSlugs) > 0 {
		tagSubQuery := r.db.Model(&models.Tag{}).
			Select("1").
			Joins("JOIN project_tags ON project_tags.tag_id = tags.id").
			Where("project_tags.project_id = projects.id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("EXISTS (?)", tagSubQuery)
	}
	if filter.Search != "" {
		term := escapeLike(filter.Search)
		like := "%" + strings.ToLower(term) + "%"
		// Technologies are stored as a JSON array, so an exact element match
		// is a quoted substring match on the serialized column.
		techMatch := `%"` + term + `"%`
		query = query.Where(
			r.db.Where(`LOWER(projects.title) LIKE ? ESCAPE '\'`, like).
				Or(`LOWER(projects.description) LIKE ? ESCAPE '\'`, like).
				Or(`projects.technologies LIKE ? ESCAPE '\'`, techMatch),
		)
	}

	var projects []models.Project
	err := query.
		Order("projects.featured DESC, projects.created_at DESC").
		Preload("Tags").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// escapeLike escapes LIKE metacharacters so a search term matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// FindByID finds a project by ID with tags preloaded
func (r *GormProjectRepository) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Tags").First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug finds a project by its slug with tags preloaded
func (r *GormProjectRepository) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Tags").First(&project, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// SlugExists reports whether a project with the slug already exists
func (r *GormProjectRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a project together with its tag associations
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update persists changed project fields without touching associations
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Omit("Tags").Save(project).Error
}

// ReplaceTags swaps the project's tag set for the given one
func (r *GormProjectRepository) ReplaceTags(project *models.Project, tags []models.Tag) error {
	return r.db.Model(project).Association("Tags").Replace(tags)
}

// Delete hard-deletes a project and its tag links; tag rows survive
func (r *GormProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_tags WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// UpsertTag creates the tag when its slug is unused, else returns the
// existing row. The ON CONFLICT clause makes concurrent upserts racing on
// one slug converge on a single row.
func (r *GormProjectRepository) UpsertTag(name, slug string) (*models.Tag, error) {
	tag := models.Tag{Name: name, Slug: slug}
	err := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(&tag).Error
	if err != nil {
		return nil, err
	}

	// Refetch by slug: on conflict the insert was skipped and tag.ID does
	// not point at the stored row.
	var stored models.Tag
	if err := r.db.First(&stored, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// IncrementViews atomically bumps the view counter
func (r *GormProjectRepository) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// IncrementLikes atomically bumps the like counter and returns the new value
func (r *GormProjectRepository) IncrementLikes(id uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var likes int64
	err := r.db.Model(&models.Project{}).
		Where("id = ?", id).
		Select("likes").
		Scan(&likes).Error
	if err != nil {
		return 0, err
	}
	return likes, nil
}

// Stats computes the aggregate project counters, fresh on every call
func (r *GormProjectRepository) Stats() (*ProjectStats, error) {
	stats := &ProjectStats{}

	if err := r.db.Model(&models.Project{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Project{}).
		Where("status = ?", models.StatusPublished).
		Count(&stats.Published).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Project{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&stats.ByCategory).Error; err != nil {
		return nil, err
	}

	var sums struct {
		TotalViews int64
		TotalLikes int64
	}
	err := r.db.Model(&models.Project{}).
		Select("COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(likes), 0) AS total_likes").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	stats.TotalViews = sums.TotalViews
	stats.TotalLikes = sums.TotalLikes

	return stats, nil
}
