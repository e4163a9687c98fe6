package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/mcarvalho/portfolio-api/internal/errors"
	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/response"
	"github.com/mcarvalho/portfolio-api/internal/services"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List returns all projects matching the query filters, featured first, then
// newest first. Filters combine conjunctively; the tags filter alone is an
// OR over its values.
func (h *ProjectHandler) List(c *gin.Context) {
	var filters services.ProjectFilters

	if category := c.Query("category"); category != "" {
		cat := models.Category(category)
		filters.Category = &cat
	}
	if status := c.Query("status"); status != "" {
		st := models.Status(status)
		filters.Status = &st
	}
	if featured := c.Query("featured"); featured != "" {
		value, err := strconv.ParseBool(featured)
		if err != nil {
			apierrors.BadRequest(c, "featured must be true or false")
			return
		}
		filters.Featured = &value
	}
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Tags = append(filters.Tags, tag)
			}
		}
	}
	filters.Search = c.Query("search")

	projects, err := h.projectService.ListProjects(filters)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, projects)
}

// GetBySlug returns a single project and records the view.
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projectService.GetProjectBySlug(c.Param("slug"))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, project)
}

// Stats returns the aggregate project counters.
func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.projectService.GetProjectStats()
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, stats)
}

// Like increments a project's like counter and returns the new value.
func (h *ProjectHandler) Like(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	likes, err := h.projectService.IncrementLikes(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"likes": likes})
}

// Create stores a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateProjectRequest struct {
		Title           string     `json:"title" binding:"required"`
		Description     string     `json:"description" binding:"required"`
		LongDescription string     `json:"long_description"`
		Technologies    []string   `json:"technologies"`
		Category        string     `json:"category" binding:"required,oneof=FRONTEND BACKEND FULLSTACK MOBILE AI_ML CLOUD DEVOPS DATA_SCIENCE BLOCKCHAIN GAME_DEV OTHER"`
		GithubURL       string     `json:"github_url"`
		DemoURL         string     `json:"demo_url"`
		ImageURL        string     `json:"image_url"`
		Images          []string   `json:"images"`
		Featured        bool       `json:"featured"`
		Status          string     `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
		Tags            []string   `json:"tags"`
		StartDate       *time.Time `json:"start_date"`
		EndDate         *time.Time `json:"end_date"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		Category:        models.Category(req.Category),
		GithubURL:       req.GithubURL,
		DemoURL:         req.DemoURL,
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		Featured:        req.Featured,
		Status:          models.Status(req.Status),
		Tags:            req.Tags,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.Created(c, project, "Project created successfully")
}

// Update applies a partial update. Omitted fields are left untouched; an
// empty tags array clears the tag set while an absent one keeps it.
func (h *ProjectHandler) Update(c *gin.Context) {
	type UpdateProjectRequest struct {
		Title           *string    `json:"title"`
		Description     *string    `json:"description"`
		LongDescription *string    `json:"long_description"`
		Technologies    *[]string  `json:"technologies"`
		Category        *string    `json:"category" binding:"omitempty,oneof=FRONTEND BACKEND FULLSTACK MOBILE AI_ML CLOUD DEVOPS DATA_SCIENCE BLOCKCHAIN GAME_DEV OTHER"`
		GithubURL       *string    `json:"github_url"`
		DemoURL         *string    `json:"demo_url"`
		ImageURL        *string    `json:"image_url"`
		Images          *[]string  `json:"images"`
		Featured        *bool      `json:"featured"`
		Status          *string    `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
		Tags            *[]string  `json:"tags"`
		StartDate       *time.Time `json:"start_date"`
		EndDate         *time.Time `json:"end_date"`
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateProjectInput{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		DemoURL:         req.DemoURL,
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		Featured:        req.Featured,
		Tags:            req.Tags,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}
	if req.Category != nil {
		cat := models.Category(*req.Category)
		input.Category = &cat
	}
	if req.Status != nil {
		st := models.Status(*req.Status)
		input.Status = &st
	}

	project, err := h.projectService.UpdateProject(id, input)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, project)
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		respondProjectError(c, err)
		return
	}

	response.NoContent(c)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		respondStoreError(c, err)
	}
}
