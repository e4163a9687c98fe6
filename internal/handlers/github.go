package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/mcarvalho/portfolio-api/internal/errors"
	"github.com/mcarvalho/portfolio-api/internal/response"
	"github.com/mcarvalho/portfolio-api/internal/services"
)

// GithubHandler proxies GitHub profile data so the server-held token never
// reaches a browser.
type GithubHandler struct {
	githubService *services.GithubService
}

// NewGithubHandler creates a new GithubHandler.
func NewGithubHandler(githubService *services.GithubService) *GithubHandler {
	return &GithubHandler{githubService: githubService}
}

// Profile returns the configured account's public GitHub profile. An
// optional ?username overrides the default.
func (h *GithubHandler) Profile(c *gin.Context) {
	user, err := h.githubService.GetUserProfile(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondGithubError(c, err)
		return
	}

	response.OK(c, user)
}

// Repos returns the account's repositories, most recently updated first.
func (h *GithubHandler) Repos(c *gin.Context) {
	repos, err := h.githubService.GetUserRepos(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondGithubError(c, err)
		return
	}

	response.OK(c, repos)
}

// Stats returns aggregate counters across the account's repositories.
func (h *GithubHandler) Stats(c *gin.Context) {
	stats, err := h.githubService.GetStats(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondGithubError(c, err)
		return
	}

	response.OK(c, stats)
}

// Sync fetches one repository's counters and optionally persists them onto a
// project.
func (h *GithubHandler) Sync(c *gin.Context) {
	type SyncRequest struct {
		GithubURL string     `json:"github_url" binding:"required"`
		ProjectID *uuid.UUID `json:"project_id"`
	}

	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	stats, err := h.githubService.SyncRepoStats(c.Request.Context(), req.GithubURL, req.ProjectID)
	if err != nil {
		respondGithubError(c, err)
		return
	}

	response.OK(c, stats)
}

func respondGithubError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGithubNotConfigured):
		apierrors.RespondWithError(c, http.StatusServiceUnavailable, "GitHub integration is not configured")
	case errors.Is(err, services.ErrInvalidGithubURL):
		apierrors.BadRequest(c, "Invalid GitHub repository URL")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		respondStoreError(c, err)
	}
}
