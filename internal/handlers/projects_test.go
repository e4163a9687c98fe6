package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/database"
	"github.com/mcarvalho/portfolio-api/internal/middleware"
	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
	"github.com/mcarvalho/portfolio-api/internal/services"
	"github.com/mcarvalho/portfolio-api/internal/utils"
)

type projectTestEnv struct {
	db         *gorm.DB
	router     *gin.Engine
	service    *services.ProjectService
	adminToken string
	userToken  string
}

func setupProjectTestEnv(t *testing.T) projectTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}, &models.Tag{}))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	service := services.NewProjectService(repository.NewProjectRepository(db))
	handler := NewProjectHandler(service)

	requireAuth := middleware.RequireAuth(testJWTSecret)
	requireAdmin := middleware.RequireAdmin()

	r := gin.New()
	projects := r.Group("/api/projects")
	{
		projects.GET("", handler.List)
		projects.GET("/stats", handler.Stats)
		projects.GET("/:slug", handler.GetBySlug)
		projects.POST("/:id/like", handler.Like)
		projects.POST("", requireAuth, requireAdmin, handler.Create)
		projects.PUT("/:id", requireAuth, requireAdmin, handler.Update)
		projects.DELETE("/:id", requireAuth, requireAdmin, handler.Delete)
	}

	adminToken, err := utils.GenerateToken(&models.User{
		Email: "admin@example.com", Role: models.RoleAdmin,
	}, testJWTSecret, time.Hour)
	require.NoError(t, err)
	userToken, err := utils.GenerateToken(&models.User{
		Email: "user@example.com", Role: models.RoleUser,
	}, testJWTSecret, time.Hour)
	require.NoError(t, err)

	return projectTestEnv{
		db:         db,
		router:     r,
		service:    service,
		adminToken: adminToken,
		userToken:  userToken,
	}
}

func (env projectTestEnv) seedProject(t *testing.T, input services.CreateProjectInput) *models.Project {
	t.Helper()
	project, err := env.service.CreateProject(input)
	require.NoError(t, err)
	return project
}

func TestProjectHandler_AdminGating(t *testing.T) {
	env := setupProjectTestEnv(t)

	payload := map[string]interface{}{
		"title":       "New Project",
		"description": "d",
		"category":    "BACKEND",
	}

	t.Run("anonymous create is rejected", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPost, "/api/projects", "", payload)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-admin create is forbidden", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPost, "/api/projects", env.userToken, payload)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin create succeeds", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPost, "/api/projects", env.adminToken, payload)
		require.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestProjectHandler_Create(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/projects", env.adminToken, map[string]interface{}{
		"title":        "Portfolio API",
		"description":  "REST backend",
		"category":     "BACKEND",
		"status":       "PUBLISHED",
		"technologies": []string{"Go", "PostgreSQL"},
		"tags":         []string{"API", "api"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "portfolio-api", envelope.Data.Slug)
	require.Len(t, envelope.Data.Tags, 1)
}

func TestProjectHandler_Create_MissingFields(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/projects", env.adminToken, map[string]interface{}{
		"title": "No description or category",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_Create_UnknownEnumValue(t *testing.T) {
	env := setupProjectTestEnv(t)

	t.Run("category", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPost, "/api/projects", env.adminToken, map[string]interface{}{
			"title":       "Mystery",
			"description": "d",
			"category":    "COOKING",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPost, "/api/projects", env.adminToken, map[string]interface{}{
			"title":       "Mystery",
			"description": "d",
			"category":    "BACKEND",
			"status":      "SOMEDAY",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	var count int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestProjectHandler_Update_UnknownEnumValue(t *testing.T) {
	env := setupProjectTestEnv(t)

	created := env.seedProject(t, services.CreateProjectInput{
		Title: "Stable", Description: "d", Category: models.CategoryBackend,
	})

	w := doJSON(t, env.router, http.MethodPut, "/api/projects/"+created.ID.String(), env.adminToken, map[string]interface{}{
		"category": "COOKING",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Project
	require.NoError(t, env.db.First(&stored, "id = ?", created.ID).Error)
	require.Equal(t, models.CategoryBackend, stored.Category)
}

func TestProjectHandler_List_Filters(t *testing.T) {
	env := setupProjectTestEnv(t)

	env.seedProject(t, services.CreateProjectInput{
		Title: "Plain", Description: "d",
		Category: models.CategoryBackend, Status: models.StatusPublished,
		Tags: []string{"api"},
	})
	featured := env.seedProject(t, services.CreateProjectInput{
		Title: "Starred", Description: "d",
		Category: models.CategoryBackend, Status: models.StatusPublished,
		Featured: true, Tags: []string{"api", "queue"},
	})
	env.seedProject(t, services.CreateProjectInput{
		Title: "Mobile", Description: "d",
		Category: models.CategoryMobile, Status: models.StatusDraft,
	})

	decode := func(t *testing.T, body []byte) []models.Project {
		t.Helper()
		var envelope struct {
			Data []models.Project `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &envelope))
		return envelope.Data
	}

	t.Run("unfiltered returns everything featured-first", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodGet, "/api/projects", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		projects := decode(t, w.Body.Bytes())
		require.Len(t, projects, 3)
		require.Equal(t, featured.ID, projects[0].ID)
	})

	t.Run("category and status combine", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodGet, "/api/projects?category=BACKEND&status=PUBLISHED", "", nil)
		projects := decode(t, w.Body.Bytes())
		require.Len(t, projects, 2)
	})

	t.Run("tags csv filters by any match", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodGet, "/api/projects?tags=queue,missing", "", nil)
		projects := decode(t, w.Body.Bytes())
		require.Len(t, projects, 1)
		require.Equal(t, featured.ID, projects[0].ID)
	})

	t.Run("featured flag must parse", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodGet, "/api/projects?featured=banana", "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProjectHandler_GetBySlug(t *testing.T) {
	env := setupProjectTestEnv(t)

	created := env.seedProject(t, services.CreateProjectInput{
		Title: "Viewed", Description: "d", Category: models.CategoryBackend,
	})

	w := doJSON(t, env.router, http.MethodGet, "/api/projects/"+created.Slug, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The read itself counts as a view, visible on the next fetch.
	again := doJSON(t, env.router, http.MethodGet, "/api/projects/"+created.Slug, "", nil)
	var envelope struct {
		Data models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &envelope))
	require.EqualValues(t, 1, envelope.Data.Views)

	missing := doJSON(t, env.router, http.MethodGet, "/api/projects/nope", "", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestProjectHandler_Like(t *testing.T) {
	env := setupProjectTestEnv(t)

	created := env.seedProject(t, services.CreateProjectInput{
		Title: "Liked", Description: "d", Category: models.CategoryBackend,
	})

	w := doJSON(t, env.router, http.MethodPost, fmt.Sprintf("/api/projects/%s/like", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Likes int64 `json:"likes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.EqualValues(t, 1, envelope.Data.Likes)

	bad := doJSON(t, env.router, http.MethodPost, "/api/projects/not-a-uuid/like", "", nil)
	require.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestProjectHandler_Update(t *testing.T) {
	env := setupProjectTestEnv(t)

	created := env.seedProject(t, services.CreateProjectInput{
		Title: "Before", Description: "d", Category: models.CategoryBackend,
		Tags: []string{"go"},
	})

	w := doJSON(t, env.router, http.MethodPut, "/api/projects/"+created.ID.String(), env.adminToken, map[string]interface{}{
		"title":    "After",
		"featured": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "After", envelope.Data.Title)
	require.True(t, envelope.Data.Featured)
	require.Equal(t, created.Slug, envelope.Data.Slug)
	require.Len(t, envelope.Data.Tags, 1)
}

func TestProjectHandler_Delete(t *testing.T) {
	env := setupProjectTestEnv(t)

	created := env.seedProject(t, services.CreateProjectInput{
		Title: "Doomed", Description: "d", Category: models.CategoryBackend,
	})

	w := doJSON(t, env.router, http.MethodDelete, "/api/projects/"+created.ID.String(), env.adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	again := doJSON(t, env.router, http.MethodDelete, "/api/projects/"+created.ID.String(), env.adminToken, nil)
	require.Equal(t, http.StatusNotFound, again.Code)
}

func TestProjectHandler_Stats(t *testing.T) {
	env := setupProjectTestEnv(t)

	env.seedProject(t, services.CreateProjectInput{
		Title: "One", Description: "d",
		Category: models.CategoryBackend, Status: models.StatusPublished,
	})
	env.seedProject(t, services.CreateProjectInput{
		Title: "Two", Description: "d", Category: models.CategoryBackend,
	})

	w := doJSON(t, env.router, http.MethodGet, "/api/projects/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data repository.ProjectStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.EqualValues(t, 2, envelope.Data.Total)
	require.EqualValues(t, 1, envelope.Data.Published)
}
