package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

type skillTestEnv struct {
	db         *gorm.DB
	router     *gin.Engine
	service    *services.SkillService
	adminToken string
}

func setupSkillTestEnv(t *testing.T) skillTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Skill{}))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	service := services.NewSkillService(repository.NewSkillRepository(db))
	handler := NewSkillHandler(service)

	requireAuth := middleware.RequireAuth(testJWTSecret)
	requireAdmin := middleware.RequireAdmin()

	r := gin.New()
	skills := r.Group("/api/skills")
	{
		skills.GET("", handler.List)
		skills.POST("", requireAuth, requireAdmin, handler.Create)
		skills.PUT("/reorder", requireAuth, requireAdmin, handler.Reorder)
		skills.PUT("/:id", requireAuth, requireAdmin, handler.Update)
		skills.DELETE("/:id", requireAuth, requireAdmin, handler.Delete)
	}

	adminToken, err := utils.GenerateToken(&models.User{
		Email: "admin@example.com", Role: models.RoleAdmin,
	}, testJWTSecret, time.Hour)
	require.NoError(t, err)

	return skillTestEnv{db: db, router: r, service: service, adminToken: adminToken}
}

func TestSkillHandler_CreateAndList(t *testing.T) {
	env := setupSkillTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/skills", env.adminToken, map[string]interface{}{
		"name":     "Go",
		"category": "BACKEND",
		"level":    90,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("level outside 1-100 is rejected", func(t *testing.T) {
		bad := doJSON(t, env.router, http.MethodPost, "/api/skills", env.adminToken, map[string]interface{}{
			"name":     "Rust",
			"category": "BACKEND",
			"level":    150,
		})
		require.Equal(t, http.StatusBadRequest, bad.Code)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		bad := doJSON(t, env.router, http.MethodPost, "/api/skills", env.adminToken, map[string]interface{}{
			"name":     "Juggling",
			"category": "CIRCUS",
			"level":    80,
		})
		require.Equal(t, http.StatusBadRequest, bad.Code)

		var count int64
		require.NoError(t, env.db.Model(&models.Skill{}).Where("name = ?", "Juggling").Count(&count).Error)
		require.EqualValues(t, 0, count)
	})

	t.Run("category query narrows the listing", func(t *testing.T) {
		_, err := env.service.CreateSkill(services.CreateSkillInput{
			Name: "React", Category: models.SkillCategoryFrontend, Level: 70,
		})
		require.NoError(t, err)

		w := doJSON(t, env.router, http.MethodGet, "/api/skills?category=BACKEND", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data []models.Skill `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		require.Len(t, envelope.Data, 1)
		require.Equal(t, "Go", envelope.Data[0].Name)
	})
}

func TestSkillHandler_Reorder(t *testing.T) {
	env := setupSkillTestEnv(t)

	var ids []uuid.UUID
	for i, name := range []string{"Go", "Rust"} {
		skill, err := env.service.CreateSkill(services.CreateSkillInput{
			Name: name, Category: models.SkillCategoryBackend, Level: 50, Order: i,
		})
		require.NoError(t, err)
		ids = append(ids, skill.ID)
	}

	w := doJSON(t, env.router, http.MethodPut, "/api/skills/reorder", env.adminToken, map[string]interface{}{
		"skills": []map[string]interface{}{
			{"id": ids[0], "order": 1},
			{"id": ids[1], "order": 0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	skills, err := env.service.ListSkills()
	require.NoError(t, err)
	require.Equal(t, "Rust", skills[0].Name)
	require.Equal(t, "Go", skills[1].Name)
}

func TestSkillHandler_Delete(t *testing.T) {
	env := setupSkillTestEnv(t)

	skill, err := env.service.CreateSkill(services.CreateSkillInput{
		Name: "Go", Category: models.SkillCategoryBackend, Level: 50,
	})
	require.NoError(t, err)

	w := doJSON(t, env.router, http.MethodDelete, "/api/skills/"+skill.ID.String(), env.adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	again := doJSON(t, env.router, http.MethodDelete, "/api/skills/"+skill.ID.String(), env.adminToken, nil)
	require.Equal(t, http.StatusNotFound, again.Code)
}
