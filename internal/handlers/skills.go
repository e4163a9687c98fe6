package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/mcarvalho/portfolio-api/internal/errors"
	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/response"
	"github.com/mcarvalho/portfolio-api/internal/services"
)

// SkillHandler coordinates skill-related HTTP handlers.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// List returns all skills, optionally narrowed to one category, ordered by
// category and then by the manual sort position.
func (h *SkillHandler) List(c *gin.Context) {
	var (
		skills []models.Skill
		err    error
	)

	if category := c.Query("category"); category != "" {
		skills, err = h.skillService.ListSkillsByCategory(models.SkillCategory(category))
	} else {
		skills, err = h.skillService.ListSkills()
	}
	if err != nil {
		respondSkillError(c, err)
		return
	}

	response.OK(c, skills)
}

// Create stores a new skill.
func (h *SkillHandler) Create(c *gin.Context) {
	type CreateSkillRequest struct {
		Name       string `json:"name" binding:"required"`
		Category   string `json:"category" binding:"required,oneof=FRONTEND BACKEND DATABASE DEVOPS CLOUD AI_ML MOBILE TOOLS SOFT_SKILLS OTHER"`
		Level      int    `json:"level" binding:"required,min=1,max=100"`
		YearsOfExp *int   `json:"years_of_exp"`
		Icon       string `json:"icon"`
		Color      string `json:"color"`
		Order      int    `json:"order"`
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.skillService.CreateSkill(services.CreateSkillInput{
		Name:       req.Name,
		Category:   models.SkillCategory(req.Category),
		Level:      req.Level,
		YearsOfExp: req.YearsOfExp,
		Icon:       req.Icon,
		Color:      req.Color,
		Order:      req.Order,
	})
	if err != nil {
		respondSkillError(c, err)
		return
	}

	response.Created(c, skill, "Skill created successfully")
}

// Update applies a partial update to a skill.
func (h *SkillHandler) Update(c *gin.Context) {
	type UpdateSkillRequest struct {
		Name       *string `json:"name"`
		Category   *string `json:"category" binding:"omitempty,oneof=FRONTEND BACKEND DATABASE DEVOPS CLOUD AI_ML MOBILE TOOLS SOFT_SKILLS OTHER"`
		Level      *int    `json:"level" binding:"omitempty,min=1,max=100"`
		YearsOfExp *int    `json:"years_of_exp"`
		Icon       *string `json:"icon"`
		Color      *string `json:"color"`
		Order      *int    `json:"order"`
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid skill ID")
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateSkillInput{
		Name:       req.Name,
		Level:      req.Level,
		YearsOfExp: req.YearsOfExp,
		Icon:       req.Icon,
		Color:      req.Color,
		Order:      req.Order,
	}
	if req.Category != nil {
		cat := models.SkillCategory(*req.Category)
		input.Category = &cat
	}

	skill, err := h.skillService.UpdateSkill(id, input)
	if err != nil {
		respondSkillError(c, err)
		return
	}

	response.OK(c, skill)
}

// Delete removes a skill.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid skill ID")
		return
	}

	if err := h.skillService.DeleteSkill(id); err != nil {
		respondSkillError(c, err)
		return
	}

	response.NoContent(c)
}

// Reorder applies a batch of sort position updates.
func (h *SkillHandler) Reorder(c *gin.Context) {
	type ReorderRequest struct {
		Skills []struct {
			ID    uuid.UUID `json:"id" binding:"required"`
			Order int       `json:"order"`
		} `json:"skills" binding:"required,dive"`
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	orders := make([]services.SkillOrder, 0, len(req.Skills))
	for _, s := range req.Skills {
		orders = append(orders, services.SkillOrder{ID: s.ID, Order: s.Order})
	}

	if err := h.skillService.ReorderSkills(orders); err != nil {
		respondSkillError(c, err)
		return
	}

	response.OKWithMessage(c, nil, "Skills reordered successfully")
}

func respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSkillNotFound):
		apierrors.NotFound(c, "Skill not found")
	default:
		respondStoreError(c, err)
	}
}
