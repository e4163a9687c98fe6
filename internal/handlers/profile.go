package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/mcarvalho/portfolio-api/internal/errors"
	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/response"
	"github.com/mcarvalho/portfolio-api/internal/services"
)

// ProfileHandler serves the site settings singleton, the CV sub-resources
// and the generated CV document.
type ProfileHandler struct {
	profileService *services.ProfileService
	cvService      *services.CVService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService, cvService *services.CVService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		cvService:      cvService,
	}
}

// Get returns the site settings, creating placeholder defaults on first read.
func (h *ProfileHandler) Get(c *gin.Context) {
	settings, err := h.profileService.GetProfile()
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, settings)
}

// Update applies a partial update to the site settings.
func (h *ProfileHandler) Update(c *gin.Context) {
	type UpdateProfileRequest struct {
		FullName          *string   `json:"full_name"`
		Title             *string   `json:"title"`
		Bio               *string   `json:"bio"`
		Avatar            *string   `json:"avatar"`
		Resume            *string   `json:"resume"`
		AvailableForWork  *bool     `json:"available_for_work"`
		AvailabilityText  *string   `json:"availability_text"`
		HourlyRate        *string   `json:"hourly_rate"`
		Email             *string   `json:"email" binding:"omitempty,email"`
		Phone             *string   `json:"phone"`
		Location          *string   `json:"location"`
		Github            *string   `json:"github"`
		Linkedin          *string   `json:"linkedin"`
		Twitter           *string   `json:"twitter"`
		Website           *string   `json:"website"`
		Medium            *string   `json:"medium"`
		Devto             *string   `json:"devto"`
		MetaTitle         *string   `json:"meta_title"`
		MetaDescription   *string   `json:"meta_description"`
		MetaKeywords      *[]string `json:"meta_keywords"`
		OgImage           *string   `json:"og_image"`
		GithubUsername    *string   `json:"github_username"`
		GoogleAnalyticsID *string   `json:"google_analytics_id"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.profileService.UpdateProfile(services.UpdateProfileInput{
		FullName:          req.FullName,
		Title:             req.Title,
		Bio:               req.Bio,
		Avatar:            req.Avatar,
		Resume:            req.Resume,
		AvailableForWork:  req.AvailableForWork,
		AvailabilityText:  req.AvailabilityText,
		HourlyRate:        req.HourlyRate,
		Email:             req.Email,
		Phone:             req.Phone,
		Location:          req.Location,
		Github:            req.Github,
		Linkedin:          req.Linkedin,
		Twitter:           req.Twitter,
		Website:           req.Website,
		Medium:            req.Medium,
		Devto:             req.Devto,
		MetaTitle:         req.MetaTitle,
		MetaDescription:   req.MetaDescription,
		MetaKeywords:      req.MetaKeywords,
		OgImage:           req.OgImage,
		GithubUsername:    req.GithubUsername,
		GoogleAnalyticsID: req.GoogleAnalyticsID,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, settings)
}

// DownloadCV streams the generated CV as a PDF attachment.
func (h *ProfileHandler) DownloadCV(c *gin.Context) {
	pdf, err := h.cvService.GenerateCV(c.Request.Context())
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cv.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Experiences

type experienceRequest struct {
	Company        string     `json:"company" binding:"required"`
	Position       string     `json:"position" binding:"required"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	EmploymentType string     `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME FREELANCE CONTRACT INTERNSHIP"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        *time.Time `json:"end_date"`
	Current        bool       `json:"current"`
	Skills         []string   `json:"skills"`
	Achievements   []string   `json:"achievements"`
	CompanyLogo    string     `json:"company_logo"`
	CompanyURL     string     `json:"company_url"`
	Order          int        `json:"order"`
}

type updateExperienceRequest struct {
	Company        *string    `json:"company"`
	Position       *string    `json:"position"`
	Description    *string    `json:"description"`
	Location       *string    `json:"location"`
	EmploymentType *string    `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME FREELANCE CONTRACT INTERNSHIP"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Current        *bool      `json:"current"`
	Skills         *[]string  `json:"skills"`
	Achievements   *[]string  `json:"achievements"`
	CompanyLogo    *string    `json:"company_logo"`
	CompanyURL     *string    `json:"company_url"`
	Order          *int       `json:"order"`
}

// ListExperiences returns work history, current roles first, newest next.
func (h *ProfileHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.profileService.ListExperiences()
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, experiences)
}

func (h *ProfileHandler) CreateExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	exp, err := h.profileService.CreateExperience(services.ExperienceInput{
		Company:        req.Company,
		Position:       req.Position,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: models.EmploymentType(req.EmploymentType),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Current:        req.Current,
		Skills:         req.Skills,
		Achievements:   req.Achievements,
		CompanyLogo:    req.CompanyLogo,
		CompanyURL:     req.CompanyURL,
		Order:          req.Order,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Created(c, exp, "Experience created successfully")
}

func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid experience ID")
		return
	}

	var req updateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateExperienceInput{
		Company:      req.Company,
		Position:     req.Position,
		Description:  req.Description,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
		Skills:       req.Skills,
		Achievements: req.Achievements,
		CompanyLogo:  req.CompanyLogo,
		CompanyURL:   req.CompanyURL,
		Order:        req.Order,
	}
	if req.EmploymentType != nil {
		et := models.EmploymentType(*req.EmploymentType)
		input.EmploymentType = &et
	}

	exp, err := h.profileService.UpdateExperience(id, input)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, exp)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid experience ID")
		return
	}

	if err := h.profileService.DeleteExperience(id); err != nil {
		respondProfileError(c, err)
		return
	}

	response.NoContent(c)
}

// Education

type educationRequest struct {
	Institution string     `json:"institution" binding:"required"`
	Degree      string     `json:"degree" binding:"required"`
	Field       string     `json:"field"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	Grade       string     `json:"grade"`
	Location    string     `json:"location"`
	Logo        string     `json:"logo"`
	URL         string     `json:"url"`
	Order       int        `json:"order"`
}

type updateEducationRequest struct {
	Institution *string    `json:"institution"`
	Degree      *string    `json:"degree"`
	Field       *string    `json:"field"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     *bool      `json:"current"`
	Grade       *string    `json:"grade"`
	Location    *string    `json:"location"`
	Logo        *string    `json:"logo"`
	URL         *string    `json:"url"`
	Order       *int       `json:"order"`
}

func (h *ProfileHandler) ListEducation(c *gin.Context) {
	education, err := h.profileService.ListEducation()
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, education)
}

func (h *ProfileHandler) CreateEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	edu, err := h.profileService.CreateEducation(services.EducationInput{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
		Grade:       req.Grade,
		Location:    req.Location,
		Logo:        req.Logo,
		URL:         req.URL,
		Order:       req.Order,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Created(c, edu, "Education created successfully")
}

func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid education ID")
		return
	}

	var req updateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	edu, err := h.profileService.UpdateEducation(id, services.UpdateEducationInput{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
		Grade:       req.Grade,
		Location:    req.Location,
		Logo:        req.Logo,
		URL:         req.URL,
		Order:       req.Order,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, edu)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid education ID")
		return
	}

	if err := h.profileService.DeleteEducation(id); err != nil {
		respondProfileError(c, err)
		return
	}

	response.NoContent(c)
}

// Certificates

type certificateRequest struct {
	Name          string     `json:"name" binding:"required"`
	Issuer        string     `json:"issuer" binding:"required"`
	IssueDate     time.Time  `json:"issue_date" binding:"required"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  string     `json:"credential_id"`
	CredentialURL string     `json:"credential_url"`
	Description   string     `json:"description"`
	Skills        []string   `json:"skills"`
	Logo          string     `json:"logo"`
}

type updateCertificateRequest struct {
	Name          *string    `json:"name"`
	Issuer        *string    `json:"issuer"`
	IssueDate     *time.Time `json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	CredentialID  *string    `json:"credential_id"`
	CredentialURL *string    `json:"credential_url"`
	Description   *string    `json:"description"`
	Skills        *[]string  `json:"skills"`
	Logo          *string    `json:"logo"`
}

func (h *ProfileHandler) ListCertificates(c *gin.Context) {
	certificates, err := h.profileService.ListCertificates()
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, certificates)
}

func (h *ProfileHandler) CreateCertificate(c *gin.Context) {
	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	cert, err := h.profileService.CreateCertificate(services.CertificateInput{
		Name:          req.Name,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
		Description:   req.Description,
		Skills:        req.Skills,
		Logo:          req.Logo,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.Created(c, cert, "Certificate created successfully")
}

func (h *ProfileHandler) UpdateCertificate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid certificate ID")
		return
	}

	var req updateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	cert, err := h.profileService.UpdateCertificate(id, services.UpdateCertificateInput{
		Name:          req.Name,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
		Description:   req.Description,
		Skills:        req.Skills,
		Logo:          req.Logo,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	response.OK(c, cert)
}

func (h *ProfileHandler) DeleteCertificate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid certificate ID")
		return
	}

	if err := h.profileService.DeleteCertificate(id); err != nil {
		respondProfileError(c, err)
		return
	}

	response.NoContent(c)
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrExperienceNotFound):
		apierrors.NotFound(c, "Experience not found")
	case errors.Is(err, services.ErrEducationNotFound):
		apierrors.NotFound(c, "Education not found")
	case errors.Is(err, services.ErrCertificateNotFound):
		apierrors.NotFound(c, "Certificate not found")
	case errors.Is(err, services.ErrProfileMissing):
		apierrors.NotFound(c, "Profile not found")
	default:
		respondStoreError(c, err)
	}
}
