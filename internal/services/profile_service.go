package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
)

var (
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrEducationNotFound   = errors.New("education not found")
	ErrCertificateNotFound = errors.New("certificate not found")
)

// ProfileService handles the site settings singleton and the CV
// sub-resources (experience, education, certificates).
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// UpdateProfileInput represents a partial settings update
type UpdateProfileInput struct {
	FullName          *string
	Title             *string
	Bio               *string
	Avatar            *string
	Resume            *string
	AvailableForWork  *bool
	AvailabilityText  *string
	HourlyRate        *string
	Email             *string
	Phone             *string
	Location          *string
	Github            *string
	Linkedin          *string
	Twitter           *string
	Website           *string
	Medium            *string
	Devto             *string
	MetaTitle         *string
	MetaDescription   *string
	MetaKeywords      *[]string
	OgImage           *string
	GithubUsername    *string
	GoogleAnalyticsID *string
}

// GetProfile returns the settings singleton, creating it with placeholder
// defaults when missing. The first reader wins the creation; a loser's
// insert fails on the store's primary key and that error propagates.
func (s *ProfileService) GetProfile() (*models.SiteSettings, error) {
	settings, err := s.profileRepo.GetSettings()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	created := models.DefaultSiteSettings()
	if err := s.profileRepo.CreateSettings(&created); err != nil {
		return nil, fmt.Errorf("failed to create default profile: %w", err)
	}
	return &created, nil
}

// UpdateProfile fetches the singleton (lazily creating it) and applies a
// partial update.
func (s *ProfileService) UpdateProfile(input UpdateProfileInput) (*models.SiteSettings, error) {
	settings, err := s.GetProfile()
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		settings.FullName = *input.FullName
	}
	if input.Title != nil {
		settings.Title = *input.Title
	}
	if input.Bio != nil {
		settings.Bio = *input.Bio
	}
	if input.Avatar != nil {
		settings.Avatar = *input.Avatar
	}
	if input.Resume != nil {
		settings.Resume = *input.Resume
	}
	if input.AvailableForWork != nil {
		settings.AvailableForWork = *input.AvailableForWork
	}
	if input.AvailabilityText != nil {
		settings.AvailabilityText = *input.AvailabilityText
	}
	if input.HourlyRate != nil {
		settings.HourlyRate = *input.HourlyRate
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.Location != nil {
		settings.Location = *input.Location
	}
	if input.Github != nil {
		settings.Github = *input.Github
	}
	if input.Linkedin != nil {
		settings.Linkedin = *input.Linkedin
	}
	if input.Twitter != nil {
		settings.Twitter = *input.Twitter
	}
	if input.Website != nil {
		settings.Website = *input.Website
	}
	if input.Medium != nil {
		settings.Medium = *input.Medium
	}
	if input.Devto != nil {
		settings.Devto = *input.Devto
	}
	if input.MetaTitle != nil {
		settings.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		settings.MetaDescription = *input.MetaDescription
	}
	if input.MetaKeywords != nil {
		settings.MetaKeywords = *input.MetaKeywords
	}
	if input.OgImage != nil {
		settings.OgImage = *input.OgImage
	}
	if input.GithubUsername != nil {
		settings.GithubUsername = *input.GithubUsername
	}
	if input.GoogleAnalyticsID != nil {
		settings.GoogleAnalyticsID = *input.GoogleAnalyticsID
	}

	if err := s.profileRepo.UpdateSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return settings, nil
}

// Experiences

// ExperienceInput carries the full field set for creating an experience and
// the pointer set for partial updates.
type ExperienceInput struct {
	Company        string
	Position       string
	Description    string
	Location       string
	EmploymentType models.EmploymentType
	StartDate      time.Time
	EndDate        *time.Time
	Current        bool
	Skills         []string
	Achievements   []string
	CompanyLogo    string
	CompanyURL     string
	Order          int
}

type UpdateExperienceInput struct {
	Company        *string
	Position       *string
	Description    *string
	Location       *string
	EmploymentType *models.EmploymentType
	StartDate      *time.Time
	EndDate        *time.Time
	Current        *bool
	Skills         *[]string
	Achievements   *[]string
	CompanyLogo    *string
	CompanyURL     *string
	Order          *int
}

// ListExperiences returns experiences ordered by (current desc, start date desc)
func (s *ProfileService) ListExperiences() ([]models.Experience, error) {
	experiences, err := s.profileRepo.ListExperiences()
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return experiences, nil
}

func (s *ProfileService) CreateExperience(input ExperienceInput) (*models.Experience, error) {
	employmentType := input.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentFullTime
	}

	exp := &models.Experience{
		Company:        input.Company,
		Position:       input.Position,
		Description:    input.Description,
		Location:       input.Location,
		EmploymentType: employmentType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Current:        input.Current,
		Skills:         input.Skills,
		Achievements:   input.Achievements,
		CompanyLogo:    input.CompanyLogo,
		CompanyURL:     input.CompanyURL,
		Order:          input.Order,
	}

	if err := s.profileRepo.CreateExperience(exp); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return exp, nil
}

func (s *ProfileService) UpdateExperience(id uuid.UUID, input UpdateExperienceInput) (*models.Experience, error) {
	exp, err := s.profileRepo.FindExperience(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to find experience: %w", err)
	}

	if input.Company != nil {
		exp.Company = *input.Company
	}
	if input.Position != nil {
		exp.Position = *input.Position
	}
	if input.Description != nil {
		exp.Description = *input.Description
	}
	if input.Location != nil {
		exp.Location = *input.Location
	}
	if input.EmploymentType != nil {
		exp.EmploymentType = *input.EmploymentType
	}
	if input.StartDate != nil {
		exp.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		exp.EndDate = input.EndDate
	}
	if input.Current != nil {
		exp.Current = *input.Current
	}
	if input.Skills != nil {
		exp.Skills = *input.Skills
	}
	if input.Achievements != nil {
		exp.Achievements = *input.Achievements
	}
	if input.CompanyLogo != nil {
		exp.CompanyLogo = *input.CompanyLogo
	}
	if input.CompanyURL != nil {
		exp.CompanyURL = *input.CompanyURL
	}
	if input.Order != nil {
		exp.Order = *input.Order
	}

	if err := s.profileRepo.UpdateExperience(exp); err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return exp, nil
}

func (s *ProfileService) DeleteExperience(id uuid.UUID) error {
	if _, err := s.profileRepo.FindExperience(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("failed to find experience: %w", err)
	}

	if err := s.profileRepo.DeleteExperience(id); err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	return nil
}

// Education

type EducationInput struct {
	Institution string
	Degree      string
	Field       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Grade       string
	Location    string
	Logo        string
	URL         string
	Order       int
}

type UpdateEducationInput struct {
	Institution *string
	Degree      *string
	Field       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     *bool
	Grade       *string
	Location    *string
	Logo        *string
	URL         *string
	Order       *int
}

func (s *ProfileService) ListEducation() ([]models.Education, error) {
	education, err := s.profileRepo.ListEducation()
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	return education, nil
}

func (s *ProfileService) CreateEducation(input EducationInput) (*models.Education, error) {
	edu := &models.Education{
		Institution: input.Institution,
		Degree:      input.Degree,
		Field:       input.Field,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Current:     input.Current,
		Grade:       input.Grade,
		Location:    input.Location,
		Logo:        input.Logo,
		URL:         input.URL,
		Order:       input.Order,
	}

	if err := s.profileRepo.CreateEducation(edu); err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return edu, nil
}

func (s *ProfileService) UpdateEducation(id uuid.UUID, input UpdateEducationInput) (*models.Education, error) {
	edu, err := s.profileRepo.FindEducation(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, fmt.Errorf("failed to find education: %w", err)
	}

	if input.Institution != nil {
		edu.Institution = *input.Institution
	}
	if input.Degree != nil {
		edu.Degree = *input.Degree
	}
	if input.Field != nil {
		edu.Field = *input.Field
	}
	if input.Description != nil {
		edu.Description = *input.Description
	}
	if input.StartDate != nil {
		edu.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		edu.EndDate = input.EndDate
	}
	if input.Current != nil {
		edu.Current = *input.Current
	}
	if input.Grade != nil {
		edu.Grade = *input.Grade
	}
	if input.Location != nil {
		edu.Location = *input.Location
	}
	if input.Logo != nil {
		edu.Logo = *input.Logo
	}
	if input.URL != nil {
		edu.URL = *input.URL
	}
	if input.Order != nil {
		edu.Order = *input.Order
	}

	if err := s.profileRepo.UpdateEducation(edu); err != nil {
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return edu, nil
}

func (s *ProfileService) DeleteEducation(id uuid.UUID) error {
	if _, err := s.profileRepo.FindEducation(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEducationNotFound
		}
		return fmt.Errorf("failed to find education: %w", err)
	}

	if err := s.profileRepo.DeleteEducation(id); err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	return nil
}

// Certificates

type CertificateInput struct {
	Name          string
	Issuer        string
	IssueDate     time.Time
	ExpiryDate    *time.Time
	CredentialID  string
	CredentialURL string
	Description   string
	Skills        []string
	Logo          string
}

type UpdateCertificateInput struct {
	Name          *string
	Issuer        *string
	IssueDate     *time.Time
	ExpiryDate    *time.Time
	CredentialID  *string
	CredentialURL *string
	Description   *string
	Skills        *[]string
	Logo          *string
}

func (s *ProfileService) ListCertificates() ([]models.Certificate, error) {
	certificates, err := s.profileRepo.ListCertificates()
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certificates, nil
}

func (s *ProfileService) CreateCertificate(input CertificateInput) (*models.Certificate, error) {
	cert := &models.Certificate{
		Name:          input.Name,
		Issuer:        input.Issuer,
		IssueDate:     input.IssueDate,
		ExpiryDate:    input.ExpiryDate,
		CredentialID:  input.CredentialID,
		CredentialURL: input.CredentialURL,
		Description:   input.Description,
		Skills:        input.Skills,
		Logo:          input.Logo,
	}

	if err := s.profileRepo.CreateCertificate(cert); err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	return cert, nil
}

func (s *ProfileService) UpdateCertificate(id uuid.UUID, input UpdateCertificateInput) (*models.Certificate, error) {
	cert, err := s.profileRepo.FindCertificate(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to find certificate: %w", err)
	}

	if input.Name != nil {
		cert.Name = *input.Name
	}
	if input.Issuer != nil {
		cert.Issuer = *input.Issuer
	}
	if input.IssueDate != nil {
		cert.IssueDate = *input.IssueDate
	}
	if input.ExpiryDate != nil {
		cert.ExpiryDate = input.ExpiryDate
	}
	if input.CredentialID != nil {
		cert.CredentialID = *input.CredentialID
	}
	if input.CredentialURL != nil {
		cert.CredentialURL = *input.CredentialURL
	}
	if input.Description != nil {
		cert.Description = *input.Description
	}
	if input.Skills != nil {
		cert.Skills = *input.Skills
	}
	if input.Logo != nil {
		cert.Logo = *input.Logo
	}

	if err := s.profileRepo.UpdateCertificate(cert); err != nil {
		return nil, fmt.Errorf("failed to update certificate: %w", err)
	}
	return cert, nil
}

func (s *ProfileService) DeleteCertificate(id uuid.UUID) error {
	if _, err := s.profileRepo.FindCertificate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCertificateNotFound
		}
		return fmt.Errorf("failed to find certificate: %w", err)
	}

	if err := s.profileRepo.DeleteCertificate(id); err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	return nil
}
