package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
)

func setupProfileService(t *testing.T) (*ProfileService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.SiteSettings{},
		&models.Experience{},
		&models.Education{},
		&models.Certificate{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewProfileService(repository.NewProfileRepository(db)), db
}

func TestProfileService_GetProfile_LazyCreate(t *testing.T) {
	svc, db := setupProfileService(t)

	settings, err := svc.GetProfile()
	require.NoError(t, err)
	require.Equal(t, models.SiteSettingsID, settings.ID)
	require.Equal(t, "Your Name", settings.FullName)

	// A second read returns the same row, not another insert.
	again, err := svc.GetProfile()
	require.NoError(t, err)
	require.Equal(t, settings.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, _ := setupProfileService(t)

	name := "Jane Doe"
	available := false
	updated, err := svc.UpdateProfile(UpdateProfileInput{
		FullName:         &name,
		AvailableForWork: &available,
	})
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", updated.FullName)
	require.False(t, updated.AvailableForWork)
	// Untouched fields keep their defaults.
	require.Equal(t, "Software Developer", updated.Title)

	fetched, err := svc.GetProfile()
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", fetched.FullName)
}

func TestProfileService_ExperienceOrdering(t *testing.T) {
	svc, _ := setupProfileService(t)

	old := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateExperience(ExperienceInput{
		Company: "Oldest", Position: "Dev", StartDate: old,
	})
	require.NoError(t, err)
	_, err = svc.CreateExperience(ExperienceInput{
		Company: "Current", Position: "Dev", StartDate: mid, Current: true,
	})
	require.NoError(t, err)
	_, err = svc.CreateExperience(ExperienceInput{
		Company: "Recent", Position: "Dev", StartDate: recent,
	})
	require.NoError(t, err)

	experiences, err := svc.ListExperiences()
	require.NoError(t, err)
	require.Len(t, experiences, 3)
	// Current roles first, then newest start date.
	require.Equal(t, "Current", experiences[0].Company)
	require.Equal(t, "Recent", experiences[1].Company)
	require.Equal(t, "Oldest", experiences[2].Company)
}

func TestProfileService_ExperienceDefaultsEmploymentType(t *testing.T) {
	svc, _ := setupProfileService(t)

	exp, err := svc.CreateExperience(ExperienceInput{
		Company: "Acme", Position: "Dev",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, models.EmploymentFullTime, exp.EmploymentType)
}

func TestProfileService_ExperienceCRUD(t *testing.T) {
	svc, _ := setupProfileService(t)

	exp, err := svc.CreateExperience(ExperienceInput{
		Company: "Acme", Position: "Dev",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	position := "Senior Dev"
	updated, err := svc.UpdateExperience(exp.ID, UpdateExperienceInput{Position: &position})
	require.NoError(t, err)
	require.Equal(t, "Senior Dev", updated.Position)
	require.Equal(t, "Acme", updated.Company)

	require.NoError(t, svc.DeleteExperience(exp.ID))
	require.ErrorIs(t, svc.DeleteExperience(exp.ID), ErrExperienceNotFound)

	_, err = svc.UpdateExperience(uuid.New(), UpdateExperienceInput{Position: &position})
	require.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestProfileService_EducationCRUD(t *testing.T) {
	svc, _ := setupProfileService(t)

	edu, err := svc.CreateEducation(EducationInput{
		Institution: "MIT", Degree: "BSc", Field: "CS",
		StartDate: time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	grade := "First Class"
	updated, err := svc.UpdateEducation(edu.ID, UpdateEducationInput{Grade: &grade})
	require.NoError(t, err)
	require.Equal(t, "First Class", updated.Grade)

	list, err := svc.ListEducation()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteEducation(edu.ID))
	require.ErrorIs(t, svc.DeleteEducation(edu.ID), ErrEducationNotFound)
}

func TestProfileService_CertificateOrdering(t *testing.T) {
	svc, _ := setupProfileService(t)

	_, err := svc.CreateCertificate(CertificateInput{
		Name: "Older", Issuer: "AWS",
		IssueDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	newer, err := svc.CreateCertificate(CertificateInput{
		Name: "Newer", Issuer: "GCP",
		IssueDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	certificates, err := svc.ListCertificates()
	require.NoError(t, err)
	require.Len(t, certificates, 2)
	require.Equal(t, newer.ID, certificates[0].ID)

	require.NoError(t, svc.DeleteCertificate(newer.ID))
	require.ErrorIs(t, svc.DeleteCertificate(newer.ID), ErrCertificateNotFound)
}
