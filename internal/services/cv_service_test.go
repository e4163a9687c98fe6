package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
)

func setupCVService(t *testing.T) (*CVService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.SiteSettings{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Certificate{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection to :memory: is its own database, so pin the
	// pool to one for the parallel section fetches.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	svc := NewCVService(repository.NewProfileRepository(db), repository.NewSkillRepository(db))
	return svc, db
}

func TestCVService_GenerateCV_RequiresProfile(t *testing.T) {
	svc, _ := setupCVService(t)

	_, err := svc.GenerateCV(context.Background())
	require.ErrorIs(t, err, ErrProfileMissing)
}

func TestCVService_GenerateCV(t *testing.T) {
	svc, db := setupCVService(t)

	settings := models.DefaultSiteSettings()
	settings.FullName = "Jane Doe"
	settings.Title = "Backend Engineer"
	settings.Bio = "Builds boring, reliable systems."
	require.NoError(t, db.Create(&settings).Error)

	require.NoError(t, db.Create(&models.Skill{
		Name: "Go", Category: models.SkillCategoryBackend, Level: 90,
	}).Error)
	require.NoError(t, db.Create(&models.Skill{
		Name: "PostgreSQL", Category: models.SkillCategoryDatabase, Level: 80,
	}).Error)

	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Experience{
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: start,
		Current:   true,
	}).Error)

	// No education or certificates; those sections are simply omitted.
	pdf, err := svc.GenerateCV(context.Background())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	require.Greater(t, len(pdf), 1000)

	// Adding a certificate brings its section back.
	require.NoError(t, db.Create(&models.Certificate{
		Name:      "Certified Kubernetes Administrator",
		Issuer:    "CNCF",
		IssueDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	withCerts, err := svc.GenerateCV(context.Background())
	require.NoError(t, err)
	require.Greater(t, len(withCerts), len(pdf))
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "Mar 2021 - Present", formatDateRange(start, &end, true))
	require.Equal(t, "Mar 2021 - Nov 2023", formatDateRange(start, &end, false))
	require.Equal(t, "Mar 2021", formatDateRange(start, nil, false))
}

func TestGroupSkills(t *testing.T) {
	skills := []models.Skill{
		{Name: "React", Category: models.SkillCategoryFrontend},
		{Name: "Vue", Category: models.SkillCategoryFrontend},
		{Name: "Go", Category: models.SkillCategoryBackend},
	}

	groups := groupSkills(skills)
	require.Len(t, groups, 2)
	require.Equal(t, models.SkillCategoryFrontend, groups[0].category)
	require.Equal(t, []string{"React", "Vue"}, groups[0].names)
	require.Equal(t, []string{"Go"}, groups[1].names)
}
