package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
)

// ErrProfileMissing is returned when the CV is requested before the site
// settings row exists. Unlike GetProfile, this path never lazily creates it.
var ErrProfileMissing = errors.New("profile not found")

// CVService renders the curriculum vitae as a PDF document.
type CVService struct {
	profileRepo repository.ProfileRepository
	skillRepo   repository.SkillRepository
}

// NewCVService creates a new CVService
func NewCVService(profileRepo repository.ProfileRepository, skillRepo repository.SkillRepository) *CVService {
	return &CVService{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
	}
}

// GenerateCV fetches every CV data source in parallel and assembles the
// document, returning the finished byte buffer.
func (s *CVService) GenerateCV(ctx context.Context) ([]byte, error) {
	var (
		settings     *models.SiteSettings
		skills       []models.Skill
		experiences  []models.Experience
		education    []models.Education
		certificates []models.Certificate
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = s.profileRepo.GetSettings()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileMissing
		}
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.skillRepo.List()
		return err
	})
	g.Go(func() error {
		var err error
		experiences, err = s.profileRepo.ListExperiences()
		return err
	})
	g.Go(func() error {
		var err error
		education, err = s.profileRepo.ListEducation()
		return err
	})
	g.Go(func() error {
		var err error
		certificates, err = s.profileRepo.ListCertificates()
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrProfileMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load CV data: %w", err)
	}

	return renderCV(settings, skills, experiences, education, certificates)
}

const (
	cvMarginX = 18.0
	cvMarginY = 16.0
)

func renderCV(
	settings *models.SiteSettings,
	skills []models.Skill,
	experiences []models.Experience,
	education []models.Education,
	certificates []models.Certificate,
) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(cvMarginX, cvMarginY, cvMarginX)
	pdf.SetAutoPageBreak(true, 22)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 11, tr(settings.FullName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 7, tr(settings.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Contact lines
	pdf.SetFont("Helvetica", "", 10)
	contact := settings.Email
	if settings.Phone != "" {
		contact += " | " + settings.Phone
	}
	if settings.Location != "" {
		contact += " | " + settings.Location
	}
	pdf.CellFormat(0, 5, tr(contact), "", 1, "C", false, 0, "")

	if settings.Github != "" || settings.Linkedin != "" {
		links := settings.Github
		if settings.Github != "" && settings.Linkedin != "" {
			links += " | "
		}
		links += settings.Linkedin
		pdf.CellFormat(0, 5, tr(links), "", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Bio
	if settings.Bio != "" {
		cvSection(pdf, tr, "About")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(settings.Bio), "", "J", false)
		pdf.Ln(4)
	}

	// Skills, one sub-block per category in stored order
	if len(skills) > 0 {
		cvSection(pdf, tr, "Skills")
		for _, group := range groupSkills(skills) {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, tr(skillCategoryLabel(group.category)), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(strings.Join(group.names, ", ")), "", "L", false)
			pdf.Ln(2)
		}
		pdf.Ln(2)
	}

	// Experience
	if len(experiences) > 0 {
		cvSection(pdf, tr, "Professional Experience")
		for _, exp := range experiences {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 6, tr(exp.Position), "", 1, "L", false, 0, "")

			period := formatDateRange(exp.StartDate, exp.EndDate, exp.Current)
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 5, tr(exp.Company+" | "+period), "", 1, "L", false, 0, "")

			if exp.Description != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(0, 5, tr(exp.Description), "", "J", false)
			}
			if len(exp.Achievements) > 0 {
				pdf.SetFont("Helvetica", "", 10)
				for _, achievement := range exp.Achievements {
					pdf.MultiCell(0, 5, tr("• "+achievement), "", "L", false)
				}
			}
			pdf.Ln(4)
		}
	}

	// Education
	if len(education) > 0 {
		cvSection(pdf, tr, "Education")
		for _, edu := range education {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, tr(edu.Degree+" - "+edu.Field), "", 1, "L", false, 0, "")

			period := formatDateRange(edu.StartDate, edu.EndDate, edu.Current)
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 5, tr(edu.Institution+" | "+period), "", 1, "L", false, 0, "")

			if edu.Description != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(0, 5, tr(edu.Description), "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	// Certificates
	if len(certificates) > 0 {
		cvSection(pdf, tr, "Certifications")
		for _, cert := range certificates {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, tr(cert.Name), "", 1, "L", false, 0, "")

			pdf.SetFont("Helvetica", "", 10)
			issued := cert.Issuer + " | " + cert.IssueDate.Format("Jan 2006")
			pdf.CellFormat(0, 5, tr(issued), "", 1, "L", false, 0, "")

			if cert.CredentialID != "" {
				pdf.SetFont("Helvetica", "", 9)
				pdf.CellFormat(0, 5, tr("ID: "+cert.CredentialID), "", 1, "L", false, 0, "")
			}
			pdf.Ln(3)
		}
	}

	// Footer
	pdf.SetY(-16)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, tr("Generated on "+time.Now().Format("January 2, 2006")), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render CV: %w", err)
	}
	return buf.Bytes(), nil
}

// cvSection writes an uppercase section heading with an underline rule.
func cvSection(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 8, tr(strings.ToUpper(title)), "", 1, "L", false, 0, "")

	pageWidth, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.SetDrawColor(37, 99, 235)
	pdf.Line(cvMarginX, y, pageWidth-cvMarginX, y)

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}

type skillGroup struct {
	category models.SkillCategory
	names    []string
}

// groupSkills buckets skills by category preserving the (category, order)
// sort of the input.
func groupSkills(skills []models.Skill) []skillGroup {
	var groups []skillGroup
	for _, skill := range skills {
		if len(groups) == 0 || groups[len(groups)-1].category != skill.Category {
			groups = append(groups, skillGroup{category: skill.Category})
		}
		last := &groups[len(groups)-1]
		last.names = append(last.names, skill.Name)
	}
	return groups
}

func skillCategoryLabel(category models.SkillCategory) string {
	switch category {
	case models.SkillCategoryFrontend:
		return "Frontend"
	case models.SkillCategoryBackend:
		return "Backend"
	case models.SkillCategoryDatabase:
		return "Databases"
	case models.SkillCategoryDevOps:
		return "DevOps"
	case models.SkillCategoryCloud:
		return "Cloud"
	case models.SkillCategoryAIML:
		return "AI & Machine Learning"
	case models.SkillCategoryMobile:
		return "Mobile"
	case models.SkillCategoryTools:
		return "Tools"
	case models.SkillCategorySoftSkills:
		return "Soft Skills"
	default:
		return "Other"
	}
}

// formatDateRange renders "start - Present" for ongoing records, "start -
// end" for closed ones and just "start" when no end is known.
func formatDateRange(start time.Time, end *time.Time, current bool) string {
	startStr := start.Format("Jan 2006")
	if current {
		return startStr + " - Present"
	}
	if end != nil {
		return startStr + " - " + end.Format("Jan 2006")
	}
	return startStr
}
