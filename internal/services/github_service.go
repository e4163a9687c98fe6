package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/repository"
)

var (
	ErrGithubNotConfigured = errors.New("github token not configured")
	ErrInvalidGithubURL    = errors.New("invalid github url")
)

var githubURLRe = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// GithubUser is the public profile of a GitHub account.
type GithubUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// GithubRepo is one repository row from the user's repo listing.
type GithubRepo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PushedAt    time.Time `json:"pushed_at"`
}

// RepoStats carries the counters of a single repository.
type RepoStats struct {
	Stars      int    `json:"stars"`
	Forks      int    `json:"forks"`
	Watchers   int    `json:"watchers"`
	OpenIssues int    `json:"open_issues"`
	Language   string `json:"language"`
}

// GithubStats aggregates counters across all of a user's repositories.
type GithubStats struct {
	TotalRepos        int            `json:"total_repos"`
	TotalStars        int            `json:"total_stars"`
	TotalForks        int            `json:"total_forks"`
	LanguageStats     map[string]int `json:"language_stats"`
	ContributionYears []int          `json:"contribution_years"`
}

// GithubService proxies the GitHub REST API with a server-held token and
// writes synced repo counters back onto projects.
type GithubService struct {
	client          *http.Client
	baseURL         string
	token           string
	defaultUsername string
	projectRepo     repository.ProjectRepository
}

// NewGithubService creates a new GithubService. The base URL is only
// overridden in tests.
func NewGithubService(token, defaultUsername string, projectRepo repository.ProjectRepository) *GithubService {
	return &GithubService{
		client:          &http.Client{Timeout: 15 * time.Second},
		baseURL:         "https://api.github.com",
		token:           token,
		defaultUsername: defaultUsername,
		projectRepo:     projectRepo,
	}
}

func (s *GithubService) get(ctx context.Context, path string, out interface{}) error {
	if s.token == "" {
		return ErrGithubNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github responded with status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode github response: %w", err)
	}
	return nil
}

// GetUserProfile fetches a GitHub account's public profile. An empty
// username falls back to the configured one.
func (s *GithubService) GetUserProfile(ctx context.Context, username string) (*GithubUser, error) {
	if username == "" {
		username = s.defaultUsername
	}

	var user GithubUser
	if err := s.get(ctx, "/users/"+username, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserRepos fetches up to 100 of the user's repositories, most recently
// updated first.
func (s *GithubService) GetUserRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	if username == "" {
		username = s.defaultUsername
	}

	var repos []GithubRepo
	if err := s.get(ctx, "/users/"+username+"/repos?sort=updated&per_page=100", &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepoStats fetches the counters of a single repository.
func (s *GithubService) GetRepoStats(ctx context.Context, owner, repo string) (*RepoStats, error) {
	var payload struct {
		Stars      int    `json:"stargazers_count"`
		Forks      int    `json:"forks_count"`
		Watchers   int    `json:"watchers_count"`
		OpenIssues int    `json:"open_issues_count"`
		Language   string `json:"language"`
	}
	if err := s.get(ctx, "/repos/"+owner+"/"+repo, &payload); err != nil {
		return nil, err
	}

	return &RepoStats{
		Stars:      payload.Stars,
		Forks:      payload.Forks,
		Watchers:   payload.Watchers,
		OpenIssues: payload.OpenIssues,
		Language:   payload.Language,
	}, nil
}

// GetStats aggregates counters across the user's repositories.
func (s *GithubService) GetStats(ctx context.Context, username string) (*GithubStats, error) {
	repos, err := s.GetUserRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	stats := &GithubStats{
		TotalRepos:    len(repos),
		LanguageStats: make(map[string]int),
	}
	years := make(map[int]struct{})

	for _, repo := range repos {
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks
		if repo.Language != "" {
			stats.LanguageStats[repo.Language]++
		}
		years[repo.CreatedAt.Year()] = struct{}{}
	}

	for year := range years {
		stats.ContributionYears = append(stats.ContributionYears, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(stats.ContributionYears)))

	return stats, nil
}

// SyncRepoStats parses an owner/repo pair out of a GitHub URL, fetches the
// repository counters and, when a project id is given, writes stars, forks
// and language back onto that project.
func (s *GithubService) SyncRepoStats(ctx context.Context, githubURL string, projectID *uuid.UUID) (*RepoStats, error) {
	match := githubURLRe.FindStringSubmatch(githubURL)
	if match == nil {
		return nil, ErrInvalidGithubURL
	}
	owner := match[1]
	repo := strings.TrimSuffix(match[2], ".git")

	stats, err := s.GetRepoStats(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	if projectID != nil {
		project, err := s.projectRepo.FindByID(*projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to find project: %w", err)
		}

		project.GithubStars = &stats.Stars
		project.GithubForks = &stats.Forks
		if stats.Language != "" {
			project.GithubLanguage = &stats.Language
		}
		if err := s.projectRepo.Update(project); err != nil {
			return nil, fmt.Errorf("failed to store repo stats: %w", err)
		}
	}

	return stats, nil
}
