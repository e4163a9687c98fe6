package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w-]+`)
	multiDashRe  = regexp.MustCompile(`-{2,}`)
)

// ErrSlugExhausted is returned when no free slug could be found within the
// probe limit. This only happens when the existence check misbehaves.
var ErrSlugExhausted = errors.New("could not generate a unique slug")

// maxSlugAttempts bounds the collision probe so a predicate that always
// reports true cannot loop forever.
const maxSlugAttempts = 1000

// Slugify converts free text into a URL-safe identifier: lowercase, spaces
// collapsed to single hyphens, everything outside [a-z0-9_-] stripped, no
// repeated or leading/trailing hyphens.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = whitespaceRe.ReplaceAllString(slug, "-")
	slug = nonWordRe.ReplaceAllString(slug, "")
	slug = multiDashRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug derives a slug from text and resolves collisions by
// appending an incrementing numeric suffix until exists reports false.
func GenerateUniqueSlug(text string, exists func(slug string) (bool, error)) (string, error) {
	base := Slugify(text)
	slug := base

	for counter := 1; counter <= maxSlugAttempts; counter++ {
		taken, err := exists(slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}

	return "", ErrSlugExhausted
}
