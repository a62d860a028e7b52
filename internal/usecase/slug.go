package usecase

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugSuffixMin = 1000
	slugSuffixMax = 10000
)

var (
	slugUnsafe    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[-\s]+`)
	nonASCII      = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })
)

// Slugify converts a title into a lowercase, hyphen separated ASCII slug.
// Accents are folded away and any other non-ASCII character is dropped.
func Slugify(title string) string {
	// Chains carry buffers, so each call gets its own.
	asciiOnly := transform.Chain(norm.NFKD, runes.Remove(nonASCII))
	folded, _, err := transform.String(asciiOnly, title)
	if err != nil {
		folded = title
	}
	folded = slugUnsafe.ReplaceAllString(strings.ToLower(folded), "")
	folded = slugSeparator.ReplaceAllString(strings.TrimSpace(folded), "-")
	return strings.Trim(folded, "-_")
}

// courseSlug appends a numeric suffix to the slugified title.
func courseSlug(title string, suffix int) string {
	return fmt.Sprintf("%s-%d", Slugify(title), suffix)
}

func randomSlugSuffix() int {
	return slugSuffixMin + rand.IntN(slugSuffixMax-slugSuffixMin)
}
