package scanner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/voust/alignment/internal/domain"
)

// sectionPattern matches section folder names: NN_slug or NN-slug, where
// N is any Unicode decimal digit
var sectionPattern = regexp.MustCompile(`^(\p{Nd}{2})[_-](.+)$`)

var separatorReplacer = strings.NewReplacer("_", " ", "-", " ")

// IsSectionCandidate reports whether a folder name starts with a digit and
// therefore has to satisfy the section pattern
func IsSectionCandidate(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.IsDigit(r)
}

// ParseSectionName splits a section folder name into its numeric order key
// and slug. ok is false when name does not match the section pattern.
func ParseSectionName(name string) (number int, slug string, ok bool) {
	match := sectionPattern.FindStringSubmatch(name)
	if match == nil {
		return 0, "", false
	}
	for _, r := range match[1] {
		d, ok := digitValue(r)
		if !ok {
			return 0, "", false
		}
		number = number*10 + d
	}
	return number, match[2], true
}

// digitValue returns the value of a decimal digit in any script. Unicode
// allocates each set of decimal digits as a contiguous run starting at zero.
func digitValue(r rune) (int, bool) {
	for _, rng := range unicode.Nd.R16 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) && rng.Stride == 1 {
			return int(r-rune(rng.Lo)) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) && rng.Stride == 1 {
			return int(r-rune(rng.Lo)) % 10, true
		}
	}
	return 0, false
}

// Titleize replaces "_" and "-" with spaces, then upper-cases the first
// letter of every run of cased letters and lower-cases the rest of the run.
// Any non-cased rune ends a run, so "o'reilly" becomes "O'Reilly" and
// "3d" becomes "3D".
func Titleize(s string) string {
	s = separatorReplacer.Replace(s)
	// A Caser keeps state between calls, so each call gets its own.
	caser := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	start := -1
	for i, r := range s {
		if isCased(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// SectionTitle derives the display title of a section from its slug
func SectionTitle(slug string) string {
	return Titleize(slug)
}

// DocumentTitle derives the display title of a document from its file name
func DocumentTitle(file string) string {
	return Titleize(strings.TrimSuffix(file, domain.MarkdownExt))
}
