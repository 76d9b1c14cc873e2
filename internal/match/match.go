// Package match deduplicates imported company lists by fuzzy name and
// careers-URL similarity.
package match

import (
	"math"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"jobfit-engine/internal/domain"
)

// DefaultThreshold is the 0-100 similarity ratio required for a match.
const DefaultThreshold = 90

var legalSuffixes = map[string]bool{
	"inc": true, "incorporated": true,
	"llc": true, "ltd": true, "limited": true,
	"corp": true, "corporation": true,
	"co": true, "gmbh": true, "plc": true,
}

// NormalizeName lowercases, strips punctuation, collapses whitespace and
// drops trailing legal suffixes. "Boston Dynamics Inc." and
// "Boston Dynamics" normalize to the same string; a bare "Inc" normalizes
// to empty and can never match anything.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for len(words) > 0 && legalSuffixes[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// NormalizeURL strips scheme, www., query, fragment and trailing slash.
func NormalizeURL(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if u == "" {
		return ""
	}

	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	u = strings.TrimPrefix(u, "www.")

	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return strings.TrimRight(u, "/")
}

// Matcher performs fuzzy company matching against a 0-100 ratio threshold.
type Matcher struct {
	Threshold int

	lev *metrics.Levenshtein
}

func New(threshold int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{Threshold: threshold, lev: metrics.NewLevenshtein()}
}

// Ratio returns the 0-100 similarity between two already-normalized strings.
func (m *Matcher) Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return int(math.Round(strutil.Similarity(a, b, m.lev) * 100))
}

// FindMatch returns the first existing record that matches the candidate.
// URL similarity is checked before name similarity since careers URLs are
// the more reliable identity.
func (m *Matcher) FindMatch(candidate domain.CompanyRecord, existing []domain.CompanyRecord) (domain.CompanyRecord, bool) {
	candURL := NormalizeURL(candidate.CareersURL)
	candName := NormalizeName(candidate.Name)

	for _, rec := range existing {
		if m.Ratio(candURL, NormalizeURL(rec.CareersURL)) >= m.Threshold {
			return rec, true
		}
		if m.Ratio(candName, NormalizeName(rec.Name)) >= m.Threshold {
			return rec, true
		}
	}
	return domain.CompanyRecord{}, false
}

// Deduplicate folds the batch through FindMatch against the growing unique
// set. Order of the input decides which spelling survives as canonical.
func (m *Matcher) Deduplicate(records []domain.CompanyRecord) (unique, duplicates []domain.CompanyRecord) {
	for _, rec := range records {
		if _, ok := m.FindMatch(rec, unique); ok {
			duplicates = append(duplicates, rec)
			continue
		}
		unique = append(unique, rec)
	}
	return unique, duplicates
}
