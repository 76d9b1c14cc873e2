// Package rank scores jobs against candidate profiles.
package rank

import (
	"fmt"
	"sort"

	"jobfit-engine/internal/classify"
	"jobfit-engine/internal/config"
	"jobfit-engine/internal/domain"
	"jobfit-engine/internal/filter"
	"jobfit-engine/internal/grade"
)

// Result is the full outcome of scoring one job against one profile.
type Result struct {
	Total     int
	Grade     grade.Grade
	Breakdown Breakdown
	Meta      classify.Metadata
	Reasons   []string
}

// ProfileScorer scores jobs against a single profile. The profile is
// read-only; scoring never mutates it, so one scorer may be used from
// multiple goroutines.
type ProfileScorer struct {
	profile    *config.Profile
	chain      *filter.Chain
	classifier classify.Classifier
}

func NewProfileScorer(p *config.Profile) *ProfileScorer {
	return &ProfileScorer{
		profile:    p,
		chain:      filter.NewChain(p),
		classifier: classify.New(p.Filtering.Companies),
	}
}

func (s *ProfileScorer) ProfileID() string { return s.profile.ID }

// Score runs the hard-filter chain, the weighted sub-scores and the
// classification adjustment. A hard-filtered job short-circuits: no
// sub-scores, total 0, grade F, with the block reason recorded.
func (s *ProfileScorer) Score(job domain.Job) Result {
	if d := s.chain.Run(job); d.Blocked {
		return Result{
			Total: 0,
			Grade: grade.Calculate(0),
			Meta: classify.Metadata{
				CompanyType:  classify.Unknown,
				Source:       "auto",
				Filtered:     true,
				FilterReason: d.Reason,
			},
			Reasons: []string{d.Reason},
		}
	}

	var bd Breakdown
	var reasons []string
	note := func(format string, args ...any) {
		reasons = append(reasons, fmt.Sprintf(format, args...))
	}

	bd.RoleType = s.roleTypeScore(job, note)
	bd.Seniority = s.seniorityScore(job, bd.RoleType, note)
	bd.Domain = s.domainScore(job, note)
	bd.Location = s.locationScore(job, note)
	bd.Technical = s.technicalScore(job, note)

	res := s.classifier.Classify(job.Company, job.Title, s.profile.Scoring.Domain.Keywords)
	meta := classify.Adjust(res, job.Title, s.profile.Filtering)
	bd.CompanyClassification = meta.Adjustment
	if meta.Filtered {
		note("company filtered: %s", meta.FilterReason)
	}

	total := bd.Sum()
	return Result{
		Total:     total,
		Grade:     grade.Calculate(total),
		Breakdown: bd,
		Meta:      meta,
		Reasons:   reasons,
	}
}

// roleTypeScore matches the title against the profile's category keyword
// map. The strongest matching category wins; no category means zero, never
// a guessed fallback.
func (s *ProfileScorer) roleTypeScore(job domain.Job, note func(string, ...any)) int {
	rt := s.profile.Scoring.RoleTypes
	if len(rt) == 0 {
		note("role_type: no categories configured")
		return 0
	}

	// stable iteration so equal-point categories resolve deterministically
	cats := make([]string, 0, len(rt))
	for cat := range rt {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	best, bestCat := 0, ""
	for _, cat := range cats {
		rule := rt[cat]
		if _, ok := domain.ContainsAnyToken(job.Title, rule.Any); ok && rule.Points > best {
			best, bestCat = rule.Points, cat
		}
	}
	if best == 0 {
		note("role_type: title matched no category")
	} else {
		note("role_type: matched category %q", bestCat)
	}
	return best
}

// seniorityScore awards points only when the role type matched; senior
// words on an irrelevant role earn nothing.
func (s *ProfileScorer) seniorityScore(job domain.Job, roleTypePoints int, note func(string, ...any)) int {
	if roleTypePoints == 0 {
		note("seniority: skipped, role_type is 0")
		return 0
	}

	sen := s.profile.Scoring.Seniority
	if kw, ok := domain.ContainsAnyToken(job.Title, sen.Executive.Any); ok {
		note("seniority: executive tier (%q)", kw)
		return sen.Executive.Points
	}
	if kw, ok := domain.ContainsAnyToken(job.Title, sen.Senior.Any); ok {
		note("seniority: senior tier (%q)", kw)
		return sen.Senior.Points
	}
	if kw, ok := domain.ContainsAnyToken(job.Title, sen.Mid.Any); ok {
		note("seniority: mid tier (%q)", kw)
		return sen.Mid.Points
	}
	note("seniority: no tier keyword in title")
	return 0
}

// domainScore uses discrete bands by distinct keyword hits, not linear
// accumulation: zero hits, partial, or max at three distinct keywords.
func (s *ProfileScorer) domainScore(job domain.Job, note func(string, ...any)) int {
	d := s.profile.Scoring.Domain
	if len(d.Keywords) == 0 {
		return 0
	}

	text := job.Title + " " + job.Description
	hits := domain.CountTokens(text, d.Keywords)
	switch {
	case hits >= 3:
		return d.MaxPoints
	case hits >= 1:
		return d.PartialPoints
	default:
		note("domain: no keyword hits")
		return 0
	}
}

func (s *ProfileScorer) technicalScore(job domain.Job, note func(string, ...any)) int {
	tc := s.profile.Scoring.Technical
	if len(tc.Keywords) == 0 {
		return 0
	}

	text := job.Title + " " + job.Description
	hits := domain.CountTokens(text, tc.Keywords)
	if hits == 0 {
		note("technical: no keyword hits")
		return 0
	}

	score := hits * tc.PerHit
	if score > tc.Cap {
		score = tc.Cap
	}
	return score
}
