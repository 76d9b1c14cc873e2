package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Aggression levels for software-company filtering.
const (
	AggressionConservative = "conservative"
	AggressionModerate     = "moderate"
	AggressionAggressive   = "aggressive"
)

// SeniorityTier is one keyword tier with its point value.
type SeniorityTier struct {
	Any    []string `yaml:"any"`
	Points int      `yaml:"points"`
}

type SeniorityConfig struct {
	Senior    SeniorityTier `yaml:"senior"`
	Mid       SeniorityTier `yaml:"mid"`
	Executive SeniorityTier `yaml:"executive"`
}

// RoleTypeRule maps one role category to its keywords.
type RoleTypeRule struct {
	Any    []string `yaml:"any"`
	Points int      `yaml:"points"`
}

type DomainConfig struct {
	Keywords      []string `yaml:"keywords"`
	PartialPoints int      `yaml:"partial_points"`
	MaxPoints     int      `yaml:"max_points"`
}

type LocationConfig struct {
	RemotePoints int      `yaml:"remote_points"`
	HybridPoints int      `yaml:"hybrid_points"`
	Cities       []string `yaml:"cities"`
	CityPoints   int      `yaml:"city_points"`
}

type TechnicalConfig struct {
	Keywords []string `yaml:"keywords"`
	PerHit   int      `yaml:"per_hit"`
	Cap      int      `yaml:"cap"`
}

type ScoringConfig struct {
	Seniority SeniorityConfig         `yaml:"seniority"`
	RoleTypes map[string]RoleTypeRule `yaml:"role_types"`
	Domain    DomainConfig            `yaml:"domain"`
	Location  LocationConfig          `yaml:"location"`
	Technical TechnicalConfig         `yaml:"technical"`
}

// BlockRule is one hard-filter keyword set. A keyword hit blocks the job
// unless an exception also hits the title (e.g. a C-level override).
type BlockRule struct {
	Any        []string `yaml:"any"`
	Exceptions []string `yaml:"exceptions"`
}

type FiltersConfig struct {
	Seniority      BlockRule `yaml:"seniority"`
	Roles          BlockRule `yaml:"roles"`
	Departments    BlockRule `yaml:"departments"`
	SalesMarketing BlockRule `yaml:"sales_marketing"`
}

// FilteringConfig drives the company-classification adjustment policy.
type FilteringConfig struct {
	AggressionLevel   string            `yaml:"aggression_level" validate:"omitempty,oneof=conservative moderate aggressive"`
	SoftwarePenalty   int               `yaml:"software_penalty" validate:"lte=0"`
	HardwareBoost     int               `yaml:"hardware_boost" validate:"gte=0"`
	MinConfidence     float64           `yaml:"min_confidence" validate:"gte=0,lte=1"`
	AvoidKeywords     []string          `yaml:"avoid_keywords"`
	HardwareKeywords  []string          `yaml:"hardware_keywords"`
	ProductLeadership []string          `yaml:"product_leadership"`
	Companies         map[string]string `yaml:"companies" validate:"dive,oneof=software hardware both"`
}

type NotifyConfig struct {
	DigestMinScore int    `yaml:"digest_min_score" validate:"gte=0"`
	DigestMinGrade string `yaml:"digest_min_grade" validate:"omitempty,oneof=A B C D F"`
}

// Profile is one candidate's scoring configuration. It is loaded once per
// run and must never be mutated by a scoring call.
type Profile struct {
	ID      string `yaml:"id" validate:"required"`
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`

	Scoring   ScoringConfig   `yaml:"scoring"`
	Filters   FiltersConfig   `yaml:"filters"`
	Filtering FilteringConfig `yaml:"filtering"`
	Notify    NotifyConfig    `yaml:"notify"`
}

// Load reads one profile file, applies defaults, and validates it.
// Malformed profiles fail here, before any scoring happens.
func Load(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	applyDefaults(&p)

	normalized, res := NormalizeAndValidate(p)
	if !res.OK() {
		return nil, fmt.Errorf("profile %s invalid: %s", path, strings.Join(res.Errors, "; "))
	}
	return &normalized, nil
}

// LoadDir loads every *.yml / *.yaml profile under dir, in name order, and
// returns the enabled ones. The stable order is what makes best-match
// tie-breaking deterministic downstream.
func LoadDir(dir string) ([]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yml" || ext == ".yaml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []*Profile
	for _, n := range names {
		p, err := Load(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out, nil
}

// applyDefaults fills point values and policy knobs left at zero. The
// literals are profile-tuning defaults, not engine invariants; the engine
// only relies on their relative ordering.
func applyDefaults(p *Profile) {
	s := &p.Scoring

	if s.Seniority.Senior.Points == 0 {
		s.Seniority.Senior.Points = 15
	}
	if s.Seniority.Mid.Points == 0 {
		s.Seniority.Mid.Points = 10
	}
	if s.Seniority.Executive.Points == 0 {
		s.Seniority.Executive.Points = 30
	}
	if len(s.Seniority.Executive.Any) == 0 {
		s.Seniority.Executive.Any = []string{"vp", "vice president", "director", "head of", "chief", "cto", "ceo", "coo"}
	}

	for cat, rule := range s.RoleTypes {
		if rule.Points == 0 {
			rule.Points = 30
			s.RoleTypes[cat] = rule
		}
	}

	if s.Domain.PartialPoints == 0 {
		s.Domain.PartialPoints = 10
	}
	if s.Domain.MaxPoints == 0 {
		s.Domain.MaxPoints = 20
	}

	if s.Location.RemotePoints == 0 {
		s.Location.RemotePoints = 25
	}
	if s.Location.HybridPoints == 0 {
		s.Location.HybridPoints = 15
	}
	if s.Location.CityPoints == 0 {
		s.Location.CityPoints = 10
	}

	if s.Technical.PerHit == 0 {
		s.Technical.PerHit = 2
	}
	if s.Technical.Cap == 0 {
		s.Technical.Cap = 10
	}

	f := &p.Filtering
	if f.AggressionLevel == "" {
		f.AggressionLevel = AggressionModerate
	}
	if f.SoftwarePenalty == 0 {
		f.SoftwarePenalty = -15
	}
	if f.HardwareBoost == 0 {
		f.HardwareBoost = 10
	}
	if f.MinConfidence == 0 {
		f.MinConfidence = 0.6
	}
}
