// Package classify infers a company's domain type (software/hardware/both)
// from local heuristics. Everything here is pure and synchronous; it runs
// per job inside the scoring path, so no network or disk I/O is allowed.
package classify

import (
	"strings"

	"jobfit-engine/internal/domain"
)

type Type string

const (
	Software Type = "software"
	Hardware Type = "hardware"
	Both     Type = "both"
	Unknown  Type = "unknown"
)

// Signal is one independent heuristic vote with its evidence key.
type Signal struct {
	Source string  `json:"source"`
	Type   Type    `json:"type"`
	Score  float64 `json:"score"`
}

// Result is the combined classification.
type Result struct {
	Type       Type     `json:"type"`
	Confidence float64  `json:"confidence"`
	Signals    []Signal `json:"signals"`
	Source     string   `json:"source"` // auto | manual
}

// curatedCompanies holds exact (post-normalization) matches for companies
// the heuristics would otherwise get wrong or vote weakly on.
var curatedCompanies = map[string]Type{
	"boston dynamics":  Hardware,
	"anduril":          Hardware,
	"skydio":           Hardware,
	"spacex":           Hardware,
	"blue origin":      Hardware,
	"lockheed martin":  Hardware,
	"northrop grumman": Hardware,
	"raytheon":         Hardware,
	"asml":             Hardware,
	"lam research":     Hardware,

	"stripe":    Software,
	"datadog":   Software,
	"snowflake": Software,
	"mongodb":   Software,
	"atlassian": Software,
	"shopify":   Software,
	"twilio":    Software,
	"gitlab":    Software,
	"hashicorp": Software,
	"figma":     Software,

	"apple":     Both,
	"google":    Both,
	"microsoft": Both,
	"amazon":    Both,
	"nvidia":    Both,
	"tesla":     Both,
	"qualcomm":  Both,
	"samsung":   Both,
}

var hardwareNameCues = []string{
	"robotics", "robotic", "semiconductor", "aerospace", "defense",
	"photonics", "sensors", "automation", "hardware", "motors", "optics",
}

var softwareNameCues = []string{
	"software", "cloud", "saas", "analytics", "digital", "cyber", "platforms",
}

var hardwareTitleCues = []string{
	"hardware", "embedded", "firmware", "robotics", "mechanical",
	"mechatronics", "asic", "fpga", "silicon", "rf",
}

var softwareTitleCues = []string{
	"software", "backend", "frontend", "full stack", "full-stack",
	"web", "cloud", "saas", "devops", "mobile",
}

// Classifier combines the built-in heuristics with per-profile manual
// overrides (company name -> declared type).
type Classifier struct {
	manual map[string]Type
}

func New(manual map[string]string) Classifier {
	m := make(map[string]Type, len(manual))
	for name, typ := range manual {
		m[normalizeCompany(name)] = Type(typ)
	}
	return Classifier{manual: m}
}

func normalizeCompany(name string) string {
	n := strings.ToLower(domain.CleanText(name))
	for _, suffix := range []string{" inc.", " inc", " llc", " ltd.", " ltd", " corp.", " corp", " co.", " co", " corporation", " limited"} {
		n = strings.TrimSuffix(n, suffix)
	}
	return strings.TrimSpace(n)
}

// Classify votes each signal source independently and combines them.
// "both" is a legitimate dual-domain answer, "unknown" means no signal
// fired; neither is an error.
func (c Classifier) Classify(company, title string, domainKeywords []string) Result {
	norm := normalizeCompany(company)
	var signals []Signal

	// manual override wins outright
	if typ, ok := c.manual[norm]; ok {
		sig := Signal{Source: "manual_override", Type: typ, Score: 1.0}
		return Result{Type: typ, Confidence: 1.0, Signals: []Signal{sig}, Source: "manual"}
	}

	// curated company list
	if typ, ok := curatedCompanies[norm]; ok {
		signals = append(signals, Signal{Source: "curated_list", Type: typ, Score: 1.0})
	} else if norm != "" {
		best := ""
		for curated := range curatedCompanies {
			if domain.ContainsToken(norm, curated) && (best == "" || curated < best) {
				best = curated
			}
		}
		if best != "" {
			signals = append(signals, Signal{Source: "curated_list", Type: curatedCompanies[best], Score: 0.8})
		}
	}

	// name keyword cues
	if _, ok := domain.ContainsAnyToken(norm, hardwareNameCues); ok {
		signals = append(signals, Signal{Source: "name_cue", Type: Hardware, Score: 0.7})
	}
	if _, ok := domain.ContainsAnyToken(norm, softwareNameCues); ok {
		signals = append(signals, Signal{Source: "name_cue", Type: Software, Score: 0.7})
	}

	// title cues
	if _, ok := domain.ContainsAnyToken(title, hardwareTitleCues); ok {
		signals = append(signals, Signal{Source: "title_cue", Type: Hardware, Score: 0.6})
	}
	if _, ok := domain.ContainsAnyToken(title, softwareTitleCues); ok {
		signals = append(signals, Signal{Source: "title_cue", Type: Software, Score: 0.6})
	}

	// profile domain-keyword overlap in the title, classified per cue tables
	for _, kw := range domainKeywords {
		if !domain.ContainsToken(title, kw) {
			continue
		}
		if _, ok := domain.ContainsAnyToken(kw, hardwareTitleCues); ok {
			signals = append(signals, Signal{Source: "domain_keywords", Type: Hardware, Score: 0.5})
		} else if _, ok := domain.ContainsAnyToken(kw, softwareTitleCues); ok {
			signals = append(signals, Signal{Source: "domain_keywords", Type: Software, Score: 0.5})
		}
	}

	return combine(signals)
}

// combine folds independent votes into a single type. Both-typed signals
// count toward both sides; two sides at meaningful strength mean the
// company is legitimately dual-domain.
func combine(signals []Signal) Result {
	var maxSoft, maxHard float64
	for _, s := range signals {
		switch s.Type {
		case Software:
			maxSoft = max(maxSoft, s.Score)
		case Hardware:
			maxHard = max(maxHard, s.Score)
		case Both:
			maxSoft = max(maxSoft, s.Score)
			maxHard = max(maxHard, s.Score)
		}
	}

	res := Result{Signals: signals, Source: "auto"}
	switch {
	case maxSoft >= 0.5 && maxHard >= 0.5:
		res.Type = Both
		res.Confidence = (maxSoft + maxHard) / 2
	case maxHard > 0:
		res.Type = Hardware
		res.Confidence = maxHard
	case maxSoft > 0:
		res.Type = Software
		res.Confidence = maxSoft
	default:
		res.Type = Unknown
	}
	if res.Confidence > 1.0 {
		res.Confidence = 1.0
	}
	return res
}
