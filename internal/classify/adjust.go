package classify

import (
	"jobfit-engine/internal/config"
	"jobfit-engine/internal/domain"
)

// Reason strings recorded on every adjustment decision, pass cases included.
const (
	ReasonProductLeadership    = "product_leadership_any_company"
	ReasonHardwareBoost        = "hardware_boost_applied"
	ReasonHardwareLowConf      = "hardware_low_confidence"
	ReasonSoftwareConservative = "software_engineering_explicit_conservative"
	ReasonSoftwareModerate     = "software_high_confidence_moderate"
	ReasonSoftwareAggressive   = "software_default_aggressive"
	ReasonSoftwarePassConsv    = "software_no_explicit_avoid_conservative"
	ReasonSoftwarePassModerate = "software_low_confidence_moderate"
	ReasonSoftwarePassAggr     = "software_hardware_title_aggressive"
	ReasonDualDomainAmbiguous  = "dual_domain_ambiguous"
	ReasonDualDomainSoftware   = "dual_domain_software_focused"
	ReasonNoFilter             = "no_filter_applied"
)

// Metadata is the classification outcome attached to every scored job.
type Metadata struct {
	CompanyType          Type     `json:"company_type"`
	Confidence           float64  `json:"confidence"`
	Signals              []Signal `json:"signals"`
	Source               string   `json:"source"` // auto | manual
	Filtered             bool     `json:"filtered"`
	FilterReason         string   `json:"filter_reason"`
	HardwareBoostApplied bool     `json:"hardware_boost_applied"`
	Adjustment           int      `json:"adjustment"`
}

// Adjust applies exactly one rule of the classification policy, in priority
// order, and always records a filter reason. A filtered job keeps its
// sub-scores but is excluded from the profile's candidate set by callers.
func Adjust(res Result, title string, f config.FilteringConfig) Metadata {
	meta := Metadata{
		CompanyType: res.Type,
		Confidence:  res.Confidence,
		Signals:     res.Signals,
		Source:      res.Source,
	}

	// 1) product leadership roles are never filtered, any company
	if _, ok := domain.ContainsAnyToken(title, f.ProductLeadership); ok {
		meta.FilterReason = ReasonProductLeadership
		return meta
	}

	// 2) hardware with sufficient confidence gets the boost
	if res.Type == Hardware {
		if res.Confidence >= f.MinConfidence {
			meta.Adjustment = f.HardwareBoost
			meta.HardwareBoostApplied = true
			meta.FilterReason = ReasonHardwareBoost
		} else {
			meta.FilterReason = ReasonHardwareLowConf
		}
		return meta
	}

	// 3) software, per aggression level
	if res.Type == Software {
		switch f.AggressionLevel {
		case config.AggressionConservative:
			if _, ok := domain.ContainsAnyToken(title, f.AvoidKeywords); ok {
				return filtered(meta, ReasonSoftwareConservative, f.SoftwarePenalty)
			}
			meta.FilterReason = ReasonSoftwarePassConsv
		case config.AggressionAggressive:
			if _, ok := domain.ContainsAnyToken(title, f.HardwareKeywords); ok {
				meta.FilterReason = ReasonSoftwarePassAggr
			} else {
				return filtered(meta, ReasonSoftwareAggressive, f.SoftwarePenalty)
			}
		default: // moderate
			if res.Confidence >= f.MinConfidence {
				return filtered(meta, ReasonSoftwareModerate, f.SoftwarePenalty)
			}
			meta.FilterReason = ReasonSoftwarePassModerate
		}
		return meta
	}

	// 4) dual-domain stays unless the title is software-specific
	if res.Type == Both {
		if _, ok := domain.ContainsAnyToken(title, f.AvoidKeywords); ok {
			return filtered(meta, ReasonDualDomainSoftware, f.SoftwarePenalty)
		}
		meta.FilterReason = ReasonDualDomainAmbiguous
		return meta
	}

	// 5) unknown: no adjustment
	meta.FilterReason = ReasonNoFilter
	return meta
}

func filtered(meta Metadata, reason string, penalty int) Metadata {
	meta.Filtered = true
	meta.FilterReason = reason
	meta.Adjustment = penalty
	return meta
}
