package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

var structValidator = validator.New()

// NormalizeAndValidate returns a normalized copy of the profile plus the
// validation outcome. Structural constraints come from the struct tags;
// cross-field sanity checks live here.
func NormalizeAndValidate(p Profile) (Profile, Validation) {
	out := p
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Scoring.Seniority.Senior.Any = trimList(out.Scoring.Seniority.Senior.Any)
	out.Scoring.Seniority.Mid.Any = trimList(out.Scoring.Seniority.Mid.Any)
	out.Scoring.Seniority.Executive.Any = trimList(out.Scoring.Seniority.Executive.Any)
	out.Scoring.Domain.Keywords = trimList(out.Scoring.Domain.Keywords)
	out.Scoring.Location.Cities = trimList(out.Scoring.Location.Cities)
	out.Scoring.Technical.Keywords = trimList(out.Scoring.Technical.Keywords)

	rt := make(map[string]RoleTypeRule, len(out.Scoring.RoleTypes))
	for cat, rule := range out.Scoring.RoleTypes {
		rule.Any = trimList(rule.Any)
		rt[strings.ToLower(strings.TrimSpace(cat))] = rule
	}
	out.Scoring.RoleTypes = rt

	trimBlock := func(b BlockRule) BlockRule {
		b.Any = trimList(b.Any)
		b.Exceptions = trimList(b.Exceptions)
		return b
	}
	out.Filters.Seniority = trimBlock(out.Filters.Seniority)
	out.Filters.Roles = trimBlock(out.Filters.Roles)
	out.Filters.Departments = trimBlock(out.Filters.Departments)
	out.Filters.SalesMarketing = trimBlock(out.Filters.SalesMarketing)

	out.Filtering.AvoidKeywords = trimList(out.Filtering.AvoidKeywords)
	out.Filtering.HardwareKeywords = trimList(out.Filtering.HardwareKeywords)
	out.Filtering.ProductLeadership = trimList(out.Filtering.ProductLeadership)

	// ---- structural constraints (tags) ----

	if err := structValidator.Struct(out); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				res.addErr("%s fails %q constraint", fe.Namespace(), fe.Tag())
			}
		} else {
			res.addErr("validate: %v", err)
		}
	}

	// ---- semantic rules ----

	if len(out.Scoring.RoleTypes) == 0 {
		res.addWarn("scoring.role_types is empty; every job scores role_type=0 and therefore seniority=0")
	}
	for cat, rule := range out.Scoring.RoleTypes {
		if len(rule.Any) == 0 {
			res.addErr("scoring.role_types[%s] has no keywords", cat)
		}
	}

	if out.Filtering.AggressionLevel == AggressionConservative && len(out.Filtering.AvoidKeywords) == 0 {
		res.addWarn("filtering.aggression_level is conservative but avoid_keywords is empty; nothing will ever be filtered")
	}
	if out.Filtering.AggressionLevel == AggressionAggressive && len(out.Filtering.HardwareKeywords) == 0 {
		res.addWarn("filtering.aggression_level is aggressive but hardware_keywords is empty; every software job will be filtered")
	}

	// keywords in both a block list and its exceptions cancel out confusingly
	checkOverlap := func(name string, b BlockRule) {
		exc := map[string]bool{}
		for _, e := range b.Exceptions {
			exc[strings.ToLower(e)] = true
		}
		for _, a := range b.Any {
			if exc[strings.ToLower(a)] {
				res.addWarn("filters.%s keyword %q appears in both any and exceptions", name, a)
			}
		}
	}
	checkOverlap("seniority", out.Filters.Seniority)
	checkOverlap("roles", out.Filters.Roles)
	checkOverlap("departments", out.Filters.Departments)
	checkOverlap("sales_marketing", out.Filters.SalesMarketing)

	return out, res
}
