package rank

// Breakdown carries the named sub-scores of one scoring call.
type Breakdown struct {
	Seniority             int `json:"seniority"`
	Domain                int `json:"domain"`
	RoleType              int `json:"role_type"`
	Location              int `json:"location"`
	Technical             int `json:"technical"`
	CompanyClassification int `json:"company_classification"`
}

// Sum totals the components, clamped at zero. Penalties can never push a
// job below an empty score.
func (b Breakdown) Sum() int {
	total := b.Seniority + b.Domain + b.RoleType + b.Location + b.Technical + b.CompanyClassification
	if total < 0 {
		return 0
	}
	return total
}
