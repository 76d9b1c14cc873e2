package domain

// CompanyRecord is one row of an imported company list. Identity is
// approximate: two records may be the same company despite textual
// differences in name or careers URL.
type CompanyRecord struct {
	Name       string
	CareersURL string
}
