package domain

// Job is a scraped posting as the parsers hand it to the engine.
// Every field is optional; empty fields simply fail to match.
type Job struct {
	Title       string
	Company     string
	Location    string
	Description string
}
