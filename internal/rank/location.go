package rank

import "jobfit-engine/internal/domain"

// singleCountryPhrases mark a remote role as restricted to one country or
// state. Full names only: two-letter state codes like "OR" collide with
// ordinary words and are deliberately excluded.
var singleCountryPhrases = []string{
	"united states", "usa", "u.s.", "us only", "us-based", "us based",
	"us citizens", "us citizenship", "us work authorization",
	"authorized to work in the united states", "work authorization required",
	"united kingdom", "uk only", "germany only", "france only",
	"australia only", "india only",

	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"new hampshire", "new jersey", "new mexico", "new york",
	"north carolina", "north dakota", "ohio", "oklahoma", "oregon",
	"pennsylvania", "rhode island", "south carolina", "south dakota",
	"tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west virginia", "wisconsin", "wyoming",
}

// multiCountryPhrases explicitly widen eligibility beyond one country and
// restore remote credit even when a restriction phrase is present.
var multiCountryPhrases = []string{
	"north america", "americas", "worldwide", "global", "anywhere",
	"emea", "apac", "international",
	"canada", "canadian candidates", "canadian candidates welcome",
	"multiple countries", "any country", "any location",
}

// locationScore awards remote/hybrid/city points. Remote credit is gated
// by the country-restriction check: a "remote" job restricted to a single
// country or state earns nothing unless multi-country eligibility is
// explicitly stated.
func (s *ProfileScorer) locationScore(job domain.Job, note func(string, ...any)) int {
	loc := s.profile.Scoring.Location
	blob := job.Location + " " + job.Title + " " + job.Description

	if domain.ContainsToken(blob, "remote") {
		restriction, restricted := domain.ContainsAnyToken(job.Location+" "+job.Description, singleCountryPhrases)
		if restricted {
			if phrase, ok := domain.ContainsAnyToken(job.Location+" "+job.Description, multiCountryPhrases); ok {
				note("location: remote, restriction %q lifted by %q", restriction, phrase)
				return loc.RemotePoints
			}
			note("location: remote restricted to %q", restriction)
			return 0
		}
		return loc.RemotePoints
	}

	if domain.ContainsToken(blob, "hybrid") {
		return loc.HybridPoints
	}

	if city, ok := domain.ContainsAnyToken(job.Location, loc.Cities); ok {
		note("location: city match %q", city)
		return loc.CityPoints
	}

	note("location: no match")
	return 0
}
