package scoring

import (
	"regexp"

	"budget-backend/internal/records"
)

// Band splits the four quartiles into high (Q1/Q2) and low (Q3/Q4)
// relevance for the decision grid.
type Band string

const (
	BandHigh Band = "High"
	BandLow  Band = "Low"
)

// MandateLevel is the strength of legal obligation behind a request.
type MandateLevel string

const (
	MandateMandated   MandateLevel = "Mandated"
	MandateCompliance MandateLevel = "Compliance"
	MandateNone       MandateLevel = "None"
)

// FundingType records whether any non-General-Fund source appears.
type FundingType string

const (
	FundingNonGF  FundingType = "NonGF"
	FundingGFOnly FundingType = "GFonly"
)

// OutcomeStrength collapses the outcome-evidence score for the grid.
type OutcomeStrength string

const (
	OutcomesStrong OutcomeStrength = "Strong"
	OutcomesWeak   OutcomeStrength = "Weak"
)

// Profile is the 4-dimension key into the decision grid.
type Profile struct {
	Band     Band            `json:"quartileBand"`
	Mandate  MandateLevel    `json:"mandateLevel"`
	Funding  FundingType     `json:"fundingType"`
	Outcomes OutcomeStrength `json:"outcomesStrength"`
}

// Key renders the canonical grid key, e.g. "High-Mandated-NonGF-Strong".
func (p Profile) Key() string {
	return string(p.Band) + "-" + string(p.Mandate) + "-" + string(p.Funding) + "-" + string(p.Outcomes)
}

// The profile dimensions match narrower pattern sets than the criterion
// scorers; a request can score mandate points without being profiled as
// Mandated. Both sets come from the review policy and differ on purpose.
var (
	reProfileMandated   = regexp.MustCompile(`board motion|consent decree|doj|mandate|statute`)
	reProfileCompliance = regexp.MustCompile(`audit|liability|compliance|risk|safety`)
	reProfileOutsideGF  = regexp.MustCompile(`outside funding.*yes|grant|fee|partner|cost recovery`)
)

// DeriveProfile computes the grid key dimensions from the best quartile, the
// joined Q&A text, and the outcome criterion score.
func DeriveProfile(quartile records.Quartile, text string, outcomeScore int) Profile {
	p := Profile{
		Band:     BandLow,
		Mandate:  MandateNone,
		Funding:  FundingGFOnly,
		Outcomes: OutcomesWeak,
	}
	if quartile == records.QuartileMostAligned || quartile == records.QuartileMoreAligned {
		p.Band = BandHigh
	}
	switch {
	case reProfileMandated.MatchString(text):
		p.Mandate = MandateMandated
	case reProfileCompliance.MatchString(text):
		p.Mandate = MandateCompliance
	}
	if reProfileOutsideGF.MatchString(text) {
		p.Funding = FundingNonGF
	}
	if outcomeScore >= 2 {
		p.Outcomes = OutcomesStrong
	}
	return p
}

// HasOutsideFunding reports the funding context flag used by the narrative.
func HasOutsideFunding(text string) bool {
	return reProfileOutsideGF.MatchString(text)
}
