package scoring

// Disposition values the grid can recommend.
const (
	DispositionApprove = "APPROVE"
	DispositionModify  = "MODIFY"
	DispositionDefer   = "DEFER"
	DispositionReject  = "REJECT"
)

// Severity colors attached to grid entries, carried through to report
// rendering collaborators.
const (
	colorGreen = "#28a745"
	colorAmber = "#ffc107"
	colorRed   = "#dc3545"
)

// Decision is one grid entry: the recommended action plus the reviewer's
// immediate verification items and the actions that would strengthen the
// request.
type Decision struct {
	Disposition    string   `json:"disposition"`
	Color          string   `json:"color"`
	VerifyNow      []string `json:"verifyNow"`
	StrengthenWith []string `json:"strengthenWith"`
}

// decisionGrid maps every profile key (2 bands x 3 mandate levels x
// 2 funding types x 2 outcome strengths = 24 entries) to a decision. The
// entries are budget-review policy reproduced exactly; do not edit them to
// taste. gridTotal pins the count so the exhaustiveness test can't drift.
const gridTotal = 24

var decisionGrid = map[string]Decision{
	// High relevance (Q1-Q2)
	"High-Mandated-NonGF-Strong": {
		Disposition:    DispositionApprove,
		Color:          colorGreen,
		VerifyNow:      []string{"Statute/board reference", "Allowability of non-GF sources"},
		StrengthenWith: []string{"Final KPI list", "Compliance milestones", "Data source & cadence"},
	},
	"High-Mandated-GFonly-Strong": {
		Disposition:    DispositionApprove,
		Color:          colorGreen,
		VerifyNow:      []string{"Confirm mandate scope & minimums"},
		StrengthenWith: []string{"Cost offsets (phase-down plan, reallocation)", "Sunset/true-up triggers"},
	},
	"High-Mandated-NonGF-Weak": {
		Disposition:    DispositionApprove,
		Color:          colorAmber,
		VerifyNow:      []string{"That mandate truly requires this spend"},
		StrengthenWith: []string{"Baseline→target KPIs", "90-day evaluation plan", "Interim check-in"},
	},
	"High-Mandated-GFonly-Weak": {
		Disposition:    DispositionApprove,
		Color:          colorAmber,
		VerifyNow:      []string{"Minimum-viable compliance level"},
		StrengthenWith: []string{"Add fee/grant search", "Partner MOUs", "Phased start", "Sunset clause"},
	},
	"High-Compliance-NonGF-Strong": {
		Disposition:    DispositionApprove,
		Color:          colorGreen,
		VerifyNow:      []string{"Risk register link", "Risk reduction metric"},
		StrengthenWith: []string{"Cost avoidance calc", "SLA updates", "Internal control changes"},
	},
	"High-Compliance-GFonly-Strong": {
		Disposition:    DispositionModify,
		Color:          colorAmber,
		VerifyNow:      []string{"Materiality of risk", "Alternatives"},
		StrengthenWith: []string{"Add partial cost recovery", "Internal reallocation", "Pilot scope"},
	},
	"High-Compliance-NonGF-Weak": {
		Disposition:    DispositionModify,
		Color:          colorAmber,
		VerifyNow:      []string{"That non-GF is real & timely"},
		StrengthenWith: []string{"KPIs", "6-mo pilot with go/no-go", "Light-weight evaluation plan"},
	},
	"High-Compliance-GFonly-Weak": {
		Disposition:    DispositionModify,
		Color:          colorAmber,
		VerifyNow:      []string{"Criticality (safety/liability)?"},
		StrengthenWith: []string{"Narrow scope", "Stage gates", "Non-GF plan within 60–90 days"},
	},
	"High-None-NonGF-Strong": {
		Disposition:    DispositionApprove,
		Color:          colorGreen,
		VerifyNow:      []string{"No hidden GF backfill"},
		StrengthenWith: []string{"Pay-for-itself math", "Fee elasticity/grant terms", "Partner commitments"},
	},
	"High-None-GFonly-Strong": {
		Disposition:    DispositionModify,
		Color:          colorAmber,
		VerifyNow:      []string{"Alternatives considered"},
		StrengthenWith: []string{"Add cost recovery/partners", "Unit-cost reduction", "Partial reallocation"},
	},
	"High-None-NonGF-Weak": {
		Disposition:    DispositionModify,
		Color:          colorAmber,
		VerifyNow:      []string{"Outcome plausibility"},
		StrengthenWith: []string{"KPIs & evaluation", "Start as pilot", "Tighten deliverables"},
	},
	"High-None-GFonly-Weak": {
		Disposition:    DispositionDefer,
		Color:          colorRed,
		VerifyNow:      []string{"N/A"},
		StrengthenWith: []string{"Tie to priority KPIs", "Find non-GF", "Reduce scope or integrate with Q1/Q2 work"},
	},

	// Low relevance (Q3-Q4)
	"Low-Mandated-NonGF-Strong": {
		Disposition:    DispositionApprove,
		Color:          colorGreen,
		VerifyNow:      []string{"Minimum compliance scope"},
		StrengthenWith: []string{"Keep GF minimal", "Escrow/offsets", "Time-bound sunset"},
	},
	"Low-Mandated-GFonly-Strong": {
		Disposition:    DispositionApprove,
		Color:          colorAmber,
		VerifyNow:      []string{"Is Q3/Q4 mapping correct?"},
		StrengthenWith: []string{"Identify fees/grants", "Swap lower-impact spend", "Phase", "Sunset"},
	},
	"Low-Mandated-NonGF-Weak": {
		Disposition:    DispositionApprove,
		Color:          colorAmber,
		VerifyNow:      []string{"That mandate truly applies to this program"},
		StrengthenWith: []string{"KPI baseline→target", "90-day review", "Non-GF documentation"},
	},
	"Low-Mandated-GFonly-Weak": {
		Disposition:    DispositionApprove,
		Color:          colorAmber,
		VerifyNow:      []string{"Cheapest compliance path"},
		StrengthenWith: []string{"Tight scope", "Offsets", "Timeline to add non-GF", "Exit criteria"},
	},
	"Low-Compliance-NonGF-Strong": {
		Disposition:    DispositionModify,
		Color:          colorAmber,
		VerifyNow:      []string{"Non-GF terms & durability"},
		StrengthenWith: []string{"No-GF pledge", "Measurable risk reduction", "Pilot + review"},
	},
	"Low-Compliance-GFonly-Strong": {
		Disposition:    DispositionModify,
		Color:          colorAmber,
		VerifyNow:      []string{"Impact scale vs. alternatives"},
		StrengthenWith: []string{"Require cost recovery", "Internal reallocation", "Narrower scope"},
	},
	"Low-Compliance-NonGF-Weak": {
		Disposition:    DispositionDefer,
		Color:          colorRed,
		VerifyNow:      []string{"Realism of benefits"},
		StrengthenWith: []string{"Basic KPI set", "Partner LOIs", "Phase to prove value"},
	},
	"Low-Compliance-GFonly-Weak": {
		Disposition:    DispositionDefer,
		Color:          colorRed,
		VerifyNow:      []string{"If imminent, treat as mandate"},
		StrengthenWith: []string{"Pilot w/ non-GF", "Quantify liability avoided", "Combine with Q1/Q2"},
	},
	"Low-None-NonGF-Strong": {
		Disposition:    DispositionApprove,
		Color:          colorGreen,
		VerifyNow:      []string{"No GF drift"},
		StrengthenWith: []string{"Full cost recovery", "Service redesign", "Contribution margin"},
	},
	"Low-None-GFonly-Strong": {
		Disposition:    DispositionDefer,
		Color:          colorRed,
		VerifyNow:      []string{"Competes with higher-Q needs"},
		StrengthenWith: []string{"Add fee/grant/partner", "ROI calc", "Phase behind Q1/Q2"},
	},
	"Low-None-NonGF-Weak": {
		Disposition:    DispositionDefer,
		Color:          colorRed,
		VerifyNow:      []string{"N/A"},
		StrengthenWith: []string{"KPIs", "Tighten scope", "Prove demand/willingness-to-pay"},
	},
	"Low-None-GFonly-Weak": {
		Disposition:    DispositionReject,
		Color:          colorRed,
		VerifyNow:      []string{"N/A"},
		StrengthenWith: []string{"Reframe to higher-Q outcome", "Non-GF plan", "Consolidate/streamline"},
	},
}

// fallbackDecision covers a profile key absent from the grid. With all 24
// entries present it is unreachable; a report that surfaces it indicates a
// grid regression.
var fallbackDecision = Decision{
	Disposition:    DispositionModify,
	Color:          colorAmber,
	VerifyNow:      []string{"Unable to categorize - manual review needed"},
	StrengthenWith: []string{"Provide complete information on mandate, funding, and outcomes"},
}

// Lookup returns the grid decision for the profile. ok is false when the
// fallback was used.
func Lookup(p Profile) (Decision, bool) {
	if d, found := decisionGrid[p.Key()]; found {
		return d, true
	}
	return fallbackDecision, false
}

// GridKeys returns every key present in the grid, for exhaustiveness checks.
func GridKeys() []string {
	keys := make([]string, 0, len(decisionGrid))
	for k := range decisionGrid {
		keys = append(keys, k)
	}
	return keys
}
