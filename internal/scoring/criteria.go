// Package scoring implements the six-criterion heuristic classifier and the
// decision grid that turn a budget request's free text and alignment band
// into a disposition. Scoring is keyword/regex presence over lower-cased
// text, not language understanding; the patterns are the review policy and
// changing them changes report output.
package scoring

import (
	"regexp"

	"budget-backend/internal/records"
)

// CriterionResult is one criterion's 0-2 score with the fixed justification
// for the branch that fired. Reasons are templates, never free text, so a
// given input always produces the identical report line.
type CriterionResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Input carries everything the text criteria look at: the concatenation of
// every Q&A cell for the request, lower-cased, and how many Q&A rows exist.
type Input struct {
	Text    string
	QACount int
}

var (
	reMetrics        = regexp.MustCompile(`kpi|target|baseline|metric|goal|measur`)
	reData           = regexp.MustCompile(`data|trend|statistics|baseline`)
	reNegation       = regexp.MustCompile(`n/a|unknown|none`)
	reGrant          = regexp.MustCompile(`grant|outside funding.*yes`)
	reFee            = regexp.MustCompile(`fee|cost recovery|charge|revenue`)
	rePartner        = regexp.MustCompile(`partner|partnership|contribution|match`)
	reExploring      = regexp.MustCompile(`potential|exploring|seeking`)
	reFundingTokens  = regexp.MustCompile(`grant|partner|fee`)
	reMandate        = regexp.MustCompile(`board motion|consent decree|doj|mandate|statute|ordinance|charter`)
	reCompliance     = regexp.MustCompile(`audit|liability|compliance|risk|safety|violation|penalty`)
	reROI            = regexp.MustCompile(`roi|return on investment|payback|cost avoidance|cost savings`)
	reEfficiency     = regexp.MustCompile(`productivity|efficiency|streamline|reduce cost|automate`)
	reQuantification = regexp.MustCompile(`\$\d+|save.*\d+|\d+%|\d+ hours|\d+ fte`)
	reEquity         = regexp.MustCompile(`equity|underserved|priority population|disparit|vulnerable|disadvantaged`)
	reAccess         = regexp.MustCompile(`access|barrier|inclusive|reach|serve`)
	rePopulation     = regexp.MustCompile(`\d+%|portion|community|residents|population|demographic`)
	reOutreach       = regexp.MustCompile(`community|service|outreach`)
)

// scoreRule is one (predicate, score, reason) row of a criterion's decision
// table. Rules are evaluated in order; the first match wins.
type scoreRule struct {
	when   func(Input) bool
	score  int
	reason string
}

func evaluate(rules []scoreRule, in Input, fallback CriterionResult) CriterionResult {
	for _, r := range rules {
		if r.when(in) {
			return CriterionResult{Score: r.score, Reason: r.reason}
		}
	}
	return fallback
}

// ScoreAlignment maps the request's best quartile band to criterion 1.
func ScoreAlignment(q records.Quartile) CriterionResult {
	switch q {
	case records.QuartileMostAligned:
		return CriterionResult{2, "Program quartile is Q1 (Most Aligned) - highest priority alignment with city strategic goals and community priorities"}
	case records.QuartileMoreAligned:
		return CriterionResult{2, "Program quartile is Q2 (More Aligned) - strong alignment with city strategic goals and community priorities"}
	case records.QuartileLessAligned:
		return CriterionResult{1, "Program quartile is Q3 (Less Aligned) - moderate alignment with city strategic goals"}
	case records.QuartileLeastAligned:
		return CriterionResult{0, "Program quartile is Q4 (Least Aligned) - lower priority alignment with current strategic goals"}
	default:
		return CriterionResult{0, "No quartile alignment data found in line items"}
	}
}

// ScoreOutcomes is criterion 2: measurable-outcome evidence.
func ScoreOutcomes(in Input) CriterionResult {
	rules := []scoreRule{
		{
			when:   func(in Input) bool { return reMetrics.MatchString(in.Text) && reData.MatchString(in.Text) },
			score:  2,
			reason: "Request includes specific KPIs/metrics AND baseline data or trends showing measurable outcomes",
		},
		{
			when:   func(in Input) bool { return reMetrics.MatchString(in.Text) },
			score:  1,
			reason: "Request mentions performance targets or metrics, but lacks supporting baseline data or outcome trends",
		},
		{
			when: func(in Input) bool {
				return reData.MatchString(in.Text) && in.QACount > 0 && !reNegation.MatchString(in.Text)
			},
			score:  1,
			reason: "Request includes some data or information, but lacks specific measurable performance targets",
		},
	}
	return evaluate(rules, in, CriterionResult{0, "No measurable outcomes, KPIs, targets, or performance data provided in request documentation"})
}

// ScoreFunding is criterion 3: non-General-Fund funding strategy. The
// 2-point branch requires at least two distinct source categories among
// grants, fees/cost recovery, and partnerships.
func ScoreFunding(in Input) CriterionResult {
	rules := []scoreRule{
		{
			when:   func(in Input) bool { return fundingCategories(in.Text) >= 2 },
			score:  2,
			reason: "Request identifies MULTIPLE non-General Fund sources (grants, fees, cost recovery, or partnership funding)",
		},
		{
			when:   func(in Input) bool { return reGrant.MatchString(in.Text) },
			score:  1,
			reason: "Request mentions grant funding or outside funding sources, reducing General Fund dependency",
		},
		{
			when:   func(in Input) bool { return reFee.MatchString(in.Text) || rePartner.MatchString(in.Text) },
			score:  1,
			reason: "Request includes cost recovery mechanisms (fees/charges) or partnership contributions",
		},
		{
			when: func(in Input) bool {
				return reExploring.MatchString(in.Text) && reFundingTokens.MatchString(in.Text)
			},
			score:  1,
			reason: "Request mentions exploring or seeking non-General Fund sources, though not yet secured",
		},
	}
	return evaluate(rules, in, CriterionResult{0, "No non-General Fund sources identified - request is 100% dependent on General Fund appropriation"})
}

func fundingCategories(text string) int {
	n := 0
	if reGrant.MatchString(text) {
		n++
	}
	if reFee.MatchString(text) {
		n++
	}
	if rePartner.MatchString(text) {
		n++
	}
	return n
}

// ScoreMandate is criterion 4: legal mandate and compliance/risk pressure.
func ScoreMandate(in Input) CriterionResult {
	rules := []scoreRule{
		{
			when:   func(in Input) bool { return reMandate.MatchString(in.Text) && reCompliance.MatchString(in.Text) },
			score:  2,
			reason: "Request cites specific legal/regulatory mandate (board motion, statute, consent decree) AND identifies compliance risks or penalties",
		},
		{
			when:   func(in Input) bool { return reMandate.MatchString(in.Text) },
			score:  1,
			reason: "Request references legal or regulatory mandate, board motion, or statutory requirement",
		},
		{
			when:   func(in Input) bool { return reCompliance.MatchString(in.Text) },
			score:  1,
			reason: "Request addresses compliance obligations, audit findings, liability mitigation, or safety risks",
		},
	}
	return evaluate(rules, in, CriterionResult{0, "No legal mandates, compliance obligations, or significant regulatory risks identified in request"})
}

// ScoreEfficiency is criterion 5: efficiency and ROI with quantification.
func ScoreEfficiency(in Input) CriterionResult {
	rules := []scoreRule{
		{
			when: func(in Input) bool {
				return (reROI.MatchString(in.Text) || reEfficiency.MatchString(in.Text)) && reQuantification.MatchString(in.Text)
			},
			score:  2,
			reason: "Request demonstrates efficiency gains or ROI with QUANTIFIED savings, cost avoidance, or productivity improvements (includes dollar amounts, percentages, or time savings)",
		},
		{
			when: func(in Input) bool {
				return reROI.MatchString(in.Text) || (reEfficiency.MatchString(in.Text) && reQuantification.MatchString(in.Text))
			},
			score:  1,
			reason: "Request mentions efficiency improvements, cost savings, or ROI, with some quantification or specific metrics",
		},
		{
			when:   func(in Input) bool { return reEfficiency.MatchString(in.Text) },
			score:  1,
			reason: "Request describes efficiency improvements or process streamlining, but lacks quantified ROI or savings calculations",
		},
	}
	return evaluate(rules, in, CriterionResult{0, "No efficiency improvements, cost savings, ROI, or productivity gains identified in the request"})
}

// ScoreAccess is criterion 6: access and equity impact with population data.
func ScoreAccess(in Input) CriterionResult {
	rules := []scoreRule{
		{
			when: func(in Input) bool {
				return (reEquity.MatchString(in.Text) || reAccess.MatchString(in.Text)) && rePopulation.MatchString(in.Text)
			},
			score:  2,
			reason: "Request explicitly addresses access or equity issues with SPECIFIC population data (percentages, demographics, or community impact metrics)",
		},
		{
			when:   func(in Input) bool { return reEquity.MatchString(in.Text) },
			score:  1,
			reason: "Request mentions equity, underserved populations, or vulnerable communities, but lacks specific demographic data",
		},
		{
			when: func(in Input) bool {
				return reAccess.MatchString(in.Text) || (reOutreach.MatchString(in.Text) && rePopulation.MatchString(in.Text))
			},
			score:  1,
			reason: "Request addresses community access or service delivery with some population information",
		},
	}
	return evaluate(rules, in, CriterionResult{0, "No specific attention to access, equity considerations, or underserved population impacts identified"})
}
