// Package analysis orchestrates one request's evaluation: gather line items
// and Q&A, run the six criterion scorers, derive the decision-grid profile,
// and synthesize the narrative recommendation. Analyze is pure over its
// inputs; re-running it on an unchanged snapshot yields an identical result.
package analysis

import (
	"strings"

	"budget-backend/internal/records"
	"budget-backend/internal/scoring"
)

// Scores bundles the six criterion results in report order.
type Scores struct {
	Alignment  scoring.CriterionResult `json:"alignment"`
	Outcomes   scoring.CriterionResult `json:"outcomes"`
	Funding    scoring.CriterionResult `json:"funding"`
	Mandate    scoring.CriterionResult `json:"mandate"`
	Efficiency scoring.CriterionResult `json:"efficiency"`
	Access     scoring.CriterionResult `json:"access"`
}

// Total sums the six criterion scores (0-12).
func (s Scores) Total() int {
	return s.Alignment.Score + s.Outcomes.Score + s.Funding.Score +
		s.Mandate.Score + s.Efficiency.Score + s.Access.Score
}

// QAPair is one displayable question/answer from the request's Q&A rows.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Result is the full decision-support output for one budget request. It is
// derived on demand from the snapshot and never persisted.
type Result struct {
	RequestID      string           `json:"requestId"`
	Description    string           `json:"description"`
	Department     string           `json:"department"`
	Program        string           `json:"program"`
	Quartile       records.Quartile `json:"quartile"`
	Amounts        records.Amounts  `json:"amounts"`
	Scores         Scores           `json:"scores"`
	TotalScore     int              `json:"totalScore"`
	Profile        scoring.Profile  `json:"profile"`
	GridKey        string           `json:"gridKey"`
	GridMiss       bool             `json:"gridMiss,omitempty"`
	Disposition    string           `json:"disposition"`
	Color          string           `json:"color"`
	VerifyNow      []string         `json:"verifyNow"`
	StrengthenWith []string         `json:"strengthenWith"`
	HasOutsideGF   bool             `json:"hasOutsideFunding"`
	QA             []QAPair         `json:"qa,omitempty"`
	Narrative      string           `json:"narrative"`
}

// Analyze scores one request-summary record against the snapshot. A request
// whose id cannot be resolved gets no line items or Q&A and scores from empty
// text; callers exclude such requests from report sets before analyzing.
func Analyze(req records.Record, snap *records.Snapshot) Result {
	requestID, _ := records.RequestID(req)
	description, _ := records.Resolve(req, records.RoleDescription)

	lineItems := snap.LineItemsFor(requestID)
	qa := snap.QAFor(requestID)
	amounts := records.AmountsFor(req)
	quartile := records.BestQuartile(lineItems)

	in := scoring.Input{
		Text:    JoinQAText(qa),
		QACount: len(qa),
	}

	scores := Scores{
		Alignment:  scoring.ScoreAlignment(quartile),
		Outcomes:   scoring.ScoreOutcomes(in),
		Funding:    scoring.ScoreFunding(in),
		Mandate:    scoring.ScoreMandate(in),
		Efficiency: scoring.ScoreEfficiency(in),
		Access:     scoring.ScoreAccess(in),
	}

	profile := scoring.DeriveProfile(quartile, in.Text, scores.Outcomes.Score)
	decision, hit := scoring.Lookup(profile)

	department, ok := records.FirstResolved(lineItems, records.RoleDepartment)
	if !ok {
		department = "Unknown"
	}
	program, ok := records.FirstResolved(lineItems, records.RoleProgram)
	if !ok {
		program = "Unknown"
	}

	res := Result{
		RequestID:      requestID,
		Description:    description,
		Department:     department,
		Program:        program,
		Quartile:       quartile,
		Amounts:        amounts,
		Scores:         scores,
		TotalScore:     scores.Total(),
		Profile:        profile,
		GridKey:        profile.Key(),
		GridMiss:       !hit,
		Disposition:    decision.Disposition,
		Color:          decision.Color,
		VerifyNow:      decision.VerifyNow,
		StrengthenWith: decision.StrengthenWith,
		QA:             ExtractQAPairs(qa),
		HasOutsideGF:   scoring.HasOutsideFunding(in.Text),
	}
	res.Narrative = buildNarrative(res)
	return res
}

// JoinQAText concatenates every cell of every Q&A record in column order,
// lower-cased. The scorers see all of it, including question text and any
// stray metadata columns; that is what the scoring patterns were tuned on.
func JoinQAText(qa []records.Record) string {
	var b strings.Builder
	for _, rec := range qa {
		for _, f := range rec.Fields() {
			v := records.Stringify(f.Value)
			if v == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v)
		}
	}
	return strings.ToLower(b.String())
}

// ExtractQAPairs pulls displayable question/answer pairs. An entry missing
// either side is skipped here but still contributed its text to scoring.
func ExtractQAPairs(qa []records.Record) []QAPair {
	var out []QAPair
	for _, rec := range qa {
		question, _ := records.Resolve(rec, records.RoleQuestion)
		answer, _ := records.Resolve(rec, records.RoleAnswer)
		if question == "" || answer == "" {
			continue
		}
		out = append(out, QAPair{Question: question, Answer: answer})
	}
	return out
}
