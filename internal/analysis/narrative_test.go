package analysis

import (
	"strings"
	"testing"

	"budget-backend/internal/records"
	"budget-backend/internal/scoring"
)

func baseResult() Result {
	return Result{
		RequestID:   "R1",
		Department:  "Fire",
		Program:     "Emergency Response",
		Quartile:    records.QuartileMostAligned,
		Amounts:     records.Amounts{Ongoing: 40000, OneTime: 10000, Total: 50000},
		Profile: scoring.Profile{
			Band:     scoring.BandHigh,
			Mandate:  scoring.MandateNone,
			Funding:  scoring.FundingNonGF,
			Outcomes: scoring.OutcomesStrong,
		},
		GridKey:        "High-None-NonGF-Strong",
		Disposition:    scoring.DispositionApprove,
		Color:          "#28a745",
		VerifyNow:      []string{"No hidden GF backfill"},
		StrengthenWith: []string{"Sustainability plan beyond grant"},
		HasOutsideGF:   true,
		TotalScore:     8,
		Scores: Scores{
			Alignment:  scoring.CriterionResult{Score: 2},
			Outcomes:   scoring.CriterionResult{Score: 2},
			Funding:    scoring.CriterionResult{Score: 2},
			Mandate:    scoring.CriterionResult{Score: 0},
			Efficiency: scoring.CriterionResult{Score: 2},
			Access:     scoring.CriterionResult{Score: 2},
		},
	}
}

func TestNarrativeHeaderAndSuggestion(t *testing.T) {
	n := buildNarrative(baseResult())

	for _, want := range []string{
		"**Program:** Emergency Response (Fire)",
		"**Quartile:** Q1 (High Relevance)",
		"**Total Amount:** $50,000",
		"**Decision Profile:** High-None-NonGF-Strong",
		"## 🎯 PBB SUGGESTS: **APPROVE** (Score: 8/12)",
		"✅ **NON-GF FUNDING**",
		"📊 **STRONG EVIDENCE**",
	} {
		if !strings.Contains(n, want) {
			t.Fatalf("narrative missing %q\n%s", want, n)
		}
	}
}

func TestNarrativeMissingQuartileLabel(t *testing.T) {
	r := baseResult()
	r.Quartile = records.QuartileNone
	n := buildNarrative(r)
	if !strings.Contains(n, "**Quartile:** none found") {
		t.Fatalf("expected none found label\n%s", n)
	}
}

func TestNarrativeVerifyNowOmittedForNA(t *testing.T) {
	r := baseResult()
	r.VerifyNow = []string{"N/A"}
	n := buildNarrative(r)
	if strings.Contains(n, "VERIFY NOW") {
		t.Fatalf("verify-now section must be omitted for N/A placeholder\n%s", n)
	}

	r.VerifyNow = []string{"Statute reference"}
	n = buildNarrative(r)
	if !strings.Contains(n, "### ✅ VERIFY NOW:") || !strings.Contains(n, "- Statute reference") {
		t.Fatalf("expected verify-now bullets\n%s", n)
	}
}

func TestNarrativeContextFlags(t *testing.T) {
	r := baseResult()
	r.Profile.Mandate = scoring.MandateMandated
	if n := buildNarrative(r); !strings.Contains(n, "⚖️ **MANDATED**") {
		t.Fatalf("expected mandated flag\n%s", n)
	}

	r.Profile.Mandate = scoring.MandateCompliance
	if n := buildNarrative(r); !strings.Contains(n, "⚠️ **COMPLIANCE/RISK**") {
		t.Fatalf("expected compliance flag")
	}

	r = baseResult()
	r.HasOutsideGF = false
	r.Profile.Band = scoring.BandLow
	if n := buildNarrative(r); !strings.Contains(n, "🚨 **FUNDING CONCERN**") {
		t.Fatalf("expected funding concern flag for GF-only low band")
	}

	r = baseResult()
	r.Profile.Outcomes = scoring.OutcomesWeak
	if n := buildNarrative(r); !strings.Contains(n, "📋 **WEAK EVIDENCE**") {
		t.Fatalf("expected weak evidence flag")
	}
}

func TestNarrativeFollowUpGates(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Result)
		marker  string
		present bool
	}{
		{
			name:    "kpi gate fires on weak outcomes",
			mutate:  func(r *Result) { r.Scores.Outcomes.Score = 1 },
			marker:  "**KPIs & Evaluation:**",
			present: true,
		},
		{
			name:    "kpi gate silent on strong outcomes",
			mutate:  func(r *Result) {},
			marker:  "**KPIs & Evaluation:**",
			present: false,
		},
		{
			name: "funding gate fires for low band zero funding",
			mutate: func(r *Result) {
				r.Scores.Funding.Score = 0
				r.Profile.Band = scoring.BandLow
			},
			marker:  "**Funding/Offsets:**",
			present: true,
		},
		{
			name: "funding gate fires for non-approve zero funding",
			mutate: func(r *Result) {
				r.Scores.Funding.Score = 0
				r.Disposition = scoring.DispositionModify
			},
			marker:  "**Funding/Offsets:**",
			present: true,
		},
		{
			name: "funding gate silent for approved high band",
			mutate: func(r *Result) {
				r.Scores.Funding.Score = 0
			},
			marker:  "**Funding/Offsets:**",
			present: false,
		},
		{
			name: "mandate evidence gate",
			mutate: func(r *Result) {
				r.Profile.Mandate = scoring.MandateMandated
				r.Scores.Outcomes.Score = 1
			},
			marker:  "**Mandate Evidence:**",
			present: true,
		},
		{
			name: "risk reduction gate",
			mutate: func(r *Result) {
				r.Profile.Mandate = scoring.MandateCompliance
			},
			marker:  "**Risk Reduction:**",
			present: true,
		},
		{
			name: "roi gate fires below two unless rejected",
			mutate: func(r *Result) {
				r.Scores.Efficiency.Score = 1
			},
			marker:  "**ROI/Efficiency:**",
			present: true,
		},
		{
			name: "roi gate silent on reject",
			mutate: func(r *Result) {
				r.Scores.Efficiency.Score = 0
				r.Disposition = scoring.DispositionReject
			},
			marker:  "**ROI/Efficiency:**",
			present: false,
		},
		{
			name: "equity gate fires for high band low access",
			mutate: func(r *Result) {
				r.Scores.Access.Score = 1
			},
			marker:  "**Equity:**",
			present: true,
		},
		{
			name: "equity gate silent for low band",
			mutate: func(r *Result) {
				r.Scores.Access.Score = 0
				r.Profile.Band = scoring.BandLow
			},
			marker:  "**Equity:**",
			present: false,
		},
		{
			name: "scope gate for low band gf only",
			mutate: func(r *Result) {
				r.Profile.Band = scoring.BandLow
				r.Profile.Funding = scoring.FundingGFOnly
			},
			marker:  "**Scope/Phasing:**",
			present: true,
		},
		{
			name: "partnership gate on funding score one",
			mutate: func(r *Result) {
				r.Scores.Funding.Score = 1
			},
			marker:  "**Partnership:**",
			present: true,
		},
		{
			name: "sunset gate for mandated low band",
			mutate: func(r *Result) {
				r.Profile.Mandate = scoring.MandateMandated
				r.Profile.Band = scoring.BandLow
			},
			marker:  "**Sunset/True-up:**",
			present: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r := baseResult()
			tt.mutate(&r)
			n := buildNarrative(r)
			if got := strings.Contains(n, tt.marker); got != tt.present {
				t.Fatalf("marker %q present=%v, want %v\n%s", tt.marker, got, tt.present, n)
			}
		})
	}
}

func TestNarrativeDispositionParagraphs(t *testing.T) {
	r := baseResult()
	r.Disposition = scoring.DispositionDefer
	r.Profile.Mandate = scoring.MandateMandated
	n := buildNarrative(r)
	if !strings.Contains(n, "PBB suggests DEFER") || !strings.Contains(n, "monitoring mandate requirements") {
		t.Fatalf("expected defer paragraph with mandate monitoring\n%s", n)
	}

	r = baseResult()
	r.Disposition = scoring.DispositionReject
	if n := buildNarrative(r); !strings.Contains(n, "REJECT OR SIGNIFICANT REDESIGN") {
		t.Fatalf("expected reject paragraph")
	}

	r = baseResult()
	r.Disposition = scoring.DispositionApprove
	r.Profile.Mandate = scoring.MandateMandated
	r.Profile.Funding = scoring.FundingGFOnly
	r.Profile.Band = scoring.BandLow
	if n := buildNarrative(r); !strings.Contains(n, "requiring offsetting reductions") {
		t.Fatalf("expected mandated low-band offset clause")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{2500.5, "2,500.5"},
		{-42000, "-42,000"},
	}
	for _, tt := range cases {
		if got := formatAmount(tt.in); got != tt.want {
			t.Fatalf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
