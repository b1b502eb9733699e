package analysis

import (
	"fmt"
	"strings"

	"budget-backend/internal/scoring"
)

// buildNarrative assembles the recommendation text from fixed templates.
// Every sentence is gated by a scalar predicate over the result; the same
// result always yields byte-identical text. Section order: header, context
// flags, disposition paragraph, verify-now list, strengthen list, follow-up
// actions.
func buildNarrative(r Result) string {
	var b strings.Builder

	quartileLabel := r.Quartile.Code()
	if quartileLabel == "" {
		quartileLabel = "none found"
	}

	fmt.Fprintf(&b, "**Program:** %s (%s)\n", r.Program, r.Department)
	fmt.Fprintf(&b, "**Quartile:** %s (%s Relevance)\n", quartileLabel, r.Profile.Band)
	fmt.Fprintf(&b, "**Total Amount:** $%s\n", formatAmount(r.Amounts.Total))
	fmt.Fprintf(&b, "**Decision Profile:** %s\n\n", r.GridKey)
	b.WriteString("---\n\n")

	writeContextFlags(&b, r)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "## 🎯 PBB SUGGESTS: **%s** (Score: %d/12)\n\n", r.Disposition, r.TotalScore)
	writeDispositionParagraph(&b, r)
	writeVerifyNow(&b, r)
	writeStrengthenWith(&b, r)
	writeFollowUps(&b, r)

	return b.String()
}

func writeContextFlags(b *strings.Builder, r Result) {
	switch r.Profile.Mandate {
	case scoring.MandateMandated:
		b.WriteString("⚖️ **MANDATED**: This request is legally mandated or tied to a Board Motion/consent decree.\n\n")
	case scoring.MandateCompliance:
		b.WriteString("⚠️ **COMPLIANCE/RISK**: This request addresses compliance obligations or risk mitigation.\n\n")
	}

	if r.HasOutsideGF {
		b.WriteString("✅ **NON-GF FUNDING**: Includes non-General Fund sources (grants, fees, or partnerships).\n\n")
	} else if r.Profile.Band == scoring.BandLow {
		b.WriteString("🚨 **FUNDING CONCERN**: 100% General Fund requested for a lower-relevance (Q3/Q4) program.\n\n")
	}

	if r.Profile.Outcomes == scoring.OutcomesStrong {
		b.WriteString("📊 **STRONG EVIDENCE**: Clear performance metrics and outcome targets provided.\n\n")
	} else {
		b.WriteString("📋 **WEAK EVIDENCE**: Insufficient outcome data, KPIs, or evaluation plan.\n\n")
	}
}

func writeDispositionParagraph(b *strings.Builder, r Result) {
	switch r.Disposition {
	case scoring.DispositionApprove:
		switch {
		case r.Profile.Mandate == scoring.MandateMandated:
			fmt.Fprintf(b, "**PBB Recommendation:** PBB suggests APPROVE. This is a mandated program with %s outcomes evidence. ",
				strings.ToLower(string(r.Profile.Outcomes)))
			if r.Profile.Funding == scoring.FundingGFOnly && r.Profile.Band == scoring.BandLow {
				b.WriteString("Given the lower quartile, PBB suggests requiring offsetting reductions or pursuing non-GF sources. ")
			}
			if r.Profile.Outcomes == scoring.OutcomesWeak {
				b.WriteString("PBB suggests requiring metrics and evaluation plan as condition of approval.\n\n")
			} else {
				b.WriteString("General Fund support appears justified based on mandate requirements.\n\n")
			}
		case r.Profile.Funding == scoring.FundingNonGF:
			b.WriteString("**PBB Recommendation:** PBB suggests APPROVE with non-GF priority. Strong proposal with external funding sources. ")
			if r.Profile.Band == scoring.BandLow {
				b.WriteString("For Q3/Q4 programs, PBB suggests ensuring minimal or no GF backfill. ")
			}
			b.WriteString("PBB recommends proceeding with clear cost recovery and sustainability plan.\n\n")
		default:
			b.WriteString("**PBB Recommendation:** PBB suggests APPROVE but strengthen funding strategy. While outcomes are strong, PBB recommends adding cost recovery or partnership elements to reduce General Fund reliance.\n\n")
		}
	case scoring.DispositionModify:
		b.WriteString("**PBB Recommendation:** PBB suggests MODIFY before approval. This request shows merit but PBB recommends adjustments before proceeding:\n\n")
	case scoring.DispositionDefer:
		b.WriteString("**PBB Recommendation:** PBB suggests DEFER. Insufficient business case for current approval based on PBB criteria. ")
		if r.Profile.Mandate == scoring.MandateMandated {
			b.WriteString("PBB recommends monitoring mandate requirements. ")
		}
		b.WriteString("See PBB-recommended strengthening actions below.\n\n")
	case scoring.DispositionReject:
		b.WriteString("**PBB Recommendation:** PBB suggests REJECT OR SIGNIFICANT REDESIGN. ")
		b.WriteString("This low-relevance, GF-only request with weak outcomes does not meet PBB funding criteria. PBB recommends fundamental changes before reconsideration.\n\n")
	}
}

func writeVerifyNow(b *strings.Builder, r Result) {
	// "N/A" as the first item means the grid has nothing to verify.
	if len(r.VerifyNow) == 0 || r.VerifyNow[0] == "N/A" {
		return
	}
	b.WriteString("### ✅ VERIFY NOW:\n\n")
	for _, item := range r.VerifyNow {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeStrengthenWith(b *strings.Builder, r Result) {
	if len(r.StrengthenWith) == 0 {
		return
	}
	b.WriteString("### 💪 TO STRENGTHEN THIS REQUEST:\n\n")
	for _, item := range r.StrengthenWith {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// writeFollowUps emits the nine conditional follow-up prompts. Each gate is
// evaluated independently and the paragraphs always appear in this order.
func writeFollowUps(b *strings.Builder, r Result) {
	b.WriteString("### 📝 SPECIFIC FOLLOW-UP ACTIONS:\n\n")

	if r.Scores.Outcomes.Score < 2 {
		b.WriteString("**KPIs & Evaluation:** Please add baseline→target values for 2–3 KPIs, the data source, and review cadence (e.g., monthly). We'll approve as a 90-day pilot pending KPI progress.\n\n")
	}
	if r.Scores.Funding.Score == 0 && (r.Profile.Band == scoring.BandLow || r.Disposition != scoring.DispositionApprove) {
		b.WriteString("**Funding/Offsets:** Identify at least one non-GF source (fee, grant, partner, restricted fund) covering ≥30% of the request, or propose an internal reallocation/offset equal to ≥20%.\n\n")
	}
	if r.Profile.Mandate == scoring.MandateMandated && r.Scores.Outcomes.Score < 2 {
		b.WriteString("**Mandate Evidence:** Attach the statute/board motion/consent decree citation and define the minimum compliance scope. Include milestones and success criteria.\n\n")
	}
	if r.Profile.Mandate == scoring.MandateCompliance {
		b.WriteString("**Risk Reduction:** Link this request to a specific risk register item and quantify the expected reduction (e.g., 'reduce audit findings by 50% in 12 months').\n\n")
	}
	if r.Scores.Efficiency.Score < 2 && r.Disposition != scoring.DispositionReject {
		b.WriteString("**ROI/Efficiency:** Provide a cost-avoidance or productivity calculation (unit cost, throughput, payback). If uncertain, start with a 6-month pilot and measure.\n\n")
	}
	if r.Scores.Access.Score < 2 && r.Profile.Band == scoring.BandHigh {
		b.WriteString("**Equity:** Name the priority population and specify a measurable access/outcome improvement (e.g., 'decrease wait time for X group from 12 to 6 weeks').\n\n")
	}
	if r.Profile.Band == scoring.BandLow && r.Profile.Funding == scoring.FundingGFOnly {
		b.WriteString("**Scope/Phasing:** Consider a phased approach (Phase 1 core features, Phase 2 optional enhancements) to reduce near-term GF use.\n\n")
	}
	if r.Scores.Funding.Score == 1 {
		b.WriteString("**Partnership:** Add letters of intent (LOIs) or MOUs for partner contributions (space, staff time, cash match).\n\n")
	}
	if r.Profile.Mandate == scoring.MandateMandated && r.Profile.Band == scoring.BandLow {
		b.WriteString("**Sunset/True-up:** Add a 12-month sunset and a true-up clause to right-size funding based on measured demand and KPI performance.\n\n")
	}
}

// formatAmount renders a dollar amount with thousands separators, keeping
// any fractional part as-is.
func formatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)
	out := strings.Join(groups, ",") + fracPart
	if neg {
		return "-" + out
	}
	return out
}
