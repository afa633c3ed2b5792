package prompts

import (
	"fmt"
	"strings"
)

// SectionHeaderPrefix marks a section header line in the single-call
// variant's output. The parser in the summary package recognizes
// exactly this grammar.
const SectionHeaderPrefix = "## "

const combinedInstructions = "You will produce the full lead summary in one response, divided " +
	"into exactly four sections. Emit each section under a header line of the form " +
	"\"## <Section name>\" with nothing else on that line, in this exact order: " +
	"%s. " +
	"Do not add any other headers, preamble, or trailing commentary. " +
	"For each section, follow its instructions below.\n\n"

// ComposeCombined renders the single prompt used by the one-call
// variant: all four section instruction blocks concatenated with
// explicit header-emission rules, and the lead data plus campaign
// history as the user text.
func ComposeCombined(in Input) Prompt {
	names := make([]string, 0, len(SummarySections))
	for _, s := range SummarySections {
		names = append(names, string(s))
	}

	var b strings.Builder
	b.WriteString(Documentation)
	b.WriteString(fmt.Sprintf(combinedInstructions, strings.Join(names, ", ")))
	for _, s := range SummarySections {
		b.WriteString(SectionHeaderPrefix)
		b.WriteString(string(s))
		b.WriteString("\n")
		// The hook has no prior outputs to read in this variant; it
		// works from the sections the model just produced.
		b.WriteString(instructionsFor(s, in))
		b.WriteString("\n\n")
	}

	user := FormatLeadFields(in.Lead) + "\n\nCampaign history: " + FormatCampaignHistory(in.History)

	return Prompt{System: b.String(), User: user}
}
