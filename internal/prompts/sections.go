package prompts

// Section names one subdivision of the generated lead summary. The
// declared order below is the generation order; the Sales Enablement
// Hook reads the outputs of every earlier section, so iterating out of
// order produces a wrong prompt, not just a cosmetic difference.
type Section string

const (
	SectionProductInterest Section = "Product Interest"
	SectionWhereAndWhy     Section = "Where and Why"
	SectionHistorical      Section = "Historical Relationship"
	SectionEnablementHook  Section = "Sales Enablement Hook"

	// SectionAskMore answers a free-form question from a sales rep
	// instead of producing a fixed summary section.
	SectionAskMore Section = "Ask more"
)

// SummarySections lists the sections of a full summary in generation
// order.
var SummarySections = []Section{
	SectionProductInterest,
	SectionWhereAndWhy,
	SectionHistorical,
	SectionEnablementHook,
}
