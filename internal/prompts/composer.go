package prompts

import (
	"fmt"
	"strings"

	"github.com/leadbrief/pkg/models"
)

// Input carries the data gathered so far for one summarization
// request. Prior holds previously generated section outputs in
// generation order; the Sales Enablement Hook reads them verbatim.
type Input struct {
	Lead     *models.LeadRecord
	Catalog  models.Catalog
	History  []models.CampaignEngagement
	Prior    []PriorOutput
	Question string // Ask more only
}

// PriorOutput is one previously generated section's text.
type PriorOutput struct {
	Section Section
	Text    string
}

// Prompt is the (system, user) pair sent to the text-generation
// gateway for one section.
type Prompt struct {
	System string
	User   string
}

// Compose renders the prompt for a section. Composition is pure: no
// side effects, no errors. Missing lead fields render as "N/A".
func Compose(section Section, in Input) Prompt {
	return Prompt{
		System: Documentation + instructionsFor(section, in),
		User:   userTextFor(section, in),
	}
}

func instructionsFor(section Section, in Input) string {
	switch section {
	case SectionProductInterest:
		return fmt.Sprintf(productInterestInstructions, in.Catalog.Render())
	case SectionWhereAndWhy:
		return whereAndWhyInstructions
	case SectionHistorical:
		return historicalInstructions
	case SectionEnablementHook:
		return enablementHookInstructions
	case SectionAskMore:
		return fmt.Sprintf(askMoreInstructions,
			FormatLeadFields(in.Lead), FormatCampaignHistory(in.History))
	default:
		return invalidSectionInstructions
	}
}

func userTextFor(section Section, in Input) string {
	switch section {
	case SectionProductInterest, SectionWhereAndWhy:
		return FormatLeadFields(in.Lead)
	case SectionHistorical:
		return FormatCampaignHistory(in.History)
	case SectionEnablementHook:
		parts := make([]string, 0, len(in.Prior))
		for _, p := range in.Prior {
			parts = append(parts, p.Text)
		}
		return strings.Join(parts, "\n")
	case SectionAskMore:
		return in.Question
	default:
		return "No relevant data available."
	}
}

// FormatLeadFields renders the curated lead fields as a fixed-order,
// comma-joined "<Label>: <value>" string for the user prompt. Empty
// fields render as "N/A" so the model never sees a dangling label.
func FormatLeadFields(lead *models.LeadRecord) string {
	if lead == nil {
		return "No data available"
	}

	pairs := []struct {
		label string
		value string
	}{
		{"Title", lead.Title},
		{"Company", lead.Company},
		{"Number of Employees", lead.NumberOfEmployees},
		{"Status", lead.Status},
		{"Segment", lead.SegmentName},
		{"Lead Source", lead.LeadSource},
		{"Description", lead.Description},
		{"Lead Entry Source", lead.EntrySource},
		{"Recent Campaign Date", lead.RecentCampaignDate},
		{"Recent Campaign Description", lead.RecentCampaignSummary},
		{"Recent Campaign", lead.RecentCampaignID},
		{"Recent Campaign Name", lead.RecentCampaignName},
		{"Recent Campaign Product", lead.RecentCampaignProduct},
		{"Notes", lead.Notes},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.label+": "+orNA(p.value))
	}
	return strings.Join(parts, ", ")
}

// FormatCampaignHistory renders each engagement as
// "Campaign Name: n, Product: p, Date: d", joined with " | ".
func FormatCampaignHistory(history []models.CampaignEngagement) string {
	if len(history) == 0 {
		return "No data available"
	}

	entries := make([]string, 0, len(history))
	for _, e := range history {
		entries = append(entries, fmt.Sprintf(
			"Campaign Name: %s, Product: %s, Date: %s",
			orNA(e.CampaignName), orNA(e.IntendedProduct), orNA(e.CreatedDate)))
	}
	return strings.Join(entries, " | ")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
