package summary

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leadbrief/internal/crm"
	"github.com/leadbrief/internal/prompts"
	"github.com/leadbrief/pkg/models"
)

// Generator is the text-generation capability the orchestrator
// consumes. Generate never fails; a degraded call yields the literal
// error-marker string as content.
type Generator interface {
	Generate(ctx context.Context, system, user string) string
}

// Orchestrator drives the per-lead summarization workflow. Both
// capabilities are injected at construction time so tests can run the
// full workflow against doubles.
type Orchestrator struct {
	store     crm.Store
	generator Generator
}

// NewOrchestrator creates an orchestrator over the given CRM store and
// text-generation gateway.
func NewOrchestrator(store crm.Store, generator Generator) *Orchestrator {
	return &Orchestrator{store: store, generator: generator}
}

// Summarize runs the full pipeline for one lead: validate the ID,
// gather CRM data, generate the four sections strictly in declared
// order, then merge raw fields and the duplicate-lead lookup.
//
// MissingInput and NotFound are fatal and short-circuit before any
// text-generation call is made; a failed generation call degrades that
// section's content but never fails the request.
func (o *Orchestrator) Summarize(ctx context.Context, leadID string) (*Summary, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, newError(KindMissingInput, "Lead ID not provided", nil)
	}

	runLog := runLogger(leadID)
	runLog.Info().Msg("starting lead summarization")

	catalog := o.fetchCatalog(ctx, runLog)

	history, err := o.store.CampaignHistory(ctx, leadID)
	if err != nil {
		runLog.Warn().Err(err).Msg("no campaign history")
		return nil, newError(KindNotFound, "no campaign history found", err)
	}

	lead, err := o.store.Lead(ctx, leadID)
	if err != nil {
		runLog.Warn().Err(err).Msg("no lead record")
		return nil, newError(KindNotFound, "no records found", err)
	}

	in := prompts.Input{
		Lead:    lead,
		Catalog: catalog,
		History: history,
		// The hook reads the company name along with the generated
		// sections.
		Prior: []prompts.PriorOutput{{Section: "Company", Text: lead.Company}},
	}

	result := &Summary{Sections: make(map[prompts.Section]string, len(prompts.SummarySections))}
	for _, section := range prompts.SummarySections {
		prompt := prompts.Compose(section, in)
		text := o.generator.Generate(ctx, prompt.System, prompt.User)
		result.Sections[section] = text
		in.Prior = append(in.Prior, prompts.PriorOutput{Section: section, Text: text})
		runLog.Debug().Str("section", string(section)).Int("chars", len(text)).Msg("section generated")
	}

	o.finalize(ctx, runLog, result, lead)

	runLog.Info().Msg("lead summarization complete")
	return result, nil
}

// SummarizeCombined is the single-call variant: the same data
// gathering and final shape, but one combined generation call whose
// free-text output is split into the fixed sections by the header
// parser. Unparseable output is a distinct error, not silently lost
// content.
func (o *Orchestrator) SummarizeCombined(ctx context.Context, leadID string) (*Summary, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, newError(KindMissingInput, "Lead ID not provided", nil)
	}

	runLog := runLogger(leadID)
	runLog.Info().Msg("starting combined lead summarization")

	catalog := o.fetchCatalog(ctx, runLog)

	history, err := o.store.CampaignHistory(ctx, leadID)
	if err != nil {
		return nil, newError(KindNotFound, "no campaign history found", err)
	}

	lead, err := o.store.Lead(ctx, leadID)
	if err != nil {
		return nil, newError(KindNotFound, "no records found", err)
	}

	prompt := prompts.ComposeCombined(prompts.Input{Lead: lead, Catalog: catalog, History: history})
	text := o.generator.Generate(ctx, prompt.System, prompt.User)

	sections, err := ParseSections(text)
	if err != nil {
		runLog.Warn().Err(err).Msg("combined output unparseable")
		return nil, err
	}

	result := &Summary{Sections: sections}
	o.finalize(ctx, runLog, result, lead)

	runLog.Info().Msg("combined lead summarization complete")
	return result, nil
}

// Ask answers a free-form question about a lead using the same CRM
// data as a summary, in a single generation call.
func (o *Orchestrator) Ask(ctx context.Context, leadID, question string) (string, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return "", newError(KindMissingInput, "Lead ID not provided", nil)
	}
	if strings.TrimSpace(question) == "" {
		return "", newError(KindMissingInput, "question not provided", nil)
	}

	history, err := o.store.CampaignHistory(ctx, leadID)
	if err != nil {
		return "", newError(KindNotFound, "no campaign history found", err)
	}

	lead, err := o.store.Lead(ctx, leadID)
	if err != nil {
		return "", newError(KindNotFound, "no records found", err)
	}

	prompt := prompts.Compose(prompts.SectionAskMore, prompts.Input{
		Lead:     lead,
		History:  history,
		Question: question,
	})

	return o.generator.Generate(ctx, prompt.System, prompt.User), nil
}

// fetchCatalog loads the product catalog. Catalog failures are not
// fatal: the composer renders the empty catalog's sentinel and the
// request proceeds.
func (o *Orchestrator) fetchCatalog(ctx context.Context, runLog zerolog.Logger) models.Catalog {
	catalog, err := o.store.ProductCatalog(ctx)
	if err != nil {
		runLog.Warn().Err(err).Msg("product catalog unavailable")
		return models.Catalog{}
	}
	return catalog
}

// finalize merges raw lead fields and the duplicate lookup into the
// summary. A failed duplicate query degrades to "none found" rather
// than discarding the generated sections.
func (o *Orchestrator) finalize(ctx context.Context, runLog zerolog.Logger, result *Summary, lead *models.LeadRecord) {
	result.RawFields = rawFields(lead)

	dups, err := o.store.Duplicates(ctx, lead.ID, lead.Email)
	if err != nil {
		runLog.Warn().Err(err).Msg("duplicate lookup failed")
		dups = models.DuplicateLeads{}
	}
	result.Duplicates = dups
}

func runLogger(leadID string) zerolog.Logger {
	return log.With().
		Str("run_id", uuid.NewString()).
		Str("lead_id", leadID).
		Logger()
}
