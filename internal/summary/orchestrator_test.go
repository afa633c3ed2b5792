package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadbrief/internal/crm"
	"github.com/leadbrief/internal/llm"
	"github.com/leadbrief/internal/prompts"
	"github.com/leadbrief/pkg/models"
)

// fakeStore counts calls and serves fixtures per query.
type fakeStore struct {
	lead    *models.LeadRecord
	history []models.CampaignEngagement
	catalog models.Catalog
	dups    models.DuplicateLeads

	leadErr    error
	historyErr error
	catalogErr error
	dupsErr    error

	leadCalls    int
	historyCalls int
	catalogCalls int
	dupsCalls    int
}

func (f *fakeStore) Lead(ctx context.Context, id string) (*models.LeadRecord, error) {
	f.leadCalls++
	if f.leadErr != nil {
		return nil, f.leadErr
	}
	return f.lead, nil
}

func (f *fakeStore) CampaignHistory(ctx context.Context, id string) ([]models.CampaignEngagement, error) {
	f.historyCalls++
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history, nil
}

func (f *fakeStore) ProductCatalog(ctx context.Context) (models.Catalog, error) {
	f.catalogCalls++
	if f.catalogErr != nil {
		return models.Catalog{}, f.catalogErr
	}
	return f.catalog, nil
}

func (f *fakeStore) Duplicates(ctx context.Context, id, email string) (models.DuplicateLeads, error) {
	f.dupsCalls++
	if f.dupsErr != nil {
		return models.DuplicateLeads{}, f.dupsErr
	}
	return f.dups, nil
}

// fakeGenerator returns canned text per call and records every prompt
// it received.
type fakeGenerator struct {
	responses []string
	calls     []struct{ system, user string }
}

func (f *fakeGenerator) Generate(ctx context.Context, system, user string) string {
	f.calls = append(f.calls, struct{ system, user string }{system, user})
	if len(f.calls) <= len(f.responses) {
		return f.responses[len(f.calls)-1]
	}
	return fmt.Sprintf("canned response %d", len(f.calls))
}

func testStore() *fakeStore {
	return &fakeStore{
		lead: &models.LeadRecord{
			ID:      "00Q2H00002GOYd1UAH",
			Name:    "Dana Reyes",
			Company: "Acme Logistics",
			Title:   "IT Director",
			Email:   "dana@acme.example",
			Phone:   "555-0142",
			Status:  "1. New",
		},
		history: []models.CampaignEngagement{
			{CampaignName: "Spring Launch", IntendedProduct: "Contact Center", CreatedDate: "2026-04-12"},
		},
		catalog: models.Catalog{Found: true, Products: []string{"Phone System", "Contact Center"}},
	}
}

func TestSummarize_ResultContainsAllFixedKeys(t *testing.T) {
	store := testStore()
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)

	payload := result.Payload()
	for _, section := range prompts.SummarySections {
		assert.Contains(t, payload, string(section))
	}
	for _, field := range RawFieldNames {
		assert.Contains(t, payload, field)
	}
	assert.Contains(t, payload, DuplicateLeadsKey)
	assert.Len(t, payload, len(prompts.SummarySections)+len(RawFieldNames)+1)
}

func TestSummarize_MissingLeadIDShortCircuits(t *testing.T) {
	store := testStore()
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	_, err := orch.Summarize(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, KindMissingInput, KindOf(err))

	// No CRM query and no generation call was spent.
	assert.Zero(t, store.leadCalls)
	assert.Zero(t, store.historyCalls)
	assert.Zero(t, store.catalogCalls)
	assert.Zero(t, store.dupsCalls)
	assert.Empty(t, gen.calls)
}

func TestSummarize_HistoryNotFoundShortCircuitsBeforeLeadFetch(t *testing.T) {
	store := testStore()
	store.historyErr = crm.ErrNotFound
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	_, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "no campaign history found", err.Error())

	assert.Zero(t, store.leadCalls)
	assert.Empty(t, gen.calls)
}

func TestSummarize_LeadNotFound(t *testing.T) {
	store := testStore()
	store.leadErr = crm.ErrNotFound
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	_, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "no records found", err.Error())
	assert.Empty(t, gen.calls)
}

func TestSummarize_SectionsGeneratedInDeclaredOrder(t *testing.T) {
	store := testStore()
	gen := &fakeGenerator{responses: []string{"pi text", "ww text", "hist text", "hook text"}}
	orch := NewOrchestrator(store, gen)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)
	require.Len(t, gen.calls, 4)

	assert.Equal(t, "pi text", result.Sections[prompts.SectionProductInterest])
	assert.Equal(t, "ww text", result.Sections[prompts.SectionWhereAndWhy])
	assert.Equal(t, "hist text", result.Sections[prompts.SectionHistorical])
	assert.Equal(t, "hook text", result.Sections[prompts.SectionEnablementHook])
}

func TestSummarize_HookPromptContainsPriorOutputsInOrder(t *testing.T) {
	store := testStore()
	gen := &fakeGenerator{responses: []string{"pi text", "ww text", "hist text", "hook text"}}
	orch := NewOrchestrator(store, gen)

	_, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)
	require.Len(t, gen.calls, 4)

	hookUser := gen.calls[3].user
	assert.Contains(t, hookUser, "pi text")
	assert.Contains(t, hookUser, "ww text")
	assert.Contains(t, hookUser, "hist text")
	assert.NotContains(t, hookUser, "hook text")

	// Verbatim, in generation order, seeded with the company name.
	assert.Equal(t, "Acme Logistics\npi text\nww text\nhist text", hookUser)
}

func TestSummarize_DegradedGenerationDoesNotFailRequest(t *testing.T) {
	store := testStore()
	failing := llm.NewGateway(completerFunc(func(ctx context.Context, system, user string) (string, error) {
		return "", errors.New("rate limit")
	}))
	orch := NewOrchestrator(store, failing)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)

	for _, section := range prompts.SummarySections {
		text := result.Sections[section]
		assert.True(t, strings.HasPrefix(text, "Unexpected error: "), "section %q content: %q", section, text)
	}
}

func TestSummarize_RawFieldsCopiedVerbatim(t *testing.T) {
	store := testStore()
	store.lead.Phone = ""
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)

	assert.Equal(t, "Dana Reyes", result.RawFields["Name"])
	assert.Equal(t, "Acme Logistics", result.RawFields["Company"])
	assert.Equal(t, "1. New", result.RawFields["Status"])
	// Absent fields become empty strings, never omitted keys.
	phone, ok := result.RawFields["Phone"]
	assert.True(t, ok)
	assert.Equal(t, "", phone)
}

func TestSummarize_DuplicatesMerged(t *testing.T) {
	store := testStore()
	store.dups = models.DuplicateLeads{IDs: []string{"00Q000000000001", "00Q000000000002"}}
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)

	payload := result.Payload()
	assert.Equal(t, []string{"00Q000000000001", "00Q000000000002"}, payload[DuplicateLeadsKey])
}

func TestSummarize_NoDuplicatesSentinel(t *testing.T) {
	store := testStore()
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)

	assert.Equal(t, models.NoDuplicatesSentinel, result.Payload()[DuplicateLeadsKey])
}

func TestSummarize_DuplicateLookupFailureDegrades(t *testing.T) {
	store := testStore()
	store.dupsErr = crm.ErrNotFound
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)
	assert.Equal(t, models.NoDuplicatesSentinel, result.Payload()[DuplicateLeadsKey])
}

func TestSummarize_CatalogFailureIsNotFatal(t *testing.T) {
	store := testStore()
	store.catalogErr = crm.ErrNotFound
	gen := &fakeGenerator{}
	orch := NewOrchestrator(store, gen)

	result, err := orch.Summarize(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)
	require.Len(t, gen.calls, 4)

	// The Product Interest instructions fell back to the empty-catalog
	// sentinel.
	assert.Contains(t, gen.calls[0].system, "no products found")
	assert.NotNil(t, result)
}

func TestSummarizeCombined_ParsesSectionsFromSingleCall(t *testing.T) {
	store := testStore()
	combined := "## Product Interest\npi text\n" +
		"## Where and Why\nww text\n" +
		"## Historical Relationship\nhist text\n" +
		"## Sales Enablement Hook\nhook text\n"
	gen := &fakeGenerator{responses: []string{combined}}
	orch := NewOrchestrator(store, gen)

	result, err := orch.SummarizeCombined(context.Background(), "00Q2H00002GOYd1UAH")
	require.NoError(t, err)
	require.Len(t, gen.calls, 1)

	assert.Equal(t, "pi text", result.Sections[prompts.SectionProductInterest])
	assert.Equal(t, "hook text", result.Sections[prompts.SectionEnablementHook])

	payload := result.Payload()
	for _, field := range RawFieldNames {
		assert.Contains(t, payload, field)
	}
	assert.Contains(t, payload, DuplicateLeadsKey)
}

func TestSummarizeCombined_UnparseableOutput(t *testing.T) {
	store := testStore()
	gen := &fakeGenerator{responses: []string{"free prose with no headers"}}
	orch := NewOrchestrator(store, gen)

	_, err := orch.SummarizeCombined(context.Background(), "00Q2H00002GOYd1UAH")
	require.Error(t, err)
	assert.Equal(t, KindUnparseable, KindOf(err))
}

func TestAsk_RequiresLeadIDAndQuestion(t *testing.T) {
	orch := NewOrchestrator(testStore(), &fakeGenerator{})

	_, err := orch.Ask(context.Background(), "", "what?")
	assert.Equal(t, KindMissingInput, KindOf(err))

	_, err = orch.Ask(context.Background(), "00Q2H00002GOYd1UAH", " ")
	assert.Equal(t, KindMissingInput, KindOf(err))
}

func TestAsk_PassesQuestionThrough(t *testing.T) {
	store := testStore()
	gen := &fakeGenerator{responses: []string{"they ship freight"}}
	orch := NewOrchestrator(store, gen)

	answer, err := orch.Ask(context.Background(), "00Q2H00002GOYd1UAH", "What does this company do?")
	require.NoError(t, err)
	assert.Equal(t, "they ship freight", answer)

	require.Len(t, gen.calls, 1)
	assert.Equal(t, "What does this company do?", gen.calls[0].user)
	assert.Contains(t, gen.calls[0].system, "Acme Logistics")
}

// completerFunc adapts a function to the llm.Completer interface.
type completerFunc func(ctx context.Context, system, user string) (string, error)

func (f completerFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}
