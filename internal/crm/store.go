package crm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/leadbrief/pkg/models"
)

// ErrNotFound is returned when a query matched zero rows. The source
// system treats "zero rows" and "query failed" identically, so
// transport failures are wrapped into the same class at this boundary;
// callers that care can still unwrap the cause for logging.
var ErrNotFound = errors.New("no records found")

// campaignHistoryLimit bounds the engagement history to the most
// recent touchpoints.
const campaignHistoryLimit = 5

// leadFields is the curated field list fetched for one lead, in query
// order.
var leadFields = []string{
	"Name",
	"Title",
	"Company",
	"Email",
	"Phone",
	"SDR_Agents__c",
	"NumberOfEmployees__c",
	"SegmentName__r.Name",
	"Status",
	"LeadSource",
	"Description",
	"Lead_Entry_Source__c",
	"Most_Recent_Campaign_Associated_Date__c",
	"Most_Recent_Campaign_Description__c",
	"Most_Recent_Campaign__c",
	"Most_Recent_Campaign__r.Name",
	"Most_Recent_Campaign__r.Intended_Product__c",
	"Most_Recent_Campaign__r.Description",
	"Notes__c",
}

// Store exposes the read-only CRM queries the summarizer needs. The
// orchestrator receives it as an injected capability so tests can use
// doubles.
type Store interface {
	Lead(ctx context.Context, id string) (*models.LeadRecord, error)
	CampaignHistory(ctx context.Context, id string) ([]models.CampaignEngagement, error)
	ProductCatalog(ctx context.Context) (models.Catalog, error)
	Duplicates(ctx context.Context, id, email string) (models.DuplicateLeads, error)
}

// SOQLStore implements Store over a QueryClient.
type SOQLStore struct {
	client        QueryClient
	dedupeCatalog bool
}

// NewSOQLStore creates a store. dedupeCatalog controls whether the
// product catalog query groups by product label; some CRM org
// configurations rely on grouping for de-duplication and some return
// raw rows.
func NewSOQLStore(client QueryClient, dedupeCatalog bool) *SOQLStore {
	return &SOQLStore{client: client, dedupeCatalog: dedupeCatalog}
}

// Lead fetches exactly one lead record by ID.
func (s *SOQLStore) Lead(ctx context.Context, id string) (*models.LeadRecord, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	soql := fmt.Sprintf("SELECT %s FROM Lead WHERE Id = '%s'",
		strings.Join(leadFields, ", "), escapeSOQLString(id))

	result, err := s.client.Query(ctx, soql)
	if err != nil {
		log.Warn().Err(err).Str("lead_id", id).Msg("lead query failed")
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}

	rec := result.Records[0]
	lead := &models.LeadRecord{
		ID:                      id,
		Name:                    rec.StringField("Name"),
		Title:                   rec.StringField("Title"),
		Company:                 rec.StringField("Company"),
		Email:                   rec.StringField("Email"),
		Phone:                   rec.StringField("Phone"),
		SDRAgents:               rec.StringField("SDR_Agents__c"),
		NumberOfEmployees:       rec.StringField("NumberOfEmployees__c"),
		SegmentName:             rec.StringField("SegmentName__r.Name"),
		Status:                  rec.StringField("Status"),
		LeadSource:              rec.StringField("LeadSource"),
		Description:             rec.StringField("Description"),
		EntrySource:             rec.StringField("Lead_Entry_Source__c"),
		RecentCampaignDate:      rec.StringField("Most_Recent_Campaign_Associated_Date__c"),
		RecentCampaignSummary:   rec.StringField("Most_Recent_Campaign_Description__c"),
		RecentCampaignID:        rec.StringField("Most_Recent_Campaign__c"),
		RecentCampaignName:      rec.StringField("Most_Recent_Campaign__r.Name"),
		RecentCampaignProduct:   rec.StringField("Most_Recent_Campaign__r.Intended_Product__c"),
		RecentCampaignLongDescr: rec.StringField("Most_Recent_Campaign__r.Description"),
		Notes:                   rec.StringField("Notes__c"),
	}

	return lead, nil
}

// CampaignHistory fetches the most recent campaign engagements for a
// lead, newest first. Zero rows is indistinguishable from a failed
// query by contract.
func (s *SOQLStore) CampaignHistory(ctx context.Context, id string) ([]models.CampaignEngagement, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	soql := fmt.Sprintf(
		"SELECT Campaign.Intended_Product__c, Campaign.CreatedDate, Campaign.Name "+
			"FROM CampaignMember WHERE LeadId = '%s' ORDER BY CreatedDate DESC LIMIT %d",
		escapeSOQLString(id), campaignHistoryLimit)

	result, err := s.client.Query(ctx, soql)
	if err != nil {
		log.Warn().Err(err).Str("lead_id", id).Msg("campaign history query failed")
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}

	history := make([]models.CampaignEngagement, 0, len(result.Records))
	for _, rec := range result.Records {
		history = append(history, models.CampaignEngagement{
			CampaignName:    rec.StringField("Campaign.Name"),
			IntendedProduct: rec.StringField("Campaign.Intended_Product__c"),
			CreatedDate:     rec.StringField("Campaign.CreatedDate"),
		})
	}

	return history, nil
}

// ProductCatalog fetches the product labels in use by campaigns
// CRM-wide. The result is tagged rather than a sentinel string so
// callers branch on Found instead of string-matching.
func (s *SOQLStore) ProductCatalog(ctx context.Context) (models.Catalog, error) {
	soql := "SELECT Intended_Product__c FROM Campaign"
	if s.dedupeCatalog {
		soql += " GROUP BY Intended_Product__c"
	}

	result, err := s.client.Query(ctx, soql)
	if err != nil {
		log.Warn().Err(err).Msg("product catalog query failed")
		return models.Catalog{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	products := make([]string, 0, len(result.Records))
	for _, rec := range result.Records {
		if p := rec.StringField("Intended_Product__c"); p != "" {
			products = append(products, p)
		}
	}
	if len(products) == 0 {
		return models.Catalog{Found: false}, nil
	}

	return models.Catalog{Found: true, Products: products}, nil
}

// Duplicates finds other leads sharing the given email. The query
// already excludes the queried lead, but records are re-checked with a
// trimmed compare because the exclusion filter is not fully pushed
// into the query on all org configurations.
func (s *SOQLStore) Duplicates(ctx context.Context, id, email string) (models.DuplicateLeads, error) {
	if email == "" {
		return models.DuplicateLeads{}, nil
	}

	soql := fmt.Sprintf("SELECT Id FROM Lead WHERE Email = '%s' AND Id != '%s'",
		escapeSOQLString(email), escapeSOQLString(id))

	result, err := s.client.Query(ctx, soql)
	if err != nil {
		log.Warn().Err(err).Str("lead_id", id).Msg("duplicate lead query failed")
		return models.DuplicateLeads{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var dups models.DuplicateLeads
	for _, rec := range result.Records {
		dupID := rec.StringField("Id")
		if strings.TrimSpace(dupID) == id || dupID == "" {
			continue
		}
		dups.IDs = append(dups.IDs, dupID)
	}

	return dups, nil
}
