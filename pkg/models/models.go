package models

// Domain models shared across the CRM, prompt, and summary packages.

// LeadRecord is a read-only snapshot of one CRM lead. Fields the CRM
// returned as null are empty strings; the prompt composer renders those
// as "N/A". The record is fetched once per summarization request and
// never mutated.
type LeadRecord struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	Title                   string `json:"title"`
	Company                 string `json:"company"`
	Email                   string `json:"email"`
	Phone                   string `json:"phone"`
	SDRAgents               string `json:"sdr_agents,omitempty"`
	NumberOfEmployees       string `json:"number_of_employees,omitempty"`
	SegmentName             string `json:"segment_name,omitempty"`
	Status                  string `json:"status"`
	LeadSource              string `json:"lead_source,omitempty"`
	Description             string `json:"description,omitempty"`
	EntrySource             string `json:"entry_source,omitempty"`
	RecentCampaignDate      string `json:"recent_campaign_date,omitempty"`
	RecentCampaignSummary   string `json:"recent_campaign_summary,omitempty"`
	RecentCampaignID        string `json:"recent_campaign_id,omitempty"`
	RecentCampaignName      string `json:"recent_campaign_name,omitempty"`
	RecentCampaignProduct   string `json:"recent_campaign_product,omitempty"`
	RecentCampaignLongDescr string `json:"recent_campaign_long_description,omitempty"`
	Notes                   string `json:"notes,omitempty"`
}

// CampaignEngagement is one historical campaign touchpoint for a lead.
type CampaignEngagement struct {
	CampaignName    string `json:"campaign_name"`
	IntendedProduct string `json:"intended_product"`
	CreatedDate     string `json:"created_date"`
}

// Catalog is the CRM-wide list of product labels currently attached to
// campaigns. Found distinguishes an empty catalog from a populated one
// so callers branch explicitly instead of string-matching a sentinel.
type Catalog struct {
	Found    bool     `json:"found"`
	Products []string `json:"products"`
}

// Render returns the catalog as the comma-joined string interpolated
// into the Product Interest instructions, or the human-readable
// sentinel when the catalog is empty.
func (c Catalog) Render() string {
	if !c.Found || len(c.Products) == 0 {
		return "no products found"
	}
	s := c.Products[0]
	for _, p := range c.Products[1:] {
		s += ", " + p
	}
	return s
}

// DuplicateLeads holds the IDs of other leads sharing the queried
// lead's email address. An empty slice means none were found.
type DuplicateLeads struct {
	IDs []string `json:"ids"`
}

// NoDuplicatesSentinel is the value the boundary emits under the
// "Duplicate Leads" key when no duplicates exist.
const NoDuplicatesSentinel = "No duplicates found"
