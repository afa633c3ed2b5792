package summary

import (
	"github.com/leadbrief/internal/prompts"
	"github.com/leadbrief/pkg/models"
)

// DuplicateLeadsKey is the boundary key for the duplicate-lead lookup
// result.
const DuplicateLeadsKey = "Duplicate Leads"

// RawFieldNames lists the lead fields copied verbatim into the
// summary, in output order. Absent fields become empty strings, never
// omitted keys.
var RawFieldNames = []string{"Name", "Company", "Title", "Email", "Phone", "Status"}

// Summary is the completed result of one summarization request. Every
// section in prompts.SummarySections is present in Sections on any
// successful run, even when its generation degraded to an error
// marker.
type Summary struct {
	Sections   map[prompts.Section]string
	RawFields  map[string]string
	Duplicates models.DuplicateLeads
}

// Payload flattens the summary into the boundary shape: one mapping
// holding the four section keys, the raw-field keys, and the
// "Duplicate Leads" key. The duplicates value is either the ID list or
// the no-duplicates sentinel string.
func (s *Summary) Payload() map[string]interface{} {
	payload := make(map[string]interface{}, len(s.Sections)+len(s.RawFields)+1)
	for section, text := range s.Sections {
		payload[string(section)] = text
	}
	for field, value := range s.RawFields {
		payload[field] = value
	}
	if len(s.Duplicates.IDs) > 0 {
		payload[DuplicateLeadsKey] = s.Duplicates.IDs
	} else {
		payload[DuplicateLeadsKey] = models.NoDuplicatesSentinel
	}
	return payload
}

// rawFields extracts the verbatim lead fields for the summary.
func rawFields(lead *models.LeadRecord) map[string]string {
	return map[string]string{
		"Name":    lead.Name,
		"Company": lead.Company,
		"Title":   lead.Title,
		"Email":   lead.Email,
		"Phone":   lead.Phone,
		"Status":  lead.Status,
	}
}
