package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// QueryClient executes read-only SOQL queries against the CRM. The
// store depends on this interface so tests can substitute canned
// results without a live session.
type QueryClient interface {
	Query(ctx context.Context, soql string) (*QueryResult, error)
}

// QueryResult is the CRM's wire shape for a query: a row count plus an
// ordered list of field mappings.
type QueryResult struct {
	TotalSize int      `json:"totalSize"`
	Done      bool     `json:"done"`
	Records   []Record `json:"records"`
}

// Record is one row of a query result. Relationship fields come back
// as nested objects, so values are addressed with dotted paths such as
// "Campaign.Name".
type Record map[string]interface{}

// StringField returns the value at a dotted field path rendered as a
// string. Nulls, missing fields, and non-leaf path hits all return "".
func (r Record) StringField(path string) string {
	var cur interface{} = map[string]interface{}(r)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			if rec, ok := cur.(Record); ok {
				m = map[string]interface{}(rec)
			} else {
				return ""
			}
		}
		cur, ok = m[part]
		if !ok || cur == nil {
			return ""
		}
	}
	switch v := cur.(type) {
	case string:
		return v
	case float64:
		// Integral CRM numbers (employee counts) arrive as float64.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return ""
	}
}

// RESTClient is a hand-rolled HTTP client for the CRM's query endpoint.
// It holds a pre-established session; login and token refresh happen
// outside this package.
type RESTClient struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

// NewRESTClient creates a query client for the given instance URL and
// session ID. apiVersion is the CRM REST API version, e.g. "59.0".
func NewRESTClient(instanceURL, apiVersion, sessionID string) *RESTClient {
	instanceURL = strings.TrimRight(instanceURL, "/")

	return &RESTClient{
		baseURL:   fmt.Sprintf("%s/services/data/v%s", instanceURL, apiVersion),
		sessionID: sessionID,
		client:    &http.Client{},
	}
}

// Query executes one SOQL query and decodes the result.
func (c *RESTClient) Query(ctx context.Context, soql string) (*QueryResult, error) {
	requestURL := fmt.Sprintf("%s/query?q=%s", c.baseURL, url.QueryEscape(soql))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+c.sessionID)
	req.Header.Add("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("query failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode query result: %w", err)
	}

	return &result, nil
}

// escapeSOQLString escapes single quotes and backslashes in a value
// interpolated into a SOQL string literal.
func escapeSOQLString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
