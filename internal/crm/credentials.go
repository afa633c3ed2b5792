package crm

import (
	"encoding/json"
	"fmt"
	"os"
)

// Credentials holds the contents of the local CRM credentials file
// (login.json). Session establishment happens outside this service; a
// login step writes the session ID here and the query client presents
// it as a bearer token.
type Credentials struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	SecurityToken string `json:"security_token"`
	SessionID     string `json:"session_id"`
}

// LoadCredentials reads and parses the credentials file.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if creds.SessionID == "" {
		return nil, fmt.Errorf("credentials file %s has no session_id", path)
	}

	return &creds, nil
}
