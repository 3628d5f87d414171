package sheetstore

import (
	"fmt"
	"os"
)

// Config holds the configuration for the Google-backed store.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	MinRows            int
	MinCols            int
}

// DefaultConfig returns a Config with sensible defaults. The minimum sheet
// size guards append and batch writes against undersized sheets.
func DefaultConfig() Config {
	return Config{
		MinRows: 2000,
		MinCols: 40,
	}
}

// LoadFromEnv fills unset fields from the GOOGLE_SHEETS_* environment
// variables. Fields that already carry a value keep it, so configuration-file
// settings take precedence over the environment.
func (c *Config) LoadFromEnv() {
	if c.ClientID == "" {
		c.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		c.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if c.RefreshToken == "" {
		c.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if c.ServiceAccountPath == "" {
		c.ServiceAccountPath = os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")
	}
	if c.SpreadsheetID == "" {
		c.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("no authentication method configured")
	}
	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("multiple authentication methods configured; use either OAuth2 or service account")
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet id is required")
	}
	if c.MinRows < 0 || c.MinCols < 0 {
		return fmt.Errorf("minimum sheet size cannot be negative")
	}
	return nil
}
