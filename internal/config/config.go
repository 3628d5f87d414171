package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
)

// LoadSheetsConfig loads the remote-store configuration. Precedence:
// 1. Viper configuration (from config file or BOLSAO_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*)
// 3. Default values
func LoadSheetsConfig() (*sheetstore.Config, error) {
	config := sheetstore.DefaultConfig()

	if v := viper.GetString("sheets.service_account_path"); v != "" {
		config.ServiceAccountPath = ExpandPath(v)
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		config.SpreadsheetID = v
	}
	if v := viper.GetInt("sheets.min_rows"); v > 0 {
		config.MinRows = v
	}
	if v := viper.GetInt("sheets.min_cols"); v > 0 {
		config.MinCols = v
	}

	config.LoadFromEnv()
	config.ServiceAccountPath = ExpandPath(config.ServiceAccountPath)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// QueuePath returns the path of the offline-queue database, creating no
// files. Defaults to ~/.local/share/bolsao/fila.db.
func QueuePath() string {
	if v := viper.GetString("queue.db_path"); v != "" {
		return ExpandPath(v)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "fila.db"
	}
	return filepath.Join(home, ".local", "share", "bolsao", "fila.db")
}

// LetterTemplatePath returns the path of the HTML letter template.
func LetterTemplatePath() string {
	if v := viper.GetString("letter.template_path"); v != "" {
		return ExpandPath(v)
	}
	return "carta.html"
}
