package types

// HistoryConfig holds settings for the run history ledger.
type HistoryConfig struct {
	// Path is the SQLite database file (default ".tabledump/history.db").
	Path string `json:"path" yaml:"path"`

	// Enabled controls whether runs are recorded at all (default true).
	Enabled bool `json:"enabled" yaml:"enabled"`
}
