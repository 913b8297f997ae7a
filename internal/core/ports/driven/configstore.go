package driven

// ConfigStore provides access to persisted application configuration.
// Keys are dot-notation paths ("headset.gain", "modules.seed"); typed
// getters fall back to the zero value on a missing or mistyped key so
// callers can layer their own defaults.
type ConfigStore interface {
	// Get retrieves a raw value by key, reporting whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when absent or mistyped.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when absent or mistyped.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when absent or mistyped.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice, or nil when absent or
	// mistyped.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save writes the current configuration to storage.
	Save() error

	// Load re-reads the configuration from storage, replacing in-memory
	// state. Used after external edits to the underlying file.
	Load() error

	// Path returns the location of the backing storage.
	Path() string
}
