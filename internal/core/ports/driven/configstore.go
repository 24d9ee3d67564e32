package driven

// ConfigStore provides access to persisted CLI settings such as the
// calibration directory. Keys use dot notation ("calibration.dir").
type ConfigStore interface {
	// Get returns the raw value for key and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns the value for key as a string, or "" when the
	// key is absent or holds a non-string value.
	GetString(key string) string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
