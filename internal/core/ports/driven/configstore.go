package driven

// ConfigStore holds medreport's settings as flat dot-separated keys
// ("storage.backend", "limits.max_file_bytes"). The typed getters return
// the zero value when a key is absent or holds another type; callers
// that must tell the two apart use Get.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// Set and Unset write through to storage. Unsetting a missing key
	// is not an error.
	Set(key string, value any) error
	Unset(key string) error

	Save() error
	Load() error

	// Path is where the settings are stored, for display.
	Path() string
}
