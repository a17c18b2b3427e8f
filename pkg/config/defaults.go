package config

// Default values written to a newly created configuration file.
const (
	DefaultURL     = "https://api.example.com"
	DefaultKey     = "abc123"
	DefaultSecret  = "def456"
	DefaultTimeout = 10
)

// Keys of the default configuration, in file order.
const (
	KeyURL     = "url"
	KeyKey     = "key"
	KeySecret  = "secret"
	KeyTimeout = "timeout"
)

// DefaultConfigData returns the built-in defaults used to seed a missing
// configuration file. Every call returns a new Mapping.
func DefaultConfigData() *Mapping {
	m := NewMapping()
	m.Set(KeyURL, StringValue(DefaultURL))
	m.Set(KeyKey, StringValue(DefaultKey))
	m.Set(KeySecret, StringValue(DefaultSecret))
	m.Set(KeyTimeout, IntValue(DefaultTimeout))
	return m
}
