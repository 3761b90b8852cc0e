package config

// DefaultBackendURL is the production training-service endpoint.
const DefaultBackendURL = "https://api.pitchside.app/v1"

// DefaultConfig returns the baseline configuration before environment
// overrides are applied.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		Backend: BackendConfig{
			BaseURL:   DefaultBackendURL,
			RateLimit: 60,
		},
	}
}
