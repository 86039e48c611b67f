package model

import "time"

// Config is the complete NameLens configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Registry    RegistryConfig    `yaml:"registry" mapstructure:"registry"`
	Risk        RiskConfig        `yaml:"risk" mapstructure:"risk"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the registry HTTP client
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig controls check-result caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls the worker pool and rate limiting
type ConcurrencyConfig struct {
	CheckWorkers      int     `yaml:"check_workers" mapstructure:"check_workers"`
	BatchWorkers      int     `yaml:"batch_workers" mapstructure:"batch_workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// RegistryConfig selects which namespaces to query and how
type RegistryConfig struct {
	Namespaces    []string `yaml:"namespaces" mapstructure:"namespaces"`
	DomainTLDs    []string `yaml:"domain_tlds" mapstructure:"domain_tlds"`
	VariantProbes int      `yaml:"variant_probes" mapstructure:"variant_probes"` // Fuzzy variants queried per run
	CorpusPath    string   `yaml:"corpus_path" mapstructure:"corpus_path"`
}

// RiskConfig controls opinion scoring
type RiskConfig struct {
	Tolerance      RiskTolerance `yaml:"tolerance" mapstructure:"tolerance"`
	IntakeChannels []string      `yaml:"intake_channels" mapstructure:"intake_channels"`
	ReservationURL string        `yaml:"reservation_url" mapstructure:"reservation_url"`
}

// LLMConfig controls the optional commentary provider
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "NameLens/0.2 (+https://github.com/namelens/namelens)",
			MaxBodyBytes: 1_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "", // Resolved to ~/.namelens/cache at runtime
			TTL:     6 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			CheckWorkers:      8,
			BatchWorkers:      4,
			RequestsPerSecond: 4,
			Burst:             5,
		},
		Registry: RegistryConfig{
			Namespaces: []string{
				NamespaceGitHub, NamespaceNPM, NamespacePyPI, NamespaceDomain,
				NamespaceCrates, NamespaceDockerHub, NamespaceHuggingFace,
			},
			DomainTLDs:    []string{"com", "dev", "io"},
			VariantProbes: 12,
		},
		Risk: RiskConfig{
			Tolerance: ToleranceConservative,
			IntakeChannels: []string{
				NamespaceGitHub, NamespaceNPM, NamespacePyPI, NamespaceDomain,
				NamespaceCrates, NamespaceDockerHub, NamespaceHuggingFace,
			},
		},
		LLM: LLMConfig{
			Provider:  "",
			MaxTokens: 800,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
