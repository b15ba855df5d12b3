package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Catalog     CatalogConfig     `toml:"catalog"`
	Search      SearchConfig      `toml:"search"`
	Server      ServerConfig      `toml:"server"`
	Client      ClientConfig      `toml:"client"`
	Database    DatabaseConfig    `toml:"database"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Discogs DiscogsConfig `toml:"discogs"`
}

// DiscogsConfig contains the four OAuth 1.0a secrets used to sign catalog requests.
type DiscogsConfig struct {
	ConsumerKey      string `toml:"consumer_key"`
	ConsumerSecret   string `toml:"consumer_secret"`
	OAuthToken       string `toml:"oauth_token"`
	OAuthTokenSecret string `toml:"oauth_token_secret"`
}

// CatalogConfig contains upstream connection settings.
type CatalogConfig struct {
	BaseURL   string   `toml:"base_url"`
	UserAgent string   `toml:"user_agent"`
	Timeout   Duration `toml:"timeout"`
	RateLimit float64  `toml:"rate_limit"` // requests per second
	Burst     int      `toml:"burst"`
}

// SearchConfig contains the fixed parameters sent with every catalog search.
type SearchConfig struct {
	DefaultYear string `toml:"default_year"`
	Country     string `toml:"country"`
	Format      string `toml:"format"`
	Type        string `toml:"type"`
	PerPage     int    `toml:"per_page"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	ClientURL string `toml:"client_url"` // allowed CORS origin
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// ClientConfig contains settings for commands that talk to a running gateway.
type ClientConfig struct {
	APIURL  string `toml:"api_url"`
	LogPath string `toml:"log_path"`
}

// DatabaseConfig contains database connection settings.
//
// An empty Path keeps favourites in memory only.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// Duration wraps [time.Duration] so it can be written as "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: duration %q: %v", ErrInvalidConfig, text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides config values with environment variables reported by lookup.
//
// lookup is usually [os.LookupEnv]; tests pass a map-backed function.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DISCOGS_CONSUMER_KEY":       &c.Credentials.Discogs.ConsumerKey,
		"DISCOGS_CONSUMER_SECRET":    &c.Credentials.Discogs.ConsumerSecret,
		"DISCOGS_OAUTH_TOKEN":        &c.Credentials.Discogs.OAuthToken,
		"DISCOGS_OAUTH_TOKEN_SECRET": &c.Credentials.Discogs.OAuthTokenSecret,
		"DISCOGS_BASE_URL":           &c.Catalog.BaseURL,
		"CLIENT_URL":                 &c.Server.ClientURL,
		"SOC_API_URL":                &c.Client.APIURL,
		"SOC_DATABASE_PATH":          &c.Database.Path,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.Port = port
	}

	return nil
}

// Validate reports missing Discogs credentials. Only the gateway needs them.
func (d DiscogsConfig) Validate() error {
	var missing []string
	if d.ConsumerKey == "" {
		missing = append(missing, "consumer_key")
	}
	if d.ConsumerSecret == "" {
		missing = append(missing, "consumer_secret")
	}
	if d.OAuthToken == "" {
		missing = append(missing, "oauth_token")
	}
	if d.OAuthTokenSecret == "" {
		missing = append(missing, "oauth_token_secret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: discogs %v", ErrMissingCredentials, missing)
	}
	return nil
}
