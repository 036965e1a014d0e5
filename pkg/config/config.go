package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/catalog"
	ConfigFileName    = "catalog.yml"
)

// ValidLogLevels is the list of accepted log_level values
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// CatalogConfig holds all catalog configuration settings
type CatalogConfig struct {
	// LogLevel is the minimum level of application logs
	LogLevel string `yaml:"log_level" json:"log_level"`

	// SQLLog enables GORM statement logging
	SQLLog bool `yaml:"sql_log" json:"sql_log"`

	// LocationTypes is the list of location types accepted on registration
	LocationTypes []string `yaml:"location_types" json:"location_types"`

	// PopupPollIntervalMS is how often a login popup is checked for closure, in milliseconds
	PopupPollIntervalMS int `yaml:"popup_poll_interval_ms" json:"popup_poll_interval_ms"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *CatalogConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *CatalogConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *CatalogConfig {
	return &CatalogConfig{
		LogLevel:            "info",
		SQLLog:              false,
		LocationTypes:       []string{"file"},
		PopupPollIntervalMS: 100,
		sources:             make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*CatalogConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CATALOG_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig CatalogConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{"log_level", "sql_log", "location_types", "popup_poll_interval_ms"}
}

func (c *CatalogConfig) applyFileConfig(file *CatalogConfig) {
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
	if file.SQLLog {
		c.SQLLog = true
		c.sources["sql_log"] = "file"
	}
	if len(file.LocationTypes) > 0 {
		c.LocationTypes = file.LocationTypes
		c.sources["location_types"] = "file"
	}
	if file.PopupPollIntervalMS != 0 {
		c.PopupPollIntervalMS = file.PopupPollIntervalMS
		c.sources["popup_poll_interval_ms"] = "file"
	}
}

func (c *CatalogConfig) applyEnvConfig() {
	if val := os.Getenv("CATALOG_LOG_LEVEL"); val != "" {
		c.LogLevel = strings.ToLower(val)
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("CATALOG_SQL_LOG"); val != "" {
		c.SQLLog = val == "true" || val == "1"
		c.sources["sql_log"] = "environment"
	}
	if val := os.Getenv("CATALOG_LOCATION_TYPES"); val != "" {
		c.LocationTypes = splitAndTrim(val)
		c.sources["location_types"] = "environment"
	}
	if val := os.Getenv("CATALOG_POPUP_POLL_INTERVAL_MS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PopupPollIntervalMS = i
			c.sources["popup_poll_interval_ms"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *CatalogConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *CatalogConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// PopupPollInterval returns the popup poll interval as a duration
func (c *CatalogConfig) PopupPollInterval() time.Duration {
	return time.Duration(c.PopupPollIntervalMS) * time.Millisecond
}

// IsLocationTypeAllowed checks if locations of the given type may be registered
func (c *CatalogConfig) IsLocationTypeAllowed(locationType string) bool {
	for _, t := range c.LocationTypes {
		if t == locationType {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *CatalogConfig) Validate() error {
	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level value: %s", c.LogLevel)
	}

	if len(c.LocationTypes) == 0 {
		return fmt.Errorf("location_types must not be empty")
	}

	if c.PopupPollIntervalMS <= 0 {
		return fmt.Errorf("invalid popup_poll_interval_ms value: %d", c.PopupPollIntervalMS)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *CatalogConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "sql_log", Value: strconv.FormatBool(c.SQLLog), Source: c.Source("sql_log")},
		{Name: "location_types", Value: strings.Join(c.LocationTypes, ","), Source: c.Source("location_types")},
		{Name: "popup_poll_interval_ms", Value: strconv.Itoa(c.PopupPollIntervalMS), Source: c.Source("popup_poll_interval_ms")},
	}
}

// FormatText returns a text representation of the configuration
func (c *CatalogConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *CatalogConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
