package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/avalingo/config"
	ConfigFileName    = "avalingo.yml"
)

// AvalingoConfig holds all Avalingo server configuration settings
type AvalingoConfig struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// UserTokenTTLSeconds is the TTL for user tokens in seconds
	UserTokenTTLSeconds int `yaml:"user_token_ttl" json:"user_token_ttl"`

	// DefaultRole is the role granted to users with no explicit assignment
	DefaultRole string `yaml:"default_role" json:"default_role"`

	// QuestionsPerLevel is how many bank questions a placement attempt
	// draws per CEFR level
	QuestionsPerLevel int `yaml:"questions_per_level" json:"questions_per_level"`

	// BankPath is the default directory of question bank YAML documents
	BankPath string `yaml:"bank_path" json:"bank_path"`

	// TelemetryEnabled enables error telemetry
	TelemetryEnabled bool `yaml:"telemetry_enabled" json:"telemetry_enabled"`

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
	globalConfig *AvalingoConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *AvalingoConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
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
func newDefault() *AvalingoConfig {
	return &AvalingoConfig{
		TrustedProxies:      []string{},
		APIListLimitMax:     1000,
		UserTokenTTLSeconds: 3600,
		DefaultRole:         "student",
		QuestionsPerLevel:   4,
		BankPath:            "",
		TelemetryEnabled:    false,
		sources:             make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*AvalingoConfig, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("AVALINGO_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig AvalingoConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "api_list_limit_max", "user_token_ttl",
		"default_role", "questions_per_level", "bank_path",
		"telemetry_enabled",
	}
}

func (c *AvalingoConfig) applyFileConfig(file *AvalingoConfig) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
	if file.UserTokenTTLSeconds != 0 {
		c.UserTokenTTLSeconds = file.UserTokenTTLSeconds
		c.sources["user_token_ttl"] = "file"
	}
	if file.DefaultRole != "" {
		c.DefaultRole = file.DefaultRole
		c.sources["default_role"] = "file"
	}
	if file.QuestionsPerLevel != 0 {
		c.QuestionsPerLevel = file.QuestionsPerLevel
		c.sources["questions_per_level"] = "file"
	}
	if file.BankPath != "" {
		c.BankPath = file.BankPath
		c.sources["bank_path"] = "file"
	}
}

func (c *AvalingoConfig) applyEnvConfig() {
	if val := os.Getenv("AVALINGO_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("AVALINGO_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("AVALINGO_USER_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.UserTokenTTLSeconds = i
			c.sources["user_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("AVALINGO_DEFAULT_ROLE"); val != "" {
		c.DefaultRole = val
		c.sources["default_role"] = "environment"
	}
	if val := os.Getenv("AVALINGO_QUESTIONS_PER_LEVEL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.QuestionsPerLevel = i
			c.sources["questions_per_level"] = "environment"
		}
	}
	if val := os.Getenv("AVALINGO_BANK_PATH"); val != "" {
		c.BankPath = val
		c.sources["bank_path"] = "environment"
	}
	if val := os.Getenv("AVALINGO_TELEMETRY_ENABLED"); val != "" {
		c.TelemetryEnabled = val == "true" || val == "1"
		c.sources["telemetry_enabled"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *AvalingoConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *AvalingoConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// UserTokenTTL returns the user token TTL as a duration
func (c *AvalingoConfig) UserTokenTTL() time.Duration {
	return time.Duration(c.UserTokenTTLSeconds) * time.Second
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *AvalingoConfig) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *AvalingoConfig) Validate() error {
	// Validate trusted proxies are valid CIDR ranges
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.APIListLimitMax < 1 {
		return fmt.Errorf("api_list_limit_max must be at least 1, got %d", c.APIListLimitMax)
	}
	if c.UserTokenTTLSeconds < 1 {
		return fmt.Errorf("user_token_ttl must be at least 1 second, got %d", c.UserTokenTTLSeconds)
	}
	if c.DefaultRole == "" {
		return fmt.Errorf("default_role must not be empty")
	}
	if c.QuestionsPerLevel < 1 {
		return fmt.Errorf("questions_per_level must be at least 1, got %d", c.QuestionsPerLevel)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *AvalingoConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.Source("api_list_limit_max")},
		{Name: "user_token_ttl", Value: strconv.Itoa(c.UserTokenTTLSeconds), Source: c.Source("user_token_ttl")},
		{Name: "default_role", Value: c.DefaultRole, Source: c.Source("default_role")},
		{Name: "questions_per_level", Value: strconv.Itoa(c.QuestionsPerLevel), Source: c.Source("questions_per_level")},
		{Name: "bank_path", Value: c.BankPath, Source: c.Source("bank_path")},
		{Name: "telemetry_enabled", Value: strconv.FormatBool(c.TelemetryEnabled), Source: c.Source("telemetry_enabled")},
	}
}

// FormatText returns a text representation of the configuration
func (c *AvalingoConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *AvalingoConfig) FormatJSON() (string, error) {
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
