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

	"github.com/joho/godotenv"
	"github.com/zhubert/dialogo/internal/chat"
	perrors "github.com/zhubert/dialogo/internal/errors"
)

// Limits for the recording capture window, in seconds.
const (
	MinRecordWindow     = 1
	MaxRecordWindow     = 60
	DefaultRecordWindow = 3
)

// Environment variables that override the config file.
const (
	EnvTheme          = "DIALOGO_THEME"
	EnvRecordWindow   = "DIALOGO_RECORD_WINDOW"
	EnvDurationPolicy = "DIALOGO_DURATION_POLICY"
	EnvNotifications  = "DIALOGO_NOTIFICATIONS"
)

// Config holds the user preferences. Conversations and messages are never
// stored here.
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a recording is sent
	RecordWindowSeconds  int    `json:"record_window_seconds,omitempty"` // Capture window of voice/video recordings
	DurationPolicy       string `json:"duration_policy,omitempty"`       // "at-arm" or "live"
	WelcomeShown         bool   `json:"welcome_shown,omitempty"`         // Whether the help modal was shown on first launch

	mu       sync.RWMutex
	filePath string

	// Fields replaced by ApplyEnv, and the file values they replaced. Save
	// writes the file values until a setter changes the field.
	overridden map[string]bool
	fileValues fileConfig
}

// fileConfig is the on-disk form of Config.
type fileConfig struct {
	Theme                string `json:"theme,omitempty"`
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"`
	RecordWindowSeconds  int    `json:"record_window_seconds,omitempty"`
	DurationPolicy       string `json:"duration_policy,omitempty"`
	WelcomeShown         bool   `json:"welcome_shown,omitempty"`
}

// Keys of the fields that can be overridden from the environment.
const (
	fieldTheme          = "theme"
	fieldNotifications  = "notifications_enabled"
	fieldRecordWindow   = "record_window_seconds"
	fieldDurationPolicy = "duration_policy"
)

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dialogo"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns an unsaved config with default values.
func Default() *Config {
	return &Config{RecordWindowSeconds: DefaultRecordWindow}
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("~/.dialogo", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults bound to path if the
// file doesn't exist yet.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	if cfg.RecordWindowSeconds == 0 {
		cfg.RecordWindowSeconds = DefaultRecordWindow
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config values are in range.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.RecordWindowSeconds < MinRecordWindow || c.RecordWindowSeconds > MaxRecordWindow {
		return perrors.ConfigInvalid(fmt.Sprintf("record_window_seconds must be between %d and %d, got %d",
			MinRecordWindow, MaxRecordWindow, c.RecordWindowSeconds))
	}
	if _, err := chat.ParseDurationPolicy(c.DurationPolicy); err != nil {
		return perrors.ConfigInvalid(err.Error())
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return perrors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c.persistedValues(), "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// persistedValues is what Save writes: the current values, with fields still
// carrying an environment override reverted to their file values.
// Callers must hold c.mu.
func (c *Config) persistedValues() fileConfig {
	out := fileConfig{
		Theme:                c.Theme,
		NotificationsEnabled: c.NotificationsEnabled,
		RecordWindowSeconds:  c.RecordWindowSeconds,
		DurationPolicy:       c.DurationPolicy,
		WelcomeShown:         c.WelcomeShown,
	}
	if c.overridden[fieldTheme] {
		out.Theme = c.fileValues.Theme
	}
	if c.overridden[fieldNotifications] {
		out.NotificationsEnabled = c.fileValues.NotificationsEnabled
	}
	if c.overridden[fieldRecordWindow] {
		out.RecordWindowSeconds = c.fileValues.RecordWindowSeconds
	}
	if c.overridden[fieldDurationPolicy] {
		out.DurationPolicy = c.fileValues.DurationPolicy
	}
	return out
}

// markOverridden remembers the file value of a field before the environment
// replaces it. Callers must hold c.mu.
func (c *Config) markOverridden(field string) {
	if c.overridden == nil {
		c.overridden = make(map[string]bool)
	}
	if c.overridden[field] {
		return
	}
	c.overridden[field] = true
	switch field {
	case fieldTheme:
		c.fileValues.Theme = c.Theme
	case fieldNotifications:
		c.fileValues.NotificationsEnabled = c.NotificationsEnabled
	case fieldRecordWindow:
		c.fileValues.RecordWindowSeconds = c.RecordWindowSeconds
	case fieldDurationPolicy:
		c.fileValues.DurationPolicy = c.DurationPolicy
	}
}

// Path returns the file the config is saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// LoadDotEnv loads KEY=value pairs from the given .env files (".env" when none
// are given) into the process environment. Missing files are ignored and
// variables already set are left alone.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return perrors.ConfigLoadFailed(strings.Join(present, ","), err)
	}
	return nil
}

// ApplyEnv overrides config values from DIALOGO_* variables. lookup is
// usually os.LookupEnv. Overrides are validated and never saved; a field is
// persisted again once a setter changes it.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	c.mu.Lock()
	if v, ok := lookup(EnvTheme); ok && strings.TrimSpace(v) != "" {
		c.markOverridden(fieldTheme)
		c.Theme = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDurationPolicy); ok && strings.TrimSpace(v) != "" {
		c.markOverridden(fieldDurationPolicy)
		c.DurationPolicy = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvRecordWindow); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			c.mu.Unlock()
			return perrors.ConfigInvalid(fmt.Sprintf("%s: %v", EnvRecordWindow, err))
		}
		c.markOverridden(fieldRecordWindow)
		c.RecordWindowSeconds = n
	}
	if v, ok := lookup(EnvNotifications); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			c.mu.Unlock()
			return perrors.ConfigInvalid(fmt.Sprintf("%s: %v", EnvNotifications, err))
		}
		c.markOverridden(fieldNotifications)
		c.NotificationsEnabled = b
	}
	c.mu.Unlock()

	return c.Validate()
}

// HasSeenWelcome returns whether the welcome help has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the welcome help as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if theme != c.Theme {
		delete(c.overridden, fieldTheme)
	}
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if enabled != c.NotificationsEnabled {
		delete(c.overridden, fieldNotifications)
	}
	c.NotificationsEnabled = enabled
}

// GetRecordWindow returns the recording capture window.
func (c *Config) GetRecordWindow() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.RecordWindowSeconds <= 0 {
		return DefaultRecordWindow * time.Second
	}
	return time.Duration(c.RecordWindowSeconds) * time.Second
}

// SetRecordWindowSeconds sets the capture window, clamped to the allowed range.
func (c *Config) SetRecordWindowSeconds(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seconds = min(max(seconds, MinRecordWindow), MaxRecordWindow)
	if seconds != c.RecordWindowSeconds {
		delete(c.overridden, fieldRecordWindow)
	}
	c.RecordWindowSeconds = seconds
}

// GetDurationPolicy returns the parsed duration policy. Invalid values fall
// back to at-arm.
func (c *Config) GetDurationPolicy() chat.DurationPolicy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, _ := chat.ParseDurationPolicy(c.DurationPolicy)
	return p
}

// SetDurationPolicy sets the duration policy.
func (c *Config) SetDurationPolicy(p chat.DurationPolicy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.String() != c.DurationPolicy {
		delete(c.overridden, fieldDurationPolicy)
	}
	c.DurationPolicy = p.String()
}
