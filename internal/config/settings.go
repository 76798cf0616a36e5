package config

import (
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIURL         = "api_url"
	KeySocketURL      = "socket_url"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLanguage       = "app_language"
	KeyTheme          = "theme"
	KeyLastEmail      = "last_email"
	KeyLogLevel       = "log_level"
)

// Environment overrides, usually provided through a .env file
const (
	EnvAPIURL    = "PORTHEALTH_API_URL"
	EnvSocketURL = "PORTHEALTH_SOCKET_URL"
	EnvLogLevel  = "PORTHEALTH_LOG_LEVEL"
)

// Default values
const (
	DefaultAPIURL         = "http://localhost:4000"
	DefaultSocketURL      = "ws://localhost:4000/"
	DefaultRequestTimeout = 30
	DefaultLanguage       = "system"
	DefaultTheme          = "light"
	DefaultLogLevel       = "info"

	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIURL returns the REST base URL without a trailing slash
func (s *Settings) GetAPIURL() string {
	value := s.app.Preferences().String(KeyAPIURL)
	if value == "" {
		s.SetAPIURL(DefaultAPIURL)
		return DefaultAPIURL
	}
	return value
}

// SetAPIURL sets the REST base URL; invalid values are ignored
func (s *Settings) SetAPIURL(value string) bool {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if !validURL(value, "http", "https") {
		return false
	}
	s.app.Preferences().SetString(KeyAPIURL, value)
	return true
}

// GetSocketURL returns the chat socket URL
func (s *Settings) GetSocketURL() string {
	value := s.app.Preferences().String(KeySocketURL)
	if value == "" {
		s.SetSocketURL(DefaultSocketURL)
		return DefaultSocketURL
	}
	return value
}

// SetSocketURL sets the chat socket URL; invalid values are ignored
func (s *Settings) SetSocketURL(value string) bool {
	value = strings.TrimSpace(value)
	if !validURL(value, "ws", "wss") {
		return false
	}
	s.app.Preferences().SetString(KeySocketURL, value)
	return true
}

// GetRequestTimeoutSeconds returns the HTTP timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeoutSeconds sets the HTTP timeout, clamped to 1..120 seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRequestTimeout returns the HTTP timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetTheme returns the locally remembered theme ("light" or "dark").
// The server-side profile preference wins once a user logs in.
func (s *Settings) GetTheme() string {
	theme := s.app.Preferences().String(KeyTheme)
	if theme != "dark" {
		return DefaultTheme
	}
	return theme
}

// SetTheme remembers the theme; anything but "dark" means light
func (s *Settings) SetTheme(theme string) {
	if theme != "dark" {
		theme = DefaultTheme
	}
	s.app.Preferences().SetString(KeyTheme, theme)
}

// GetLastEmail returns the email of the last successful login
func (s *Settings) GetLastEmail() string {
	return s.app.Preferences().String(KeyLastEmail)
}

// SetLastEmail remembers the email used for login
func (s *Settings) SetLastEmail(email string) {
	s.app.Preferences().SetString(KeyLastEmail, strings.TrimSpace(email))
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, strings.ToLower(strings.TrimSpace(level)))
}

// ApplyEnvironment copies environment overrides into the preferences.
// It returns the keys that were applied.
func (s *Settings) ApplyEnvironment(getenv func(string) string) []string {
	var applied []string
	if v := getenv(EnvAPIURL); v != "" && s.SetAPIURL(v) {
		applied = append(applied, KeyAPIURL)
	}
	if v := getenv(EnvSocketURL); v != "" && s.SetSocketURL(v) {
		applied = append(applied, KeySocketURL)
	}
	if v := getenv(EnvLogLevel); v != "" {
		s.SetLogLevel(v)
		applied = append(applied, KeyLogLevel)
	}
	return applied
}

// ValidAPIURL reports whether value is an http(s) URL with a host
func ValidAPIURL(value string) bool {
	return validURL(strings.TrimRight(strings.TrimSpace(value), "/"), "http", "https")
}

// ValidSocketURL reports whether value is a ws(s) URL with a host
func ValidSocketURL(value string) bool {
	return validURL(strings.TrimSpace(value), "ws", "wss")
}

func validURL(raw string, schemes ...string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	for _, scheme := range schemes {
		if u.Scheme == scheme {
			return true
		}
	}
	return false
}
