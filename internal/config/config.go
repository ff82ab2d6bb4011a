package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sendcast/sendcast-cli/internal/api"
)

// Defaults for the bulk-operation safety engine.
const (
	DefaultConfirmThreshold = 10
	DefaultSampleSize       = 10
)

// Settings is the on-disk shape of config.yaml.
type Settings struct {
	BaseURL          string `yaml:"base_url,omitempty"`
	ConfirmThreshold int    `yaml:"confirm_threshold,omitempty"`
	SampleSize       int    `yaml:"sample_size,omitempty"`
}

// Dir returns the sendcast config directory path.
// Respects SENDCAST_CONFIG_DIR if set.
func Dir() (string, error) {
	if dir := os.Getenv("SENDCAST_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "sendcast"), nil
}

// EnsureDir creates the config directory if it doesn't exist.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// Init wires viper to the config file and SENDCAST_* environment.
// Priority: env > config file > default. A missing file is fine.
func Init(cfgFile string) error {
	viper.SetEnvPrefix("SENDCAST")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	viper.SetDefault("base_url", api.DefaultBaseURL)
	viper.SetDefault("confirm_threshold", DefaultConfirmThreshold)
	viper.SetDefault("sample_size", DefaultSampleSize)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(dir)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// BaseURL returns the API endpoint to talk to.
func BaseURL() string {
	return viper.GetString("base_url")
}

// ConfirmThreshold returns the item count at which non-dangerous bulk
// operations start requiring confirmation.
func ConfirmThreshold() int {
	if n := viper.GetInt("confirm_threshold"); n > 0 {
		return n
	}
	return DefaultConfirmThreshold
}

// SampleSize returns the default number of preview rows.
func SampleSize() int {
	if n := viper.GetInt("sample_size"); n > 0 {
		return n
	}
	return DefaultSampleSize
}

// AutoConfirm reports whether SENDCAST_YES is set to a truthy value.
// When true, every confirmation prompt is bypassed process-wide.
func AutoConfirm() bool {
	return Truthy(os.Getenv("SENDCAST_YES"))
}

// Truthy interprets boolean-ish environment values.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Save writes settings to config.yaml with restrictive permissions.
func Save(s *Settings) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0600)
}

// LoadSettings reads config.yaml for editing. Missing file yields zero settings.
func LoadSettings() (*Settings, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	var s Settings
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return &s, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
