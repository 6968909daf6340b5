package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Declaration string `mapstructure:"declaration"`
	Output      string `mapstructure:"output"`
	Minify      bool   `mapstructure:"minify"`
	Variables   bool   `mapstructure:"variables"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// environment variables override the file, e.g. THEMEKIT_MINIFY=true
const envPrefix = "THEMEKIT"

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".themekit")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

// points config at another file, used by --config
func SetConfigFile(path string) {
	configFile = path
	configDir = filepath.Dir(path)
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults make every key visible to Unmarshal and env lookup
	defaults := GetDefaultConfig()
	v.SetDefault("declaration", defaults.Declaration)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("minify", defaults.Minify)
	v.SetDefault("variables", defaults.Variables)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	return v
}

// loads config from file, then environment
func LoadConfig() (*Config, error) {
	v := newViper()

	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("declaration", cfg.Declaration)
	v.Set("output", cfg.Output)
	v.Set("minify", cfg.Minify)
	v.Set("variables", cfg.Variables)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_format", cfg.LogFormat)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		Declaration: "",
		Output:      "",
		Minify:      false,
		Variables:   false,
		LogLevel:    "warn",
		LogFormat:   "console",
	}
}

// updates the default declaration path in config file
func UpdateDeclaration(path string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Declaration = path
	return SaveConfig(cfg)
}
