package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/0xwitty/self/internal/log"
)

// Configuration holds the verification client configuration
type Configuration struct {
	Network             string       `mapstructure:"Network" tip:"Network name the hub is deployed on"`
	NetworkResolverPath string       `mapstructure:"NetworkResolverPath" tip:"Path to the network resolver settings file"`
	Verification        Verification `mapstructure:"Verification"`
	Policy              Policy       `mapstructure:"Policy"`
	Log                 Log          `mapstructure:"Log"`
}

// Policy holds the disclosure policy applied before the first verification.
// Zero values leave the corresponding check disabled.
type Policy struct {
	MinimumAge        int      `mapstructure:"MinimumAge" tip:"Minimum age check (1..100), 0 disables"`
	Nationality       string   `mapstructure:"Nationality" tip:"Expected nationality, empty disables"`
	ExcludedCountries []string `mapstructure:"ExcludedCountries" tip:"Up to 40 excluded 3-letter country codes"`
	PassportNoOFAC    bool     `mapstructure:"PassportNoOfac" tip:"Enable the passport number OFAC check"`
	NameAndDobOFAC    bool     `mapstructure:"NameAndDobOfac" tip:"Enable the name and date of birth OFAC check"`
	NameAndYobOFAC    bool     `mapstructure:"NameAndYobOfac" tip:"Enable the name and year of birth OFAC check"`
}

// Verification holds the disclosure policy endpoint binding
type Verification struct {
	Endpoint   string `mapstructure:"Endpoint" tip:"Endpoint the scope hash is bound to"`
	Scope      string `mapstructure:"Scope" tip:"Application scope string"`
	UserIDType string `mapstructure:"UserIdType" tip:"User identifier encoding (uuid or hex)"`
}

// Log holds runtime log configuration
//
// Level: minimum level to log (-4: Debug, 0: Info, 4: Warning, 8: Error)
// Mode: log format (1: JSON, 2: Text)
type Log struct {
	Level int `mapstructure:"Level" tip:"Minimum level to log: (-4:Debug, 0:Info, 4:Warning, 8:Error)"`
	Mode  int `mapstructure:"Mode" tip:"Log format (1: JSON, 2:Structured text)"`
}

// Load reads the configuration from file and environment.
func Load(fileName string) (*Configuration, error) {
	bindEnv()
	pathFlag := viper.GetString("config")
	if _, err := os.Stat(pathFlag); err == nil {
		ext := strings.TrimPrefix(filepath.Ext(pathFlag), ".")
		name := strings.Split(filepath.Base(pathFlag), ".")[0]
		viper.AddConfigPath(".")
		viper.SetConfigName(name)
		viper.SetConfigType(ext)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		if fileName == "" {
			viper.SetConfigName("config")
		} else {
			viper.SetConfigName(fileName)
		}
	}

	config := &Configuration{
		Network: "celo",
		Log: Log{
			Level: log.LevelInfo,
			Mode:  log.OutputText,
		},
	}
	ctx := context.Background()
	if err := viper.ReadInConfig(); err != nil {
		log.Info(ctx, "config file not read, using defaults and environment", "err", err.Error())
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := config.sanitize(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Configuration) sanitize() error {
	if c.Verification.Scope == "" {
		return fmt.Errorf("Verification.Scope is required")
	}
	if c.Verification.Endpoint == "" {
		return fmt.Errorf("Verification.Endpoint is required")
	}
	switch c.Verification.UserIDType {
	case "", "uuid", "hex":
	default:
		return fmt.Errorf("Verification.UserIdType must be uuid or hex, got %q", c.Verification.UserIDType)
	}
	return nil
}

func bindEnv() {
	viper.SetEnvPrefix("SELF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = viper.BindEnv("config", "SELF_CONFIG_PATH")
	_ = viper.BindEnv("Network", "SELF_NETWORK")
	_ = viper.BindEnv("NetworkResolverPath", "SELF_NETWORK_RESOLVER_PATH")
	_ = viper.BindEnv("Verification.Endpoint", "SELF_VERIFICATION_ENDPOINT")
	_ = viper.BindEnv("Verification.Scope", "SELF_VERIFICATION_SCOPE")
	_ = viper.BindEnv("Verification.UserIdType", "SELF_VERIFICATION_USER_ID_TYPE")
	_ = viper.BindEnv("Log.Level", "SELF_LOG_LEVEL")
	_ = viper.BindEnv("Log.Mode", "SELF_LOG_MODE")
	viper.AutomaticEnv()
}
