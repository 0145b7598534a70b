package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type auth struct {
	LatencyMS int `mapstructure:"latency_ms"`
}

type Config struct {
	LogLevel  slog.Level `mapstructure:"log_level"`
	CartPath  string     `mapstructure:"cart_path"`
	PrefsPath string     `mapstructure:"prefs_path"`
	Theme     string     `mapstructure:"theme"`
	Auth      auth       `mapstructure:"auth"`
}

// AuthLatency is the simulated network delay for login and signup.
func (c Config) AuthLatency() time.Duration {
	return time.Duration(c.Auth.LatencyMS) * time.Millisecond
}

// Load reads the config file named by --config or the env override.
// A missing file is fine: defaults describe a fully working local setup.
func Load() Config {
	setDefaults()

	path, explicit := getConfigFilepath()
	viper.SetConfigFile(path)

	err := viper.ReadInConfig()
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			die(err)
		}
	}

	var cfg Config
	err = viper.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	))
	if err != nil {
		die(err)
	}

	return cfg
}

func setDefaults() {
	dataDir := defaultDataDir()
	viper.SetDefault("log_level", "info")
	viper.SetDefault("cart_path", filepath.Join(dataDir, "cart.json"))
	viper.SetDefault("prefs_path", filepath.Join(dataDir, "prefs.toml"))
	viper.SetDefault("theme", "Dracula")
	viper.SetDefault("auth.latency_ms", 800)
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "quirklo")
}

func getConfigFilepath() (path string, explicit bool) {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env, true
	}
	if *arg != "" {
		return *arg, true
	}
	return filepath.Join(defaultDataDir(), "config.yaml"), false
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}
