package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-scorer"

	defaultDatabase     = "resume-scorer.db"
	defaultProviderURL  = "https://api.resume-score.example.com"
	defaultPollAttempts = 10
	defaultPollInterval = 2 * time.Second
)

type Config struct {
	UserAgent string          `mapstructure:"user-agent"`
	Database  string          `mapstructure:"database"`
	Provider  *ProviderConfig `mapstructure:"provider"`
	Tika      *TikaConfig     `mapstructure:"tika"`
}

type ProviderConfig struct {
	URL          string        `mapstructure:"url"`
	APIKeyFile   string        `mapstructure:"api-key-file"`
	PollInterval time.Duration `mapstructure:"poll-interval"`
	PollAttempts int           `mapstructure:"poll-attempts"`
}

type TikaConfig struct {
	URL string `mapstructure:"url"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-scorer analyzes resumes for quality and ATS compatibility",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("provider.api-key-file", "RESUME_SCORER_PROVIDER_KEY_FILE"); err != nil {
		log.Fatalf("binding RESUME_SCORER_PROVIDER_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: every key has a default. A file that
	// exists but does not parse is fatal, as is an explicit --config path
	// that cannot be read.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Database == "" {
		config.Database = defaultDatabase
	}
	if config.Provider == nil {
		config.Provider = &ProviderConfig{}
	}
	if config.Provider.URL == "" {
		config.Provider.URL = defaultProviderURL
	}
	if config.Provider.PollInterval <= 0 {
		config.Provider.PollInterval = defaultPollInterval
	}
	if config.Provider.PollAttempts <= 0 {
		config.Provider.PollAttempts = defaultPollAttempts
	}

	return config, nil
}
