package cmd

import (
	"context"
	"log"

	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/provider"
	"github.com/spigell/resume-scorer/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scoreURLCmd = &cobra.Command{
	Use:   "score-url <resume-url>",
	Short: "Score a hosted resume through the remote provider",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scoreURL(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreURLCmd)

	scoreURLCmd.Flags().StringP("job-description", "J", "", "file with a job description to send along")
	scoreURLCmd.Flags().BoolP("auto-approve", "y", false, "skip the interactive actions after printing the report")
}

func scoreURL(cmd *cobra.Command, resumeURL string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	jobDescription, err := readOptionalFile(cmd, "job-description")
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err))
	}

	adapter := buildAdapter(config, logger)

	breakdown, err := adapter.ScoreResumeByURL(ctx, resumeURL, jobDescription)
	if err != nil {
		logger.Fatal("remote scoring failed", zap.Error(err))
	}

	logger.Info("remote scoring complete",
		zap.String("url", resumeURL),
		zap.Int("overall_score", breakdown.OverallScore),
	)

	printReport(breakdown, false)
}

// buildAdapter wires the provider client and the mock fallback. A missing or
// unreadable key file means "provider not configured" and is not fatal: the
// adapter then scores locally.
func buildAdapter(config *Config, logger *zap.Logger) *provider.Adapter {
	var client *provider.Client

	key, err := secrets.Load("provider api key", config.Provider.APIKeyFile)
	if err != nil {
		logger.Warn("provider key unavailable; remote scoring will use the local mock",
			zap.Error(err),
			zap.String("hint", "set RESUME_SCORER_PROVIDER_KEY_FILE or the provider.api-key-file config key"),
		)
	} else {
		client = provider.NewClient(config.Provider.URL, key, logger)
		if config.UserAgent != "" {
			client.UserAgent = config.UserAgent
		}
	}

	adapter := provider.NewAdapter(client, provider.NewMockScorer(nil), logger)
	adapter.PollInterval = config.Provider.PollInterval
	adapter.PollAttempts = config.Provider.PollAttempts

	return adapter
}
