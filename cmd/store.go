package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/resume"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage stored resume documents",
}

var storeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a student's resume document",
	Run: func(cmd *cobra.Command, _ []string) {
		withStore(cmd, func(ctx context.Context, store *resume.Store, studentID string, logger *zap.Logger) error {
			path := cmd.Flag("file").Value.String()
			if path == "" {
				return fmt.Errorf("--file with the resume document json is required")
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var data resume.Data
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("parsing resume document: %w", err)
			}

			doc, err := store.Save(ctx, &resume.Document{
				StudentID:    studentID,
				Data:         data,
				TemplateUsed: cmd.Flag("template").Value.String(),
			})
			if err != nil {
				return err
			}

			logger.Info("resume saved",
				zap.String("student", studentID),
				zap.Int("version", doc.Version),
			)
			return nil
		})
	},
}

var storeSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Mark a student's resume as submitted",
	Run: func(cmd *cobra.Command, _ []string) {
		withStore(cmd, func(ctx context.Context, store *resume.Store, studentID string, logger *zap.Logger) error {
			doc, err := store.MarkSubmitted(ctx, studentID)
			if err != nil {
				return err
			}

			logger.Info("resume submitted",
				zap.String("student", studentID),
				zap.Timep("submitted_at", doc.SubmittedAt),
			)
			return nil
		})
	},
}

var storeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a student's stored resume and its text projection",
	Run: func(cmd *cobra.Command, _ []string) {
		withStore(cmd, func(ctx context.Context, store *resume.Store, studentID string, _ *zap.Logger) error {
			doc, err := store.FindByStudent(ctx, studentID)
			if err != nil {
				return err
			}

			pretty, _ := json.MarshalIndent(doc, "", "  ")
			fmt.Println(string(pretty))
			fmt.Println()
			fmt.Println(resume.ProjectToText(doc))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeSaveCmd, storeSubmitCmd, storeShowCmd)

	storeCmd.PersistentFlags().StringP("student", "s", "", "student id owning the resume")
	storeSaveCmd.Flags().StringP("file", "f", "", "json file with the structured resume document")
	storeSaveCmd.Flags().StringP("template", "t", "", "template the resume was built with")
}

// withStore handles the shared logger/config/store plumbing of the store
// subcommands.
func withStore(cmd *cobra.Command, fn func(context.Context, *resume.Store, string, *zap.Logger) error) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	studentID := cmd.Flag("student").Value.String()
	if studentID == "" {
		logger.Fatal("student id is required", zap.String("hint", "pass --student"))
	}

	store, err := resume.Open(config.Database)
	if err != nil {
		logger.Fatal("opening resume store", zap.Error(err))
	}
	defer store.Close()

	if err := fn(ctx, store, studentID, logger); err != nil {
		logger.Fatal("store operation failed", zap.Error(err))
	}
}
