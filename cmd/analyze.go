package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/extract"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/resume"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowDetails = "Show extracted signals"
	PromptDumpToFile  = "Dump report to file"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var reportPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowDetails, PromptDumpToFile, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume locally and print the score breakdown",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "resume file to analyze (plain text, or PDF/DOC/DOCX when tika is configured)")
	analyzeCmd.Flags().StringP("student", "s", "", "analyze the stored resume of this student instead of a file")
	analyzeCmd.Flags().StringP("job-description", "J", "", "file with a job description to match against")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "skip the interactive actions after printing the report")
}

// analyze is the local scoring command.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	text, err := resolveResumeText(ctx, cmd, config, logger)
	if err != nil {
		logger.Fatal("loading resume text", zap.Error(err))
	}

	jobDescription, err := readOptionalFile(cmd, "job-description")
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err))
	}

	breakdown := analysis.AnalyzeResumeText(text, jobDescription)

	logger.Info("analysis complete",
		zap.Int("overall_score", breakdown.OverallScore),
		zap.Int("score", breakdown.Score),
		zap.String("reason", breakdown.Reason),
	)

	printReport(breakdown, false)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := reportPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleReportAction(action, breakdown, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleReportAction(action string, breakdown analysis.ScoreBreakdown, logger *zap.Logger) error {
	switch action {
	case PromptShowDetails:
		printReport(breakdown, true)
		return nil
	case PromptDumpToFile:
		filename, err := dumpReportToTmpFile(breakdown)
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumped report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// resolveResumeText loads the text to analyze from either a stored document
// or a file. Binary documents go through the configured Tika server.
func resolveResumeText(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger) (string, error) {
	studentID := cmd.Flag("student").Value.String()
	file := cmd.Flag("file").Value.String()

	switch {
	case studentID != "" && file != "":
		return "", errors.New("--file and --student are mutually exclusive")

	case studentID != "":
		store, err := resume.Open(config.Database)
		if err != nil {
			return "", err
		}
		defer store.Close()

		doc, err := store.FindByStudent(ctx, studentID)
		if err != nil {
			return "", err
		}

		logger.Info("loaded stored resume",
			zap.String("student", studentID),
			zap.Int("version", doc.Version),
		)

		return resume.ProjectToText(doc), nil

	case file != "":
		if isBinaryResume(file) {
			if config.Tika == nil || config.Tika.URL == "" {
				return "", errors.New("tika.url must be configured to analyze PDF/DOC/DOCX files")
			}
			extractor := extract.NewTikaExtractor(config.Tika.URL, logger)
			return extractor.ExtractText(ctx, file, filepath.Base(file))
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil

	default:
		return "", errors.New("either --file or --student is required")
	}
}

func isBinaryResume(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

func readOptionalFile(cmd *cobra.Command, flag string) (string, error) {
	path := cmd.Flag(flag).Value.String()
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printReport(breakdown analysis.ScoreBreakdown, withDetails bool) {
	report := breakdown
	if !withDetails {
		report.Details = nil
	}

	// do not bother error since the breakdown is always marshalable
	pretty, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(pretty))
}

func dumpReportToTmpFile(breakdown analysis.ScoreBreakdown) (string, error) {
	file, err := os.CreateTemp("", "resume_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(breakdown); err != nil {
		return "", err
	}
	return file.Name(), nil
}
