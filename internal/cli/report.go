package cli

import (
	"fmt"

	"skillscan/internal/common"
	"skillscan/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build an interview readiness report from three scores",
	Long: `Build a weighted interview readiness report from a resume score, a
technical interview score, and a behavioral interview score. Each
score is on a 0-100 scale; technical weighs 45%, resume 30%, and
behavioral 25%. The report includes strengths, weaknesses, an
improvement checklist, and a prioritized action plan.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if reportConfig.OutputFormat == "" {
			reportConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(reportConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runReport,
}

var reportConfig common.CommandConfig

var (
	reportResumeScore     int
	reportTechnicalScore  int
	reportBehavioralScore int
	reportRole            string
)

func init() {
	reportCmd.Flags().StringVarP(&reportConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	reportCmd.Flags().StringVar(&reportConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	reportCmd.Flags().IntVar(&reportResumeScore, "resume", 0, "Resume score (0-100)")
	reportCmd.Flags().IntVar(&reportTechnicalScore, "technical", 0, "Technical interview score (0-100)")
	reportCmd.Flags().IntVar(&reportBehavioralScore, "behavioral", 0, "Behavioral interview score (0-100)")
	reportCmd.Flags().StringVar(&reportRole, "role", "", "Target role (default from config)")

	_ = reportCmd.MarkFlagRequired("resume")
	_ = reportCmd.MarkFlagRequired("technical")
	_ = reportCmd.MarkFlagRequired("behavioral")

	// Add completion for format flag
	_ = reportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	scores := map[string]int{
		"resume":     reportResumeScore,
		"technical":  reportTechnicalScore,
		"behavioral": reportBehavioralScore,
	}
	for name, score := range scores {
		if score < 0 || score > 100 {
			return fmt.Errorf("%s score must be between 0 and 100, got %d", name, score)
		}
	}

	role := reportRole
	if role == "" {
		role = cfg.Interview.DefaultRole
	}

	logger.Info("Building readiness report",
		"resume_score", reportResumeScore,
		"technical_score", reportTechnicalScore,
		"behavioral_score", reportBehavioralScore,
		"role", role,
		"output_format", reportConfig.OutputFormat)

	result := report.BuildReadinessReport(report.Input{
		ResumeScore:     reportResumeScore,
		TechnicalScore:  reportTechnicalScore,
		BehavioralScore: reportBehavioralScore,
		Role:            role,
	})

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(result, reportConfig); err != nil {
		return fmt.Errorf("failed to build readiness report: %w", err)
	}
	logger.Info("Readiness report completed successfully")
	return nil
}
