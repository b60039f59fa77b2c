package cli

import (
	"fmt"

	"skillscan/internal/ats"
	"skillscan/internal/common"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume against a role skill profile",
	Long: `Score a resume against the skill profile for a target role. The
resume is matched against core and advanced skills for the role and
scored on keyword coverage, quantified achievements, action verbs,
length, and formatting. Use --gaps for a prioritized gap analysis
instead of the standard score.
The command takes one argument: the path to the resume file.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

var (
	scoreRole string
	scoreGaps bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Target role (default from config)")
	scoreCmd.Flags().BoolVar(&scoreGaps, "gaps", false, "Report a prioritized skill gap analysis instead of a score")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = scoreCmd.RegisterFlagCompletionFunc("role", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ats.Roles(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	role := scoreRole
	if role == "" {
		role = cfg.Interview.DefaultRole
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(resumeText string, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(resumeText),
			"role", role,
			"gap_analysis", scoreGaps,
			"output_format", cfg.OutputFormat)
	}

	var err error
	if scoreGaps {
		err = common.RunAnalysisCommand(
			logger,
			scoreConfig,
			args,
			createInput,
			func(resumeText string) (ats.GapAnalysis, error) {
				return ats.AnalyzeGaps(resumeText, role), nil
			},
			logDetails,
		)
	} else {
		err = common.RunAnalysisCommand(
			logger,
			scoreConfig,
			args,
			createInput,
			func(resumeText string) (ats.Analysis, error) {
				return ats.ScoreResume(resumeText, role), nil
			},
			logDetails,
		)
	}

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
