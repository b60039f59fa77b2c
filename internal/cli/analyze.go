package cli

import (
	"fmt"

	"skillscan/internal/analysis"
	"skillscan/internal/common"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [transcript-file]",
	Short: "Analyze the communication quality of an answer",
	Long: `Analyze a written answer or interview transcript for communication
quality. The answer is scored on clarity, structure, and confidence,
and the command reports concrete issues, strengths, and suggestions.
The command takes one argument: the path to the transcript file.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (analysis.Input, error) {
		if len(contents) != 1 {
			return analysis.Input{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return analysis.Input{
			Text:    contents[0],
			Context: analysis.Context{Behavioral: true},
		}, nil
	}

	logDetails := func(input analysis.Input, cfg common.CommandConfig) {
		logger.Info("Starting communication analysis",
			"transcript_chars", len(input.Text),
			"output_format", cfg.OutputFormat)
	}

	err := common.RunAnalysisCommand(
		logger,
		analyzeConfig,
		args,
		createInput,
		analysis.Evaluate,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze transcript: %w", err)
	}
	logger.Info("Communication analysis completed successfully")
	return nil
}
