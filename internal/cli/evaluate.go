package cli

import (
	"fmt"

	"skillscan/internal/analysis"
	"skillscan/internal/common"
	"skillscan/internal/question"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [answer-file]",
	Short: "Evaluate a technical answer against expected keywords",
	Long: `Evaluate a technical interview answer for depth, keyword coverage,
and structure. The answer is scored against the expected keywords for
the given role and difficulty; pass --keywords to supply your own list
instead of the built-in question bank.
The command takes one argument: the path to the answer file.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if evaluateConfig.OutputFormat == "" {
			evaluateConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(evaluateConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runEvaluate,
}

var evaluateConfig common.CommandConfig

var (
	evaluateRole       string
	evaluateDifficulty string
	evaluateKeywords   []string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	evaluateCmd.Flags().StringVar(&evaluateConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	evaluateCmd.Flags().StringVar(&evaluateRole, "role", "", "Target role (default from config)")
	evaluateCmd.Flags().StringVar(&evaluateDifficulty, "difficulty", "", "Question difficulty: easy, medium, hard (default from config)")
	evaluateCmd.Flags().StringSliceVar(&evaluateKeywords, "keywords", nil, "Expected keywords (default: derived from the question bank)")

	// Add completion for format flag
	_ = evaluateCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = evaluateCmd.RegisterFlagCompletionFunc("role", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return question.Roles(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = evaluateCmd.RegisterFlagCompletionFunc("difficulty", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"easy", "medium", "hard"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	role := evaluateRole
	if role == "" {
		role = cfg.Interview.DefaultRole
	}
	difficultyName := evaluateDifficulty
	if difficultyName == "" {
		difficultyName = cfg.Interview.DefaultDifficulty
	}
	difficulty, err := analysis.ParseDifficulty(difficultyName)
	if err != nil {
		return fmt.Errorf("invalid difficulty: %w", err)
	}

	bank := question.NewBank(cfg.Interview.RandomSeed)

	createInput := func(contents []string) (analysis.Input, error) {
		if len(contents) != 1 {
			return analysis.Input{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		keywords := evaluateKeywords
		if len(keywords) == 0 {
			keywords = bank.KeywordsFor(contents[0], role, difficulty)
		}
		return analysis.Input{
			Text: contents[0],
			Context: analysis.Context{
				Behavioral:       false,
				Difficulty:       difficulty,
				Role:             role,
				ExpectedKeywords: keywords,
			},
		}, nil
	}

	logDetails := func(input analysis.Input, cfg common.CommandConfig) {
		logger.Info("Starting technical evaluation",
			"answer_chars", len(input.Text),
			"role", input.Context.Role,
			"difficulty", string(input.Context.Difficulty),
			"expected_keywords", len(input.Context.ExpectedKeywords),
			"output_format", cfg.OutputFormat)
	}

	err = common.RunAnalysisCommand(
		logger,
		evaluateConfig,
		args,
		createInput,
		analysis.Evaluate,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to evaluate answer: %w", err)
	}
	logger.Info("Technical evaluation completed successfully")
	return nil
}
