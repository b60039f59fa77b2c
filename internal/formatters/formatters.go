package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"skillscan/internal/analysis"
	"skillscan/internal/ats"
	"skillscan/internal/report"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "Result", &EvaluationTextFormatter{})
	registry.RegisterFormatter("markdown", "Result", &EvaluationMarkdownFormatter{})
	registry.RegisterFormatter("text", "Analysis", &ResumeTextFormatter{})
	registry.RegisterFormatter("markdown", "Analysis", &ResumeMarkdownFormatter{})
	registry.RegisterFormatter("text", "GapAnalysis", &GapTextFormatter{})
	registry.RegisterFormatter("markdown", "GapAnalysis", &GapMarkdownFormatter{})
	registry.RegisterFormatter("text", "ReadinessReport", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "ReadinessReport", &ReportMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case analysis.Result, *analysis.Result:
		return "Result"
	case ats.Analysis:
		return "Analysis"
	case ats.GapAnalysis:
		return "GapAnalysis"
	case report.ReadinessReport:
		return "ReadinessReport"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func asResult(data any) (*analysis.Result, bool) {
	switch v := data.(type) {
	case analysis.Result:
		return &v, true
	case *analysis.Result:
		return v, true
	default:
		return nil, false
	}
}

// EvaluationTextFormatter handles text formatting for answer evaluations
type EvaluationTextFormatter struct{}

func (etf *EvaluationTextFormatter) Format(data any) (string, error) {
	result, ok := asResult(data)
	if !ok {
		return "", fmt.Errorf("expected analysis.Result, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ANSWER EVALUATION ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d\n", result.Overall))
	output.WriteString(fmt.Sprintf("Clarity:      %d/10\n", result.Scores.Clarity))
	output.WriteString(fmt.Sprintf("Structure:    %d/10\n", result.Scores.Structure))
	output.WriteString(fmt.Sprintf("Confidence:   %d/10\n", result.Scores.Confidence))
	output.WriteString(fmt.Sprintf("Keyword Coverage: %d/100\n\n", result.Scores.KeywordCoverage))

	if result.Breakdown != nil {
		output.WriteString("=== TECHNICAL BREAKDOWN ===\n")
		output.WriteString(fmt.Sprintf("Length:    %d\n", result.Breakdown.Length))
		output.WriteString(fmt.Sprintf("Keywords:  %d\n", result.Breakdown.Keyword))
		output.WriteString(fmt.Sprintf("Structure: %d\n\n", result.Breakdown.Structure))
	}

	if result.TechnicalNote != "" {
		output.WriteString("Note: ")
		output.WriteString(result.TechnicalNote)
		output.WriteString("\n\n")
	}

	writeFeedbackText(&output, result.Feedback)

	output.WriteString(fmt.Sprintf("Next difficulty: %s\n", result.NextDifficulty))

	return output.String(), nil
}

func (etf *EvaluationTextFormatter) SupportedType() string {
	return "Result"
}

func writeFeedbackText(output *strings.Builder, fb analysis.Feedback) {
	if len(fb.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, s := range fb.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}
	if len(fb.Issues) > 0 {
		output.WriteString("Issues:\n")
		for _, issue := range fb.Issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		output.WriteString("\n")
	}
	if len(fb.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for _, s := range fb.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}
}

// EvaluationMarkdownFormatter handles markdown formatting for answer evaluations
type EvaluationMarkdownFormatter struct{}

func (emf *EvaluationMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asResult(data)
	if !ok {
		return "", fmt.Errorf("expected analysis.Result, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Answer Evaluation\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d\n\n", result.Overall))
	output.WriteString("| Dimension | Score |\n|---|---|\n")
	output.WriteString(fmt.Sprintf("| Clarity | %d/10 |\n", result.Scores.Clarity))
	output.WriteString(fmt.Sprintf("| Structure | %d/10 |\n", result.Scores.Structure))
	output.WriteString(fmt.Sprintf("| Confidence | %d/10 |\n", result.Scores.Confidence))
	output.WriteString(fmt.Sprintf("| Keyword Coverage | %d/100 |\n\n", result.Scores.KeywordCoverage))

	if result.Breakdown != nil {
		output.WriteString("## Technical Breakdown\n\n")
		output.WriteString(fmt.Sprintf("- Length: %d\n", result.Breakdown.Length))
		output.WriteString(fmt.Sprintf("- Keywords: %d\n", result.Breakdown.Keyword))
		output.WriteString(fmt.Sprintf("- Structure: %d\n\n", result.Breakdown.Structure))
	}

	if result.TechnicalNote != "" {
		output.WriteString("> ")
		output.WriteString(result.TechnicalNote)
		output.WriteString("\n\n")
	}

	if len(result.Feedback.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, s := range result.Feedback.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}
	if len(result.Feedback.Issues) > 0 {
		output.WriteString("## Issues\n\n")
		for _, issue := range result.Feedback.Issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		output.WriteString("\n")
	}
	if len(result.Feedback.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for _, s := range result.Feedback.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}

	output.WriteString(fmt.Sprintf("**Next difficulty:** %s\n", result.NextDifficulty))

	return output.String(), nil
}

func (emf *EvaluationMarkdownFormatter) SupportedType() string {
	return "Result"
}

// ResumeTextFormatter handles text formatting for resume scoring results
type ResumeTextFormatter struct{}

func (rtf *ResumeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(ats.Analysis)
	if !ok {
		return "", fmt.Errorf("expected ats.Analysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("ATS Score: %d/100\n", result.Score))
	output.WriteString(fmt.Sprintf("Core skills matched:     %s\n", result.CoreMatch))
	output.WriteString(fmt.Sprintf("Advanced skills matched: %s\n\n", result.AdvancedMatch))

	if len(result.MatchedSkills) > 0 {
		output.WriteString("Matched Skills:\n")
		for _, skill := range result.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingSkills) > 0 {
		output.WriteString("Missing Skills:\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for _, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	}

	return output.String(), nil
}

func (rtf *ResumeTextFormatter) SupportedType() string {
	return "Analysis"
}

// ResumeMarkdownFormatter handles markdown formatting for resume scoring results
type ResumeMarkdownFormatter struct{}

func (rmf *ResumeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(ats.Analysis)
	if !ok {
		return "", fmt.Errorf("expected ats.Analysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Score\n\n")
	output.WriteString(fmt.Sprintf("**ATS Score:** %d/100\n\n", result.Score))
	output.WriteString(fmt.Sprintf("**Core skills matched:** %s\n\n", result.CoreMatch))
	output.WriteString(fmt.Sprintf("**Advanced skills matched:** %s\n\n", result.AdvancedMatch))

	if len(result.MatchedSkills) > 0 {
		output.WriteString("## Matched Skills\n\n")
		for _, skill := range result.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for _, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	}

	return output.String(), nil
}

func (rmf *ResumeMarkdownFormatter) SupportedType() string {
	return "Analysis"
}

// GapTextFormatter handles text formatting for skill gap analyses
type GapTextFormatter struct{}

func (gtf *GapTextFormatter) Format(data any) (string, error) {
	result, ok := data.(ats.GapAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ats.GapAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SKILL GAP ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Skill match: %d%% (%d of %d skills)\n", result.MatchPercent, result.TotalMatched, result.TotalRequired))
	output.WriteString(fmt.Sprintf("Core:     %d%%\n", result.CoreMatchPercent))
	output.WriteString(fmt.Sprintf("Advanced: %d%%\n\n", result.AdvancedMatchPercent))

	if len(result.MissingCore) > 0 {
		output.WriteString("Missing Core Skills:\n")
		for _, skill := range result.MissingCore {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingAdvanced) > 0 {
		output.WriteString("Missing Advanced Skills:\n")
		for _, skill := range result.MissingAdvanced {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.PriorityOrder) > 0 {
		output.WriteString("Priority Improvement Order:\n")
		for i, gap := range result.PriorityOrder {
			output.WriteString(fmt.Sprintf("%d. [%s] %s (%s): %s\n", i+1, gap.Priority, gap.Skill, gap.Category, gap.Reason))
		}
	}

	return output.String(), nil
}

func (gtf *GapTextFormatter) SupportedType() string {
	return "GapAnalysis"
}

// GapMarkdownFormatter handles markdown formatting for skill gap analyses
type GapMarkdownFormatter struct{}

func (gmf *GapMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(ats.GapAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ats.GapAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Skill Gap Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Skill match:** %d%% (%d of %d skills)\n\n", result.MatchPercent, result.TotalMatched, result.TotalRequired))
	output.WriteString("| Category | Match |\n|---|---|\n")
	output.WriteString(fmt.Sprintf("| Core | %d%% |\n", result.CoreMatchPercent))
	output.WriteString(fmt.Sprintf("| Advanced | %d%% |\n\n", result.AdvancedMatchPercent))

	if len(result.MissingCore) > 0 {
		output.WriteString("## Missing Core Skills\n\n")
		for _, skill := range result.MissingCore {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingAdvanced) > 0 {
		output.WriteString("## Missing Advanced Skills\n\n")
		for _, skill := range result.MissingAdvanced {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.PriorityOrder) > 0 {
		output.WriteString("## Priority Improvement Order\n\n")
		for i, gap := range result.PriorityOrder {
			output.WriteString(fmt.Sprintf("%d. **%s** [%s]: %s\n", i+1, gap.Skill, gap.Priority, gap.Reason))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (gmf *GapMarkdownFormatter) SupportedType() string {
	return "GapAnalysis"
}

// ReportTextFormatter handles text formatting for readiness reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	result, ok := data.(report.ReadinessReport)
	if !ok {
		return "", fmt.Errorf("expected report.ReadinessReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== INTERVIEW READINESS REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Role: %s\n", result.Role))
	output.WriteString(fmt.Sprintf("Weighted Score: %d/100 (%s)\n\n", result.WeightedScore, result.LevelLabel))
	output.WriteString(fmt.Sprintf("Resume:     %d/100\n", result.ResumeScore))
	output.WriteString(fmt.Sprintf("Technical:  %d/100\n", result.TechnicalScore))
	output.WriteString(fmt.Sprintf("Behavioral: %d/100\n\n", result.Behavioral))

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, area := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s (%d): %s\n", area.Area, area.Score, area.Label))
		}
		output.WriteString("\n")
	}
	if len(result.Weaknesses) > 0 {
		output.WriteString("Weaknesses:\n")
		for _, area := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s (%d): %s\n", area.Area, area.Score, area.Label))
		}
		output.WriteString("\n")
	}

	if len(result.Checklist) > 0 {
		output.WriteString("=== IMPROVEMENT CHECKLIST ===\n")
		for _, block := range result.Checklist {
			output.WriteString(fmt.Sprintf("%s (%s priority):\n", block.Category, block.Priority))
			for _, item := range block.Items {
				output.WriteString(fmt.Sprintf("  - %s\n", item))
			}
		}
		output.WriteString("\n")
	}

	if len(result.ActionItems) > 0 {
		output.WriteString("=== ACTION PLAN ===\n")
		for i, item := range result.ActionItems {
			output.WriteString(fmt.Sprintf("%d. [%s] %s (%s)\n", i+1, item.Priority, item.Action, item.Timeframe))
		}
		output.WriteString("\n")
	}

	output.WriteString(result.Summary)
	output.WriteString("\n")

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "ReadinessReport"
}

// ReportMarkdownFormatter handles markdown formatting for readiness reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(report.ReadinessReport)
	if !ok {
		return "", fmt.Errorf("expected report.ReadinessReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Interview Readiness Report\n\n")
	output.WriteString(fmt.Sprintf("**Role:** %s\n\n", result.Role))
	output.WriteString(fmt.Sprintf("**Weighted Score:** %d/100 (%s)\n\n", result.WeightedScore, result.LevelLabel))
	output.WriteString("| Category | Score |\n|---|---|\n")
	output.WriteString(fmt.Sprintf("| Resume | %d/100 |\n", result.ResumeScore))
	output.WriteString(fmt.Sprintf("| Technical | %d/100 |\n", result.TechnicalScore))
	output.WriteString(fmt.Sprintf("| Behavioral | %d/100 |\n\n", result.Behavioral))

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, area := range result.Strengths {
			output.WriteString(fmt.Sprintf("- **%s** (%d): %s\n", area.Area, area.Score, area.Label))
		}
		output.WriteString("\n")
	}
	if len(result.Weaknesses) > 0 {
		output.WriteString("## Weaknesses\n\n")
		for _, area := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- **%s** (%d): %s\n", area.Area, area.Score, area.Label))
		}
		output.WriteString("\n")
	}

	if len(result.Checklist) > 0 {
		output.WriteString("## Improvement Checklist\n\n")
		for _, block := range result.Checklist {
			output.WriteString(fmt.Sprintf("### %s (%s priority)\n\n", block.Category, block.Priority))
			for _, item := range block.Items {
				output.WriteString(fmt.Sprintf("- [ ] %s\n", item))
			}
			output.WriteString("\n")
		}
	}

	if len(result.ActionItems) > 0 {
		output.WriteString("## Action Plan\n\n")
		for i, item := range result.ActionItems {
			output.WriteString(fmt.Sprintf("%d. **%s**: %s (%s)\n", i+1, item.Priority, item.Action, item.Timeframe))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n")

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "ReadinessReport"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
