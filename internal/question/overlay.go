package question

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"skillscan/internal/analysis"
	apperrors "skillscan/internal/errors"
)

// Overlay is the on-disk format for extending the technical bank without
// a rebuild. Questions are grouped by role, then by difficulty.
type Overlay struct {
	Roles map[string]map[string][]OverlayQuestion `yaml:"roles"`
}

// OverlayQuestion is one question entry in an overlay file.
type OverlayQuestion struct {
	Question       string   `yaml:"question"`
	Keywords       []string `yaml:"keywords"`
	ExpectedPoints []string `yaml:"expected_points"`
}

// LoadOverlay parses an overlay file and validates its contents.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewIOError(
			apperrors.ErrCodeFileNotReadable,
			fmt.Sprintf("failed to read question overlay: %s", path),
			err,
		).WithContext("path", path)
	}

	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, apperrors.NewValidationError(
			apperrors.ErrCodeInvalidFormat,
			"failed to parse question overlay YAML",
			err,
		).WithContext("path", path)
	}

	if err := overlay.validate(); err != nil {
		return nil, err
	}
	return &overlay, nil
}

func (o *Overlay) validate() error {
	for role, byDifficulty := range o.Roles {
		for rawDifficulty, questions := range byDifficulty {
			if _, err := analysis.ParseDifficulty(rawDifficulty); err != nil {
				return err
			}
			for i, q := range questions {
				if strings.TrimSpace(q.Question) == "" {
					return apperrors.NewValidationError(
						apperrors.ErrCodeInvalidFormat,
						"overlay question has empty text",
						nil,
					).WithContext("role", role).
						WithContext("difficulty", rawDifficulty).
						WithContext("index", i)
				}
			}
		}
	}
	return nil
}

// questionCount returns the number of questions across all roles.
func (o *Overlay) questionCount() int {
	n := 0
	for _, byDifficulty := range o.Roles {
		for _, questions := range byDifficulty {
			n += len(questions)
		}
	}
	return n
}

// ApplyOverlay rebuilds the technical bank from the built-in data plus the
// overlay's questions. Passing nil restores the built-in bank. Reapplying
// an overlay replaces the previous one rather than stacking.
func (b *Bank) ApplyOverlay(overlay *Overlay) {
	merged := cloneBankData(builtinTechnical)

	if overlay != nil {
		for role, byDifficulty := range overlay.Roles {
			if _, ok := merged[role]; !ok {
				merged[role] = make(map[analysis.Difficulty][]Question)
			}
			for rawDifficulty, questions := range byDifficulty {
				difficulty, err := analysis.ParseDifficulty(rawDifficulty)
				if err != nil {
					continue
				}
				for _, oq := range questions {
					merged[role][difficulty] = append(merged[role][difficulty], Question{
						Text:           oq.Question,
						Difficulty:     difficulty,
						Role:           role,
						Keywords:       oq.Keywords,
						ExpectedPoints: oq.ExpectedPoints,
					})
				}
			}
		}
	}

	b.mu.Lock()
	b.technical = merged
	b.mu.Unlock()
}
