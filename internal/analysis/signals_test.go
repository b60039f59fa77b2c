package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractSignalsEmptyText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   \t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := ExtractSignals(tt.text)
			if sig.WordCount != 0 {
				t.Errorf("WordCount = %d, want 0", sig.WordCount)
			}
			if sig.FillerCount != 0 || sig.FillerPercent != 0 {
				t.Errorf("filler signals not zeroed: count=%d percent=%f", sig.FillerCount, sig.FillerPercent)
			}
			if len(sig.StarFound) != 0 {
				t.Errorf("StarFound = %v, want empty", sig.StarFound)
			}
			if len(sig.StarMissing) != 4 {
				t.Errorf("StarMissing = %v, want all four components", sig.StarMissing)
			}
		})
	}
}

func TestFillerBoundaryMatching(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
	}{
		{
			name:      "so inside solution does not match",
			text:      "The solution worked and the resolution held",
			wantCount: 0,
		},
		{
			name:      "standalone fillers counted",
			text:      "So, um, it was, like, you know, fine",
			wantCount: 4,
		},
		{
			name:      "repeated filler counted per occurrence",
			text:      "um the system um failed um twice",
			wantCount: 3,
		},
		{
			name:      "multi-word filler at phrase boundary",
			text:      "We shipped it, pretty much on schedule",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := ExtractSignals(tt.text)
			if sig.FillerCount != tt.wantCount {
				t.Errorf("FillerCount = %d, want %d (hits: %v)", sig.FillerCount, tt.wantCount, sig.FillerWords)
			}
		})
	}
}

func TestStarComponentDetection(t *testing.T) {
	text := "The situation was tense. My task was clear. I implemented a fix. The result improved uptime."
	sig := ExtractSignals(text)

	want := []string{"situation", "task", "action", "result"}
	if !reflect.DeepEqual(sig.StarFound, want) {
		t.Errorf("StarFound = %v, want %v", sig.StarFound, want)
	}
	if len(sig.StarMissing) != 0 {
		t.Errorf("StarMissing = %v, want empty", sig.StarMissing)
	}
	if sig.StarCompleteness != 100 {
		t.Errorf("StarCompleteness = %f, want 100", sig.StarCompleteness)
	}
}

func TestMetricsDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"percentage", "We improved throughput by 40% overall", true},
		{"number with unit", "It saved 12 hours per release", true},
		{"bare prose", "It saved a lot of effort for everyone", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSignals(tt.text).HasMetrics; got != tt.want {
				t.Errorf("HasMetrics = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfidenceSignals(t *testing.T) {
	text := "I think maybe I led the effort and I achieved the target; it was created under pressure"
	sig := ExtractSignals(text)

	if sig.ConfidentCount != 2 {
		t.Errorf("ConfidentCount = %d, want 2", sig.ConfidentCount)
	}
	if sig.UncertainCount != 2 {
		t.Errorf("UncertainCount = %d, want 2", sig.UncertainCount)
	}
	if sig.PassiveCount != 1 {
		t.Errorf("PassiveCount = %d, want 1", sig.PassiveCount)
	}
	if !sig.ActiveVoice() {
		t.Error("ActiveVoice() = false, want true for a single passive indicator")
	}
}

func TestSentenceCounting(t *testing.T) {
	sig := ExtractSignals("First point. Second point! Third point? ")
	if sig.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", sig.SentenceCount)
	}
}

func TestExtractSignalsDeterminism(t *testing.T) {
	text := "I led the migration. Basically we moved 40% of traffic, um, without downtime."
	a := ExtractSignals(text)
	b := ExtractSignals(text)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated extraction diverged:\n%+v\n%+v", a, b)
	}
}

func BenchmarkExtractSignals(b *testing.B) {
	text := strings.Repeat("The situation demanded action. I implemented a fix and the result improved latency by 30%. ", 20)
	for b.Loop() {
		ExtractSignals(text)
	}
}
