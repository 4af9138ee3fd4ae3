package classifier

import (
	"errors"
	"testing"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	classifier, err := NewClassifier(260, 150)
	if err != nil {
		t.Fatalf("NewClassifier() error: %v", err)
	}

	tests := []struct {
		name      string
		count     int
		wantLevel domain.Level
	}{
		{name: "zero is Low", count: 0, wantLevel: domain.LevelLow},
		{name: "150 (medium threshold) is Low", count: 150, wantLevel: domain.LevelLow},
		{name: "151 is Medium", count: 151, wantLevel: domain.LevelMedium},
		{name: "200 is Medium", count: 200, wantLevel: domain.LevelMedium},
		{name: "260 (high threshold) is Medium", count: 260, wantLevel: domain.LevelMedium},
		{name: "261 is High", count: 261, wantLevel: domain.LevelHigh},
		{name: "350 (max reading) is High", count: 350, wantLevel: domain.LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.count)

			if got != tt.wantLevel {
				t.Errorf("Classify(%d) = %v, want %v", tt.count, got, tt.wantLevel)
			}
		})
	}
}

func TestClassifier_CustomThresholds(t *testing.T) {
	classifier, err := NewClassifier(100, 10)
	if err != nil {
		t.Fatalf("NewClassifier() error: %v", err)
	}

	if got := classifier.Classify(11); got != domain.LevelMedium {
		t.Errorf("Classify(11) = %v, want Medium", got)
	}
	if got := classifier.Classify(101); got != domain.LevelHigh {
		t.Errorf("Classify(101) = %v, want High", got)
	}

	high, medium := classifier.Thresholds()
	if high != 100 || medium != 10 {
		t.Errorf("Thresholds() = %d/%d, want 100/10", high, medium)
	}
}

func TestNewClassifier_InvalidThresholds(t *testing.T) {
	tests := []struct {
		name   string
		high   int
		medium int
	}{
		{name: "equal", high: 150, medium: 150},
		{name: "inverted", high: 100, medium: 200},
		{name: "negative medium", high: 100, medium: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(tt.high, tt.medium)
			if !errors.Is(err, ErrInvalidThresholds) {
				t.Errorf("NewClassifier() error = %v, want %v", err, ErrInvalidThresholds)
			}
		})
	}
}
