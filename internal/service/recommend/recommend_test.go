package recommend

import (
	"testing"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

func TestAdvise(t *testing.T) {
	tests := []struct {
		level domain.Level
		trend domain.Trend
		want  string
	}{
		{domain.LevelHigh, domain.TrendIncreasing, ImmediateCrowdControl},
		{domain.LevelHigh, domain.TrendStable, MonitorAndManageEntry},
		{domain.LevelHigh, domain.TrendDecreasing, MonitorAndManageEntry},
		{domain.LevelMedium, domain.TrendIncreasing, PrepareForCongestion},
		{domain.LevelMedium, domain.TrendStable, MonitorTrafficFlow},
		{domain.LevelMedium, domain.TrendDecreasing, MonitorTrafficFlow},
		{domain.LevelLow, domain.TrendIncreasing, NormalOperations},
		{domain.LevelLow, domain.TrendStable, NormalOperations},
		{domain.LevelLow, domain.TrendDecreasing, NormalOperations},
	}

	for _, tt := range tests {
		t.Run(tt.level.String()+"_"+tt.trend.String(), func(t *testing.T) {
			if got := Advise(tt.level, tt.trend); got != tt.want {
				t.Errorf("Advise(%v, %v) = %q, want %q", tt.level, tt.trend, got, tt.want)
			}
		})
	}
}

func TestAdvise_TotalOverAllPairs(t *testing.T) {
	levels := []domain.Level{domain.LevelLow, domain.LevelMedium, domain.LevelHigh}
	trends := []domain.Trend{domain.TrendIncreasing, domain.TrendDecreasing, domain.TrendStable}

	for _, level := range levels {
		for _, trend := range trends {
			if got := Advise(level, trend); got == "" {
				t.Errorf("Advise(%v, %v) returned empty recommendation", level, trend)
			}
		}
	}
}
