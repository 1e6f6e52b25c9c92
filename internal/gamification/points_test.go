package gamification

import (
	"testing"
	"time"

	"attempt-service/internal/models"
)

var when = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func TestAddPoints_CrossesLevelBoundary(t *testing.T) {
	p := &models.UserPoints{UserID: "u1", TotalPoints: 950, Level: 1}
	AddPoints(p, 100, "Quiz attempt (hard, 5 questions)", when)

	if p.TotalPoints != 1050 {
		t.Errorf("Expected total 1050, got %d", p.TotalPoints)
	}
	if p.Level != 2 {
		t.Errorf("Expected level 2 after crossing 1000 points, got %d", p.Level)
	}
}

func TestAddPoints_ZeroPoints(t *testing.T) {
	p := &models.UserPoints{UserID: "u1", TotalPoints: 500, Level: 1}
	AddPoints(p, 0, "Quiz attempt (easy, 0 questions)", when)

	if p.TotalPoints != 500 {
		t.Errorf("Expected total unchanged at 500, got %d", p.TotalPoints)
	}
	if p.Level != 1 {
		t.Errorf("Expected level 1, got %d", p.Level)
	}
	if len(p.PointsHistory) != 1 {
		t.Errorf("Expected history entry even for zero points, got %d entries", len(p.PointsHistory))
	}
}

func TestAddPoints_HistoryRecordsRunningTotal(t *testing.T) {
	p := &models.UserPoints{UserID: "u1"}
	AddPoints(p, 240, "Quiz attempt (hard, 5 questions)", when)
	AddPoints(p, 160, "Quiz attempt (medium, 5 questions)", when.Add(time.Hour))

	if len(p.PointsHistory) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(p.PointsHistory))
	}
	first, second := p.PointsHistory[0], p.PointsHistory[1]
	if first.Points != 240 || first.Total != 240 {
		t.Errorf("First entry: expected 240/240, got %d/%d", first.Points, first.Total)
	}
	if second.Points != 160 || second.Total != 400 {
		t.Errorf("Second entry: expected 160/400, got %d/%d", second.Points, second.Total)
	}
	if second.Source != "Quiz attempt (medium, 5 questions)" {
		t.Errorf("Unexpected source: %s", second.Source)
	}
	if second.Level != 1 {
		t.Errorf("Expected level 1 recorded, got %d", second.Level)
	}
}

func TestLevel(t *testing.T) {
	cases := []struct {
		total int
		level int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1050, 2},
		{2999, 3},
		{3000, 4},
	}
	for _, tc := range cases {
		if got := Level(tc.total); got != tc.level {
			t.Errorf("Level(%d): expected %d, got %d", tc.total, tc.level, got)
		}
	}
}
