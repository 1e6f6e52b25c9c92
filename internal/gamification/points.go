package gamification

import (
	"time"

	"attempt-service/internal/models"
)

// PointsPerLevel is how many cumulative points one level spans.
const PointsPerLevel = 1000

// AddPoints credits points to the user's ledger and recomputes the level.
// It must be invoked exactly once per scored attempt; the orchestrator owns
// that guarantee.
func AddPoints(p *models.UserPoints, points int, source string, now time.Time) {
	p.TotalPoints += points
	p.Level = Level(p.TotalPoints)
	p.PointsHistory = append(p.PointsHistory, models.PointsEntry{
		Date:   now,
		Points: points,
		Source: source,
		Total:  p.TotalPoints,
		Level:  p.Level,
	})
}

// Level derives the progress tier from a cumulative point total, one tier per
// PointsPerLevel points, starting at level 1.
func Level(totalPoints int) int {
	return totalPoints/PointsPerLevel + 1
}
