package gamification

import (
	"time"

	"attempt-service/internal/models"
)

// AdvanceStreak applies one scored attempt at time now to the user's streak.
// Streaks count consecutive calendar days: a one-day gap extends, a same-day
// repeat leaves the count unchanged, anything else (including clock skew into
// the past) resets to 1.
func AdvanceStreak(s *models.UserStreak, now time.Time) {
	switch {
	case s.LastQuizDate.IsZero():
		s.CurrentStreak = 1
	default:
		switch daysBetween(s.LastQuizDate, now) {
		case 0:
			// same-day repeat, streak already counted today
		case 1:
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastQuizDate = now
	s.StreakHistory = append(s.StreakHistory, models.StreakEntry{
		Date:   now,
		Streak: s.CurrentStreak,
	})
}

// daysBetween returns the number of calendar days from a to b in UTC,
// ignoring time of day. Negative when b is before a's date.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.UTC().Year(), a.UTC().Month(), a.UTC().Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.UTC().Year(), b.UTC().Month(), b.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
