package scoring

import "context"

// PopulationSource answers the two population queries ranking needs. The Mongo
// attempt repository implements it with a full-collection scan; an incremental
// index can be swapped in behind the same interface.
type PopulationSource interface {
	// CountBetterScores returns how many historical attempts scored strictly
	// higher than the given score.
	CountBetterScores(ctx context.Context, score int) (int64, error)
	// CountDistinctUsers returns how many distinct users have at least one attempt.
	CountDistinctUsers(ctx context.Context) (int64, error)
}

type Rank struct {
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
}

// WithPendingAttempt adjusts a PopulationSource for an attempt that is being
// scored but not yet persisted: the population must count its user even when
// this is their first attempt. The better-score count needs no adjustment, an
// attempt never strictly beats itself.
func WithPendingAttempt(src PopulationSource, firstAttemptForUser bool) PopulationSource {
	if !firstAttemptForUser {
		return src
	}
	return pendingUserPopulation{PopulationSource: src}
}

type pendingUserPopulation struct {
	PopulationSource
}

func (p pendingUserPopulation) CountDistinctUsers(ctx context.Context) (int64, error) {
	n, err := p.PopulationSource.CountDistinctUsers(ctx)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// ComputeRank places a score against the historical population. Rank is
// 1-based: 1 means no attempt beat this score. Percentile is over distinct
// users, 100 for the top rank, 0 when the population is empty.
func ComputeRank(ctx context.Context, src PopulationSource, score int) (Rank, error) {
	better, err := src.CountBetterScores(ctx, score)
	if err != nil {
		return Rank{}, err
	}
	population, err := src.CountDistinctUsers(ctx)
	if err != nil {
		return Rank{}, err
	}

	r := Rank{Rank: int(better) + 1}
	if population > 0 {
		r.Percentile = float64(population-int64(r.Rank)+1) / float64(population) * 100
		// Rank counts attempts while the population counts users, so a heavy
		// scorer can push the raw value below zero.
		if r.Percentile < 0 {
			r.Percentile = 0
		}
	}
	return r, nil
}
