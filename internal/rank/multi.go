package rank

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobfit-engine/internal/config"
	"jobfit-engine/internal/domain"
	"jobfit-engine/internal/grade"
	"jobfit-engine/internal/store"
)

// ProfileScore is the per-profile summary returned to callers.
type ProfileScore struct {
	ProfileID string
	Score     int
	Grade     grade.Grade
}

// ScoreStore is the persistence collaborator contract.
type ScoreStore interface {
	UpsertJobScore(ctx context.Context, rec store.JobScore) error
	GetJobScore(ctx context.Context, jobID, profileID string) (store.JobScore, error)
	BestForJob(ctx context.Context, jobID string) (store.JobScore, error)
}

// MultiScorer scores the same job once per enabled profile. Each profile
// scores independently; nothing is shared across profiles but the
// read-only job. Construct one per run and pass it down.
type MultiScorer struct {
	scorers []*ProfileScorer
	store   ScoreStore
	logger  *zap.Logger
}

func NewMultiScorer(profiles []*config.Profile, st ScoreStore, logger *zap.Logger) *MultiScorer {
	m := &MultiScorer{store: st, logger: logger}
	for _, p := range profiles {
		if p.Enabled {
			m.scorers = append(m.scorers, NewProfileScorer(p))
		}
	}
	return m
}

// ScoreJobForAll scores the job for every enabled profile concurrently and
// upserts each result keyed (jobID, profileID).
func (m *MultiScorer) ScoreJobForAll(ctx context.Context, job domain.Job, jobID string) (map[string]ProfileScore, error) {
	out := make(map[string]ProfileScore, len(m.scorers))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range m.scorers {
		s := s
		g.Go(func() error {
			res := s.Score(job)

			if m.logger != nil {
				m.logger.Info("scored job",
					zap.String("job_id", jobID),
					zap.String("profile_id", s.ProfileID()),
					zap.Int("score", res.Total),
					zap.String("grade", string(res.Grade)),
					zap.Bool("filtered", res.Meta.Filtered),
					zap.String("filter_reason", res.Meta.FilterReason),
				)
			}

			rec, err := toRecord(jobID, s.ProfileID(), res)
			if err != nil {
				return err
			}
			if m.store != nil {
				if err := m.store.UpsertJobScore(gctx, rec); err != nil {
					return fmt.Errorf("upsert score for profile %s: %w", s.ProfileID(), err)
				}
			}

			mu.Lock()
			out[s.ProfileID()] = ProfileScore{ProfileID: s.ProfileID(), Score: res.Total, Grade: res.Grade}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// BestMatch returns the highest-scoring profile for a job already scored.
// Ties resolve to the first-seen profile (stable load order).
func (m *MultiScorer) BestMatch(ctx context.Context, jobID string) (ProfileScore, error) {
	if m.store != nil {
		rec, err := m.store.BestForJob(ctx, jobID)
		if err != nil {
			return ProfileScore{}, err
		}
		return ProfileScore{ProfileID: rec.ProfileID, Score: rec.Score, Grade: grade.Grade(rec.Grade)}, nil
	}
	return ProfileScore{}, store.ErrNotFound
}

func toRecord(jobID, profileID string, res Result) (store.JobScore, error) {
	bd, err := json.Marshal(res.Breakdown)
	if err != nil {
		return store.JobScore{}, err
	}
	meta, err := json.Marshal(res.Meta)
	if err != nil {
		return store.JobScore{}, err
	}
	return store.JobScore{
		JobID:         jobID,
		ProfileID:     profileID,
		Score:         res.Total,
		Grade:         string(res.Grade),
		BreakdownJSON: string(bd),
		MetaJSON:      string(meta),
	}, nil
}
