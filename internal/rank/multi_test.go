package rank

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobfit-engine/internal/config"
	"jobfit-engine/internal/domain"
	"jobfit-engine/internal/grade"
	"jobfit-engine/internal/store"
)

// memStore is an in-memory ScoreStore; insertion order is preserved so
// first-seen tie-breaking can be asserted.
type memStore struct {
	mu    sync.Mutex
	order []string // "jobID/profileID" in insert order
	rows  map[string]store.JobScore
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]store.JobScore{}}
}

func (m *memStore) UpsertJobScore(_ context.Context, rec store.JobScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := rec.JobID + "/" + rec.ProfileID
	if _, ok := m.rows[key]; !ok {
		m.order = append(m.order, key)
	}
	m.rows[key] = rec
	return nil
}

func (m *memStore) GetJobScore(_ context.Context, jobID, profileID string) (store.JobScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.rows[jobID+"/"+profileID]
	if !ok {
		return store.JobScore{}, store.ErrNotFound
	}
	return rec, nil
}

func (m *memStore) BestForJob(_ context.Context, jobID string) (store.JobScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best store.JobScore
	found := false
	for _, key := range m.order {
		rec := m.rows[key]
		if rec.JobID != jobID {
			continue
		}
		if !found || rec.Score > best.Score {
			best, found = rec, true
		}
	}
	if !found {
		return store.JobScore{}, store.ErrNotFound
	}
	return best, nil
}

func productProfile() *config.Profile {
	p := &config.Profile{ID: "product", Enabled: true}
	p.Scoring.Seniority.Senior = config.SeniorityTier{Any: []string{"senior"}, Points: 15}
	p.Scoring.Seniority.Executive = config.SeniorityTier{Any: []string{"vp", "director", "head of", "chief"}, Points: 30}
	p.Scoring.RoleTypes = map[string]config.RoleTypeRule{
		"product": {Any: []string{"product manager", "product lead"}, Points: 30},
	}
	p.Scoring.Location = config.LocationConfig{RemotePoints: 25, HybridPoints: 15, CityPoints: 10}
	p.Filtering = config.FilteringConfig{
		AggressionLevel: config.AggressionModerate,
		SoftwarePenalty: -15,
		HardwareBoost:   10,
		MinConfidence:   0.6,
	}
	return p
}

func TestScoreJobForAllScoresEveryProfile(t *testing.T) {
	st := newMemStore()
	m := NewMultiScorer([]*config.Profile{engineeringProfile(), productProfile()}, st, zap.NewNop())

	job := domain.Job{Title: "Senior Product Manager", Company: "Tech Co", Location: "Remote"}
	scores, err := m.ScoreJobForAll(context.Background(), job, "job-1")
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, grade.B, scores["eng"].Grade)
	assert.Equal(t, grade.B, scores["product"].Grade)

	// both rows persisted under (job, profile)
	rec, err := st.GetJobScore(context.Background(), "job-1", "eng")
	require.NoError(t, err)
	assert.Equal(t, scores["eng"].Score, rec.Score)
	assert.JSONEq(t, `{"seniority":15,"domain":0,"role_type":30,"location":25,"technical":0,"company_classification":0}`, rec.BreakdownJSON)

	_, err = st.GetJobScore(context.Background(), "job-1", "product")
	require.NoError(t, err)
}

func TestScoreJobForAllProfilesAreIndependent(t *testing.T) {
	st := newMemStore()
	eng := engineeringProfile()
	prod := productProfile()

	// blocked for eng only
	eng.Filters.Roles = config.BlockRule{Any: []string{"product manager"}}

	m := NewMultiScorer([]*config.Profile{eng, prod}, st, nil)

	job := domain.Job{Title: "Senior Product Manager", Location: "Remote"}
	scores, err := m.ScoreJobForAll(context.Background(), job, "job-2")
	require.NoError(t, err)

	assert.Zero(t, scores["eng"].Score)
	assert.Positive(t, scores["product"].Score)
}

func TestScoreJobForAllSkipsDisabledProfiles(t *testing.T) {
	disabled := productProfile()
	disabled.Enabled = false

	m := NewMultiScorer([]*config.Profile{engineeringProfile(), disabled}, newMemStore(), nil)
	scores, err := m.ScoreJobForAll(context.Background(), domain.Job{Title: "Senior Engineer"}, "job-3")
	require.NoError(t, err)

	assert.Contains(t, scores, "eng")
	assert.NotContains(t, scores, "product")
}

func TestBestMatchPicksHighestScore(t *testing.T) {
	st := newMemStore()
	m := NewMultiScorer([]*config.Profile{engineeringProfile(), productProfile()}, st, nil)

	// engineering title: eng profile matches role, product does not
	job := domain.Job{Title: "Senior Engineer", Location: "Remote"}
	_, err := m.ScoreJobForAll(context.Background(), job, "job-4")
	require.NoError(t, err)

	best, err := m.BestMatch(context.Background(), "job-4")
	require.NoError(t, err)
	assert.Equal(t, "eng", best.ProfileID)
}

func TestBestMatchTieFirstSeen(t *testing.T) {
	st := newMemStore()
	require.NoError(t, st.UpsertJobScore(context.Background(), store.JobScore{JobID: "j", ProfileID: "alpha", Score: 70, Grade: "B"}))
	require.NoError(t, st.UpsertJobScore(context.Background(), store.JobScore{JobID: "j", ProfileID: "beta", Score: 70, Grade: "B"}))

	m := NewMultiScorer(nil, st, nil)
	best, err := m.BestMatch(context.Background(), "j")
	require.NoError(t, err)
	assert.Equal(t, "alpha", best.ProfileID)
}

func TestBestMatchUnknownJob(t *testing.T) {
	m := NewMultiScorer(nil, newMemStore(), nil)
	_, err := m.BestMatch(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
