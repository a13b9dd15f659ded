package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alts-fund-link/fundlink/internal/events"
	"github.com/alts-fund-link/fundlink/internal/feed"
	"github.com/alts-fund-link/fundlink/internal/recorder"
	"github.com/alts-fund-link/fundlink/internal/store"
)

const emptyPayload = `cb({"table":{"cols":[{"id":"A","label":"Offering Name"}],"rows":[]}});`

func newTestScheduler(fetcher feed.Fetcher, pruner Pruner) (*Scheduler, *feed.MockFetcher) {
	mock, _ := fetcher.(*feed.MockFetcher)
	svc := feed.NewService(fetcher, store.NewMemoryStore(), recorder.NewNoopRecorder(), events.NewBus(), time.Now, zerolog.Nop())
	return NewScheduler(context.Background(), svc, pruner, zerolog.Nop()), mock
}

func TestRegisterAll(t *testing.T) {
	s, _ := newTestScheduler(&feed.MockFetcher{Payload: emptyPayload}, nil)
	require.NoError(t, s.RegisterAll("0 */30 * * * *"))
	assert.Len(t, s.Cron.Entries(), 2)
}

func TestRegisterAll_BadCronSpec(t *testing.T) {
	s, _ := newTestScheduler(&feed.MockFetcher{Payload: emptyPayload}, nil)
	assert.Error(t, s.RegisterAll("not a cron spec"))
}

func TestRunRefreshNow_ForcesFetch(t *testing.T) {
	s, mock := newTestScheduler(&feed.MockFetcher{Payload: emptyPayload}, nil)

	s.RunRefreshNow()
	s.RunRefreshNow()
	assert.Equal(t, 2, mock.Calls, "manual refresh must bypass the session cache")
}

func TestRefreshTask_SurvivesFetchFailure(t *testing.T) {
	s, _ := newTestScheduler(&feed.MockFetcher{Err: feed.ErrFetch}, nil)
	s.RunRefreshNow() // must not panic; error is logged and the tick retried later
}

type fakePruner struct {
	cutoffs []time.Time
}

func (f *fakePruner) Prune(before time.Time) error {
	f.cutoffs = append(f.cutoffs, before)
	return nil
}

func TestPruneTask(t *testing.T) {
	pruner := &fakePruner{}
	s, _ := newTestScheduler(&feed.MockFetcher{Payload: emptyPayload}, pruner)

	s.pruneTask()
	require.Len(t, pruner.cutoffs, 1)
	assert.WithinDuration(t, time.Now().Add(-historyRetention), pruner.cutoffs[0], time.Minute)
}

func TestPruneTask_NilPruner(t *testing.T) {
	s, _ := newTestScheduler(&feed.MockFetcher{Payload: emptyPayload}, nil)
	s.pruneTask() // noop recorder path: nothing registered, nothing to do
}
