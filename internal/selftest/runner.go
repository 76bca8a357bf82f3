package selftest

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ehrlich-b/cube/internal/thistlethwaite"
)

// Run executes the core self-test harness against sv, tags it with a
// fresh run ID, and persists the aggregate report to store if store is
// non-nil. seed makes the random-scramble portion reproducible; pass
// time.Now().UnixNano() for a fresh batch each run.
func Run(sv *thistlethwaite.Solver, randomCount, randomLength int, seed int64, store *Store) (runID string, rep thistlethwaite.Report, err error) {
	runID = uuid.New().String()
	startedAt := time.Now()

	rng := rand.New(rand.NewSource(seed))
	rep = thistlethwaite.RunSelfTests(sv, randomCount, randomLength, rng)

	if err := store.SaveRun(runID, startedAt, rep); err != nil {
		return runID, rep, err
	}
	return runID, rep, nil
}
