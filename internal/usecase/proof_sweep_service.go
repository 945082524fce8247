package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
)

// ProofChecker reports whether a proof video is still reachable on its host.
type ProofChecker interface {
	VideoAvailable(ctx context.Context, videoID string) (bool, error)
}

type ProofSweepReport struct {
	Scanned     int `json:"scanned"`
	Healthy     int `json:"healthy"`
	Unreachable int `json:"unreachable"`
	Failed      int `json:"failed"`
}

// ProofSweepService walks the pending queue and re-checks every proof link
// against its video host, so moderators do not waste time on dead links.
// Unreachable proofs are flagged in the sweep report; the sweep never decides
// records on its own.
type ProofSweepService struct {
	recordRepo record.Repository
	checker    ProofChecker
	logger     *logging.Logger
	workers    int
}

func NewProofSweepService(recordRepo record.Repository, checker ProofChecker, workers int, logger *logging.Logger) *ProofSweepService {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ProofSweepService{
		recordRepo: recordRepo,
		checker:    checker,
		logger:     logger,
		workers:    workers,
	}
}

func (s *ProofSweepService) Sweep(ctx context.Context) (ProofSweepReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProofSweepService.Sweep")
	defer span.End()

	started := time.Now()

	pending, err := s.recordRepo.ListByStatus(ctx, record.StatusPending)
	if err != nil {
		return ProofSweepReport{}, fmt.Errorf("list pending records: %w", err)
	}

	report := ProofSweepReport{Scanned: len(pending)}
	if len(pending) == 0 {
		return report, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ProofSweepReport{}, fmt.Errorf("create sweep pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, item := range pending {
		item := item

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			healthy, checkErr := s.checkProof(ctx, item)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case checkErr != nil:
				report.Failed++
			case healthy:
				report.Healthy++
			default:
				report.Unreachable++
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			report.Failed++
			mu.Unlock()
		}
	}
	wg.Wait()

	s.logger.InfoContext(ctx, "proof sweep finished",
		"scanned", report.Scanned,
		"healthy", report.Healthy,
		"unreachable", report.Unreachable,
		"failed", report.Failed,
		"elapsed", time.Since(started).String(),
	)

	return report, nil
}

func (s *ProofSweepService) checkProof(ctx context.Context, item record.Record) (bool, error) {
	videoID, ok := record.ExtractVideoID(item.ProofURL)
	if !ok {
		// The URL slipped past submission validation or the rules changed
		// since; treat it as a dead link rather than an infrastructure error.
		return false, nil
	}

	available, err := s.checker.VideoAvailable(ctx, videoID)
	if err != nil {
		s.logger.WarnContext(ctx, "proof check failed", "record_id", item.ID, "video_id", videoID, "error", err)
		return false, err
	}
	if !available {
		s.logger.InfoContext(ctx, "proof link unreachable", "record_id", item.ID, "video_id", videoID)
	}

	return available, nil
}
