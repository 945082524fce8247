package httpapi

import (
	"fmt"
	"net/http"

	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func (h *Handler) RunProofSweepJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunProofSweepJob")
	defer span.End()

	if h.proofSweepService == nil {
		writeError(ctx, w, fmt.Errorf("%w: proof sweep is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	report, err := h.proofSweepService.Sweep(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "proof sweep job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
