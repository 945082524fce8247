package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

type Handler struct {
	catalogService     *usecase.CatalogService
	leaderboardService *usecase.LeaderboardService
	submissionService  *usecase.SubmissionService
	moderationService  *usecase.ModerationService
	adminService       *usecase.AdminService
	proofSweepService  *usecase.ProofSweepService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	leaderboardService *usecase.LeaderboardService,
	submissionService *usecase.SubmissionService,
	moderationService *usecase.ModerationService,
	adminService *usecase.AdminService,
	proofSweepService *usecase.ProofSweepService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService:     catalogService,
		leaderboardService: leaderboardService,
		submissionService:  submissionService,
		moderationService:  moderationService,
		adminService:       adminService,
		proofSweepService:  proofSweepService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeBody rejects unknown fields so typos in client payloads surface as
// 400s instead of silently dropped values.
func decodeBody(body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
