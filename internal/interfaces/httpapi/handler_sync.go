package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
)

// syncErrorBody is the failure shape of both sync surfaces. The sync endpoints
// predate the google envelope and external schedulers consume them as-is, so
// their bodies stay flat.
type syncErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RunCronSync is the scheduler-facing trigger. Conservative mode only.
func (h *Handler) RunCronSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunCronSync")
	defer span.End()

	h.runSync(ctx, w, false)
}

// RunAdminSync is the admin force trigger: any observed difference is written.
func (h *Handler) RunAdminSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAdminSync")
	defer span.End()

	h.runSync(ctx, w, true)
}

func (h *Handler) runSync(ctx context.Context, w http.ResponseWriter, force bool) {
	result, err := h.syncService.Synchronize(ctx, force)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync run failed", "force", force, "error", err)
		writeSyncError(ctx, w, err)
		return
	}

	writeSyncJSON(ctx, w, http.StatusOK, result)
}

func writeSyncError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	status := mapped.HTTPStatus
	if status == http.StatusBadRequest || status == http.StatusNotFound {
		status = http.StatusInternalServerError
	}
	writeSyncJSON(ctx, w, status, syncErrorBody{Success: false, Error: err.Error()})
}

func writeSyncJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeSyncJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}
