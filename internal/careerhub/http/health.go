package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

// readyTimeout bounds the open-and-ping done by /readyz.
const readyTimeout = 3 * time.Second

func healthBody(status string, started time.Time, version string) hubsdk.HealthResponse {
	return hubsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(started).Round(time.Second).String(),
		Version: version,
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns 200 with uptime and version whenever the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	hubsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(started time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, healthBody("ok", started, version))
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Opens the database through the shared handle if needed and pings it.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	hubsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	hubsdk.HealthResponse	"database unavailable"
//	@Router			/readyz [get].
func ReadyzHandler(started time.Time, version string, h *store.Handle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		body := healthBody("ok", started, version)
		body.Checks = &hubsdk.HealthChecks{Database: "ok"}
		code := http.StatusOK

		if err := pingStore(ctx, h); err != nil {
			body.Status = "degraded"
			body.Checks.Database = "error: " + err.Error()
			code = http.StatusServiceUnavailable
		}
		httpx.WriteJSON(w, code, body)
	}
}

func pingStore(ctx context.Context, h *store.Handle) error {
	st, err := h.Get(ctx)
	if err != nil {
		return err
	}
	return st.Ping(ctx)
}
