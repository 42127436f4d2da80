package http

import (
	"net/http"
	"time"

	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/pkg/httpx"
	"github.com/mrrinformatica/inventario/pkg/inventsdk"
)

// StatusHandler godoc
//
//	@Summary		Service health endpoint
//	@Description	Reports whether the service and its database are reachable.
//	@Description	Clients poll this when leaving demo mode to decide whether the
//	@Description	live backend is available.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	inventsdk.StatusResponse	"status, uptime, version"
//	@Failure		503	{object}	inventsdk.StatusResponse	"database unreachable"
//	@Router			/api/status [get].
func StatusHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, inventsdk.StatusResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
