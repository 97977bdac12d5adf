package admin

import (
	"net/http"
	"tennisbot_server/handling"

	"github.com/MonkyMars/gecho"
)

// GetStats returns the aggregate order and inquiry statistics the dashboard
// shows.
func (ar *AdminRoutesManager) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := ar.statsService.GetStats(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch statistics", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"stats": stats}),
		gecho.Send(),
	)
}
