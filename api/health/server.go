package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetServerHealth reports liveness plus uptime and memory stats.
func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	status := hrm.healthService.GetServerHealthStatus()

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}

// GetDatabaseHealth reports database and cache connectivity.
func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	dbStatus, err := hrm.healthService.GetDatabaseHealthStatus()
	cacheOk := hrm.healthService.GetCacheHealthStatus()

	data := map[string]any{
		"database": dbStatus,
		"cache":    map[string]bool{"connected": cacheOk},
	}

	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Database is unreachable"),
			gecho.WithData(data),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(data),
		gecho.Send(),
	)
}
