package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// ServiceStatus reports one dependency's health.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// HealthCheckResponse is the /healthCheck payload.
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]ServiceStatus `json:"services"`
}

// HealthCheckHandler handles GET /healthCheck. Dependencies passed as nil
// are skipped rather than reported down.
func HealthCheckHandler(auditDB *sqlx.DB, redisClient *redis.Client, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]ServiceStatus)

		if auditDB != nil {
			status, details := "ok", "audit database connected"
			if err := auditDB.Ping(); err != nil {
				status, details = "down", err.Error()
			}
			services["audit_db"] = ServiceStatus{Status: status, Details: details}
		}

		if redisClient != nil {
			status, details := "ok", "redis connected"
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				status, details = "down", err.Error()
			}
			services["redis"] = ServiceStatus{Status: status, Details: details}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := HealthCheckResponse{
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: services,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
