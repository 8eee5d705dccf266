package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pbriand/marque/internal/httpserver/deps"
	"github.com/pbriand/marque/internal/logger"
)

type componentStatus struct {
	OK       bool   `json:"ok"`
	Sessions *int   `json:"sessions,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Error    string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports per-component health for operators. Unlike readyz it
// always answers 200 and carries the detail in the body.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		sessions := d.Sessions.Len()
		seedMode := "disabled"
		if d.SeedTrigger != nil {
			seedMode = "enabled"
		}

		components := map[string]componentStatus{
			"redis": checkRedis(d),
			"sessions": {
				OK:       true,
				Sessions: &sessions,
			},
			"seed": {
				OK:   true,
				Mode: seedMode,
			},
		}

		status := "ok"
		for _, c := range components {
			if !c.OK {
				status = "degraded"
				break
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			Status:     status,
			Components: components,
		})
	}
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{OK: false, Error: "client not initialized"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{OK: false, Error: err.Error()}
	}
	return componentStatus{OK: true}
}

// SeedReload triggers a manual seed import when seeding is enabled.
func SeedReload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SeedTrigger == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		select {
		case d.SeedTrigger <- struct{}{}:
			d.Logger.Info("manual seed import triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
		default:
			d.Logger.Warn("seed import already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}
}
