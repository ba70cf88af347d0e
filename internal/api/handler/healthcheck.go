package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

type healthStatus struct {
	Status        string  `json:"status"`
	Time          string  `json:"time"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

// HealthcheckHandler responde com o horário atual e o tempo desde startedAt
func HealthcheckHandler(startedAt time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		writeJSON(w, log.ForContext(r.Context()), healthStatus{
			Status:        "ok",
			Time:          now.Format(time.RFC3339),
			UptimeSeconds: now.Sub(startedAt).Seconds(),
		})
	})
}
