package http

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webshop/order-history-service/internal/history"
)

func NewRouter(queries *history.Queries, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())

	h := NewOrderHistoryHandler(queries)
	auth := Auth(jwtSecret)

	mux.Handle("GET /api/my/orders", auth(http.HandlerFunc(h.MyOrders)))
	mux.Handle("GET /api/my/orders/{orderId}", auth(http.HandlerFunc(h.OrderDetail)))

	return Metrics(mux)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "order-history-service",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
