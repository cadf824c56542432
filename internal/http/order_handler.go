package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/webshop/order-history-service/internal/history"
)

type OrderHistoryHandler struct {
	queries *history.Queries
}

func NewOrderHistoryHandler(queries *history.Queries) *OrderHistoryHandler {
	return &OrderHistoryHandler{queries: queries}
}

func (h *OrderHistoryHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	summaries, err := h.queries.MyOrders(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (h *OrderHistoryHandler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	orderID, err := strconv.ParseInt(r.PathValue("orderId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	detail, err := h.queries.Detail(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, history.ErrNoSuchOrder) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
