package handler

import (
	"encoding/json"
	"net/http"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/delivery/http/middleware"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
	"pathlab/internal/usecase"
	"pathlab/pkg/response"
	"pathlab/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validator    *validator.CustomValidator
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase, validator *validator.CustomValidator) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

// Place handles order placement
// @Summary Place an order
// @Description Buy one lab test; the unit price is snapshotted at purchase
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PlaceOrderRequest true "Place Order Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders [post]
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		default:
			response.InternalServerError(w, "Failed to place order")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Order placed successfully", order)
}

// Pay settles an order through the payment gateway
// @Summary Pay for an order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Response
// @Failure 402 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id}/pay [post]
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	payment, err := h.orderUsecase.PayOrder(r.Context(), userID, orderID)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Order not found")
		case usecase.ErrOrderNotOwned:
			response.Forbidden(w, "Order does not belong to you")
		case usecase.ErrPaymentFailed:
			response.Error(w, http.StatusPaymentRequired, "Payment was declined", nil)
		default:
			response.InternalServerError(w, "Failed to pay order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order payment processed", payment)
}

// GetAll lists the caller's orders
// @Summary List my orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Payment status filter: P, C or F"
// @Success 200 {object} response.Response
// @Router /orders [get]
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	filter := &repository.OrderFilter{}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entity.PaymentStatus(raw)
		if !status.IsPending() && !status.IsComplete() && !status.IsFailed() {
			response.Error(w, http.StatusBadRequest, "Invalid status filter value", nil)
			return
		}
		filter.PaymentStatus = &status
	}

	orders, err := h.orderUsecase.GetMyOrders(r.Context(), userID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

// GetByID returns one of the caller's orders
// @Summary Get order by ID
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	order, err := h.orderUsecase.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Order not found")
		case usecase.ErrOrderNotOwned:
			response.Forbidden(w, "Order does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order retrieved successfully", order)
}
