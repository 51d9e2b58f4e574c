package handler

import (
	"encoding/json"
	"net/http"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/delivery/http/middleware"
	"pathlab/internal/usecase"
	"pathlab/pkg/response"
	"pathlab/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CheckupHandler struct {
	checkupUsecase usecase.CheckupUsecase
	validator      *validator.CustomValidator
}

func NewCheckupHandler(checkupUsecase usecase.CheckupUsecase, validator *validator.CustomValidator) *CheckupHandler {
	return &CheckupHandler{
		checkupUsecase: checkupUsecase,
		validator:      validator,
	}
}

// Book adds a doctor to today's pending checkup
// @Summary Book a doctor
// @Description Add a doctor to today's checkup; rebooking the same doctor is a no-op
// @Tags Checkups
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookDoctorRequest true "Book Doctor Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /checkups/book [post]
func (h *CheckupHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.checkupUsecase.BookDoctor(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to book doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor booked successfully", booking)
}

// Pay settles a checkup through the payment gateway
// @Summary Pay for a checkup
// @Tags Checkups
// @Security BearerAuth
// @Produce json
// @Param id path string true "Checkup ID"
// @Success 200 {object} response.Response
// @Failure 402 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /checkups/{id}/pay [post]
func (h *CheckupHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	checkupID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid checkup ID", nil)
		return
	}

	payment, err := h.checkupUsecase.PayCheckup(r.Context(), userID, checkupID)
	if err != nil {
		switch err {
		case usecase.ErrCheckupNotFound:
			response.NotFound(w, "Checkup not found")
		case usecase.ErrCheckupNotOwned:
			response.Forbidden(w, "Checkup does not belong to you")
		case usecase.ErrPaymentFailed:
			response.Error(w, http.StatusPaymentRequired, "Payment was declined", nil)
		default:
			response.InternalServerError(w, "Failed to pay checkup")
		}
		return
	}

	response.Success(w, http.StatusOK, "Checkup payment processed", payment)
}

// GetAll lists the caller's checkups
// @Summary List my checkups
// @Tags Checkups
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /checkups [get]
func (h *CheckupHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	checkups, err := h.checkupUsecase.GetMyCheckups(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get checkups")
		return
	}

	response.Success(w, http.StatusOK, "Checkups retrieved successfully", checkups)
}

// GetByID returns one of the caller's checkups
// @Summary Get checkup by ID
// @Tags Checkups
// @Security BearerAuth
// @Produce json
// @Param id path string true "Checkup ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /checkups/{id} [get]
func (h *CheckupHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	checkupID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid checkup ID", nil)
		return
	}

	checkup, err := h.checkupUsecase.GetCheckup(r.Context(), userID, checkupID)
	if err != nil {
		switch err {
		case usecase.ErrCheckupNotFound:
			response.NotFound(w, "Checkup not found")
		case usecase.ErrCheckupNotOwned:
			response.Forbidden(w, "Checkup does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get checkup")
		}
		return
	}

	response.Success(w, http.StatusOK, "Checkup retrieved successfully", checkup)
}
