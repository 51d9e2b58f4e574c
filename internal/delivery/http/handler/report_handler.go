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

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// Create publishes a result for a settled order
// @Summary Create a report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Create Report Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/reports [post]
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.NotFound(w, "Order not found")
		case usecase.ErrOrderNotPaid:
			response.Error(w, http.StatusUnprocessableEntity, "Order payment is not complete", nil)
		case usecase.ErrReportAlreadyExists:
			response.Conflict(w, "Order already has a report")
		default:
			response.InternalServerError(w, "Failed to create report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report created successfully", report)
}

// GetAll lists the caller's reports
// @Summary List my reports
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports [get]
func (h *ReportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	reports, err := h.reportUsecase.GetMyReports(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

// GetByID returns one of the caller's reports
// @Summary Get report by ID
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [get]
func (h *ReportHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	reportID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	report, err := h.reportUsecase.Get(r.Context(), userID, reportID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case usecase.ErrReportNotOwned:
			response.Forbidden(w, "Report does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

// Download streams the rendered PDF
// @Summary Download report PDF
// @Tags Reports
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Report ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /reports/{id}/download [get]
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	reportID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	payload, filename, err := h.reportUsecase.Download(r.Context(), userID, reportID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case usecase.ErrReportNotOwned:
			response.Forbidden(w, "Report does not belong to you")
		default:
			response.InternalServerError(w, "Failed to download report")
		}
		return
	}

	response.Attachment(w, "application/pdf", filename, payload)
}
