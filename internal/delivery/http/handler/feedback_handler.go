package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/delivery/http/middleware"
	"pathlab/internal/domain/repository"
	"pathlab/internal/usecase"
	"pathlab/pkg/response"
	"pathlab/pkg/validator"

	"github.com/gorilla/mux"
)

// FeedbackHandler serves the public intake surfaces: visitor queries,
// customer reviews and newsletter signups.
type FeedbackHandler struct {
	queryUsecase     usecase.QueryUsecase
	reviewUsecase    usecase.ReviewUsecase
	subscribeUsecase usecase.SubscribeUsecase
	validator        *validator.CustomValidator
}

func NewFeedbackHandler(
	queryUsecase usecase.QueryUsecase,
	reviewUsecase usecase.ReviewUsecase,
	subscribeUsecase usecase.SubscribeUsecase,
	validator *validator.CustomValidator,
) *FeedbackHandler {
	return &FeedbackHandler{
		queryUsecase:     queryUsecase,
		reviewUsecase:    reviewUsecase,
		subscribeUsecase: subscribeUsecase,
		validator:        validator,
	}
}

// CreateQuery handles visitor question intake
// @Summary Submit a query
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateQueryRequest true "Create Query Request"
// @Success 201 {object} response.Response
// @Router /queries [post]
func (h *FeedbackHandler) CreateQuery(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	query, err := h.queryUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit query")
		return
	}

	response.Success(w, http.StatusCreated, "Query submitted successfully", query)
}

// GetQueries lists queries, filterable by id or submitter name
// @Summary List queries
// @Tags Feedback
// @Produce json
// @Param id query int false "Query ID"
// @Param name query string false "Submitter name search"
// @Success 200 {object} response.Response
// @Router /queries [get]
func (h *FeedbackHandler) GetQueries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &repository.QueryFilter{
		NameContains: q.Get("name"),
	}
	if raw := q.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid id filter value", nil)
			return
		}
		filter.ID = &id
	}

	queries, err := h.queryUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get queries")
		return
	}

	response.Success(w, http.StatusOK, "Queries retrieved successfully", queries)
}

// GetQueryByID returns one query with its answer, if given
// @Summary Get query by ID
// @Tags Feedback
// @Produce json
// @Param id path int true "Query ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /queries/{id} [get]
func (h *FeedbackHandler) GetQueryByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid query ID", nil)
		return
	}

	query, err := h.queryUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrQueryNotFound:
			response.NotFound(w, "Query not found")
		default:
			response.InternalServerError(w, "Failed to get query")
		}
		return
	}

	response.Success(w, http.StatusOK, "Query retrieved successfully", query)
}

// AnswerQuery records an admin's answer to a query
// @Summary Answer a query
// @Tags Feedback
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Query ID"
// @Param request body dto.AnswerQueryRequest true "Answer Query Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/queries/{id}/answer [put]
func (h *FeedbackHandler) AnswerQuery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid query ID", nil)
		return
	}

	var req dto.AnswerQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	query, err := h.queryUsecase.Answer(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrQueryNotFound:
			response.NotFound(w, "Query not found")
		default:
			response.InternalServerError(w, "Failed to answer query")
		}
		return
	}

	response.Success(w, http.StatusOK, "Query answered successfully", query)
}

// CreateReview records a customer's feedback on a test
// @Summary Submit a review
// @Tags Feedback
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviews [post]
func (h *FeedbackHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		default:
			response.InternalServerError(w, "Failed to submit review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review submitted successfully", review)
}

// GetReviews lists reviews, optionally scoped to one test
// @Summary List reviews
// @Tags Feedback
// @Produce json
// @Param test query int false "Test ID"
// @Success 200 {object} response.Response
// @Router /reviews [get]
func (h *FeedbackHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	var testID *int
	if raw := r.URL.Query().Get("test"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid test filter value", nil)
			return
		}
		testID = &id
	}

	reviews, err := h.reviewUsecase.List(r.Context(), testID)
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// Subscribe signs an email up for the newsletter
// @Summary Subscribe to the newsletter
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /subscribes [post]
func (h *FeedbackHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	subscribe, err := h.subscribeUsecase.Subscribe(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAlreadySubscribed:
			response.Conflict(w, "Email is already subscribed")
		default:
			response.InternalServerError(w, "Failed to subscribe")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Subscribed successfully", subscribe)
}
