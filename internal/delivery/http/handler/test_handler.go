package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/usecase"
	"pathlab/pkg/response"
	"pathlab/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type TestHandler struct {
	testUsecase usecase.TestUsecase
	validator   *validator.CustomValidator
}

func NewTestHandler(testUsecase usecase.TestUsecase, validator *validator.CustomValidator) *TestHandler {
	return &TestHandler{
		testUsecase: testUsecase,
		validator:   validator,
	}
}

// GetAll handles catalog browsing with filters
// @Summary List lab tests
// @Description List tests filtered by collection, price band and search term
// @Tags Tests
// @Produce json
// @Param collection query int false "Collection ID"
// @Param price_gt query number false "Minimum price, exclusive"
// @Param price_lt query number false "Maximum price, exclusive"
// @Param search query string false "Title search term"
// @Param order query string false "Price ordering: asc or desc"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /tests [get]
func (h *TestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTestFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	tests, err := h.testUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get tests")
		return
	}

	response.Success(w, http.StatusOK, "Tests retrieved successfully", tests)
}

// GetByID handles getting a test by ID
// @Summary Get test by ID
// @Tags Tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tests/{id} [get]
func (h *TestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	test, err := h.testUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		default:
			response.InternalServerError(w, "Failed to get test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test retrieved successfully", test)
}

// Create handles test creation
// @Summary Create a new test
// @Tags Tests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTestRequest true "Create Test Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/tests [post]
func (h *TestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTestCodeTaken:
			response.Conflict(w, "Test code already in use")
		case usecase.ErrCollectionNotFound:
			response.Error(w, http.StatusBadRequest, "Collection not found", nil)
		default:
			response.InternalServerError(w, "Failed to create test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Test created successfully", test)
}

// Update handles test update
// @Summary Update a test
// @Tags Tests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param request body dto.UpdateTestRequest true "Update Test Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/tests/{id} [put]
func (h *TestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	var req dto.UpdateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		case usecase.ErrTestCodeTaken:
			response.Conflict(w, "Test code already in use")
		case usecase.ErrCollectionNotFound:
			response.Error(w, http.StatusBadRequest, "Collection not found", nil)
		default:
			response.InternalServerError(w, "Failed to update test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test updated successfully", test)
}

// Delete handles test deletion
// @Summary Delete a test
// @Tags Tests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/tests/{id} [delete]
func (h *TestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	if err := h.testUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		case usecase.ErrTestInUse:
			response.Conflict(w, "Test is referenced by existing orders")
		default:
			response.InternalServerError(w, "Failed to delete test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test deleted successfully", nil)
}

func parseTestFilter(r *http.Request) (*entity.TestFilter, error) {
	q := r.URL.Query()
	filter := &entity.TestFilter{
		Search:       q.Get("search"),
		OrderByPrice: q.Get("order"),
	}

	if raw := q.Get("collection"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errInvalidFilter("collection")
		}
		filter.CollectionID = &id
	}
	if raw := q.Get("price_gt"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errInvalidFilter("price_gt")
		}
		filter.PriceGT = &price
	}
	if raw := q.Get("price_lt"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errInvalidFilter("price_lt")
		}
		filter.PriceLT = &price
	}

	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	return filter, nil
}

func errInvalidFilter(name string) error {
	return fmt.Errorf("invalid %s filter value", name)
}
