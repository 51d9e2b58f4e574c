package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/usecase"
	"pathlab/pkg/response"
	"pathlab/pkg/validator"

	"github.com/gorilla/mux"
)

// CatalogHandler serves the department, qualification and collection
// groupings that the storefront browses by.
type CatalogHandler struct {
	departmentUsecase    usecase.DepartmentUsecase
	qualificationUsecase usecase.QualificationUsecase
	collectionUsecase    usecase.CollectionUsecase
	validator            *validator.CustomValidator
}

func NewCatalogHandler(
	departmentUsecase usecase.DepartmentUsecase,
	qualificationUsecase usecase.QualificationUsecase,
	collectionUsecase usecase.CollectionUsecase,
	validator *validator.CustomValidator,
) *CatalogHandler {
	return &CatalogHandler{
		departmentUsecase:    departmentUsecase,
		qualificationUsecase: qualificationUsecase,
		collectionUsecase:    collectionUsecase,
		validator:            validator,
	}
}

// GetDepartments lists departments with doctor headcounts
// @Summary List departments
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /departments [get]
func (h *CatalogHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}
	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

// CreateDepartment handles department creation
// @Summary Create a department
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Create Department Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/departments [post]
func (h *CatalogHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.departmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentTitleTaken:
			response.Conflict(w, "Department title already in use")
		default:
			response.InternalServerError(w, "Failed to create department")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

// UpdateDepartment handles department update
// @Summary Update a department
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Update Department Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/departments/{id} [put]
func (h *CatalogHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.departmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrDepartmentTitleTaken:
			response.Conflict(w, "Department title already in use")
		default:
			response.InternalServerError(w, "Failed to update department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department updated successfully", department)
}

// DeleteDepartment handles department deletion
// @Summary Delete a department
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/departments/{id} [delete]
func (h *CatalogHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	if err := h.departmentUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrDepartmentNotEmpty:
			response.Conflict(w, "Department still has doctors assigned")
		default:
			response.InternalServerError(w, "Failed to delete department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department deleted successfully", nil)
}

// GetQualifications lists qualifications with doctor headcounts
// @Summary List qualifications
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /qualifications [get]
func (h *CatalogHandler) GetQualifications(w http.ResponseWriter, r *http.Request) {
	qualifications, err := h.qualificationUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get qualifications")
		return
	}
	response.Success(w, http.StatusOK, "Qualifications retrieved successfully", qualifications)
}

// CreateQualification handles qualification creation
// @Summary Create a qualification
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateQualificationRequest true "Create Qualification Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/qualifications [post]
func (h *CatalogHandler) CreateQualification(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateQualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	qualification, err := h.qualificationUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrQualificationTitleTaken:
			response.Conflict(w, "Qualification already exists")
		default:
			response.InternalServerError(w, "Failed to create qualification")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Qualification created successfully", qualification)
}

// UpdateQualification handles qualification update
// @Summary Update a qualification
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Qualification ID"
// @Param request body dto.UpdateQualificationRequest true "Update Qualification Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/qualifications/{id} [put]
func (h *CatalogHandler) UpdateQualification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid qualification ID", nil)
		return
	}

	var req dto.UpdateQualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	qualification, err := h.qualificationUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrQualificationNotFound:
			response.NotFound(w, "Qualification not found")
		case usecase.ErrQualificationTitleTaken:
			response.Conflict(w, "Qualification already exists")
		default:
			response.InternalServerError(w, "Failed to update qualification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Qualification updated successfully", qualification)
}

// DeleteQualification handles qualification deletion
// @Summary Delete a qualification
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Qualification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/qualifications/{id} [delete]
func (h *CatalogHandler) DeleteQualification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid qualification ID", nil)
		return
	}

	if err := h.qualificationUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrQualificationNotFound:
			response.NotFound(w, "Qualification not found")
		case usecase.ErrQualificationInUse:
			response.Conflict(w, "Qualification still has doctors holding it")
		default:
			response.InternalServerError(w, "Failed to delete qualification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Qualification deleted successfully", nil)
}

// GetCollections lists collections with test counts
// @Summary List collections
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /collections [get]
func (h *CatalogHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get collections")
		return
	}
	response.Success(w, http.StatusOK, "Collections retrieved successfully", collections)
}

// CreateCollection handles collection creation
// @Summary Create a collection
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCollectionRequest true "Create Collection Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/collections [post]
func (h *CatalogHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	collection, err := h.collectionUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCollectionTitleTaken:
			response.Conflict(w, "Collection title already in use")
		default:
			response.InternalServerError(w, "Failed to create collection")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Collection created successfully", collection)
}

// UpdateCollection handles collection update
// @Summary Update a collection
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Collection ID"
// @Param request body dto.UpdateCollectionRequest true "Update Collection Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/collections/{id} [put]
func (h *CatalogHandler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid collection ID", nil)
		return
	}

	var req dto.UpdateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	collection, err := h.collectionUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCollectionNotFound:
			response.NotFound(w, "Collection not found")
		case usecase.ErrCollectionTitleTaken:
			response.Conflict(w, "Collection title already in use")
		default:
			response.InternalServerError(w, "Failed to update collection")
		}
		return
	}

	response.Success(w, http.StatusOK, "Collection updated successfully", collection)
}

// DeleteCollection handles collection deletion
// @Summary Delete a collection
// @Tags Catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/collections/{id} [delete]
func (h *CatalogHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid collection ID", nil)
		return
	}

	if err := h.collectionUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrCollectionNotFound:
			response.NotFound(w, "Collection not found")
		case usecase.ErrCollectionNotEmpty:
			response.Conflict(w, "Collection still has tests assigned")
		default:
			response.InternalServerError(w, "Failed to delete collection")
		}
		return
	}

	response.Success(w, http.StatusOK, "Collection deleted successfully", nil)
}
