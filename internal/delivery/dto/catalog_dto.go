package dto

// Request DTOs

type CreateDepartmentRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type UpdateDepartmentRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type CreateQualificationRequest struct {
	Name  string `json:"name" validate:"required,max=300"`
	Title string `json:"title" validate:"required,max=255"`
}

type UpdateQualificationRequest struct {
	Name  string `json:"name" validate:"required,max=300"`
	Title string `json:"title" validate:"required,max=255"`
}

type CreateCollectionRequest struct {
	Title          string `json:"title" validate:"required,max=255"`
	FeaturedTestID *int   `json:"featured_test_id"`
}

type UpdateCollectionRequest struct {
	Title          string `json:"title" validate:"required,max=255"`
	FeaturedTestID *int   `json:"featured_test_id"`
}

// Response DTOs

type DepartmentResponse struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	DoctorsCount int64  `json:"doctors_count"`
}

type QualificationResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	DoctorsCount int64  `json:"doctors_count"`
}

type CollectionResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	TestsCount int64  `json:"tests_count"`
}
