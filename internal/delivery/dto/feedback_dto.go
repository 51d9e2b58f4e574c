package dto

import "time"

// Request DTOs

type CreateQueryRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,len=10"`
	Question string `json:"question" validate:"required"`
}

type AnswerQueryRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type CreateReviewRequest struct {
	TestID      int    `json:"test" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

type SubscribeRequest struct {
	Name  string `json:"name" validate:"required,max=150"`
	Email string `json:"email" validate:"required,email"`
}

// Response DTOs

type QueryResponse struct {
	// Save the id to look the answer up later
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

type QueryListResponse struct {
	Queries []QueryResponse `json:"queries"`
	Total   int             `json:"total"`
}

type ReviewResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Test        string    `json:"test"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}

type SubscribeResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
