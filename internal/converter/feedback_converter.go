package converter

import (
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
)

// QueryToResponse converts a Query entity to QueryResponse DTO
func QueryToResponse(query *entity.Query) *dto.QueryResponse {
	if query == nil {
		return nil
	}

	resp := &dto.QueryResponse{
		ID:       query.ID,
		Name:     query.Name,
		Question: query.Question,
	}
	if query.Answer != nil {
		resp.Answer = *query.Answer
	}
	return resp
}

// QueriesToResponses converts a slice of Query entities to response DTOs
func QueriesToResponses(queries []entity.Query) []dto.QueryResponse {
	responses := make([]dto.QueryResponse, len(queries))
	for i := range queries {
		responses[i] = *QueryToResponse(&queries[i])
	}
	return responses
}

// ReviewsToResponses converts a slice of Review entities to response DTOs
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = dto.ReviewResponse{
			ID:          review.ID,
			Name:        review.User.Name(),
			Test:        review.Test.Title,
			Date:        review.CreatedAt,
			Description: review.Description,
		}
	}
	return responses
}
