package converter

import (
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := entity.RoleCustomer
	if user.RoleID == entity.RoleIDAdmin {
		role = entity.RoleAdmin
	}

	return &dto.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Address:    user.Address,
		Phone:      user.Phone,
		Sex:        user.Sex,
		Age:        user.Age,
		ReferredBy: user.ReferredBy,
		Role:       role,
		CreatedAt:  user.CreatedAt,
	}
}
