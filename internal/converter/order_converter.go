package converter

import (
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderToResponse converts an Order entity to OrderResponse DTO
func OrderToResponse(order *entity.Order) *dto.OrderResponse {
	if order == nil {
		return nil
	}

	resp := &dto.OrderResponse{
		ID:            order.ID,
		PlacedAt:      order.PlacedAt,
		TotalPayable:  order.TotalPayable(),
		PaymentStatus: order.PaymentStatus.Label(),
	}
	if order.Line != nil {
		resp.Line = &dto.OrderedTestResponse{
			ID:        order.Line.ID,
			TestID:    order.Line.TestID,
			Title:     order.Line.Test.Title,
			Quantity:  order.Line.Quantity,
			UnitPrice: order.Line.UnitPrice,
		}
	}
	return resp
}

// OrderToResponseWithReport attaches the report id when one exists
func OrderToResponseWithReport(order *entity.Order, reportID *uuid.UUID) *dto.OrderResponse {
	resp := OrderToResponse(order)
	if resp != nil {
		resp.ReportID = reportID
	}
	return resp
}

// OrdersToResponses converts a slice of Order entities to response DTOs
func OrdersToResponses(orders []entity.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *OrderToResponse(&orders[i])
	}
	return responses
}
