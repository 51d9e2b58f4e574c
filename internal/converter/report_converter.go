package converter

import (
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
)

// ReportToResponse converts a Report entity to ReportResponse DTO
func ReportToResponse(report *entity.Report) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:       report.ID,
		OrderID:  report.OrderID,
		TestName: report.Test.Title,
		Detail:   report.Detail,
		Date:     report.CreatedAt,
	}
}

// ReportsToResponses converts a slice of Report entities to response DTOs
func ReportsToResponses(reports []entity.Report) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		responses[i] = *ReportToResponse(&reports[i])
	}
	return responses
}
