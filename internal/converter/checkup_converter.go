package converter

import (
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
)

// CheckupToResponse converts a Checkup entity to CheckupResponse DTO
func CheckupToResponse(checkup *entity.Checkup) *dto.CheckupResponse {
	if checkup == nil {
		return nil
	}

	doctors := make([]dto.DoctorForCheckupResponse, len(checkup.Doctors))
	for i := range checkup.Doctors {
		doctors[i] = *LineToResponse(&checkup.Doctors[i])
	}

	return &dto.CheckupResponse{
		ID:            checkup.ID,
		BookedAt:      checkup.BookedAt,
		Doctors:       doctors,
		TotalPayable:  checkup.TotalPayable(),
		PaymentStatus: checkup.PaymentStatus.Label(),
	}
}

// LineToResponse converts a DoctorForCheckup entity to its response DTO
func LineToResponse(line *entity.DoctorForCheckup) *dto.DoctorForCheckupResponse {
	if line == nil {
		return nil
	}

	return &dto.DoctorForCheckupResponse{
		ID:             line.ID,
		DoctorID:       line.DoctorID,
		Name:           line.Doctor.Name(),
		VisitingCharge: line.DoctorFees,
	}
}

// CheckupsToResponses converts a slice of Checkup entities to response DTOs
func CheckupsToResponses(checkups []entity.Checkup) []dto.CheckupResponse {
	responses := make([]dto.CheckupResponse, len(checkups))
	for i := range checkups {
		responses[i] = *CheckupToResponse(&checkups[i])
	}
	return responses
}
