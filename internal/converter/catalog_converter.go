package converter

import (
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
)

// TestToResponse converts a Test entity to TestResponse DTO
func TestToResponse(test *entity.Test) *dto.TestResponse {
	if test == nil {
		return nil
	}

	return &dto.TestResponse{
		ID:          test.ID,
		Title:       test.Title,
		Code:        test.Code,
		Description: test.Description,
		UnitPrice:   test.UnitPrice,
		Collection:  test.Collection.Title,
	}
}

// TestsToResponses converts a slice of Test entities to response DTOs
func TestsToResponses(tests []entity.Test) []dto.TestResponse {
	responses := make([]dto.TestResponse, len(tests))
	for i := range tests {
		responses[i] = *TestToResponse(&tests[i])
	}
	return responses
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:            doctor.ID,
		Name:          doctor.Name(),
		Qualification: doctor.Qualification.Title,
		Department:    doctor.Department.Title,
		Fees:          doctor.Fees,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// TimingsToSchedule renders weekly timings as display entries
func TimingsToSchedule(timings []entity.Timing) []dto.ScheduleEntry {
	entries := make([]dto.ScheduleEntry, len(timings))
	for i := range timings {
		entries[i] = dto.ScheduleEntry{
			Day:    timings[i].Day.Name,
			Window: timings[i].Window(),
		}
	}
	return entries
}

// DepartmentsToResponses converts counted departments to response DTOs
func DepartmentsToResponses(departments []repository.DepartmentWithCount) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = dto.DepartmentResponse{
			ID:           d.ID,
			Title:        d.Title,
			DoctorsCount: d.DoctorsCount,
		}
	}
	return responses
}

// QualificationsToResponses converts counted qualifications to response DTOs
func QualificationsToResponses(qualifications []repository.QualificationWithCount) []dto.QualificationResponse {
	responses := make([]dto.QualificationResponse, len(qualifications))
	for i, q := range qualifications {
		responses[i] = dto.QualificationResponse{
			ID:           q.ID,
			Name:         q.Name,
			Title:        q.Title,
			DoctorsCount: q.DoctorsCount,
		}
	}
	return responses
}

// CollectionsToResponses converts counted collections to response DTOs
func CollectionsToResponses(collections []repository.CollectionWithCount) []dto.CollectionResponse {
	responses := make([]dto.CollectionResponse, len(collections))
	for i, c := range collections {
		responses[i] = dto.CollectionResponse{
			ID:         c.ID,
			Title:      c.Title,
			TestsCount: c.TestsCount,
		}
	}
	return responses
}
