package usecase

import (
	"context"
	"errors"
	"testing"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type doctorFixture struct {
	uc                DoctorUsecase
	doctorRepo        *fakeDoctorRepo
	departmentRepo    *fakeDepartmentRepo
	qualificationRepo *fakeQualificationRepo
}

func newDoctorFixture() *doctorFixture {
	doctorRepo := &fakeDoctorRepo{doctors: map[int]*entity.Doctor{}}
	departmentRepo := newFakeDepartmentRepo()
	departmentRepo.departments[1] = &entity.Department{ID: 1, Title: "Biochemistry"}
	qualificationRepo := newFakeQualificationRepo()
	qualificationRepo.qualifications[1] = &entity.Qualification{ID: 1, Name: "Doctor of Medicine", Title: "MD"}
	checkupRepo := newFakeCheckupRepo()

	uc := NewDoctorUsecase(testLogger(), doctorRepo, departmentRepo, qualificationRepo, checkupRepo, noopAudit{})
	return &doctorFixture{
		uc:                uc,
		doctorRepo:        doctorRepo,
		departmentRepo:    departmentRepo,
		qualificationRepo: qualificationRepo,
	}
}

func createDoctorRequest() *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		FirstName:       "Asha",
		LastName:        "Verma",
		Email:           "asha.verma@example.com",
		Phone:           "9876543210",
		QualificationID: 1,
		DepartmentID:    1,
		Fees:            decimal.NewFromInt(500),
	}
}

func TestCreateDoctor(t *testing.T) {
	ctx := context.Background()

	t.Run("creates doctor with seeded qualification", func(t *testing.T) {
		f := newDoctorFixture()

		doctor, err := f.uc.Create(ctx, createDoctorRequest())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if doctor.Qualification != "MD" {
			t.Errorf("qualification = %q, want %q", doctor.Qualification, "MD")
		}
		if doctor.Department != "Biochemistry" {
			t.Errorf("department = %q, want %q", doctor.Department, "Biochemistry")
		}
		if len(f.doctorRepo.doctors) != 1 {
			t.Errorf("doctors stored = %d, want 1", len(f.doctorRepo.doctors))
		}
	})

	t.Run("unknown qualification is rejected before the insert", func(t *testing.T) {
		f := newDoctorFixture()

		req := createDoctorRequest()
		req.QualificationID = 42
		_, err := f.uc.Create(ctx, req)
		if !errors.Is(err, ErrQualificationNotFound) {
			t.Fatalf("Create err = %v, want ErrQualificationNotFound", err)
		}
		if len(f.doctorRepo.doctors) != 0 {
			t.Errorf("doctors stored = %d, want 0", len(f.doctorRepo.doctors))
		}
	})

	t.Run("unknown department is rejected", func(t *testing.T) {
		f := newDoctorFixture()

		req := createDoctorRequest()
		req.DepartmentID = 42
		_, err := f.uc.Create(ctx, req)
		if !errors.Is(err, ErrDepartmentNotFound) {
			t.Fatalf("Create err = %v, want ErrDepartmentNotFound", err)
		}
	})
}

func TestUpdateDoctor(t *testing.T) {
	ctx := context.Background()

	t.Run("reassigning to an unknown qualification fails", func(t *testing.T) {
		f := newDoctorFixture()

		doctor, err := f.uc.Create(ctx, createDoctorRequest())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		req := &dto.UpdateDoctorRequest{
			FirstName:       "Asha",
			LastName:        "Verma",
			Email:           "asha.verma@example.com",
			Phone:           "9876543210",
			QualificationID: 42,
			DepartmentID:    1,
			Fees:            decimal.NewFromInt(600),
		}
		if _, err := f.uc.Update(ctx, doctor.ID, req); !errors.Is(err, ErrQualificationNotFound) {
			t.Fatalf("Update err = %v, want ErrQualificationNotFound", err)
		}
	})
}
