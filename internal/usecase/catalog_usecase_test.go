package usecase

import (
	"context"
	"errors"
	"testing"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
)

func newQualificationFixture() (QualificationUsecase, *fakeQualificationRepo, *fakeDoctorRepo) {
	qualificationRepo := newFakeQualificationRepo()
	doctorRepo := &fakeDoctorRepo{doctors: map[int]*entity.Doctor{}}
	uc := NewQualificationUsecase(testLogger(), qualificationRepo, doctorRepo)
	return uc, qualificationRepo, doctorRepo
}

func TestQualificationCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create then list", func(t *testing.T) {
		uc, _, _ := newQualificationFixture()

		created, err := uc.Create(ctx, &dto.CreateQualificationRequest{
			Name:  "Doctor of Medicine",
			Title: "MD",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ID == 0 {
			t.Error("created qualification has no ID")
		}

		qualifications, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(qualifications) != 1 {
			t.Fatalf("qualifications = %d, want 1", len(qualifications))
		}
		if qualifications[0].Title != "MD" {
			t.Errorf("title = %q, want %q", qualifications[0].Title, "MD")
		}
	})

	t.Run("update unknown qualification", func(t *testing.T) {
		uc, _, _ := newQualificationFixture()

		_, err := uc.Update(ctx, 42, &dto.UpdateQualificationRequest{
			Name:  "Master of Surgery",
			Title: "MS",
		})
		if !errors.Is(err, ErrQualificationNotFound) {
			t.Fatalf("Update err = %v, want ErrQualificationNotFound", err)
		}
	})

	t.Run("delete refuses while doctors hold it", func(t *testing.T) {
		uc, qualificationRepo, doctorRepo := newQualificationFixture()

		qualificationRepo.qualifications[1] = &entity.Qualification{ID: 1, Name: "Doctor of Medicine", Title: "MD"}
		doctorRepo.doctors[1] = &entity.Doctor{ID: 1, FirstName: "Asha", LastName: "Verma", QualificationID: 1}

		if err := uc.Delete(ctx, 1); !errors.Is(err, ErrQualificationInUse) {
			t.Fatalf("Delete err = %v, want ErrQualificationInUse", err)
		}
		if qualificationRepo.qualifications[1] == nil {
			t.Error("qualification was deleted despite doctors holding it")
		}
	})

	t.Run("delete removes an unused qualification", func(t *testing.T) {
		uc, qualificationRepo, _ := newQualificationFixture()

		qualificationRepo.qualifications[1] = &entity.Qualification{ID: 1, Name: "Doctor of Medicine", Title: "MD"}
		if err := uc.Delete(ctx, 1); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(qualificationRepo.qualifications) != 0 {
			t.Errorf("qualifications left = %d, want 0", len(qualificationRepo.qualifications))
		}
	})

	t.Run("delete unknown qualification", func(t *testing.T) {
		uc, _, _ := newQualificationFixture()

		if err := uc.Delete(ctx, 42); !errors.Is(err, ErrQualificationNotFound) {
			t.Fatalf("Delete err = %v, want ErrQualificationNotFound", err)
		}
	})
}
