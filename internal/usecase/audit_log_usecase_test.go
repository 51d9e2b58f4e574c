package usecase

import (
	"context"
	"fmt"
	"testing"

	"pathlab/internal/domain/entity"
)

func seededAuditLogUsecase(entries int) (AuditLogUsecase, *fakeAuditLogRepo) {
	repo := &fakeAuditLogRepo{}
	for i := 1; i <= entries; i++ {
		repo.logs = append(repo.logs, entity.AuditLog{
			ID:     int64(i),
			Action: fmt.Sprintf("action-%d", i),
		})
	}
	return NewAuditLogUsecase(testLogger(), repo), repo
}

func TestListAuditLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults page and limit", func(t *testing.T) {
		uc, _ := seededAuditLogUsecase(25)

		resp, err := uc.List(ctx, 0, 0)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.Page != 1 || resp.Limit != 10 {
			t.Errorf("page/limit = %d/%d, want 1/10", resp.Page, resp.Limit)
		}
		if len(resp.Logs) != 10 {
			t.Errorf("logs = %d, want 10", len(resp.Logs))
		}
		if resp.Total != 25 {
			t.Errorf("total = %d, want 25", resp.Total)
		}
	})

	t.Run("newest entry comes first", func(t *testing.T) {
		uc, _ := seededAuditLogUsecase(3)

		resp, err := uc.List(ctx, 1, 10)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(resp.Logs) != 3 {
			t.Fatalf("logs = %d, want 3", len(resp.Logs))
		}
		if resp.Logs[0].Action != "action-3" {
			t.Errorf("first action = %q, want %q", resp.Logs[0].Action, "action-3")
		}
	})

	t.Run("second page picks up where the first left off", func(t *testing.T) {
		uc, _ := seededAuditLogUsecase(25)

		resp, err := uc.List(ctx, 2, 10)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(resp.Logs) != 10 {
			t.Fatalf("logs = %d, want 10", len(resp.Logs))
		}
		if resp.Logs[0].Action != "action-15" {
			t.Errorf("first action = %q, want %q", resp.Logs[0].Action, "action-15")
		}
	})
}
