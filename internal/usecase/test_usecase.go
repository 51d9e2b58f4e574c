package usecase

import (
	"context"
	"errors"
	"fmt"

	"pathlab/internal/converter"
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
	"pathlab/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrTestCodeTaken    = errors.New("test code already in use")
	ErrTestInUse        = errors.New("test is referenced by existing orders")
)

type TestUsecase interface {
	List(ctx context.Context, filter *entity.TestFilter) (*dto.TestListResponse, error)
	Get(ctx context.Context, id int) (*dto.TestResponse, error)
	Create(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateTestRequest) (*dto.TestResponse, error)
	Delete(ctx context.Context, id int) error
}

type testUsecase struct {
	log            *logrus.Logger
	testRepo       repository.TestRepository
	collectionRepo repository.CollectionRepository
	orderRepo      repository.OrderRepository
	cache          *service.CatalogCache
	audit          service.AuditService
}

func NewTestUsecase(
	log *logrus.Logger,
	testRepo repository.TestRepository,
	collectionRepo repository.CollectionRepository,
	orderRepo repository.OrderRepository,
	cache *service.CatalogCache,
	audit service.AuditService,
) TestUsecase {
	return &testUsecase{
		log:            log,
		testRepo:       testRepo,
		collectionRepo: collectionRepo,
		orderRepo:      orderRepo,
		cache:          cache,
		audit:          audit,
	}
}

func (u *testUsecase) List(ctx context.Context, filter *entity.TestFilter) (*dto.TestListResponse, error) {
	signature := filterSignature(filter)

	var cached dto.TestListResponse
	if u.cache.GetTests(ctx, signature, &cached) {
		return &cached, nil
	}

	tests, total, err := u.testRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list tests: %+v", err)
		return nil, err
	}

	result := &dto.TestListResponse{
		Tests: converter.TestsToResponses(tests),
		Total: total,
	}
	u.cache.SetTests(ctx, signature, result)
	return result, nil
}

func (u *testUsecase) Get(ctx context.Context, id int) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", id, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	return converter.TestToResponse(test), nil
}

func (u *testUsecase) Create(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	collection, err := u.collectionRepo.FindByID(ctx, req.CollectionID)
	if err != nil {
		u.log.Warnf("Failed to find collection %d: %+v", req.CollectionID, err)
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}

	test := &entity.Test{
		Title:        req.Title,
		Slug:         req.Slug,
		Code:         req.Code,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		CollectionID: req.CollectionID,
	}
	if err := u.testRepo.Create(ctx, test); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrTestCodeTaken
		}
		u.log.Warnf("Failed to create test: %+v", err)
		return nil, err
	}

	test.Collection = *collection
	u.cache.InvalidateTests(ctx)
	u.audit.Record(ctx, nil, entity.AuditActionTestCreate, entity.JSON{
		"test_id": test.ID,
		"code":    test.Code,
	})
	return converter.TestToResponse(test), nil
}

func (u *testUsecase) Update(ctx context.Context, id int, req *dto.UpdateTestRequest) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", id, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	collection, err := u.collectionRepo.FindByID(ctx, req.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}

	test.Title = req.Title
	test.Slug = req.Slug
	test.Code = req.Code
	test.Description = req.Description
	test.UnitPrice = req.UnitPrice
	test.CollectionID = req.CollectionID

	if err := u.testRepo.Update(ctx, test); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrTestCodeTaken
		}
		u.log.Warnf("Failed to update test %d: %+v", id, err)
		return nil, err
	}

	test.Collection = *collection
	u.cache.InvalidateTests(ctx)
	u.audit.Record(ctx, nil, entity.AuditActionTestUpdate, entity.JSON{
		"test_id": test.ID,
	})
	return converter.TestToResponse(test), nil
}

// Delete refuses to remove a test that any order line points at; existing
// orders keep their unit-price snapshot but still reference the test row.
func (u *testUsecase) Delete(ctx context.Context, id int) error {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", id, err)
		return err
	}
	if test == nil {
		return ErrTestNotFound
	}

	ordered, err := u.orderRepo.CountByTestID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count orders for test %d: %+v", id, err)
		return err
	}
	if ordered > 0 {
		return ErrTestInUse
	}

	if err := u.testRepo.Delete(ctx, id); err != nil {
		if isForeignKeyError(err, "test") {
			return ErrTestInUse
		}
		u.log.Warnf("Failed to delete test %d: %+v", id, err)
		return err
	}

	u.cache.InvalidateTests(ctx)
	u.audit.Record(ctx, nil, entity.AuditActionTestDelete, entity.JSON{
		"test_id": id,
	})
	return nil
}

// filterSignature flattens a listing filter into a stable cache key part
func filterSignature(filter *entity.TestFilter) string {
	if filter == nil {
		return "all"
	}
	collection := "-"
	if filter.CollectionID != nil {
		collection = fmt.Sprintf("%d", *filter.CollectionID)
	}
	gt, lt := "-", "-"
	if filter.PriceGT != nil {
		gt = filter.PriceGT.String()
	}
	if filter.PriceLT != nil {
		lt = filter.PriceLT.String()
	}
	return fmt.Sprintf("c=%s:gt=%s:lt=%s:q=%s:o=%s:p=%d:l=%d",
		collection, gt, lt, filter.Search, filter.OrderByPrice, filter.Page, filter.Limit)
}
