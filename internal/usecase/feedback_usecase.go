package usecase

import (
	"context"
	"errors"

	"pathlab/internal/converter"
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
	"pathlab/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrQueryNotFound     = errors.New("query not found")
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)

type QueryUsecase interface {
	Create(ctx context.Context, req *dto.CreateQueryRequest) (*dto.QueryResponse, error)
	List(ctx context.Context, filter *repository.QueryFilter) (*dto.QueryListResponse, error)
	Get(ctx context.Context, id int64) (*dto.QueryResponse, error)
	Answer(ctx context.Context, id int64, req *dto.AnswerQueryRequest) (*dto.QueryResponse, error)
}

type ReviewUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	List(ctx context.Context, testID *int) (*dto.ReviewListResponse, error)
}

type SubscribeUsecase interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error)
}

type queryUsecase struct {
	log       *logrus.Logger
	queryRepo repository.QueryRepository
	audit     service.AuditService
}

func NewQueryUsecase(log *logrus.Logger, queryRepo repository.QueryRepository, audit service.AuditService) QueryUsecase {
	return &queryUsecase{log: log, queryRepo: queryRepo, audit: audit}
}

func (u *queryUsecase) Create(ctx context.Context, req *dto.CreateQueryRequest) (*dto.QueryResponse, error) {
	query := &entity.Query{
		Name:     req.Name,
		Phone:    req.Phone,
		Question: req.Question,
	}
	if err := u.queryRepo.Create(ctx, query); err != nil {
		u.log.Errorf("Failed to create query: %+v", err)
		return nil, err
	}
	return converter.QueryToResponse(query), nil
}

func (u *queryUsecase) List(ctx context.Context, filter *repository.QueryFilter) (*dto.QueryListResponse, error) {
	queries, err := u.queryRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list queries: %+v", err)
		return nil, err
	}
	return &dto.QueryListResponse{
		Queries: converter.QueriesToResponses(queries),
		Total:   len(queries),
	}, nil
}

func (u *queryUsecase) Get(ctx context.Context, id int64) (*dto.QueryResponse, error) {
	query, err := u.queryRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find query %d: %+v", id, err)
		return nil, err
	}
	if query == nil {
		return nil, ErrQueryNotFound
	}
	return converter.QueryToResponse(query), nil
}

func (u *queryUsecase) Answer(ctx context.Context, id int64, req *dto.AnswerQueryRequest) (*dto.QueryResponse, error) {
	query, err := u.queryRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find query %d: %+v", id, err)
		return nil, err
	}
	if query == nil {
		return nil, ErrQueryNotFound
	}

	if err := u.queryRepo.UpdateAnswer(ctx, id, req.Answer); err != nil {
		u.log.Errorf("Failed to answer query %d: %+v", id, err)
		return nil, err
	}
	query.Answer = &req.Answer

	u.audit.Record(ctx, nil, entity.AuditActionQueryAnswer, entity.JSON{
		"query_id": id,
	})
	return converter.QueryToResponse(query), nil
}

type reviewUsecase struct {
	log        *logrus.Logger
	reviewRepo repository.ReviewRepository
	testRepo   repository.TestRepository
	userRepo   repository.UserRepository
}

func NewReviewUsecase(
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	testRepo repository.TestRepository,
	userRepo repository.UserRepository,
) ReviewUsecase {
	return &reviewUsecase{
		log:        log,
		reviewRepo: reviewRepo,
		testRepo:   testRepo,
		userRepo:   userRepo,
	}
}

func (u *reviewUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	test, err := u.testRepo.FindByID(ctx, req.TestID)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", req.TestID, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	review := &entity.Review{
		TestID:      req.TestID,
		UserID:      userID,
		Description: req.Description,
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		u.log.Errorf("Failed to create review: %+v", err)
		return nil, err
	}

	review.Test = *test
	review.User = *user
	responses := converter.ReviewsToResponses([]entity.Review{*review})
	return &responses[0], nil
}

func (u *reviewUsecase) List(ctx context.Context, testID *int) (*dto.ReviewListResponse, error) {
	reviews, err := u.reviewRepo.FindAll(ctx, testID)
	if err != nil {
		u.log.Warnf("Failed to list reviews: %+v", err)
		return nil, err
	}
	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}

type subscribeUsecase struct {
	log           *logrus.Logger
	subscribeRepo repository.SubscribeRepository
	audit         service.AuditService
}

func NewSubscribeUsecase(log *logrus.Logger, subscribeRepo repository.SubscribeRepository, audit service.AuditService) SubscribeUsecase {
	return &subscribeUsecase{log: log, subscribeRepo: subscribeRepo, audit: audit}
}

func (u *subscribeUsecase) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error) {
	existing, err := u.subscribeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check subscription %s: %+v", req.Email, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySubscribed
	}

	subscribe := &entity.Subscribe{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := u.subscribeRepo.Create(ctx, subscribe); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrAlreadySubscribed
		}
		u.log.Errorf("Failed to create subscription: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, nil, entity.AuditActionSubscribeCreate, entity.JSON{
		"email": subscribe.Email,
	})
	return &dto.SubscribeResponse{
		ID:    subscribe.ID,
		Name:  subscribe.Name,
		Email: subscribe.Email,
	}, nil
}
