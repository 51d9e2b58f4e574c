package repository

import (
	"context"
	"errors"

	"pathlab/internal/domain/entity"
	domainRepo "pathlab/internal/domain/repository"

	"gorm.io/gorm"
)

type queryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) domainRepo.QueryRepository {
	return &queryRepository{db: db}
}

func (r *queryRepository) Create(ctx context.Context, query *entity.Query) error {
	return r.db.WithContext(ctx).Create(query).Error
}

func (r *queryRepository) FindAll(ctx context.Context, filter *domainRepo.QueryFilter) ([]entity.Query, error) {
	q := r.db.WithContext(ctx).Model(&entity.Query{})
	if filter != nil {
		if filter.ID != nil {
			q = q.Where("id = ?", *filter.ID)
		}
		if filter.NameContains != "" {
			q = q.Where("name ILIKE ?", "%"+filter.NameContains+"%")
		}
	}

	var queries []entity.Query
	err := q.Order("created_at DESC").Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepository) FindByID(ctx context.Context, id int64) (*entity.Query, error) {
	var query entity.Query
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&query).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &query, nil
}

func (r *queryRepository) UpdateAnswer(ctx context.Context, id int64, answer string) error {
	return r.db.WithContext(ctx).Model(&entity.Query{}).
		Where("id = ?", id).
		Update("answer", answer).Error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) domainRepo.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindAll(ctx context.Context, testID *int) ([]entity.Review, error) {
	query := r.db.WithContext(ctx).Preload("Test").Preload("User")
	if testID != nil {
		query = query.Where("test_id = ?", *testID)
	}

	var reviews []entity.Review
	err := query.Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

type subscribeRepository struct {
	db *gorm.DB
}

func NewSubscribeRepository(db *gorm.DB) domainRepo.SubscribeRepository {
	return &subscribeRepository{db: db}
}

func (r *subscribeRepository) Create(ctx context.Context, subscribe *entity.Subscribe) error {
	return r.db.WithContext(ctx).Create(subscribe).Error
}

func (r *subscribeRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscribe, error) {
	var subscribe entity.Subscribe
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&subscribe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscribe, nil
}
