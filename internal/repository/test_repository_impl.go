package repository

import (
	"context"
	"errors"

	"pathlab/internal/domain/entity"
	domainRepo "pathlab/internal/domain/repository"

	"gorm.io/gorm"
)

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) domainRepo.TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *entity.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindAll(ctx context.Context, filter *entity.TestFilter) ([]entity.Test, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Test{}).Preload("Collection")

	if filter.CollectionID != nil {
		query = query.Where("collection_id = ?", *filter.CollectionID)
	}
	if filter.PriceGT != nil {
		query = query.Where("unit_price > ?", *filter.PriceGT)
	}
	if filter.PriceLT != nil {
		query = query.Where("unit_price < ?", *filter.PriceLT)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.OrderByPrice {
	case "asc":
		query = query.Order("unit_price ASC")
	case "desc":
		query = query.Order("unit_price DESC")
	default:
		query = query.Order("title ASC")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var tests []entity.Test
	err := query.Limit(limit).Offset((page - 1) * limit).Find(&tests).Error
	if err != nil {
		return nil, 0, err
	}
	return tests, total, nil
}

func (r *testRepository) FindByID(ctx context.Context, id int) (*entity.Test, error) {
	var test entity.Test
	err := r.db.WithContext(ctx).Preload("Collection").Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByCode(ctx context.Context, code string) (*entity.Test, error) {
	var test entity.Test
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) Update(ctx context.Context, test *entity.Test) error {
	return r.db.WithContext(ctx).Save(test).Error
}

func (r *testRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Test{}).Error
}

func (r *testRepository) CountByCollectionID(ctx context.Context, collectionID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Test{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error
	return count, err
}
