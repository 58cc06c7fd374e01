package postgres

import (
	"context"
	"time"

	"abgad/internal/domain/entity"
	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/domain/repository"
	"abgad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the domain.VisitRepository interface using GORM.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// Record persists a single profile visit.
func (repo *visitRepository) Record(ctx context.Context, visit *entity.Visit) error {
	visitM := &model.StoreVisitModel{
		ID:        visit.ID,
		StoreID:   visit.StoreID,
		Source:    visit.Source,
		VisitedAt: visit.VisitedAt,
	}

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record visit")
	}

	return nil
}

// ListByStoreSince retrieves visits for a store at or after the given time,
// ordered by VisitedAt ascending.
func (repo *visitRepository) ListByStoreSince(ctx context.Context, storeID uuid.UUID, since time.Time) ([]*entity.Visit, error) {
	var visitModels []*model.StoreVisitModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ? AND visited_at >= ?", storeID, since).
		Order("visited_at asc").
		Find(&visitModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits by store")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, &entity.Visit{
			ID:        visitM.ID,
			StoreID:   visitM.StoreID,
			Source:    visitM.Source,
			VisitedAt: visitM.VisitedAt,
		})
	}

	return visits, nil
}

// CountByStore returns the total number of recorded visits for a store.
func (repo *visitRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.StoreVisitModel{}).
		Where("store_id = ?", storeID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count visits by store")
	}

	return count, nil
}
