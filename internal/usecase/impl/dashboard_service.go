package impl

import (
	"context"
	"log/slog"
	"time"

	"abgad/internal/domain/entity"
	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/domain/repository"
	"abgad/internal/domain/service"
	"abgad/internal/errors"
	"abgad/internal/usecase"

	"github.com/google/uuid"
)

const visitWindowDays = 30

type dashboardService struct {
	storeRepo repository.StoreRepository
	visitRepo repository.VisitRepository
	qrService service.QRCodeService
}

// NewDashboardService creates the owner dashboard use case.
func NewDashboardService(
	storeRepo repository.StoreRepository,
	visitRepo repository.VisitRepository,
	qrService service.QRCodeService,
) usecase.DashboardUsecase {
	return &dashboardService{
		storeRepo: storeRepo,
		visitRepo: visitRepo,
		qrService: qrService,
	}
}

// GetStore retrieves a store for its owner, verified or not.
func (s *dashboardService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// GetVisitSummary builds the analytics summary as explicit collection steps:
// fetch the 30-day window, bucket per day and per source, then count.
func (s *dashboardService) GetVisitSummary(ctx context.Context, storeID uuid.UUID) (*usecase.VisitSummary, error) {
	if _, err := s.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -visitWindowDays)

	visits, err := s.visitRepo.ListByStoreSince(ctx, storeID, windowStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	total, err := s.visitRepo.CountByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count visits")
	}

	sevenDaysAgo := now.AddDate(0, 0, -7)
	perDay := make(map[string]int)
	bySource := make(map[string]int)
	last7 := 0

	for _, visit := range visits {
		day := visit.VisitedAt.UTC().Format(time.DateOnly)
		perDay[day]++
		bySource[visit.Source]++
		if !visit.VisitedAt.Before(sevenDaysAgo) {
			last7++
		}
	}

	// Emit one bucket per calendar day, oldest first, including empty days so
	// the dashboard chart has a continuous axis.
	buckets := make([]usecase.DailyVisits, 0, visitWindowDays+1)
	for d := 0; d <= visitWindowDays; d++ {
		day := windowStart.AddDate(0, 0, d).Format(time.DateOnly)
		buckets = append(buckets, usecase.DailyVisits{
			Day:   day,
			Count: perDay[day],
		})
	}

	return &usecase.VisitSummary{
		Total:       total,
		Last7Days:   last7,
		Last30Days:  len(visits),
		PerDay:      buckets,
		BySource:    bySource,
		GeneratedAt: now,
	}, nil
}

// GetProfileQR renders a QR code for a store's public profile page.
func (s *dashboardService) GetProfileQR(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	if _, err := s.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateProfileQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}

type profileService struct {
	storeRepo repository.StoreRepository
	visitRepo repository.VisitRepository
	logger    *slog.Logger
}

// NewProfileService creates the public store profile use case.
func NewProfileService(
	storeRepo repository.StoreRepository,
	visitRepo repository.VisitRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		storeRepo: storeRepo,
		visitRepo: visitRepo,
		logger:    logger,
	}
}

// GetPublicProfile retrieves an eligible store and records the visit. A store
// that exists but is inactive or unverified looks the same as a missing one to
// the public. Visit recording is best-effort: a failed insert must not break
// the read path.
func (s *profileService) GetPublicProfile(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	if !store.Eligible() {
		return nil, domainerrors.ErrStoreNotVisible
	}

	visit := &entity.Visit{
		ID:        uuid.New(),
		StoreID:   store.ID,
		Source:    entity.VisitSourceProfile,
		VisitedAt: time.Now().UTC(),
	}
	if err := s.visitRepo.Record(ctx, visit); err != nil {
		s.logger.Warn("failed to record profile visit",
			slog.String("storeID", store.ID.String()),
			slog.Any("error", err),
		)
	}

	return store, nil
}
