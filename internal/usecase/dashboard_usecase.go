package usecase

import (
	"context"
	"time"

	"abgad/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitSummary is the aggregated analytics view shown on the owner dashboard.
type VisitSummary struct {
	Total       int64          `json:"total"`
	Last7Days   int            `json:"last_7_days"`
	Last30Days  int            `json:"last_30_days"`
	PerDay      []DailyVisits  `json:"per_day"`
	BySource    map[string]int `json:"by_source"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// DailyVisits is one per-day bucket within the 30-day window.
type DailyVisits struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// DashboardUsecase defines the owner-facing read paths.
type DashboardUsecase interface {
	// GetStore retrieves a store for its owner. Unlike the public profile it
	// does not require the store to be verified.
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)

	// GetVisitSummary aggregates recorded profile visits into a summary.
	GetVisitSummary(ctx context.Context, storeID uuid.UUID) (*VisitSummary, error)

	// GetProfileQR renders a PNG QR code for the store's public profile.
	GetProfileQR(ctx context.Context, storeID uuid.UUID) ([]byte, error)
}

// ProfileUsecase defines the public store profile read path.
type ProfileUsecase interface {
	// GetPublicProfile retrieves an eligible store and records the visit.
	GetPublicProfile(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)
}
