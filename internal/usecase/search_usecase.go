// Package usecase defines the application use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"abgad/internal/domain/entity"

	"github.com/google/uuid"
)

// SortKey enumerates the supported result orderings.
type SortKey string

const (
	// SortByName orders alphabetically by trading name ascending. Default.
	SortByName SortKey = "name"
	// SortByDistance orders by computed distance ascending. Falls back to
	// SortByName when no center coordinate is supplied.
	SortByDistance SortKey = "distance"
	// SortByNewest orders by creation timestamp descending.
	SortByNewest SortKey = "newest"
	// SortByRating is accepted for frontend compatibility. No rating store
	// exists, so it behaves as SortByNewest.
	SortByRating SortKey = "rating"
)

// Valid reports whether the sort key is one of the accepted enum values.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByDistance, SortByNewest, SortByRating:
		return true
	}

	return false
}

// Pagination bounds shared between the handler and the executor.
const (
	DefaultPerPage = 15
	MaxPerPage     = 50
)

// Geo filter bounds. Radius values are kilometers.
const (
	MinRadiusKm     = 0.1
	MaxRadiusKm     = 50.0
	DefaultRadiusKm = 10.0
)

// Suggestion term length bounds and facet cap.
const (
	MinSuggestionTermLen = 2
	MaxSuggestionTermLen = 100
	SuggestionCap        = 5
)

// SearchStoresInput carries the raw search request. Optional string fields are
// empty when absent; optional numeric fields are nil when absent.
type SearchStoresInput struct {
	Query       string   `json:"q"`
	Category    string   `json:"category"`
	City        string   `json:"city"`
	Governorate string   `json:"governorate"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusKm    *float64 `json:"radius"`
	Sort        string   `json:"sort"`
	Page        int      `json:"page"`
	PerPage     int      `json:"per_page"`
}

// StoreResult is one search hit: the store plus its computed distance when a
// center coordinate was part of the request.
type StoreResult struct {
	Store      *entity.Store
	DistanceKm *float64
}

// Pagination describes the position of a result page within the full ordered
// result set. From and To are 1-based inclusive indices, nil for empty pages.
type Pagination struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
	From        *int
	To          *int
}

// SearchResultPage is one page of search hits plus pagination metadata.
type SearchResultPage struct {
	Stores     []StoreResult
	Pagination Pagination
}

// StoreSuggestion is a minimal store projection for typeahead lists.
type StoreSuggestion struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

// SuggestionSet holds the three capped suggestion facets.
type SuggestionSet struct {
	Stores     []StoreSuggestion `json:"stores"`
	Categories []string          `json:"categories"`
	Cities     []string          `json:"cities"`
}

// SearchUsecase defines the public discovery read paths.
type SearchUsecase interface {
	// SearchStores filters, sorts and paginates the eligible stores.
	SearchStores(ctx context.Context, input *SearchStoresInput) (*SearchResultPage, error)

	// Suggest returns capped typeahead candidates for a 2..100 character term.
	Suggest(ctx context.Context, term string) (*SuggestionSet, error)
}
