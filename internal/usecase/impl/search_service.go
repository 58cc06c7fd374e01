// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"sort"
	"strings"

	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/domain/geo"
	"abgad/internal/domain/repository"
	"abgad/internal/errors"
	"abgad/internal/usecase"
)

type searchService struct {
	storeRepo repository.StoreRepository
}

// NewSearchService creates the public search/suggestion use case.
func NewSearchService(storeRepo repository.StoreRepository) usecase.SearchUsecase {
	return &searchService{
		storeRepo: storeRepo,
	}
}

// SearchStores filters, sorts and paginates the eligible store collection.
// The processing order is fixed: eligibility, non-geo predicates, geo filter,
// sort with ID tie-break, count, slice. The cheap predicates run before any
// distance computation.
func (s *searchService) SearchStores(ctx context.Context, input *usecase.SearchStoresInput) (*usecase.SearchResultPage, error) {
	filter, err := normalizeSearchInput(input)
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.ListEligible(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list eligible stores")
	}

	predicates := buildPredicates(filter)

	matched := make([]usecase.StoreResult, 0, len(stores))
	for _, store := range stores {
		if !store.Eligible() || !matchesAll(store, predicates) {
			continue
		}

		result := usecase.StoreResult{Store: store}
		if filter.Center != nil {
			if store.Location == nil {
				continue
			}
			distance := geo.DistanceKm(
				filter.Center.Lat, filter.Center.Lng,
				store.Location.Latitude, store.Location.Longitude,
			)
			// Strict inequality: a store exactly on the boundary is excluded.
			if distance >= filter.RadiusKm {
				continue
			}
			result.DistanceKm = &distance
		}

		matched = append(matched, result)
	}

	sortResults(matched, filter.Sort)

	page, slice := paginate(matched, filter.Page, filter.PerPage)

	return &usecase.SearchResultPage{
		Stores:     slice,
		Pagination: page,
	}, nil
}

// sortResults orders results by the resolved sort key. Ties are always broken
// by store ID ascending so pagination stays reproducible across requests.
func sortResults(results []usecase.StoreResult, key usecase.SortKey) {
	less := func(a, b usecase.StoreResult) bool {
		return a.Store.ID.String() < b.Store.ID.String()
	}

	switch key {
	case usecase.SortByName:
		less = func(a, b usecase.StoreResult) bool {
			an := strings.ToLower(a.Store.TradingName)
			bn := strings.ToLower(b.Store.TradingName)
			if an != bn {
				return an < bn
			}

			return a.Store.ID.String() < b.Store.ID.String()
		}
	case usecase.SortByNewest, usecase.SortByRating:
		less = func(a, b usecase.StoreResult) bool {
			at, bt := a.Store.CreatedAt, b.Store.CreatedAt
			if !at.Equal(bt) {
				return at.After(bt)
			}

			return a.Store.ID.String() < b.Store.ID.String()
		}
	case usecase.SortByDistance:
		less = func(a, b usecase.StoreResult) bool {
			ad, bd := distanceOrZero(a), distanceOrZero(b)
			if ad != bd {
				return ad < bd
			}

			return a.Store.ID.String() < b.Store.ID.String()
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return less(results[i], results[j])
	})
}

func distanceOrZero(result usecase.StoreResult) float64 {
	if result.DistanceKm == nil {
		return 0
	}

	return *result.DistanceKm
}

// paginate computes the metadata over the full ordered result and slices the
// requested page. From/To stay nil for an empty page.
func paginate(results []usecase.StoreResult, page, perPage int) (usecase.Pagination, []usecase.StoreResult) {
	total := len(results)
	lastPage := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	slice := results[start:end]

	meta := usecase.Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if len(slice) > 0 {
		from := start + 1
		to := start + len(slice)
		meta.From = &from
		meta.To = &to
	}

	return meta, slice
}

// Suggest scans the eligible stores three times for capped typeahead facets:
// store name matches, distinct categories and distinct primary-location
// cities. Matching is case-insensitive substring containment.
func (s *searchService) Suggest(ctx context.Context, term string) (*usecase.SuggestionSet, error) {
	term = strings.TrimSpace(term)
	if len(term) < usecase.MinSuggestionTermLen {
		return nil, domainerrors.NewFieldValidationError("q", "must be at least 2 characters")
	}
	if len(term) > usecase.MaxSuggestionTermLen {
		return nil, domainerrors.NewFieldValidationError("q", "must be at most 100 characters")
	}

	stores, err := s.storeRepo.ListEligible(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list eligible stores")
	}

	needle := strings.ToLower(term)

	set := &usecase.SuggestionSet{
		Stores:     []usecase.StoreSuggestion{},
		Categories: []string{},
		Cities:     []string{},
	}

	for _, store := range stores {
		if len(set.Stores) >= usecase.SuggestionCap {
			break
		}
		if !store.Eligible() {
			continue
		}
		if strings.Contains(strings.ToLower(store.TradingName), needle) {
			set.Stores = append(set.Stores, usecase.StoreSuggestion{
				ID:       store.ID,
				Name:     store.TradingName,
				Category: store.Category,
			})
		}
	}

	seenCategories := make(map[string]struct{})
	for _, store := range stores {
		if len(set.Categories) >= usecase.SuggestionCap {
			break
		}
		if !store.Eligible() {
			continue
		}
		if !strings.Contains(strings.ToLower(store.Category), needle) {
			continue
		}
		if _, seen := seenCategories[store.Category]; seen {
			continue
		}
		seenCategories[store.Category] = struct{}{}
		set.Categories = append(set.Categories, store.Category)
	}

	seenCities := make(map[string]struct{})
	for _, store := range stores {
		if len(set.Cities) >= usecase.SuggestionCap {
			break
		}
		if !store.Eligible() || store.Location == nil {
			continue
		}
		city := store.Location.City
		if !strings.Contains(strings.ToLower(city), needle) {
			continue
		}
		if _, seen := seenCities[city]; seen {
			continue
		}
		seenCities[city] = struct{}{}
		set.Cities = append(set.Cities, city)
	}

	return set, nil
}
