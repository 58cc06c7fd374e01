package impl

import (
	"strings"

	"abgad/internal/domain/entity"
	domainerrors "abgad/internal/domain/errors"
	"abgad/internal/domain/geo"
	"abgad/internal/usecase"
)

const maxQueryLen = 255

// coordinate is a validated search center.
type coordinate struct {
	Lat float64
	Lng float64
}

// searchFilter is the normalized form of a search request. String fields are
// kept as entered; matching lowercases both sides. Center and RadiusKm are
// either both set or both absent.
type searchFilter struct {
	Query       string
	Category    string
	City        string
	Governorate string
	Center      *coordinate
	RadiusKm    float64
	Sort        usecase.SortKey
	Page        int
	PerPage     int
}

// storePredicate is a single boolean condition over a store and its primary
// location. All predicates are AND-combined by the executor.
type storePredicate func(store *entity.Store) bool

// normalizeSearchInput validates the raw request and resolves defaults,
// clamping and sort fallbacks. Returns a ValidationError on out-of-range or
// inconsistent input; such requests never reach the executor.
func normalizeSearchInput(input *usecase.SearchStoresInput) (*searchFilter, error) {
	fieldErrs := make(map[string]string)

	if len(input.Query) > maxQueryLen {
		fieldErrs["q"] = "must be at most 255 characters"
	}

	// A geo filter needs a full center coordinate. A lone latitude or
	// longitude is rejected rather than silently ignored.
	if (input.Latitude == nil) != (input.Longitude == nil) {
		if input.Latitude == nil {
			fieldErrs["latitude"] = "latitude is required when longitude is supplied"
		} else {
			fieldErrs["longitude"] = "longitude is required when latitude is supplied"
		}
	}
	if input.Latitude != nil && !geo.ValidLatitude(*input.Latitude) {
		fieldErrs["latitude"] = "must be between -90 and 90"
	}
	if input.Longitude != nil && !geo.ValidLongitude(*input.Longitude) {
		fieldErrs["longitude"] = "must be between -180 and 180"
	}
	if input.RadiusKm != nil && (*input.RadiusKm < usecase.MinRadiusKm || *input.RadiusKm > usecase.MaxRadiusKm) {
		fieldErrs["radius"] = "must be between 0.1 and 50"
	}

	sort := usecase.SortKey(input.Sort)
	if input.Sort == "" {
		sort = usecase.SortByName
	} else if !sort.Valid() {
		fieldErrs["sort"] = "must be one of name, distance, rating, newest"
	}

	if len(fieldErrs) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrs)
	}

	filter := &searchFilter{
		Query:       strings.TrimSpace(input.Query),
		Category:    strings.TrimSpace(input.Category),
		City:        strings.TrimSpace(input.City),
		Governorate: strings.TrimSpace(input.Governorate),
		Sort:        sort,
		Page:        input.Page,
		PerPage:     input.PerPage,
	}

	if input.Latitude != nil && input.Longitude != nil {
		filter.Center = &coordinate{Lat: *input.Latitude, Lng: *input.Longitude}
		filter.RadiusKm = usecase.DefaultRadiusKm
		if input.RadiusKm != nil {
			filter.RadiusKm = *input.RadiusKm
		}
	}

	// Distance ordering is meaningless without a center coordinate.
	if filter.Sort == usecase.SortByDistance && filter.Center == nil {
		filter.Sort = usecase.SortByName
	}
	// No rating attribute is persisted; the documented fallback is newest.
	if filter.Sort == usecase.SortByRating {
		filter.Sort = usecase.SortByNewest
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.PerPage < 1:
		filter.PerPage = usecase.DefaultPerPage
	case filter.PerPage > usecase.MaxPerPage:
		filter.PerPage = usecase.MaxPerPage
	}

	return filter, nil
}

// buildPredicates translates the non-geo filter fields into predicates.
// Absent fields contribute nothing. The free-text predicate is an OR-group
// over trading name, description and category; everything else is a single
// condition. The geo filter is applied separately by the executor because it
// also attaches the computed distance.
func buildPredicates(filter *searchFilter) []storePredicate {
	var predicates []storePredicate

	if filter.Query != "" {
		term := strings.ToLower(filter.Query)
		predicates = append(predicates, func(store *entity.Store) bool {
			return strings.Contains(strings.ToLower(store.TradingName), term) ||
				strings.Contains(strings.ToLower(store.Description), term) ||
				strings.Contains(strings.ToLower(store.Category), term)
		})
	}

	if filter.Category != "" {
		category := filter.Category
		predicates = append(predicates, func(store *entity.Store) bool {
			return store.Category == category
		})
	}

	if filter.City != "" {
		city := strings.ToLower(filter.City)
		predicates = append(predicates, func(store *entity.Store) bool {
			return store.Location != nil &&
				strings.Contains(strings.ToLower(store.Location.City), city)
		})
	}

	if filter.Governorate != "" {
		governorate := strings.ToLower(filter.Governorate)
		predicates = append(predicates, func(store *entity.Store) bool {
			return store.Location != nil &&
				strings.Contains(strings.ToLower(store.Location.Governorate), governorate)
		})
	}

	return predicates
}

// matchesAll reports whether the store satisfies every predicate.
func matchesAll(store *entity.Store, predicates []storePredicate) bool {
	for _, predicate := range predicates {
		if !predicate(store) {
			return false
		}
	}

	return true
}
