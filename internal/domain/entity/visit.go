package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit sources recorded by the public read paths.
const (
	VisitSourceProfile = "profile"
	VisitSourceSearch  = "search"
)

// Visit is a single recorded view of a store's public profile.
// Visits are append-only; the dashboard aggregates them into summaries.
type Visit struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the visit.
	StoreID   uuid.UUID // The store whose profile was viewed.
	Source    string    // Where the view came from, e.g. VisitSourceProfile.
	VisitedAt time.Time // When the view happened.
}
