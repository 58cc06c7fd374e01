// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is the core entity of the directory: a registered business listing.
// A store becomes visible to public search once it is both active and verified.
type Store struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the store.
	TradingName string    // The public display name of the business.
	Description string    // Free-text description shown on the profile page.
	Category    string    // Business category, e.g. "Restaurant", "Cafe".
	Verified    bool      // Set by back-office verification; required for public visibility.
	Active      bool      // Owner-controlled switch; required for public visibility.
	Location    *Location // The primary location, nil when none has been registered yet.
	Photos      []Photo   // Featured photos shown on listings.
	CreatedAt   time.Time // Timestamp of when this store was registered.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Eligible reports whether the store may appear in public search and suggestions.
func (s *Store) Eligible() bool {
	return s.Active && s.Verified
}

// Location is the primary physical location of a store. The broader system
// allows several locations per store; only the primary one participates in
// city, governorate and geo filtering.
type Location struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the location.
	StoreID     uuid.UUID // The store this location belongs to.
	Latitude    float64   // Geographic latitude, -90..90.
	Longitude   float64   // Geographic longitude, -180..180.
	City        string    // City name used for substring filtering.
	Governorate string    // Governorate name used for substring filtering.
	Address     string    // Optional human-readable street address.
	IsPrimary   bool      // Marks the one location used by search.
	CreatedAt   time.Time // Timestamp of when this location was created.
}

// Photo is a featured photo attached to a store listing.
type Photo struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the photo.
	StoreID   uuid.UUID // The store this photo belongs to.
	URL       string    // Location of the stored image; upload mechanics live elsewhere.
	Caption   string    // Optional caption.
	Featured  bool      // Featured photos are the ones surfaced on search results.
	CreatedAt time.Time // Timestamp of when this photo was attached.
}
