// Package service declares interfaces for infrastructure services consumed by
// the use case layer.
package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR generates a PNG QR code pointing at a store's public profile.
	GenerateProfileQR(storeID uuid.UUID) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the store ID.
	ParseProfileQR(qrData string) (uuid.UUID, error)
}
