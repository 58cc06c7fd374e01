// Package qrcode renders store profile QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"abgad/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const profileQRType = "store_profile"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ProfileQRData is the payload encoded into a profile QR code.
type ProfileQRData struct {
	StoreID string `json:"store_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProfileQR generates a PNG QR code pointing at a store's public profile.
func (s *qrcodeService) GenerateProfileQR(storeID uuid.UUID) ([]byte, error) {
	data := ProfileQRData{
		StoreID: storeID.String(),
		Type:    profileQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProfileQR parses QR code data and returns the store ID.
func (s *qrcodeService) ParseProfileQR(qrData string) (uuid.UUID, error) {
	var data ProfileQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != profileQRType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	storeID, err := uuid.Parse(data.StoreID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse store ID: %w", err)
	}

	return storeID, nil
}
