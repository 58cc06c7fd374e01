package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	storeID := uuid.New()

	qrBytes, err := service.GenerateProfileQR(storeID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// PNG magic number.
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseProfileQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	storeID := uuid.New()

	payload, err := json.Marshal(ProfileQRData{
		StoreID: storeID.String(),
		Type:    profileQRType,
	})
	require.NoError(t, err)

	parsed, err := service.ParseProfileQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, storeID, parsed)
}

func TestQRCodeService_ParseProfileQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseProfileQR("not json")
	assert.Error(t, err)

	wrongType, _ := json.Marshal(ProfileQRData{StoreID: uuid.New().String(), Type: "subscription"})
	_, err = service.ParseProfileQR(string(wrongType))
	assert.Error(t, err)

	badID, _ := json.Marshal(ProfileQRData{StoreID: "not-a-uuid", Type: profileQRType})
	_, err = service.ParseProfileQR(string(badID))
	assert.Error(t, err)
}
