package qrcode

import (
	"fmt"
	"strings"

	"opinalocal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// RestaurantShareURL returns the share link a restaurant QR encodes.
func (s *qrcodeService) RestaurantShareURL(restaurantID uuid.UUID) string {
	return fmt.Sprintf("%s/restaurants/%s", s.baseURL, restaurantID)
}

// GenerateRestaurantQR generates a QR code image encoding the public share
// link of a restaurant page.
func (s *qrcodeService) GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.RestaurantShareURL(restaurantID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
