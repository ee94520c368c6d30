package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateRestaurantQR generates a QR code image encoding the public
	// share link of a restaurant page.
	GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error)

	// RestaurantShareURL returns the share link a restaurant QR encodes.
	RestaurantShareURL(restaurantID uuid.UUID) string
}
