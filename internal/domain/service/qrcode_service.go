package service

// QRCodeService defines the interface for QR code operations
type QRCodeService interface {
	// GeneratePickupPassQR renders a signed pickup pass as a PNG QR code
	GeneratePickupPassQR(pass string) ([]byte, error)

	// ParsePickupPassQR extracts the signed pickup pass from scanned QR data
	ParsePickupPassQR(qrData string) (string, error)
}
