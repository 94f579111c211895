package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLinkQR renders a PNG QR code that resolves the given short link URL.
	GenerateLinkQR(shortURL string) ([]byte, error)
}
