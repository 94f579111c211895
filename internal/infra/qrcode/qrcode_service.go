package qrcode

import (
	"fmt"

	"connect/config"
	"connect/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	size := 256
	levelName := "M"
	if cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		if cfg.ErrorCorrectionLevel != "" {
			levelName = cfg.ErrorCorrectionLevel
		}
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch levelName {
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

// GenerateLinkQR generates a PNG QR code that encodes the given short URL.
func (s *qrcodeService) GenerateLinkQR(shortURL string) ([]byte, error) {
	if shortURL == "" {
		return nil, fmt.Errorf("short url is required")
	}

	qrCode, err := qrcode.New(shortURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
