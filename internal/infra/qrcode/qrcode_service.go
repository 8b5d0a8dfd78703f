// Package qrcode renders membership cards as QR images for the in-store
// scanner at the pickup counter.
package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// CardEncoder renders a loyalty membership card as a PNG QR image.
type CardEncoder interface {
	// EncodeCard generates the QR PNG for the given card number and user.
	EncodeCard(cardNumber string, userID int64) ([]byte, error)
}

type cardEncoder struct {
	size  int
	level qrcode.RecoveryLevel
}

// cardPayload is the JSON the scanner reads off the QR image.
type cardPayload struct {
	CardNumber string `json:"num_tarjeta"`
	UserID     int64  `json:"idusuario"`
	Type       string `json:"type"`
}

// NewCardEncoder creates a card encoder. Size is the PNG edge in pixels;
// errorCorrectionLevel is one of L, M, Q, H.
func NewCardEncoder(size int, errorCorrectionLevel string) CardEncoder {
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

	return &cardEncoder{
		size:  size,
		level: level,
	}
}

func (e *cardEncoder) EncodeCard(cardNumber string, userID int64) ([]byte, error) {
	payload := cardPayload{
		CardNumber: cardNumber,
		UserID:     userID,
		Type:       "membership",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal card payload: %w", err)
	}

	code, err := qrcode.New(string(jsonData), e.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := code.PNG(e.size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR PNG: %w", err)
	}

	return pngBytes, nil
}
