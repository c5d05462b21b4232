// Package qrcode renders and parses recipe share codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"recipefinder/config"
	"recipefinder/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	recipeCodeType = "recipe"
	defaultSize    = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RecipeID   int64  `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateRecipeQR generates a PNG share code for a recipe
func (s *qrcodeService) GenerateRecipeQR(recipeID int64, recipeName string) ([]byte, error) {
	data := QRCodeData{
		RecipeID:   recipeID,
		RecipeName: recipeName,
		Type:       recipeCodeType,
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/recipes/%d", s.baseURL, recipeID)
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRecipeQR parses QR code data and returns the recipe ID
func (s *qrcodeService) ParseRecipeQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != recipeCodeType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.RecipeID <= 0 {
		return 0, fmt.Errorf("invalid recipe ID: %d", data.RecipeID)
	}

	return data.RecipeID, nil
}
