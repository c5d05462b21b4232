package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRecipeQR renders a PNG QR code that links to a recipe
	GenerateRecipeQR(recipeID int64, recipeName string) ([]byte, error)

	// ParseRecipeQR parses QR code payload data and returns the recipe ID
	ParseRecipeQR(qrData string) (int64, error)
}
