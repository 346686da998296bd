package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateCatalogQR generates a QR code image pointing at a reseller's public catalog URL
	GenerateCatalogQR(catalogURL string) ([]byte, error)
}
