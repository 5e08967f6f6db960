package entity

// ProductStatus is the availability shown in the catalog
type ProductStatus string

const (
	ProductAvailable ProductStatus = "Available"
	ProductSold      ProductStatus = "Sold"
)

// Product is a game account listed in the storefront catalog.
// Price is in rupiah.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Game        string        `json:"game"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	Image       string        `json:"image"`
	Status      ProductStatus `json:"status"`
}
