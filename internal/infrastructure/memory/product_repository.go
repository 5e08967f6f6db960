package memory

import (
	"context"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	"github.com/oksasatya/kyystore-api/internal/domain/repository"
)

// DefaultCatalog is the storefront's fixed product list.
var DefaultCatalog = []entity.Product{
	{
		ID:          "p-1",
		Name:        "Valorant Account",
		Game:        "Valorant",
		Description: "Immortal 3 | 120 Skins | Knife Collection",
		Price:       350000,
		Image:       "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
		Status:      entity.ProductAvailable,
	},
	{
		ID:          "p-2",
		Name:        "Genshin Impact Account",
		Game:        "Genshin Impact",
		Description: "AR 58 | Nahida C2 | 40x 5★ Characters",
		Price:       520000,
		Image:       "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400",
		Status:      entity.ProductAvailable,
	},
	{
		ID:          "p-3",
		Name:        "Mobile Legends Account",
		Game:        "Mobile Legends",
		Description: "Mythical Glory | 80 Skins | All Emblems Max",
		Price:       275000,
		Image:       "https://images.unsplash.com/photo-1493711662062-fa541f7f21df?w=400",
		Status:      entity.ProductAvailable,
	},
	{
		ID:          "p-4",
		Name:        "PUBG Mobile Account",
		Game:        "PUBG Mobile",
		Description: "Conqueror | 50+ Gun Skins | Glacier M416",
		Price:       420000,
		Image:       "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=400",
		Status:      entity.ProductAvailable,
	},
	{
		ID:          "p-5",
		Name:        "Free Fire Account",
		Game:        "Free Fire",
		Description: "Grandmaster | Elite Pass S1-S50 | All Bundles",
		Price:       180000,
		Image:       "https://images.unsplash.com/photo-1560419015-7c427e8ae5ba?w=400",
		Status:      entity.ProductSold,
	},
	{
		ID:          "p-6",
		Name:        "Honkai Star Rail Account",
		Game:        "Honkai Star Rail",
		Description: "TL 70 | Kafka E1 | Silver Wolf E1",
		Price:       650000,
		Image:       "https://images.unsplash.com/photo-1552820728-8b83bb6b2b0f?w=400",
		Status:      entity.ProductAvailable,
	},
}

type ProductRepository struct {
	items []entity.Product
}

// NewProductRepository serves items, or DefaultCatalog when items is nil.
func NewProductRepository(items []entity.Product) *ProductRepository {
	if items == nil {
		items = DefaultCatalog
	}
	return &ProductRepository{items: items}
}

func (r *ProductRepository) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
