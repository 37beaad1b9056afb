package seeders

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-products/app/repositories"
	"github.com/shashiranjanraj/kashvi-products/app/services"
	"github.com/shashiranjanraj/kashvi-products/pkg/bind"
)

func init() {
	Register("products", SeedProducts)
}

var sampleProducts = []bind.Input{
	{
		"name":     "Mango Sagoo",
		"price":    json.Number("25000"),
		"photo":    "https://foto.kontan.co.id/tsvw7DWpvxweHDDCRx4QhkrQbC4=/smart/2023/09/22/1398596958p.jpg",
		"is_promo": true,
	},
	{
		"name":     "Nasi Kuning",
		"price":    json.Number("15000"),
		"photo":    "https://www.dapurkobe.co.id/wp-content/uploads/nasi-kuning-kobe.jpg",
		"is_promo": false,
	},
}

// SeedProducts inserts the sample menu through the product service so the
// same validation applies. Products whose name already exists are skipped.
func SeedProducts(ctx context.Context, db *gorm.DB) error {
	repo := repositories.NewProductRepository(db)
	svc := services.NewProductService(repo)

	for _, in := range sampleProducts {
		name, _ := in["name"].(string)
		taken, err := repo.NameTaken(ctx, name, 0)
		if err != nil {
			return err
		}
		if taken {
			continue
		}
		if _, err := svc.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
