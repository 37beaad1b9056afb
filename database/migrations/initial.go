package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-products/app/models"
	"github.com/shashiranjanraj/kashvi-products/pkg/migration"
)

func init() {
	migration.Register("20231101000000_create_products_table", &CreateProductsTable{})
}

// CreateProductsTable creates products with its unique name index.
type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}
