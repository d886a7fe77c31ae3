package bootstrap

import (
	"github.com/yahna8/store-and-inventory-microservice/internal/database"
	"github.com/yahna8/store-and-inventory-microservice/internal/database/postgres"
	"github.com/yahna8/store-and-inventory-microservice/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Catalog   repository.Catalog
	Inventory repository.Inventory
	Equipment repository.Equipment
	Claims    repository.PurchaseClaims
}

// InitializeRepositories creates the Postgres-backed repositories
func InitializeRepositories(db database.DB) *Repositories {
	return &Repositories{
		Catalog:   postgres.NewCatalogRepository(db),
		Inventory: postgres.NewInventoryRepository(db),
		Equipment: postgres.NewEquipmentRepository(db),
		Claims:    postgres.NewClaimRepository(db),
	}
}
