package router

import (
	"database/sql"

	"bloodbank_backend/internal/handlers"
	"bloodbank_backend/internal/repositories"
	"bloodbank_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. The database handle
// is injected here and threaded through repositories and services.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	institutionRepo := repositories.NewInstitutionRepository(db)
	donorRepo := repositories.NewDonorRepository(db)
	recipientRepo := repositories.NewRecipientRepository(db)
	bloodRepo := repositories.NewBloodRepository(db)

	// Initialize Services
	institutionService := services.NewInstitutionService(institutionRepo, db)
	donorService := services.NewDonorService(donorRepo, db)
	recipientService := services.NewRecipientService(recipientRepo, db)
	donationService := services.NewDonationService(donorRepo, institutionRepo, bloodRepo, db)
	inventoryService := services.NewInventoryService(bloodRepo)

	// Initialize Handlers
	institutionHandler := handlers.NewInstitutionHandler(institutionService)
	donorHandler := handlers.NewDonorHandler(donorService)
	recipientHandler := handlers.NewRecipientHandler(recipientService)
	donationHandler := handlers.NewDonationHandler(donationService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	api := engine.Group("/api")
	{
		SetupInstitutionRoutes(api, institutionHandler)
		SetupDonorRoutes(api, donorHandler)
		SetupRecipientRoutes(api, recipientHandler)
		SetupDonationRoutes(api, donationHandler)
		SetupSearchRoutes(api, inventoryHandler)
	}
}
