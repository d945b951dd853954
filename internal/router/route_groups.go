package router

import (
	"bloodbank_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupInstitutionRoutes sets up the institution routes.
func SetupInstitutionRoutes(apiGroup *gin.RouterGroup, institutionHandler *handlers.InstitutionHandler) {
	apiGroup.POST("/institutions", institutionHandler.CreateInstitution)
	apiGroup.GET("/bloodbanks", institutionHandler.GetBloodBanks)
	apiGroup.GET("/hospitals", institutionHandler.GetHospitals)
}

// SetupDonorRoutes sets up the donor routes.
func SetupDonorRoutes(apiGroup *gin.RouterGroup, donorHandler *handlers.DonorHandler) {
	donorRoutes := apiGroup.Group("/donors")
	{
		donorRoutes.POST("", donorHandler.CreateDonor)
		donorRoutes.GET("", donorHandler.GetDonors)
		donorRoutes.GET("/:id", donorHandler.GetDonorByID)
		donorRoutes.PUT("/:id", donorHandler.UpdateDonor)
		donorRoutes.DELETE("/:id", donorHandler.DeleteDonor)
	}
}

// SetupRecipientRoutes sets up the recipient routes.
func SetupRecipientRoutes(apiGroup *gin.RouterGroup, recipientHandler *handlers.RecipientHandler) {
	recipientRoutes := apiGroup.Group("/recipients")
	{
		recipientRoutes.POST("", recipientHandler.CreateRecipient)
		recipientRoutes.GET("", recipientHandler.GetRecipients)
		recipientRoutes.GET("/:id", recipientHandler.GetRecipientByID)
		recipientRoutes.PUT("/:id", recipientHandler.UpdateRecipient)
		recipientRoutes.DELETE("/:id", recipientHandler.DeleteRecipient)
	}
}

// SetupDonationRoutes sets up the donation recording route.
func SetupDonationRoutes(apiGroup *gin.RouterGroup, donationHandler *handlers.DonationHandler) {
	apiGroup.POST("/donations", donationHandler.RecordDonation)
}

// SetupSearchRoutes sets up the inventory search route.
func SetupSearchRoutes(apiGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	apiGroup.POST("/search", inventoryHandler.SearchInventory)
}
