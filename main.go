package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/tax-advisor/client"
	"github.com/Aashish23092/tax-advisor/config"
	"github.com/Aashish23092/tax-advisor/handler"
	"github.com/Aashish23092/tax-advisor/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	taxCfg := config.NewTaxConfigFY2024_25()

	// Initialize Gemini client (nil when no API key is configured; all
	// advisor paths then use deterministic fallbacks)
	geminiClient := client.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Initialize PDF processor and services
	pdfProcessor := service.NewPDFProcessor()
	slipService := service.NewSlipService(pdfProcessor)
	taxCalculator := service.NewTaxCalculator(taxCfg)
	aiAdvisor := service.NewAIAdvisor(geminiClient)
	chatAdvisor := service.NewChatAdvisor(geminiClient, cfg.SessionTTL)

	// Initialize handler layer
	slipHandler := handler.NewSlipHandler(slipService, cfg.MaxFileSize)
	taxHandler := handler.NewTaxHandler(taxCalculator, aiAdvisor, chatAdvisor, taxCfg.FinancialYear)
	chatHandler := handler.NewChatHandler(chatAdvisor)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":         "healthy",
			"service":        "Salary Tax Advisor",
			"financial_year": taxCfg.FinancialYear,
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		slip := api.Group("/slip")
		{
			slip.POST("/parse", slipHandler.ParseSlip)
		}
		tax := api.Group("/tax")
		{
			tax.POST("/calculate", taxHandler.CalculateTax)
		}
		api.POST("/chat", chatHandler.Chat)
	}

	// Start server
	log.Printf("Starting Salary Tax Advisor on port %s (FY %s)", cfg.ServerPort, taxCfg.FinancialYear)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
