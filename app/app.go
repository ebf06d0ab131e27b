package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"soluciones-ferreteras/app/controller"
	"soluciones-ferreteras/app/router"
	"soluciones-ferreteras/cart"
	"soluciones-ferreteras/catalog"
	"soluciones-ferreteras/db"
	"soluciones-ferreteras/quote"
	"soluciones-ferreteras/repository"
	"soluciones-ferreteras/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize price repository and make sure the precios table exists
	priceRepo := repository.NewPriceRepository()
	if err := priceRepo.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("failed to prepare price schema: %w", err)
	}

	// Load the product catalog
	productsFile := os.Getenv("PRODUCTS_FILE")
	if productsFile == "" {
		productsFile = "data/products.json"
	}
	cat, err := catalog.Load(productsFile)
	if err != nil {
		return fmt.Errorf("failed to load product catalog: %w", err)
	}

	// Cart persistence lives under the data directory
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	cartManager := cart.NewManager(dataDir)

	imagesDir := os.Getenv("IMAGES_DIR")
	if imagesDir == "" {
		imagesDir = "static/images"
	}

	// Prepare the image cache directory
	if err := service.EnsureCacheDir(); err != nil {
		return fmt.Errorf("failed to create image cache directory: %w", err)
	}

	renderer := quote.NewChromeRenderer("templates/quote.html", "static/quote")

	// Drive photo sync is optional: without credentials the endpoint
	// responds 503 but the rest of the API works normally
	var syncService service.PhotoSyncServiceInterface
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return fmt.Errorf("failed to initialize Drive service: %w", err)
		}
		syncService = service.NewPhotoSyncService(driveService, imagesDir)
	} else {
		log.Println("⚠️ GOOGLE_APPLICATION_CREDENTIALS not set, photo sync disabled")
	}

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(cat, imagesDir),
		Cart:    controller.NewCartController(cartManager),
		Quote:   controller.NewQuoteController(cartManager, priceRepo, renderer),
		Price:   controller.NewPriceController(priceRepo),
		Photo:   controller.NewPhotoController(syncService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
