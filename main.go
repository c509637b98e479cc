package main

import (
	"StoreHub/auth"
	"StoreHub/config"
	"StoreHub/controllers"
	"StoreHub/migrations"
	"StoreHub/repositories"
	"StoreHub/routes"
	"StoreHub/services"
	"StoreHub/storage"
	"StoreHub/utils"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file loaded: ", err)
	}

	cfg := config.LoadConfig()
	utils.SetJWTSecret(cfg.JWTSecret)

	// Initialize database connection
	db, err := repositories.Connect(cfg)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	if err := migrations.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}
	if cfg.SeedDB {
		if err := migrations.Seed(db); err != nil {
			logrus.Fatal("Failed to seed database: ", err)
		}
	}

	// Initialize avatar storage
	var avatarStore storage.Storage
	switch cfg.AvatarStorage {
	case "s3":
		s3Store, err := storage.NewS3Storage(cfg.AvatarBucket)
		if err != nil {
			logrus.Fatal("Failed to configure S3 storage: ", err)
		}
		avatarStore = s3Store
	default:
		avatarStore = storage.NewLocalStorage(cfg.AvatarBaseDir)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Services
	avatarService := services.NewAvatarService(avatarStore, userRepo)
	authService := services.NewAuthService(userRepo)
	googleClient := auth.NewGoogleClient(cfg)
	oauthService := services.NewOAuthService(googleClient, userRepo, avatarService)
	searchService := services.NewSearchService(productRepo, supplierRepo)

	// Controllers
	ctrl := routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		OAuth:    controllers.NewOAuthController(oauthService, cfg.FrontendCallbackURL),
		Profile:  controllers.NewProfileController(avatarService),
		Product:  controllers.NewProductController(productRepo),
		Supplier: controllers.NewSupplierController(supplierRepo),
		Category: controllers.NewCategoryController(categoryRepo),
		Order:    controllers.NewOrderController(orderRepo),
		Search:   controllers.NewSearchController(searchService),
	}

	e := echo.New()
	e.HideBanner = true
	routes.Register(e, ctrl, userRepo, cfg.AvatarBaseDir)

	if err := e.Start(cfg.ServerAddr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
