package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"ukitchen/internal/caching"
	"ukitchen/internal/config"
	"ukitchen/internal/handlers"
	"ukitchen/internal/jobs"
	"ukitchen/internal/jobs/background"
	"ukitchen/internal/middleware"
	"ukitchen/internal/repositories"
	"ukitchen/internal/services"
	"ukitchen/pkg/database"
)

const version = "1.0.0"

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.toml"
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = random.String(32)
		log.Printf("WARNING: Using generated JWT secret; sessions will not survive restarts")
	}

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	minioSvc, err := services.NewMinioService(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	if err := minioSvc.EnsureBucketExists(context.Background(), cfg.Minio.Bucket); err != nil {
		log.Printf("WARNING: Failed to ensure bucket %s exists: %v", cfg.Minio.Bucket, err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	employeeRepo := repositories.NewEmployeeRepository(pool)
	tableRepo := repositories.NewTableRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	ingredientRepo := repositories.NewIngredientRepository(pool)
	dishRepo := repositories.NewDishRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	billRepo := repositories.NewBillRepository(pool)

	// Services
	authSvc := services.NewAuthService(cacheSvc, cfg.Auth.JWTSecret, cfg.Auth.AccessTTLSeconds, cfg.Auth.RefreshTTLSeconds)
	clientSvc := services.NewClientService(clientRepo)
	employeeSvc := services.NewEmployeeService(employeeRepo)
	tableSvc := services.NewTableService(tableRepo)
	supplierSvc := services.NewSupplierService(supplierRepo)
	ingredientSvc := services.NewIngredientService(ingredientRepo, cacheSvc)
	dishSvc := services.NewDishService(dishRepo, minioSvc, cacheSvc, cfg.Minio.Bucket)
	orderSvc := services.NewOrderService(orderRepo, tableRepo)
	cartSvc := services.NewCartService(cacheSvc, dishSvc, orderSvc, tableRepo, employeeRepo,
		time.Duration(cfg.Orders.PrepTimeMinutes)*time.Minute,
		time.Duration(cfg.Orders.CartTTLMinutes)*time.Minute)
	billSvc := services.NewBillService(billRepo, orderRepo, dishRepo, minioSvc, cfg.Minio.Bucket)

	// Handlers
	healthHandlers := handlers.NewHealthHandlers(pool)
	authHandlers := handlers.NewAuthHandlers(authSvc, userRepo, clientRepo)
	userHandlers := handlers.NewUserHandlers(userRepo)
	clientHandlers := handlers.NewClientHandlers(clientSvc)
	employeeHandlers := handlers.NewEmployeeHandlers(employeeSvc)
	tableHandlers := handlers.NewTableHandlers(tableSvc)
	supplierHandlers := handlers.NewSupplierHandlers(supplierSvc)
	ingredientHandlers := handlers.NewIngredientHandlers(ingredientSvc)
	dishHandlers := handlers.NewDishHandlers(dishSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc, billSvc)
	menuHandlers := handlers.NewMenuHandlers(dishSvc, cartSvc)
	navigationHandlers := handlers.NewNavigationHandlers()

	// Background jobs
	stockAlertSvc := jobs.NewStockAlertService(ingredientRepo)
	scheduler := background.NewJobScheduler(stockAlertSvc, cacheSvc,
		time.Duration(cfg.Alerts.IntervalMinutes)*time.Minute)
	if err := scheduler.Start(); err != nil {
		log.Printf("WARNING: Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	v1 := e.Group("/v1")

	// Authentication routes (no JWT required for signup/login)
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandlers.Signup)
	auth.POST("/login", authHandlers.Login)
	auth.POST("/refresh", authHandlers.Refresh)
	auth.POST("/logout", authHandlers.Logout)

	// Protected routes
	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(cfg.Auth.JWTSecret)))

	adminOnly := middleware.RequireRoles(middleware.RoleAdmin)
	staffOnly := middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleEmployee)
	clientOnly := middleware.RequireRoles(middleware.RoleClient)

	protected.GET("/me", authHandlers.Me)
	protected.GET("/navigation", navigationHandlers.GetNavigation)

	// Account administration
	protected.GET("/users", userHandlers.ListUsers, adminOnly)
	protected.POST("/users", userHandlers.CreateUser, adminOnly)
	protected.GET("/users/:id", userHandlers.GetUser, adminOnly)
	protected.PUT("/users/:id", userHandlers.UpdateUser, adminOnly)
	protected.DELETE("/users/:id", userHandlers.DeleteUser, adminOnly)

	// Clients
	protected.GET("/clients", clientHandlers.ListClients, adminOnly)
	protected.POST("/clients", clientHandlers.CreateClient, adminOnly)
	protected.GET("/clients/:id", clientHandlers.GetClient, adminOnly)
	protected.PUT("/clients/:id", clientHandlers.UpdateClient, adminOnly)
	protected.DELETE("/clients/:id", clientHandlers.DeleteClient, adminOnly)

	// Employees. Listing stays open to any signed-in caller so the
	// checkout screen can offer the waiters.
	protected.GET("/employees", employeeHandlers.ListEmployees)
	protected.POST("/employees", employeeHandlers.CreateEmployee, adminOnly)
	protected.GET("/employees/:id", employeeHandlers.GetEmployee, staffOnly)
	protected.PUT("/employees/:id", employeeHandlers.UpdateEmployee, adminOnly)
	protected.DELETE("/employees/:id", employeeHandlers.DeleteEmployee, adminOnly)

	// Tables. Same deal: any caller may list to pick a free table.
	protected.GET("/tables", tableHandlers.ListTables)
	protected.POST("/tables", tableHandlers.CreateTable, adminOnly)
	protected.GET("/tables/:id", tableHandlers.GetTable)
	protected.PUT("/tables/:id", tableHandlers.UpdateTable, staffOnly)
	protected.DELETE("/tables/:id", tableHandlers.DeleteTable, adminOnly)

	// Ingredients
	protected.GET("/ingredients", ingredientHandlers.ListIngredients, staffOnly)
	protected.POST("/ingredients", ingredientHandlers.CreateIngredient, staffOnly)
	protected.GET("/ingredients/low-stock", ingredientHandlers.ListLowStock, staffOnly)
	protected.GET("/ingredients/:id", ingredientHandlers.GetIngredient, staffOnly)
	protected.PUT("/ingredients/:id", ingredientHandlers.UpdateIngredient, staffOnly)
	protected.PUT("/ingredients/:id/stock", ingredientHandlers.UpdateStock, staffOnly)
	protected.DELETE("/ingredients/:id", ingredientHandlers.DeleteIngredient, staffOnly)

	// Dishes
	protected.GET("/dishes", dishHandlers.ListDishes)
	protected.POST("/dishes", dishHandlers.CreateDish, staffOnly)
	protected.GET("/dishes/:id", dishHandlers.GetDish)
	protected.PUT("/dishes/:id", dishHandlers.UpdateDish, staffOnly)
	protected.DELETE("/dishes/:id", dishHandlers.DeleteDish, staffOnly)
	protected.POST("/dishes/:id/picture", dishHandlers.UploadPicture, staffOnly)
	protected.GET("/dishes/:id/picture", dishHandlers.GetPictureURL)

	// Suppliers
	protected.GET("/suppliers", supplierHandlers.ListSuppliers, adminOnly)
	protected.POST("/suppliers", supplierHandlers.CreateSupplier, adminOnly)
	protected.GET("/suppliers/:id", supplierHandlers.GetSupplier, adminOnly)
	protected.PUT("/suppliers/:id", supplierHandlers.UpdateSupplier, adminOnly)
	protected.DELETE("/suppliers/:id", supplierHandlers.DeleteSupplier, adminOnly)

	// Orders
	protected.GET("/orders", orderHandlers.ListOrders)
	protected.POST("/orders", orderHandlers.CreateOrder, staffOnly)
	protected.GET("/orders/:id", orderHandlers.GetOrder)
	protected.PUT("/orders/:id", orderHandlers.UpdateOrder, staffOnly)
	protected.DELETE("/orders/:id", orderHandlers.DeleteOrder, adminOnly)
	protected.GET("/orders/:id/next-actions", orderHandlers.NextActions, staffOnly)
	protected.POST("/orders/:id/prepare", orderHandlers.PrepareOrder, staffOnly)
	protected.POST("/orders/:id/ready", orderHandlers.ReadyOrder, staffOnly)
	protected.POST("/orders/:id/deliver", orderHandlers.DeliverOrder, staffOnly)
	protected.POST("/orders/:id/cancel", orderHandlers.CancelOrder, staffOnly)
	protected.POST("/orders/:id/bill", orderHandlers.CreateBill, staffOnly)
	protected.GET("/orders/:id/bill", orderHandlers.GetBill, staffOnly)
	protected.GET("/orders/:id/bill/pdf", orderHandlers.GetBillPDF, staffOnly)

	// Menu and cart
	protected.GET("/menu", menuHandlers.Catalog)
	protected.GET("/menu/cart", menuHandlers.GetCart, clientOnly)
	protected.POST("/menu/cart/items", menuHandlers.AddCartItem, clientOnly)
	protected.DELETE("/menu/cart", menuHandlers.ClearCart, clientOnly)
	protected.POST("/menu/checkout", menuHandlers.Checkout, clientOnly)

	log.Printf("ukitchen server v%s starting on port %d", version, cfg.Server.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}
