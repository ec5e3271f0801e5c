package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	_ "github.com/lindakrystal/inventario/docs"
	"github.com/lindakrystal/inventario/internal/application/auth"
	"github.com/lindakrystal/inventario/internal/application/inventory"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	infrapdf "github.com/lindakrystal/inventario/internal/infrastructure/pdf"
	"github.com/lindakrystal/inventario/internal/infrastructure/postgres"
	"github.com/lindakrystal/inventario/internal/infrastructure/redisstore"
	httpRouter "github.com/lindakrystal/inventario/internal/interfaces/http"
	"github.com/lindakrystal/inventario/internal/interfaces/web"
	"github.com/lindakrystal/inventario/pkg/config"
	"github.com/lindakrystal/inventario/pkg/logger"
)

// @title                      Inventario API
// @version                    1.0
// @description                API de inventario para pequeños comercios: catálogo, productos, movimientos de stock y reportes.
// @BasePath                   /
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sessionStorage, err := redisstore.New(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer sessionStorage.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner)
	historyUC := inventory.NewMovementHistoryUseCase(movementRepo)
	recomputeUC := inventory.NewRecomputeStockUseCase(txRunner)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	lowStockUC := inventory.NewLowStockUseCase(productRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:     categoryUC,
		SupplierUC:     supplierUC,
		ProductUC:      productUC,
		RecordMovement: recordMovementUC,
		History:        historyUC,
		LowStock:       lowStockUC,
		RecomputeStock: recomputeUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	sessionStore := web.NewSessionStore(sessionStorage, cfg.Session)
	web.Router(app, web.RouterDeps{
		CategoryUC:     categoryUC,
		SupplierUC:     supplierUC,
		ProductUC:      productUC,
		RecordMovement: recordMovementUC,
		History:        historyUC,
		LowStock:       lowStockUC,
		AuthUC:         authUC,
		SessionStore:   sessionStore,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
