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
	"github.com/tu-usuario/catalogo-admin/internal/application/auth"
	"github.com/tu-usuario/catalogo-admin/internal/application/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/application/orders"
	"github.com/tu-usuario/catalogo-admin/internal/application/views"
	infraimages "github.com/tu-usuario/catalogo-admin/internal/infrastructure/images"
	infrapdf "github.com/tu-usuario/catalogo-admin/internal/infrastructure/pdf"
	"github.com/tu-usuario/catalogo-admin/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/catalogo-admin/internal/interfaces/http"
	"github.com/tu-usuario/catalogo-admin/pkg/config"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	viewRepo := postgres.NewCatalogViewRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resizer := infraimages.NewResizer(cfg.Images.SourceDir, cfg.Images.OutputDir)
	integrity := catalog.NewIntegrityMaintainer(log)

	productUC := catalog.NewProductUseCase(productRepo, categoryRepo, txRunner, resizer, integrity, log)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo, resizer, log)
	composer := views.NewComposer(viewRepo)

	// PDF: exportación del detalle de pedido
	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	orderUC := orders.NewUseCase(orderRepo, viewRepo, pdfGenerator, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // subidas multipart de imágenes
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		OrderUC:    orderUC,
		Composer:   composer,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		UploadDir:  cfg.Images.SourceDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
