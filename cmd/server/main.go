package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"ocdi_app_go/config"
	"ocdi_app_go/db"
	"ocdi_app_go/handlers"
	"ocdi_app_go/models"
	"ocdi_app_go/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Expediente{}, &models.Escaneo{}, &models.Actuacion{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	renderer, err := templates.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	e.Renderer = renderer

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Case list and CRUD
	e.GET("/", handlers.ListaExpedientesHandler)
	e.GET("/expedientes/nuevo", handlers.NuevoExpedienteHandler)
	e.POST("/expedientes/nuevo", handlers.CrearExpedienteHandler)
	e.GET("/expedientes/:id", handlers.DetalleExpedienteHandler)
	e.GET("/expedientes/:id/editar", handlers.EditarExpedienteHandler)
	e.POST("/expedientes/:id/editar", handlers.ActualizarExpedienteHandler)
	e.POST("/expedientes/:id/eliminar", handlers.EliminarExpedienteHandler)

	// Dashboard
	e.GET("/dashboard", handlers.DashboardHandler)

	// Legal-order cross-tabs
	e.GET("/autos", handlers.AutosHandler)
	e.GET("/autos/exportar", handlers.ExportarAutosHandler)

	// Monthly follow-up grid
	e.GET("/seguimiento", handlers.SeguimientoHandler)
	e.POST("/seguimiento/guardar", handlers.GuardarActuacionHandler)

	// Excel import
	e.GET("/importar", handlers.ImportarFormHandler)
	e.POST("/importar", handlers.ImportarExcelHandler)
	e.POST("/importar/limpiar", handlers.LimpiarBaseDatosHandler)

	// Excel export
	e.GET("/exportar", handlers.ExportarFormHandler)
	e.POST("/exportar", handlers.ExportarFiltradoHandler)
	e.GET("/exportar/completo", handlers.ExportarCompletoHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
