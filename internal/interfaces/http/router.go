package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Inspecciones-api/internal/application/auth"
)

// RouterDeps dependencias para registrar rutas.
// Permissions es opcional: por defecto se usa AuthUC.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Permissions permissionLoader
	Inspections inspectionService
	Metrics     http.Handler
	ServiceName string
	JWTSecret   string
}

// Router registra /health, /metrics y las rutas bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Auth (público)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/login", authHandler.Login)
	}

	loader := deps.Permissions
	if loader == nil && deps.AuthUC != nil {
		loader = deps.AuthUC
	}

	// Rutas protegidas: JWT + permisos del llamador
	protected := api.Group("/inspections", AuthMiddleware(deps.JWTSecret), LoadPermissions(loader))
	h := NewInspectionHandler(deps.Inspections)

	// Rutas literales antes de /:id
	protected.Get("/type-data", h.TypeData)
	protected.Get("/serials/search", h.SearchSerials)
	protected.Get("/serials/:serial_num/encounters", h.Encounters)
	protected.Post("/serials", h.CreateSerial)
	protected.Put("/serials/:id", h.EditSerial)
	protected.Delete("/serials/:id", h.DeleteSerial)
	protected.Post("/lines", h.CreateLine)
	protected.Get("/lines/:id", h.GetLine)
	protected.Put("/lines/:id", h.EditLine)
	protected.Delete("/lines/:id", h.DeleteLine)

	protected.Post("/", h.Create)
	protected.Get("/:id", h.Get)
	protected.Put("/:id", h.Edit)
	protected.Delete("/:id", h.Delete)
	protected.Get("/:id/report", h.Report)
	protected.Post("/:id/convert-to-quote", h.ConvertToQuote)
}
