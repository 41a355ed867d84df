package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/notification"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	Sessions       *auth.SessionHolder
	EmployeeUC     *usecase.EmployeeUseCase
	MedicineUC     *usecase.MedicineUseCase
	PrescriptionUC *usecase.PrescriptionUseCase
	NotificationUC *notification.NotificationUseCase
	ExpiryUC       *inventory.ExpiryUseCase
	WarnDays       int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (login público; el resto requiere sesión activa)
	authHandler := NewAuthHandler(deps.AuthUC)
	sessionGroup := api.Group("/session")
	sessionGroup.Post("/login", authHandler.Login)
	sessionGroup.Get("/", authHandler.Current)
	sessionGroup.Delete("/", authHandler.Logout)
	sessionGroup.Get("/permissions", RequireSession(deps.Sessions), authHandler.Permission)

	protected := api.Group("/", RequireSession(deps.Sessions))

	// Dashboard (visible para todos los roles)
	dashboardHandler := NewDashboardHandler(deps.ExpiryUC, deps.Sessions, deps.WarnDays)
	dashboard := protected.Group("/dashboard", RequireSection(access.SectionDashboard))
	dashboard.Get("/expiry", dashboardHandler.CheckExpiry)
	dashboard.Get("/expiry/last", dashboardHandler.LastExpiry)
	dashboard.Get("/expiry/report.pdf", dashboardHandler.ExpiryReportPDF)
	dashboard.Post("/expiry/notifications", dashboardHandler.SurfaceExpiry)
	dashboard.Get("/stock-value", dashboardHandler.StockValue)

	// Queries
	queries := protected.Group("/queries", RequireSection(access.SectionQueries))
	queries.Get("/expiring", dashboardHandler.DueQuery)

	// Employees
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := protected.Group("/employees", RequireSection(access.SectionEmployees))
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Medicines
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicines := protected.Group("/medicines", RequireSection(access.SectionMedicines))
	medicines.Get("/", medicineHandler.List)
	medicines.Post("/", medicineHandler.Create)
	medicines.Put("/:batch/:drug", medicineHandler.Update)
	medicines.Delete("/:batch/:drug", medicineHandler.Delete)

	// Prescriptions
	prescriptionHandler := NewPrescriptionHandler(deps.PrescriptionUC)
	prescriptions := protected.Group("/prescriptions", RequireSection(access.SectionPrescriptions))
	prescriptions.Get("/", prescriptionHandler.List)
	prescriptions.Post("/", prescriptionHandler.Create)
	prescriptions.Delete("/:id", prescriptionHandler.Delete)

	// Notifications
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := protected.Group("/notifications", RequireSection(access.SectionNotifications))
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/unseen-count", notificationHandler.UnseenCount)
	notifications.Get("/seen", notificationHandler.SeenList)
	notifications.Post("/:nid/seen", notificationHandler.MarkSeen)
	notifications.Delete("/:nid", notificationHandler.Delete)
}
