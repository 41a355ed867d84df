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

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/notification"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/farmacia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/farmacia-api/pkg/config"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// repositories puertos de persistencia del almacén elegido.
type repositories struct {
	employees     repository.EmployeeRepository
	medicines     repository.MedicineRepository
	notifications repository.NotificationRepository
	notifTx       repository.NotificationTxRunner
	seen          repository.SeenRepository
	prescriptions repository.PrescriptionRepository
	close         func()
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memory.NewStore()
		return &repositories{
			employees:     memory.NewEmployeeRepository(store),
			medicines:     memory.NewMedicineRepository(store),
			notifications: memory.NewNotificationRepository(store),
			notifTx:       memory.NewTxRunner(store),
			seen:          memory.NewSeenRepository(store),
			prescriptions: memory.NewPrescriptionRepository(store),
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	// Un almacén caído no impide arrancar: cada acción responde 503 hasta que vuelva.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Msg("almacén no disponible al iniciar")
	}
	return &repositories{
		employees:     postgres.NewEmployeeRepository(pool),
		medicines:     postgres.NewMedicineRepository(pool),
		notifications: postgres.NewNotificationRepository(pool),
		notifTx:       postgres.NewTxRunner(pool),
		seen:          postgres.NewSeenRepository(pool),
		prescriptions: postgres.NewPrescriptionRepository(pool),
		close:         pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del almacén")
	}
	defer repos.close()

	if !cfg.Admin.Enabled() {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD sin configurar: login administrativo deshabilitado")
	}

	sessions := auth.NewSessionHolder()
	authUC := auth.NewAuthUseCase(repos.employees, auth.AdminCredential{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, sessions, log)

	notificationUC := notification.NewNotificationUseCase(repos.notifTx, repos.notifications, repos.seen, repos.employees, log)
	employeeUC := usecase.NewEmployeeUseCase(repos.employees, log)
	medicineUC := usecase.NewMedicineUseCase(repos.medicines, log)
	prescriptionUC := usecase.NewPrescriptionUseCase(repos.prescriptions, notificationUC, log)

	// PDF: reporte de vencimientos
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	expiryUC := inventory.NewExpiryUseCase(repos.medicines, notificationUC, reportGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://127.0.0.1:<port>/docs (solo si el archivo existe)
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Farmacia API",
		}))
	} else {
		log.Debug().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		Sessions:       sessions,
		EmployeeUC:     employeeUC,
		MedicineUC:     medicineUC,
		PrescriptionUC: prescriptionUC,
		NotificationUC: notificationUC,
		ExpiryUC:       expiryUC,
		WarnDays:       cfg.Expiry.WarnDays,
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

	// La sesión vive en memoria: al cerrar se descarta con su estado transitorio.
	_ = authUC.Logout()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
