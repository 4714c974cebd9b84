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

	_ "github.com/jhoicas/Inspecciones-api/docs"
	"github.com/jhoicas/Inspecciones-api/internal/application/auth"
	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
	"github.com/jhoicas/Inspecciones-api/internal/application/quote"
	"github.com/jhoicas/Inspecciones-api/internal/domain/event"
	"github.com/jhoicas/Inspecciones-api/internal/infrastructure/cache"
	"github.com/jhoicas/Inspecciones-api/internal/infrastructure/errorlog"
	"github.com/jhoicas/Inspecciones-api/internal/infrastructure/eventbus"
	"github.com/jhoicas/Inspecciones-api/internal/infrastructure/mail"
	"github.com/jhoicas/Inspecciones-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Inspecciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Inspecciones-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inspecciones-api/internal/interfaces/http"
	"github.com/jhoicas/Inspecciones-api/pkg/config"
	"github.com/jhoicas/Inspecciones-api/pkg/logger"
)

// @title                       Inspecciones API
// @version                     1.0
// @description                 Ciclo de vida de inspecciones internas de recepción.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	userRepo := postgres.NewUserRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	headerRepo := postgres.NewInspectionRepository(pool)
	lineRepo := postgres.NewInspectionLineRepository(pool)
	serialRepo := postgres.NewInspectionSerialRepository(pool)
	errorLogRepo := postgres.NewErrorLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Nombres de empleados: Redis delante de la tabla users si está configurado
	var names inspection.IdentityResolver = userRepo
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, nombres sin caché")
		} else {
			defer rdb.Close()
			names = cache.NewCachedIdentityResolver(rdb, userRepo, cfg.Redis.NameTTL, log.Component("name_cache"))
		}
	}

	var notifier inspection.NotificationDispatcher
	if cfg.SMTP.Enabled() {
		smtp, err := mail.NewSMTPDispatcher(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}, log.Component("mail"))
		if err != nil {
			log.Fatal().Err(err).Msg("plantillas de correo")
		}
		notifier = smtp
	} else {
		log.Warn().Msg("SMTP_HOST vacío, las notificaciones solo se registran en log")
		notifier = mail.NewLogDispatcher(log.Component("mail"))
	}

	bus := eventbus.NewInMemoryBus(log.Component("eventbus"))
	bus.Subscribe(eventbus.NewAuditLogger(log.Component("audit")))
	bus.Subscribe(event.HandlerFunc(func(_ context.Context, e event.Event) error {
		log.Info().Str("event_id", e.ID).Int64("inspection_id", e.InspectionID).Msg("inspección convertida en cotización")
		return nil
	}), event.TypeInspectionConverted)

	recorder := metrics.NewRecorder()
	tasks := inspection.NewAsyncRunner()

	inspectionSvc, err := inspection.NewService(inspection.Deps{
		Tx:         txRunner,
		HeaderRepo: headerRepo,
		LineRepo:   lineRepo,
		SerialRepo: serialRepo,
		UserRepo:   userRepo,
		Names:      names,
		Notifier:   notifier,
		Converter:  quote.NewConversionService(txRunner, log.Component("quote")),
		Reports:    infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		Events:     bus,
		ErrorSink:  errorlog.NewSink(errorLogRepo, log.Component("error_log")),
		Tasks:      tasks,
		Metrics:    recorder,
	}, log.Component("inspections"), inspection.Config{
		UniqueFields:        cfg.Inspection.UniqueFields,
		SalesTeamRecipients: cfg.Inspection.SalesTeamMails,
		Departments:         cfg.Inspection.Departments,
		NotifyTimeout:       cfg.Inspection.NotifyTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del módulo de inspecciones")
	}

	authUC := auth.NewAuthUseCase(userRepo, permissionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inspecciones API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Inspections: inspectionSvc,
		Metrics:     recorder.Handler(),
		ServiceName: cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
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

	// Notificaciones en curso: cada una tiene su propio timeout
	tasks.Wait()

	log.Info().Msg("aplicación detenida")
}
