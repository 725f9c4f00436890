package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jpkuehn/S3.Forms/authenticator"
	"github.com/jpkuehn/S3.Forms/config"
	"github.com/jpkuehn/S3.Forms/controllers"
	"github.com/jpkuehn/S3.Forms/database"
	"github.com/jpkuehn/S3.Forms/fieldtypes"
	"github.com/jpkuehn/S3.Forms/filestore"
	"github.com/jpkuehn/S3.Forms/logging"
	"github.com/jpkuehn/S3.Forms/mailer"
	formsmiddleware "github.com/jpkuehn/S3.Forms/middleware"
	"github.com/jpkuehn/S3.Forms/notifications"
	"github.com/jpkuehn/S3.Forms/prevalues"
	"github.com/jpkuehn/S3.Forms/rendering"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/jpkuehn/S3.Forms/services"
	"github.com/jpkuehn/S3.Forms/tempdata"
	"github.com/jpkuehn/S3.Forms/workflows"
)

func main() {
	// Load .env (optional) and environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logData, err := logging.New().FromPath(cfg.LogPath).WithLevel(cfg.LogLevel).Make()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logData.Close()
	logger := logData.Logger

	// Initialize database
	if err := database.InitializeDatabase(cfg.DBPath); err != nil {
		logger.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("Failed to initialize database")
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	files, err := filestore.New(cfg.MediaRoot, cfg.MediaURLPrefix)
	if err != nil {
		logger.Fatal().Err(err).Str("media_root", cfg.MediaRoot).Msg("Failed to open media store")
	}

	smtp, err := mailer.New(mailer.Config(cfg.SMTP), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize mailer")
	}
	if !smtp.CanSendRequiredEmail() {
		logger.Warn().Msg("SMTP_HOST or SMTP_FROM not set, email workflows will fail")
	}

	// Workflows
	tempData := tempdata.NewContextProvider()
	fieldTypes := fieldtypes.GetRegistry()
	registry := workflows.NewRegistry()
	audit := workflows.NewAuditHelper(database.NewScopeProvider(db), repos.Audit, registry, logger)
	preValues := prevalues.NewService(repos.PreValueSources, prevalues.StaticSource{}, prevalues.NewSQLSource(db))

	registry.Register(workflows.NewTrackingWorkflow(repos.Records, audit, tempData, logger))
	registry.Register(workflows.NewSecureEmailWorkflow(
		workflows.NewSecureEmailBase(smtp, files, cfg.UploadsPath),
		rendering.New(cfg.TemplatesRoot),
		fieldTypes,
		preValues,
		audit,
		logger,
	))
	executor := workflows.NewExecutor(registry, repos.Workflows, repos.Audit, logger)

	publisher := notifications.NewPublisher(logger, notifications.NewValidationHandler(tempData, notifications.ValidationOptions{
		AriaInvalid:     cfg.AriaInvalid,
		FocusFirstError: cfg.FocusFirstError,
	}, logger))

	// Initialize services
	srvs := services.NewServices(repos, executor, publisher, fieldTypes, logger)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, registry, files, cfg.UploadsPath, tempData, logger)

	// Backoffice login is optional
	var auth authenticator.Provider
	if cfg.OIDC.Enabled() {
		auth, err = authenticator.NewOpenIDProvider(context.Background(), authenticator.Config{
			Domain:       cfg.OIDC.Domain,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			CallbackURL:  cfg.OIDC.CallbackURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize OpenID provider")
		}
	} else {
		logger.Warn().Msg("OIDC_DOMAIN or OIDC_CLIENT_ID not set, backoffice routes are disabled")
	}

	// Set up router
	r, err := setupRouter(cfg, ctrl, auth, files, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to setup router")
	}

	logger.Info().
		Str("port", cfg.Port).
		Str("db_path", cfg.DBPath).
		Int("workflow_types", len(registry.Types())).
		Msg("S3.Forms starting")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, auth authenticator.Provider, files *filestore.FileSystem, logger zerolog.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks and SMTP
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "s3forms_session",
		Secure:         cfg.UseHTTPS, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     3600,         // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(tempdata.Middleware)
	r.Use(formsmiddleware.ClientInfo)
	r.Use(formsmiddleware.RequestLogger(logger))

	// PUBLIC ROUTES (no authentication required)
	r.Post("/forms/{formID}", ctrl.Forms.Submit)
	r.Get("/forms/{formID}/state", ctrl.Forms.State)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "s3-forms"}`)
	})

	if auth == nil {
		return r, nil
	}

	r.Get("/login", ctrl.Auth.Login(auth))
	r.Get("/callback", ctrl.Auth.Callback(auth))
	r.Get("/logout", ctrl.Auth.Logout)

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(formsmiddleware.RequireAuth)

		r.Route("/backoffice", func(r chi.Router) {
			r.Get("/forms", ctrl.Records.Forms)
			r.Get("/forms/{formID}/records", ctrl.Records.Records)
			r.Get("/records/{recordID}", ctrl.Records.Record)
			r.Get("/records/{recordID}/audit", ctrl.Records.Audit)
			r.Get("/workflow-types", ctrl.Records.WorkflowTypes)
		})

		// Uploaded files are only served to backoffice users
		if trimmed := strings.Trim(cfg.MediaURLPrefix, "/"); trimmed != "" {
			prefix := "/" + trimmed + "/"
			r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(files.Root()))))
		}
	})

	return r, nil
}
