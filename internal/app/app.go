package app

import (
	"fmt"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"resumebuilder_backend/database"
	"resumebuilder_backend/internal/auth"
	"resumebuilder_backend/internal/config"
	"resumebuilder_backend/internal/handlers"
	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/media"
	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/payment"
	"resumebuilder_backend/internal/pkg/email"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/routes"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/validator"
)

const localMediaRoute = "/files"

// Run boots the whole service: config, logger, database, router.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Kept separate from Run so tests can build a router against their own DB.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	userRepo := repositories.NewUserRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	r.Use(middleware.PrincipalResolver(tokens, userRepo))

	mailer := email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})

	uploader, err := buildUploader(cfg, r)
	if err != nil {
		return nil, err
	}
	imageUploads := services.NewImageUploadService(uploader, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)

	gateway := payment.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	authService := services.NewAuthService(userRepo, tokens, mailer, imageUploads, cfg.Server.BaseURL)
	resumeService := services.NewResumeService(resumeRepo, imageUploads)
	paymentService := services.NewPaymentService(paymentRepo, userRepo, gateway, cfg.Razorpay.KeyID)
	templateService := services.NewTemplateService()
	emailService := services.NewEmailService(mailer)

	base := handlers.NewBaseHandler(validator.New())
	h := &handlers.AppHandlers{
		Auth:     handlers.NewAuthHandler(base, authService),
		Resume:   handlers.NewResumeHandler(base, resumeService),
		Payment:  handlers.NewPaymentHandler(base, paymentService),
		Template: handlers.NewTemplateHandler(base, templateService),
		Email:    handlers.NewEmailHandler(base, emailService),
	}

	routes.Setup(r, h)
	return r, nil
}

// buildUploader picks the media backend. Without Cloudinary credentials we
// fall back to local disk and serve the files ourselves.
func buildUploader(cfg *config.Config, r *gin.Engine) (media.Uploader, error) {
	if cfg.Media.Type == "cloudinary" && cfg.Media.CloudName != "" {
		folder := cfg.Media.Folder
		if folder == "" {
			folder = "resume-builder/profile-images"
		}
		return media.NewCloudinaryUploader(media.CloudinaryConfig{
			CloudName: cfg.Media.CloudName,
			APIKey:    cfg.Media.APIKey,
			APISecret: cfg.Media.APISecret,
			Folder:    folder,
		}), nil
	}

	basePath := cfg.Media.BasePath
	if basePath == "" {
		basePath = "./uploads"
	}
	baseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + localMediaRoute
	uploader, err := media.NewLocalUploader(basePath, baseURL)
	if err != nil {
		return nil, err
	}
	r.Static(localMediaRoute, basePath)
	return uploader, nil
}
