package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/resumeforge/resumeforge/builder/ats/atsapi"
	"github.com/resumeforge/resumeforge/builder/ats/atsinfra"
	"github.com/resumeforge/resumeforge/builder/ats/atssrv"
	"github.com/resumeforge/resumeforge/builder/billing/billingapi"
	"github.com/resumeforge/resumeforge/builder/billing/billinginfra"
	"github.com/resumeforge/resumeforge/builder/billing/billingsrv"
	"github.com/resumeforge/resumeforge/builder/catalog/catalogapi"
	"github.com/resumeforge/resumeforge/builder/catalog/cataloginfra"
	"github.com/resumeforge/resumeforge/builder/catalog/catalogsrv"
	"github.com/resumeforge/resumeforge/builder/jobdesc/jobdescapi"
	"github.com/resumeforge/resumeforge/builder/jobdesc/jobdescinfra"
	"github.com/resumeforge/resumeforge/builder/jobdesc/jobdescsrv"
	"github.com/resumeforge/resumeforge/builder/resume/resumeapi"
	"github.com/resumeforge/resumeforge/builder/resume/resumeinfra"
	"github.com/resumeforge/resumeforge/builder/resume/resumesrv"
	"github.com/resumeforge/resumeforge/builder/rewrite"
	"github.com/resumeforge/resumeforge/builder/rewrite/rewriteapi"
	"github.com/resumeforge/resumeforge/builder/rewrite/rewriteinfra"
	"github.com/resumeforge/resumeforge/builder/rewrite/rewritesrv"
	"github.com/resumeforge/resumeforge/builder/template/templateapi"
	"github.com/resumeforge/resumeforge/builder/template/templateinfra"
	"github.com/resumeforge/resumeforge/builder/template/templatesrv"
	"github.com/resumeforge/resumeforge/pkg/auth"
	"github.com/resumeforge/resumeforge/pkg/fsx"
	"github.com/resumeforge/resumeforge/pkg/fsx/fsxs3"
	"github.com/resumeforge/resumeforge/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Auth
	TokenService   *auth.TokenService
	AuthMiddleware *auth.TokenMiddleware

	// Domain Services
	ResumeService   *resumesrv.ResumeService
	TemplateService *templatesrv.TemplateService
	JobDescService  *jobdescsrv.JobDescriptionService
	ATSService      *atssrv.ATSService
	RewriteService  *rewritesrv.RewriteService
	CatalogService  *catalogsrv.CatalogService
	BillingService  *billingsrv.BillingService

	// API Handlers
	ResumeHandlers   *resumeapi.Handlers
	TemplateHandlers *templateapi.Handlers
	JobDescHandlers  *jobdescapi.Handlers
	ATSHandlers      *atsapi.Handlers
	RewriteHandlers  *rewriteapi.Handlers
	CatalogHandlers  *catalogapi.Handlers
	BillingHandlers  *billingapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "blobs")

	// 4. Token verification
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "resumeforge"
	}
	c.TokenService = auth.NewTokenService(jwtSecret, jwtIssuer)
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)
}

func (c *Container) initServices() {
	// --- Repositories ---
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	templateRepo := templateinfra.NewPostgresTemplateRepository(c.DB)
	jobDescRepo := jobdescinfra.NewPostgresJobDescriptionRepository(c.DB)
	reportRepo := atsinfra.NewPostgresReportRepository(c.DB)
	providerRepo := cataloginfra.NewPostgresProviderRepository(c.DB)
	modelRepo := cataloginfra.NewPostgresModelRepository(c.DB)
	planRepo := cataloginfra.NewPostgresPlanRepository(c.DB)
	subscriptionRepo := billinginfra.NewPostgresSubscriptionRepository(c.DB)

	// --- Infrastructure adapters ---
	reportCache := atsinfra.NewRedisReportCache(c.Redis)
	checkoutProvider := billinginfra.NewHTTPCheckoutProvider(
		os.Getenv("PAYMENT_API_URL"),
		os.Getenv("PAYMENT_SECRET_KEY"),
		os.Getenv("FRONTEND_URL"),
	)

	// --- Domain Services ---
	c.TemplateService = templatesrv.NewTemplateService(templateRepo, c.FileSystem)
	c.ResumeService = resumesrv.NewResumeService(resumeRepo, templateRepo)
	c.JobDescService = jobdescsrv.NewJobDescriptionService(jobDescRepo)
	c.ATSService = atssrv.NewATSService(reportRepo, reportCache)

	c.BillingService = billingsrv.NewBillingService(
		checkoutProvider,
		subscriptionRepo,
		os.Getenv("PAYMENT_WEBHOOK_SECRET"),
	)

	c.CatalogService = catalogsrv.NewCatalogService(
		providerRepo,
		modelRepo,
		planRepo,
		c.BillingService,
	)

	// AI rewrite providers
	providers := []rewrite.Provider{}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		providers = append(providers, rewriteinfra.NewOpenAIProvider(apiKey))
	}
	if apiKey := os.Getenv("GOOGLE_AI_API_KEY"); apiKey != "" {
		gemini, err := rewriteinfra.NewGeminiProvider(context.Background(), apiKey)
		if err != nil {
			logx.Warnf("Failed to initialize Gemini provider: %v", err)
		} else {
			providers = append(providers, gemini)
		}
	}
	if len(providers) == 0 {
		logx.Warn("No AI provider API keys configured, rewrite endpoints will reject requests")
	}
	c.RewriteService = rewritesrv.NewRewriteService(c.CatalogService, providers...)

	// --- Handlers ---
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)
	c.TemplateHandlers = templateapi.NewHandlers(c.TemplateService)
	c.JobDescHandlers = jobdescapi.NewHandlers(c.JobDescService)
	c.ATSHandlers = atsapi.NewHandlers(c.ATSService)
	c.RewriteHandlers = rewriteapi.NewHandlers(c.RewriteService)
	c.CatalogHandlers = catalogapi.NewHandlers(c.CatalogService)
	c.BillingHandlers = billingapi.NewHandlers(c.BillingService)
}
