package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/domain"
	httpHandler "github.com/MuhammadAdil12/module-4-project-backend-adil/internal/handler/http"
	gormpersistence "github.com/MuhammadAdil12/module-4-project-backend-adil/internal/infra/persistence/gorm"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/infra/setup"
	redisstate "github.com/MuhammadAdil12/module-4-project-backend-adil/internal/infra/state/redis"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/middleware"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/service"
	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/token"
)

// Config holds everything read from the environment at startup.
type Config struct {
	DBUser           string
	DBPassword       string
	DBHost           string
	DBPort           string
	DBName           string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	ServerPort       string
	LogLevel         string
	JWTExpiryHours   int
	DBAcquireTimeout time.Duration
	AppEnv           string
	KeyPrefix        string
}

// LoadConfig reads configuration from the environment, with a .env file
// as an optional source for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		AppEnv:        os.Getenv("APP_ENV"),
		KeyPrefix:     os.Getenv("REDIS_KEY_PREFIX"),

		JWTExpiryHours:   24,
		DBAcquireTimeout: 3 * time.Second,
	}

	redisDBStr := os.Getenv("REDIS_DB")
	cfg.RedisDB, _ = strconv.Atoi(redisDBStr)

	if hours := os.Getenv("JWT_EXPIRY_HOURS"); hours != "" {
		if parsed, err := strconv.Atoi(hours); err == nil && parsed > 0 {
			cfg.JWTExpiryHours = parsed
		}
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "ht:"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("environment variables DB_USER and DB_NAME must be set")
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "127.0.0.1"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App holds the wired application components.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	HttpServer  *http.Server
}

// NewApp loads configuration and wires every component together.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	logrus.SetLevel(logLevel)
	log.Info("Configuration loaded successfully")

	log.Info("Initializing infrastructure...")
	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	log.Info("Database initialized")

	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database migrated")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis client initialized")

	log.Info("Initializing repositories...")
	userRepo := gormpersistence.NewGormUserRepository(db)
	workoutRepo := gormpersistence.NewGormTrackedRepository[domain.WorkoutEntry](db)
	calorieRepo := gormpersistence.NewGormTrackedRepository[domain.CalorieEntry](db)
	totalsRepo := gormpersistence.NewGormSingletonRepository[domain.CalorieTotal](db)
	waterRepo := gormpersistence.NewGormSingletonRepository[domain.WaterTracker](db)
	profileRepo := gormpersistence.NewGormSingletonRepository[domain.Profile](db)
	credentialRepo := gormpersistence.NewGormCredentialRepository(db)
	nameCache := redisstate.NewRedisNameCache(redisClient, cfg.KeyPrefix, time.Hour)
	log.Info("Repositories initialized")

	codec, err := token.NewCodec(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}

	log.Info("Initializing services...")
	authService, err := service.NewAuthService(userRepo, nameCache, codec)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	workoutService := service.NewWorkoutService(workoutRepo)
	calorieService := service.NewCalorieService(calorieRepo, totalsRepo)
	waterService := service.NewWaterService(waterRepo)
	profileService := service.NewProfileService(profileRepo)
	integrationService := service.NewIntegrationService(credentialRepo)
	log.Info("Services initialized")

	log.Info("Initializing handlers...")
	authHandler := httpHandler.NewAuthHandler(authService)
	workoutHandler := httpHandler.NewWorkoutHandler(workoutService)
	calorieHandler := httpHandler.NewCalorieHandler(calorieService)
	waterHandler := httpHandler.NewWaterHandler(waterService)
	profileHandler := httpHandler.NewProfileHandler(profileService)
	integrationHandler := httpHandler.NewIntegrationHandler(integrationService)
	log.Info("Handlers initialized")

	log.Info("Setting up Gin router...")
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))

	router.Use(func(c *gin.Context) {
		allowedOrigin := os.Getenv("CORS_ALLOWED_ORIGIN")
		if allowedOrigin == "" {
			allowedOrigin = "http://localhost:3000"
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Every /api route runs on a request-scoped DB connection with the
	// session settings applied.
	api := router.Group("/api")
	api.Use(middleware.DBSession(db, cfg.DBAcquireTimeout))

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(codec))
	{
		protected.GET("/me", authHandler.Me)

		protected.GET("/workouts", workoutHandler.List)
		protected.POST("/workouts", workoutHandler.Create)
		protected.PUT("/workouts/:id", workoutHandler.Update)
		protected.DELETE("/workouts/:id", workoutHandler.Delete)

		protected.GET("/calories", calorieHandler.List)
		protected.POST("/calories", calorieHandler.Create)
		protected.DELETE("/calories/:id", calorieHandler.Delete)
		protected.GET("/calories/totals", calorieHandler.Totals)
		protected.POST("/calories/totals", calorieHandler.Totals)
		protected.PUT("/calories/totals", calorieHandler.UpdateTotals)

		protected.GET("/water", waterHandler.Get)
		protected.POST("/water", waterHandler.Get)
		protected.PUT("/water/target", waterHandler.SetTarget)
		protected.PUT("/water/consumed", waterHandler.AddConsumed)
		protected.PUT("/water/restart", waterHandler.Restart)

		protected.GET("/profile", profileHandler.Get)
		protected.POST("/profile", profileHandler.Save)

		protected.GET("/integrations/:service", integrationHandler.Credentials)
	}

	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	app := &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		HttpServer:  httpServer,
	}
	log.Info("Application assembled successfully")

	return app, nil
}

// Start begins serving HTTP in the background.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown drains in-flight requests and closes the external connections.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware logs one line per handled request.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if errorMessage != "" {
			entry.Error(errorMessage)
		} else if statusCode >= 500 {
			entry.Error("Server error")
		} else if statusCode >= 400 {
			entry.Warn("Client error")
		} else {
			entry.Info("Request handled")
		}
	}
}
