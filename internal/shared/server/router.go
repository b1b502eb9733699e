package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"budget-backend/internal/reporting"
	"budget-backend/internal/reports"
	"budget-backend/internal/shared/config"
	"budget-backend/internal/shared/metrics"
	"budget-backend/internal/shared/server/middleware"
	"budget-backend/internal/shared/server/respond"
	"budget-backend/internal/shared/storage/db"
	"budget-backend/internal/shared/storage/object"
	localstore "budget-backend/internal/shared/storage/object/local"
	s3store "budget-backend/internal/shared/storage/object/s3"
	"budget-backend/internal/workbooks"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/workbooks" {
					return "UPLOAD"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 20, Burst: 40},
				"UPLOAD":  {Rate: 1, Burst: 10},
			},
		}),
	)

	// Dependencies
	store := newObjectStore(cfg)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var wbRepo workbooks.WorkbooksRepo
	if sqlDB != nil {
		wbRepo = &workbooks.PGRepo{DB: sqlDB}
	} else {
		wbRepo = workbooks.NewMemoryRepo()
	}
	wbSvc := workbooks.NewService(store, wbRepo)
	wbHandler := workbooks.NewHandler(wbSvc)
	reportSvc := reports.NewService(wbSvc, reporting.Config{BaselineMultiplier: cfg.BaselineMultiplier})
	reportHandler := reports.NewHandler(reportSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	wbHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)

	return r
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
