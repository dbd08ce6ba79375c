package main

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/employee7007-droid/construct-deal/handlers"
	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/config"
	"github.com/employee7007-droid/construct-deal/internal/session"
	"github.com/employee7007-droid/construct-deal/internal/storage"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
	"github.com/employee7007-droid/construct-deal/pkg/metrics"
	"github.com/employee7007-droid/construct-deal/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging first (LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s redis=%v mongo=%v", cfg.Backend.BaseURL, cfg.Redis.Host != "", cfg.MongoDB.URI != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early: it backs sessions, the query cache and the
	// distributed rate limiter when available.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// session repository: Redis preferred, Mongo fallback, fatal when neither
	// is available since every page depends on session state
	var sessionRepo session.Repository
	var mongoClient *mongo.Client
	if redisClient != nil {
		sessionRepo = session.NewRedisRepository(redisClient, "session:")
		logger.Infof("using Redis for session storage")
	} else if cfg.MongoDB.URI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
		mongoClient, err = mongo.Connect(ctx, mongooptions.Client().ApplyURI(cfg.MongoDB.URI))
		cancel()
		if err != nil {
			logger.Fatalf("failed to connect to MongoDB: %v", err)
		}
		col := mongoClient.Database(cfg.MongoDB.Database).Collection("sessions")
		sessionRepo = session.NewMongoRepository(col)
		logger.Infof("using MongoDB for session storage")
	} else {
		logger.Fatalf("no session backend configured: set REDIS_HOST or MONGODB_URI")
	}
	store := session.NewStore(sessionRepo, cfg.Session.TTL)

	// query cache follows the same preference; in-memory keeps a single
	// replica working without Redis
	var cache api.Cache
	if redisClient != nil {
		cache = api.NewRedisCache(redisClient, "cache:")
	} else {
		cache = api.NewMemoryCache()
		logger.Warnf("using in-process query cache; invalidation will not cross replicas")
	}

	clients := api.NewClients(api.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, cache, cfg.Cache.TTL))

	// optional attachment staging
	var attachments *storage.AttachmentStore
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		attachments, err = storage.NewAttachmentStore(mcfg)
		if err != nil {
			logger.Warnf("minio unavailable, attachment staging disabled: %v", err)
			attachments = nil
		} else {
			logger.Infof("attachment staging enabled (bucket %s)", mcfg.Bucket)
		}
	}

	// metrics
	registry := prometheus.NewRegistry()
	metrics.RegisterCollectors(registry)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", func(c *gin.Context) {
		deps := gin.H{
			"sessions": sessionRepo != nil,
			"redis":    redisClient != nil,
			"backend":  cfg.Backend.BaseURL != "",
		}
		if sessionRepo == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob("templates/*.tmpl")
	r.Static("/static", "./static")

	secureCookie := cfg.Server.Environment == "production"
	r.Use(middleware.Sessions(store, cfg.Session.CookieName, cfg.Session.TTL, secureCookie))

	// rate limiting sits behind session resolution so authenticated visitors
	// are keyed by user instead of IP
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterRoutes(r, clients, store, attachments)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
