package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Options configures the HTTP router
type Options struct {
	StaticDir          string
	MaxRequestBodySize int64
	CORSAllowOrigins   []string
	Debug              bool
}

// NewRouter wires the analysis routes with recovery, request ids, logging and CORS
func NewRouter(h *Handler, opts Options) *gin.Engine {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(requestIDMiddleware())
	engine.Use(loggingMiddleware())
	engine.Use(gin.CustomRecovery(recoverJSON))
	engine.Use(cors.New(corsConfig(opts.CORSAllowOrigins)))

	if opts.StaticDir != "" {
		engine.Use(static.Serve("/", static.LocalFile(opts.StaticDir, false)))
	}

	engine.GET("/health", h.HandleHealth)
	engine.POST("/analyze", requestSizeLimiter(opts.MaxRequestBodySize), h.HandleAnalyze)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}

func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"ip", c.ClientIP(),
			"request_id", requestID(c),
		)
	}
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// recoverJSON turns a panic into the generic analysis failure body
func recoverJSON(c *gin.Context, recovered any) {
	slog.Error("Recovered from panic", "panic", recovered, "path", c.Request.URL.Path, "request_id", requestID(c))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   fmt.Sprintf("An unexpected error occurred during analysis: %v", recovered),
		"data":    nil,
	})
}
