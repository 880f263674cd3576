package bootstrap

import (
	httpapi "github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/api/http/middleware"
	genhttp "github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/http"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	Generation     *service.GenerationService
	// Redis is nil when history is disabled.
	Redis httpapi.Pinger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Generation.OutputDir(), dep.Redis)
	healthHandler.RegisterRoutes(r)

	genHandler := genhttp.New(dep.Generation)
	genHandler.RegisterGenerate(r, middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	api := r.Group("/api/v1")
	genHandler.RegisterHistory(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
