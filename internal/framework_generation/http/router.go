package http

import "github.com/gin-gonic/gin"

// RegisterGenerate registers the generation endpoint. extra runs before the
// handler, e.g. rate limiting.
func (h *Handler) RegisterGenerate(r gin.IRoutes, extra ...gin.HandlerFunc) {
	r.POST("/generate-framework", append(extra, h.GenerateFramework)...)
}

// RegisterHistory registers the generation history routes
func (h *Handler) RegisterHistory(rg *gin.RouterGroup) {
	rg.GET("/generations", h.ListGenerations)
	rg.GET("/generations/:id", h.GetGeneration)
}
