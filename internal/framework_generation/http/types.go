package http

import (
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/service"
)

// Handler handles HTTP requests for framework generation
type Handler struct {
	genService *service.GenerationService
}

// New creates a new Handler
func New(genService *service.GenerationService) *Handler {
	return &Handler{genService: genService}
}

// GenerateRequest is the body of POST /generate-framework. Every field is
// optional; absent fields stay nil.
type GenerateRequest struct {
	BaseURL  *string `json:"baseUrl"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Env      *string `json:"env"`
}

func (r GenerateRequest) toDomain() domain.GenerationRequest {
	return domain.NewGenerationRequest(r.BaseURL, r.Username, r.Password, r.Env)
}

// GenerateResponse acknowledges a successful generation
type GenerateResponse struct {
	Message string   `json:"message"`
	Path    string   `json:"path"`
	ID      string   `json:"id"`
	Files   []string `json:"files"`
}

const successMessage = "Framework generated successfully"
