package service

import (
	"context"
	"sync"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/logging"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ProjectGenerator writes a scaffolded project into outputDir
type ProjectGenerator interface {
	Generate(ctx context.Context, outputDir string, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// HistoryStore persists generation records
type HistoryStore interface {
	Save(ctx context.Context, rec *domain.GenerationRecord) error
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.GenerationRecord, error)
}

// GenerationService handles business logic for framework generation
type GenerationService struct {
	// mu serializes generations; they all replace the same directory.
	mu        sync.Mutex
	generator ProjectGenerator
	history   HistoryStore
	outputDir string
}

// NewGenerationService creates a new GenerationService. history may be nil,
// in which case generations are not recorded.
func NewGenerationService(gen ProjectGenerator, history HistoryStore, outputDir string) *GenerationService {
	return &GenerationService{
		generator: gen,
		history:   history,
		outputDir: outputDir,
	}
}

// OutputDir is the directory every generation is written to
func (s *GenerationService) OutputDir() string {
	return s.outputDir
}

// Generate scaffolds a project for req into the configured output directory
func (s *GenerationService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	logger := logging.FromContext(ctx)

	s.mu.Lock()
	res, err := s.generator.Generate(ctx, s.outputDir, req)
	s.mu.Unlock()
	if err != nil {
		logger.Error("generation failed", "operation", "generate", "output_dir", s.outputDir, "err", err)
		return nil, err
	}

	logger.Info("framework generated",
		"operation", "generate",
		"generation_id", res.ID,
		"env", req.Env,
		"credentials", res.Features.Credentials,
		"files", len(res.Files),
	)

	if s.history != nil {
		rec := domain.NewGenerationRecord(req, res, logging.RequestID(ctx))
		if err := s.history.Save(ctx, rec); err != nil {
			logger.Warn("failed to record generation", "operation", "generate", "generation_id", res.ID, "err", err)
		}
	}

	return res, nil
}

// GetGeneration retrieves a recorded generation by ID
func (s *GenerationService) GetGeneration(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.history.Get(ctx, id)
}

// ListGenerations lists recent generations, newest first
func (s *GenerationService) ListGenerations(ctx context.Context, limit int) ([]*domain.GenerationRecord, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.history.ListRecent(ctx, limit)
}
