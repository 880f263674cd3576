// Package generator assembles the fixed artifact set of a scaffolded project
// and writes it to disk.
package generator

import (
	"context"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/render"
	"github.com/google/uuid"
)

// Artifact is one step of the pipeline. When is nil for artifacts that are
// always emitted.
type Artifact struct {
	Path   string
	When   func(domain.Features) bool
	Render func(domain.GenerationRequest) ([]byte, error)
}

// File is a rendered artifact. Path is slash separated and relative to the
// project root.
type File struct {
	Path    string
	Content []byte
}

type Generator struct {
	artifacts []Artifact
	newID     func() string
	now       func() time.Time
}

func New() *Generator {
	return &Generator{
		artifacts: DefaultArtifacts(),
		newID:     func() string { return uuid.New().String() },
		now:       time.Now,
	}
}

func withCredentials(f domain.Features) bool { return f.Credentials }

func static(fn func() ([]byte, error)) func(domain.GenerationRequest) ([]byte, error) {
	return func(domain.GenerationRequest) ([]byte, error) { return fn() }
}

// DefaultArtifacts returns the project layout in emission order.
func DefaultArtifacts() []Artifact {
	arts := []Artifact{
		{Path: "package.json", Render: static(render.RenderManifest)},
		{Path: "playwright.config.js", Render: func(r domain.GenerationRequest) ([]byte, error) {
			return render.RenderRunnerConfig(r.Env)
		}},
	}

	for _, env := range domain.Environments {
		arts = append(arts, Artifact{
			Path: path.Join("config", env+".json"),
			Render: func(r domain.GenerationRequest) ([]byte, error) {
				return render.RenderEnvironmentConfig(r.EnvironmentConfig())
			},
		})
	}

	return append(arts,
		Artifact{Path: "pages/BasePage.js", Render: static(render.RenderBasePage)},
		Artifact{Path: "pages/LoginPage.js", When: withCredentials, Render: static(render.RenderLoginPage)},
		Artifact{Path: "pages/HomePage.js", Render: static(render.RenderHomePage)},
		Artifact{Path: "tests/login.test.js", When: withCredentials, Render: func(r domain.GenerationRequest) ([]byte, error) {
			return render.RenderLoginTest(r.Env)
		}},
		Artifact{Path: "tests/home.test.js", Render: func(r domain.GenerationRequest) ([]byte, error) {
			return render.RenderHomeTest(r.Env)
		}},
		Artifact{Path: "utils/waitHelper.js", Render: static(render.RenderWaitHelper)},
		Artifact{Path: "utils/assertHelper.js", Render: static(render.RenderAssertHelper)},
		Artifact{Path: "utils/logger.js", Render: static(render.RenderLogger)},
		Artifact{Path: "utils/dataHelper.js", Render: static(render.RenderDataHelper)},
		Artifact{Path: "utils/" + render.FixtureFile, Render: static(render.RenderTestData)},
		Artifact{Path: ".github/workflows/playwright.yml", Render: static(render.RenderWorkflow)},
		Artifact{Path: "README.md", Render: static(render.RenderReadme)},
	)
}

// Render produces every artifact that applies to req, in pipeline order.
func (g *Generator) Render(ctx context.Context, req domain.GenerationRequest) ([]File, error) {
	features := req.Features()
	files := make([]File, 0, len(g.artifacts))

	for _, a := range g.artifacts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if a.When != nil && !a.When(features) {
			continue
		}
		content, err := a.Render(req)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", a.Path, err)
		}
		if err := checkArtifact(a.Path, content); err != nil {
			return nil, err
		}
		files = append(files, File{Path: a.Path, Content: content})
	}

	return files, nil
}

// Generate renders the project for req and replaces outputDir with it. The
// previous contents of outputDir are only removed once the new tree is
// complete; on failure they are left in place.
func (g *Generator) Generate(ctx context.Context, outputDir string, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if outputDir == "" {
		return nil, domain.ErrOutputDirRequired
	}

	files, err := g.Render(ctx, req)
	if err != nil {
		return nil, err
	}

	id := g.newID()
	if err := publish(ctx, outputDir, id, files); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	sort.Strings(paths)

	return &domain.GenerationResult{
		ID:        id,
		OutputDir: outputDir,
		Files:     paths,
		Features:  req.Features(),
		CreatedAt: g.now().UTC(),
	}, nil
}
