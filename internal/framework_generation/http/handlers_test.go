package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/generator"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/repository"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenGenerator struct{}

func (brokenGenerator) Generate(context.Context, string, domain.GenerationRequest) (*domain.GenerationResult, error) {
	return nil, errors.New("permission denied: /srv/generated-project/config")
}

func newRouter(t *testing.T, svc *service.GenerationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := New(svc)
	h.RegisterGenerate(r)
	h.RegisterHistory(r.Group("/api/v1"))
	return r
}

func withHistory(t *testing.T, outputDir string) *service.GenerationService {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return service.NewGenerationService(generator.New(), repository.NewHistoryRepository(client, time.Hour), outputDir)
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate-framework", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestGenerateFramework_WithCredentials(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated-project")
	r := newRouter(t, withHistory(t, out))

	rr := post(r, `{"baseUrl":"https://example.com","username":"demo","password":"demo","env":"qa"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Framework generated successfully", resp.Message)
	assert.Equal(t, out, resp.Path)
	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, resp.Files, "pages/LoginPage.js")
	assert.Contains(t, resp.Files, "tests/login.test.js")

	assert.FileExists(t, filepath.Join(out, "pages", "LoginPage.js"))
	assert.FileExists(t, filepath.Join(out, "tests", "login.test.js"))

	qa, err := os.ReadFile(filepath.Join(out, "config", "qa.json"))
	require.NoError(t, err)
	var cfg map[string]string
	require.NoError(t, json.Unmarshal(qa, &cfg))
	assert.Equal(t, map[string]string{
		"baseUrl":  "https://example.com",
		"username": "demo",
		"password": "demo",
	}, cfg)

	runner, err := os.ReadFile(filepath.Join(out, "playwright.config.js"))
	require.NoError(t, err)
	assert.Contains(t, string(runner), "process.env.ENV || 'qa'")
}

func TestGenerateFramework_NoCredentials(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated-project")
	r := newRouter(t, withHistory(t, out))

	rr := post(r, `{"baseUrl":"https://example.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.NoFileExists(t, filepath.Join(out, "pages", "LoginPage.js"))
	assert.NoFileExists(t, filepath.Join(out, "tests", "login.test.js"))
	assert.FileExists(t, filepath.Join(out, "pages", "HomePage.js"))
	assert.FileExists(t, filepath.Join(out, "tests", "home.test.js"))
}

func TestGenerateFramework_EmptyBody(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated-project")
	r := newRouter(t, service.NewGenerationService(generator.New(), nil, out))

	rr := post(r, "")
	require.Equal(t, http.StatusOK, rr.Code)

	runner, err := os.ReadFile(filepath.Join(out, "playwright.config.js"))
	require.NoError(t, err)
	assert.Contains(t, string(runner), "process.env.ENV || 'dev'")
}

func TestGenerateFramework_InvalidJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated-project")
	r := newRouter(t, service.NewGenerationService(generator.New(), nil, out))

	rr := post(r, `{"baseUrl":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NoDirExists(t, out)
}

func TestGenerateFramework_GeneratorFailure(t *testing.T) {
	r := newRouter(t, service.NewGenerationService(brokenGenerator{}, nil, "/srv/generated-project"))

	rr := post(r, `{"baseUrl":"https://example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"failed to generate framework"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "permission denied")
}

func TestGenerationHistory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated-project")
	r := newRouter(t, withHistory(t, out))

	rr := post(r, `{"baseUrl":"https://example.com","username":"demo","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var created GenerateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	t.Run("get by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/generations/"+created.ID, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hunter2")

		var body struct {
			Generation domain.GenerationRecord `json:"generation"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, created.ID, body.Generation.ID)
		assert.Equal(t, "dev", body.Generation.Env)
		assert.True(t, body.Generation.HasCredentials)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/generations/nope", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/generations?limit=5", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Generations []domain.GenerationRecord `json:"generations"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Generations, 1)
		assert.Equal(t, created.ID, body.Generations[0].ID)
	})

	t.Run("bad limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/generations?limit=zero", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGenerationHistory_Disabled(t *testing.T) {
	r := newRouter(t, service.NewGenerationService(generator.New(), nil, filepath.Join(t.TempDir(), "p")))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
