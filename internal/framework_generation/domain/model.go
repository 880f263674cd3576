package domain

import "time"

// DefaultEnv is used when a request carries no env at all.
const DefaultEnv = "dev"

// Environments are the config files every generated project ships with,
// regardless of which env was requested.
var Environments = []string{"dev", "qa", "staging", "prod"}

// GenerationRequest is one request to scaffold a project. Optional fields are
// nil when the caller omitted them; an empty string is a supplied value.
type GenerationRequest struct {
	BaseURL  *string
	Username *string
	Password *string
	Env      string
}

// NewGenerationRequest builds a request, applying the default env only when
// env was absent.
func NewGenerationRequest(baseURL, username, password, env *string) GenerationRequest {
	req := GenerationRequest{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
		Env:      DefaultEnv,
	}
	if env != nil {
		req.Env = *env
	}
	return req
}

// EnvironmentConfig is serialized into config/<env>.json. Absent request
// fields are omitted from the JSON.
type EnvironmentConfig struct {
	BaseURL  *string `json:"baseUrl,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// EnvironmentConfig returns the config shared by all environment files.
func (r GenerationRequest) EnvironmentConfig() EnvironmentConfig {
	return EnvironmentConfig{
		BaseURL:  r.BaseURL,
		Username: r.Username,
		Password: r.Password,
	}
}

// Features is the set of optional outputs, computed once per request.
type Features struct {
	Credentials bool `json:"credentials"`
}

func (r GenerationRequest) Features() Features {
	return Features{
		Credentials: nonEmpty(r.Username) && nonEmpty(r.Password),
	}
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

// GenerationResult describes a completed generation.
type GenerationResult struct {
	ID        string    `json:"id"`
	OutputDir string    `json:"output_dir"`
	Files     []string  `json:"files"`
	Features  Features  `json:"features"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerationRecord is what history keeps about a generation. The password is
// never stored.
type GenerationRecord struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id,omitempty"`
	BaseURL        string    `json:"base_url"`
	Username       string    `json:"username,omitempty"`
	HasCredentials bool      `json:"has_credentials"`
	Env            string    `json:"env"`
	OutputDir      string    `json:"output_dir"`
	Files          []string  `json:"files"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewGenerationRecord derives a history record from a request and its result.
func NewGenerationRecord(req GenerationRequest, res *GenerationResult, requestID string) *GenerationRecord {
	rec := &GenerationRecord{
		ID:             res.ID,
		RequestID:      requestID,
		HasCredentials: res.Features.Credentials,
		Env:            req.Env,
		OutputDir:      res.OutputDir,
		Files:          res.Files,
		CreatedAt:      res.CreatedAt,
	}
	if req.BaseURL != nil {
		rec.BaseURL = *req.BaseURL
	}
	if req.Username != nil {
		rec.Username = *req.Username
	}
	return rec
}
