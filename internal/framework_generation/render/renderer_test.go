package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func strp(s string) *string { return &s }

func TestRenderManifest(t *testing.T) {
	out, err := RenderManifest()
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "playwright-framework", m.Name)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, "npx playwright test --reporter=line,html", m.Scripts.Test)
	assert.Equal(t, "npx playwright show-report", m.Scripts.Report)
	assert.Equal(t, map[string]string{"@playwright/test": "^1.47.2"}, m.Dependencies)
	assert.Equal(t, map[string]string{"eslint": "^9.0.0"}, m.DevDependencies)

	assert.True(t, strings.HasPrefix(string(out), "{\n  \"name\": \"playwright-framework\",\n  \"version\""),
		"keys keep declaration order")
}

func TestRenderRunnerConfig(t *testing.T) {
	out, err := RenderRunnerConfig("qa")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "const env = process.env.ENV || 'qa';")
	assert.Contains(t, s, "fs.readFileSync(`./config/${env}.json`)")
	assert.Contains(t, s, "baseURL: config.baseUrl,")
	assert.Contains(t, s, "screenshot: 'only-on-failure',")
	assert.Contains(t, s, "video: 'retain-on-failure',")
	assert.Contains(t, s, "trace: 'on-first-retry',")
	assert.Contains(t, s, "reporter: [['line'], ['html']]")
}

func TestRenderRunnerConfig_EscapesEnv(t *testing.T) {
	out, err := RenderRunnerConfig(`qa'; process.exit(1); '`)
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, `'qa'; process.exit(1)`)
	assert.Contains(t, s, `qa\'; process.exit(1); \'`)
}

func TestRenderEnvironmentConfig(t *testing.T) {
	cfg := domain.EnvironmentConfig{
		BaseURL:  strp("https://example.com/?a=1&b=2"),
		Username: strp("demo"),
		Password: strp(`p"w`),
	}
	out, err := RenderEnvironmentConfig(cfg)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"baseUrl": "https://example.com/?a=1&b=2"`)
	assert.False(t, strings.HasSuffix(string(out), "\n"))

	var back map[string]string
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, map[string]string{
		"baseUrl":  "https://example.com/?a=1&b=2",
		"username": "demo",
		"password": `p"w`,
	}, back)
}

func TestRenderLoginPage(t *testing.T) {
	out, err := RenderLoginPage()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `this.usernameField = 'input[name="username"], input[type="email"]';`)
	assert.Contains(t, s, `this.passwordField = 'input[type="password"]';`)
	assert.Contains(t, s, `this.loginButton = 'button[type="submit"], input[type="submit"]';`)
	assert.Contains(t, s, "async login(username, password)")
	assert.Contains(t, s, "extends BasePage")
}

func TestRenderPages(t *testing.T) {
	base, err := RenderBasePage()
	require.NoError(t, err)
	assert.Contains(t, string(base), "async navigate(url)")
	assert.Contains(t, string(base), "await this.page.goto(url);")

	home, err := RenderHomePage()
	require.NoError(t, err)
	assert.Contains(t, string(home), "this.header = 'h1, header';")
	assert.Contains(t, string(home), "async isLoaded()")
}

func TestRenderSpecs(t *testing.T) {
	login, err := RenderLoginTest("staging")
	require.NoError(t, err)
	assert.Contains(t, string(login), "process.env.ENV || 'staging'")
	assert.Contains(t, string(login), "new LoginPage(page)")
	assert.Contains(t, string(login), "toHaveURL(/dashboard|home/)")

	home, err := RenderHomeTest("dev")
	require.NoError(t, err)
	assert.Contains(t, string(home), "process.env.ENV || 'dev'")
	assert.Contains(t, string(home), "expect(await home.isLoaded()).toBeTruthy();")
}

func TestRenderUtilities(t *testing.T) {
	wait, err := RenderWaitHelper()
	require.NoError(t, err)
	assert.Contains(t, string(wait), "export async function wait(seconds)")

	assertHelper, err := RenderAssertHelper()
	require.NoError(t, err)
	assert.Contains(t, string(assertHelper), "export function assertVisible(locator)")

	logger, err := RenderLogger()
	require.NoError(t, err)
	assert.Contains(t, string(logger), "[LOG] ${new Date().toISOString()} - ${message}")

	dataHelper, err := RenderDataHelper()
	require.NoError(t, err)
	assert.Contains(t, string(dataHelper), "import data from './testData.json'")
	assert.Contains(t, string(dataHelper), "export function getData(key)")

	fixture, err := RenderTestData()
	require.NoError(t, err)
	var td map[string]map[string]string
	require.NoError(t, json.Unmarshal(fixture, &td))
	assert.Equal(t, map[string]string{"username": "demo", "password": "demo"}, td["sampleUser"])
}

func TestRenderWorkflow(t *testing.T) {
	out, err := RenderWorkflow()
	require.NoError(t, err)

	var wf struct {
		Name string   `yaml:"name"`
		On   []string `yaml:"on"`
		Jobs map[string]struct {
			RunsOn string `yaml:"runs-on"`
			Steps  []struct {
				Uses string         `yaml:"uses"`
				Run  string         `yaml:"run"`
				With map[string]int `yaml:"with"`
			} `yaml:"steps"`
		} `yaml:"jobs"`
	}
	require.NoError(t, yaml.Unmarshal(out, &wf))

	assert.Equal(t, "Playwright Tests", wf.Name)
	assert.Equal(t, []string{"push", "pull_request"}, wf.On)
	job, ok := wf.Jobs["test"]
	require.True(t, ok)
	assert.Equal(t, "ubuntu-latest", job.RunsOn)
	require.Len(t, job.Steps, 5)
	assert.Equal(t, "actions/checkout@v3", job.Steps[0].Uses)
	assert.Equal(t, "actions/setup-node@v3", job.Steps[1].Uses)
	assert.Equal(t, 18, job.Steps[1].With["node-version"])
	assert.Equal(t, "npm install", job.Steps[2].Run)
	assert.Equal(t, "npx playwright install --with-deps", job.Steps[3].Run)
	assert.Equal(t, "npx playwright test", job.Steps[4].Run)
}

func TestRenderReadme(t *testing.T) {
	out, err := RenderReadme()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "# Playwright Test Framework")
	assert.Contains(t, s, "ENV=qa npx playwright test")
	assert.Contains(t, s, "npm run report")
	assert.Contains(t, s, "dev, qa, staging, prod")
	assert.Contains(t, s, "GitHub Actions")
}

func TestLoadTemplate_Cached(t *testing.T) {
	a, err := loadTemplate("base_page.js.tmpl")
	require.NoError(t, err)
	b, err := loadTemplate("base_page.js.tmpl")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = loadTemplate("missing.tmpl")
	assert.Error(t, err)
}
