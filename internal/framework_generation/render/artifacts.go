package render

import (
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
)

const (
	ProjectName    = "playwright-framework"
	ProjectVersion = "1.0.0"

	TestScript   = "npx playwright test --reporter=line,html"
	ReportScript = "npx playwright show-report"

	PlaywrightPackage = "@playwright/test"
	PlaywrightVersion = "^1.47.2"
	LintPackage       = "eslint"
	LintVersion       = "^9.0.0"

	FixtureFile = "testData.json"

	// ReadmeExampleEnv is the env shown in the README override example.
	ReadmeExampleEnv = "qa"
)

var (
	UsernameSelectors = []string{`input[name="username"]`, `input[type="email"]`}
	PasswordSelectors = []string{`input[type="password"]`}
	SubmitSelectors   = []string{`button[type="submit"]`, `input[type="submit"]`}
	HeaderSelectors   = []string{"h1", "header"}
)

// Manifest is package.json. Field order is the emitted key order.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Scripts         ManifestScripts   `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type ManifestScripts struct {
	Test   string `json:"test"`
	Report string `json:"report"`
}

type testData struct {
	SampleUser sampleUser `json:"sampleUser"`
}

type sampleUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type runnerConfigData struct {
	Env        string
	Screenshot string
	Video      string
	Trace      string
	Reporters  []string
}

type loginPageData struct {
	UsernameSelectors []string
	PasswordSelectors []string
	SubmitSelectors   []string
}

type homePageData struct {
	HeaderSelectors []string
}

type specData struct {
	Env            string
	LandingPattern string
}

type dataHelperData struct {
	FixtureFile string
}

type workflowData struct {
	Name        string
	Triggers    []string
	RunsOn      string
	NodeVersion int
	Commands    []string
}

type readmeData struct {
	Environments []string
	ExampleEnv   string
}

func RenderManifest() ([]byte, error) {
	return marshalJSON(Manifest{
		Name:    ProjectName,
		Version: ProjectVersion,
		Scripts: ManifestScripts{
			Test:   TestScript,
			Report: ReportScript,
		},
		Dependencies:    map[string]string{PlaywrightPackage: PlaywrightVersion},
		DevDependencies: map[string]string{LintPackage: LintVersion},
	})
}

// RenderRunnerConfig renders playwright.config.js. env is only the fallback;
// the generated config prefers ENV at test run time.
func RenderRunnerConfig(env string) ([]byte, error) {
	return renderTemplate("playwright.config.js.tmpl", runnerConfigData{
		Env:        env,
		Screenshot: "only-on-failure",
		Video:      "retain-on-failure",
		Trace:      "on-first-retry",
		Reporters:  []string{"line", "html"},
	})
}

func RenderEnvironmentConfig(cfg domain.EnvironmentConfig) ([]byte, error) {
	return marshalJSON(cfg)
}

func RenderBasePage() ([]byte, error) {
	return renderTemplate("base_page.js.tmpl", nil)
}

func RenderLoginPage() ([]byte, error) {
	return renderTemplate("login_page.js.tmpl", loginPageData{
		UsernameSelectors: UsernameSelectors,
		PasswordSelectors: PasswordSelectors,
		SubmitSelectors:   SubmitSelectors,
	})
}

func RenderHomePage() ([]byte, error) {
	return renderTemplate("home_page.js.tmpl", homePageData{HeaderSelectors: HeaderSelectors})
}

func RenderLoginTest(env string) ([]byte, error) {
	return renderTemplate("login.test.js.tmpl", specData{Env: env, LandingPattern: "dashboard|home"})
}

func RenderHomeTest(env string) ([]byte, error) {
	return renderTemplate("home.test.js.tmpl", specData{Env: env})
}

func RenderWaitHelper() ([]byte, error) {
	return renderTemplate("wait_helper.js.tmpl", nil)
}

func RenderAssertHelper() ([]byte, error) {
	return renderTemplate("assert_helper.js.tmpl", nil)
}

func RenderLogger() ([]byte, error) {
	return renderTemplate("logger.js.tmpl", nil)
}

func RenderDataHelper() ([]byte, error) {
	return renderTemplate("data_helper.js.tmpl", dataHelperData{FixtureFile: FixtureFile})
}

func RenderTestData() ([]byte, error) {
	return marshalJSON(testData{SampleUser: sampleUser{Username: "demo", Password: "demo"}})
}

func RenderWorkflow() ([]byte, error) {
	return renderTemplate("playwright.yml.tmpl", workflowData{
		Name:        "Playwright Tests",
		Triggers:    []string{"push", "pull_request"},
		RunsOn:      "ubuntu-latest",
		NodeVersion: 18,
		Commands: []string{
			"npm install",
			"npx playwright install --with-deps",
			"npx playwright test",
		},
	})
}

func RenderReadme() ([]byte, error) {
	return renderTemplate("readme.md.tmpl", readmeData{
		Environments: domain.Environments,
		ExampleEnv:   ReadmeExampleEnv,
	})
}
