package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string

	// Database
	DBUrl         string
	DBApplySchema bool
	SeedDemoData  bool
	WebDistDir    string

	// Auth
	JWTSecret     []byte
	SessionIssuer string

	// Chat relay (xAI Grok, OpenAI-compatible)
	GrokAPIKey  string
	GrokModel   string
	GrokBaseURL string

	// Property scoring
	AnalysisProvider string
	AnthropicAPIKey  string
	AnthropicModel   string
	GeminiAPIKey     string
	GeminiModel      string

	CORSHighSecurity   bool
	MilestoneSweepCron string

	Portal PortalConfig
}

// PortalConfig holds the portal.yaml settings.
type PortalConfig struct {
	AdminDomains      []string   `yaml:"admin_domains"`
	ProtectedPrefixes []string   `yaml:"protected_prefixes"`
	AdminPrefixes     []string   `yaml:"admin_prefixes"`
	Chat              ChatConfig `yaml:"chat"`
}

type ChatConfig struct {
	Persona string   `yaml:"persona"`
	Facts   []string `yaml:"facts"`
}

// build-time overrides
var (
	AppName string
)

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.Logger.WithError(err).Warn("Failed to parse .env file, continuing with process env")
	}

	appName := AppName
	if appName == "" {
		appName = constants.DefaultAppName
	}
	utils.Logger.Info("Loading config for app: ", appName)

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}
	jwtSecret := os.Getenv("SUPABASE_JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("SUPABASE_JWT_SECRET env var is missing")
	}

	portalPath := getEnv("PORTAL_CONFIG", constants.DefaultPortalConfigPath)
	portal, err := LoadPortalConfig(portalPath)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("Failed to load portal config %s", portalPath)
	}

	cfg := &Config{
		OrganizationName:   constants.OrganizationName,
		AppName:            appName,
		AppPort:            getEnv("APP_PORT", constants.DefaultAppPort),
		AppUrl:             getEnv("APP_URL", "http://localhost:3000"),
		DBUrl:              dbURL,
		DBApplySchema:      getBool("DB_APPLY_SCHEMA"),
		SeedDemoData:       getBool("SEED_DEMO_DATA"),
		WebDistDir:         os.Getenv("WEB_DIST_DIR"),
		JWTSecret:          []byte(jwtSecret),
		SessionIssuer:      os.Getenv("SESSION_ISSUER"),
		GrokAPIKey:         os.Getenv("GROK_API_KEY"),
		GrokModel:          getEnv("GROK_MODEL", constants.DefaultGrokModel),
		GrokBaseURL:        getEnv("GROK_BASE_URL", constants.DefaultGrokBaseURL),
		AnalysisProvider:   strings.ToLower(getEnv("ANALYSIS_PROVIDER", constants.AnalysisProviderAnthropic)),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:     getEnv("ANTHROPIC_MODEL", constants.DefaultAnthropicModel),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", constants.DefaultGeminiModel),
		CORSHighSecurity:   getBool("CORS_HIGH_SECURITY"),
		MilestoneSweepCron: getEnv("MILESTONE_SWEEP_CRON", constants.DefaultMilestoneSweepCron),
		Portal:             *portal,
	}

	if cfg.GrokAPIKey == "" {
		utils.Logger.Warn("GROK_API_KEY is empty, chat relay will answer with a configuration error")
	}
	switch cfg.AnalysisProvider {
	case constants.AnalysisProviderAnthropic, constants.AnalysisProviderGemini:
	default:
		utils.Logger.Fatalf("Unknown ANALYSIS_PROVIDER %q", cfg.AnalysisProvider)
	}

	utils.Logger.Debugf("analysis provider: %s", cfg.AnalysisProvider)
	utils.Logger.Debugf("admin domains: %v", cfg.Portal.AdminDomains)
	return cfg
}

// LoadPortalConfig reads the YAML portal file. A missing file yields the defaults.
func LoadPortalConfig(path string) (*PortalConfig, error) {
	pc := &PortalConfig{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, pc); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		utils.Logger.Debugf("portal config %s not found, using defaults", path)
	default:
		return nil, err
	}
	pc.applyDefaults()
	return pc, nil
}

func (pc *PortalConfig) applyDefaults() {
	if len(pc.AdminDomains) == 0 {
		pc.AdminDomains = constants.DefaultAdminDomains
	}
	if len(pc.ProtectedPrefixes) == 0 {
		pc.ProtectedPrefixes = constants.DefaultProtectedPrefixes
	}
	if len(pc.AdminPrefixes) == 0 {
		pc.AdminPrefixes = constants.DefaultAdminPrefixes
	}
}

func (c *Config) Close() {}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
