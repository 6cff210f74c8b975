package constants

const (
	OrganizationName                      = "Golden Visa Portal"
	DefaultAppName                        = "goldenvisa-portal"
	DefaultAppPort                        = "8080"
	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"

	// Session cookie written by the hosted auth provider's web client.
	SessionCookieName = "sb-access-token"

	// Months are counted as 30-day blocks when deriving cumulative returns.
	DaysPerMonth = 30

	DefaultGrokBaseURL    = "https://api.x.ai/v1"
	DefaultGrokModel      = "grok-2-latest"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultGeminiModel    = "gemini-2.5-flash"

	AnalysisProviderAnthropic = "anthropic"
	AnalysisProviderGemini    = "gemini"

	DefaultMilestoneSweepCron = "0 6 * * *"
	DefaultPortalConfigPath   = "portal.yaml"
)

// VisaMilestoneSequence is the fixed, ordered set of steps every investor
// goes through. Order numbers start at 1.
var VisaMilestoneSequence = []struct {
	Title       string
	Description string
}{
	{"Investment Transfer", "Capital transferred into the qualifying fund and real-estate allocation."},
	{"Document Collection", "Passport, criminal record and proof of funds gathered and apostilled."},
	{"Application Submission", "Golden Visa application filed with the immigration authority."},
	{"Biometrics Appointment", "In-person biometrics collected at the immigration office."},
	{"Approval", "Residence permit application approved."},
	{"Card Issuance", "Residence card issued and delivered to the investor."},
}

var DefaultAdminDomains = []string{"@goldenvisa.pt"}

var DefaultProtectedPrefixes = []string{"/dashboard", "/properties", "/milestones", "/chat", "/admin"}

var DefaultAdminPrefixes = []string{"/admin"}
