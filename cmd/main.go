package main

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/app"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/config"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/controllers"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/middleware"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/routes"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

const sweepTimeout = 2 * time.Minute

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	defer cfg.Close()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize portal:", err)
	}
	defer application.Close()

	investorRepo := repositories.NewInvestorRepository(application.DB)
	propRepo := repositories.NewPropertyRepository(application.DB)
	unitRepo := repositories.NewUnitRepository(application.DB)
	milestoneRepo := repositories.NewMilestoneRepository(application.DB)
	analysisRepo := repositories.NewPropertyAnalysisRepository(application.DB)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(context.Background(), investorRepo, propRepo, unitRepo, milestoneRepo); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		} else {
			utils.Logger.Info("Seeded demo data successfully")
		}
	}

	var scorer services.PropertyScorer
	switch cfg.AnalysisProvider {
	case constants.AnalysisProviderGemini:
		gs, gErr := services.NewGeminiScorer(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if gErr != nil {
			utils.Logger.Fatal("Failed to create Gemini scorer:", gErr)
		}
		scorer = gs
	default:
		scorer = services.NewAnthropicScorer(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}
	if !scorer.Configured() {
		utils.Logger.Warnf("%s API key is empty, property analysis will answer with a configuration error", scorer.Provider())
	}

	identityService := services.NewIdentityService(investorRepo, cfg.Portal.AdminDomains)
	dataService := services.NewInvestorDataService(identityService, unitRepo, milestoneRepo)
	portfolioService := services.NewPortfolioService(dataService, time.Now)
	propertyService := services.NewPropertyService(propRepo, unitRepo)
	analysisService := services.NewAnalysisService(propRepo, unitRepo, analysisRepo, scorer, time.Now)
	chatService := services.NewChatService(cfg.GrokAPIKey, cfg.GrokBaseURL, cfg.GrokModel, cfg.Portal.Chat)
	adminService := services.NewAdminService(investorRepo, unitRepo, milestoneRepo, time.Now)
	sweepService := services.NewMilestoneSweepService(milestoneRepo, time.Now)

	healthController := controllers.NewHealthController(application)
	sessionController := controllers.NewSessionController(identityService)
	investorController := controllers.NewInvestorController(dataService, portfolioService)
	propertyController := controllers.NewPropertyController(propertyService)
	analysisController := controllers.NewAnalysisController(analysisService)
	chatController := controllers.NewChatController(chatService)
	adminController := controllers.NewAdminController(adminService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.SessionIssuer))

	secured.HandleFunc(routes.Session, sessionController.SessionHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Dashboard, investorController.DashboardHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Investor, investorController.InvestorHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Units, investorController.UnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Milestones, investorController.MilestonesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Properties, propertyController.ListPropertiesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Property, propertyController.GetPropertyHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Chat, chatController.ChatHandler).Methods(http.MethodPost)

	admin := secured.NewRoute().Subrouter()
	admin.Use(middleware.AdminMiddleware(cfg.Portal.AdminDomains))

	admin.HandleFunc(routes.AdminInvestors, adminController.ListInvestorsHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminInvestor, adminController.GetInvestorHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminInvestorStatus, adminController.UpdateInvestorStatusHandler).Methods(http.MethodPatch)
	admin.HandleFunc(routes.AdminInvestorMilestonesInit, adminController.InitMilestonesHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminUnitAssign, adminController.AssignUnitHandler).Methods(http.MethodPut)
	admin.HandleFunc(routes.AdminMilestoneStatus, adminController.SetMilestoneStatusHandler).Methods(http.MethodPatch)
	admin.HandleFunc(routes.AdminPropertyAnalyze, analysisController.AnalyzeHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminPropertyAnalysisLatest, analysisController.LatestHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminPropertyAnalysisHistory, analysisController.HistoryHandler).Methods(http.MethodGet)

	if cfg.WebDistDir != "" {
		webController := controllers.NewWebController(cfg.WebDistDir)
		rules := middleware.RouteRules{
			ProtectedPrefixes: cfg.Portal.ProtectedPrefixes,
			AdminPrefixes:     cfg.Portal.AdminPrefixes,
			AdminDomains:      cfg.Portal.AdminDomains,
		}
		pages := router.NewRoute().Subrouter()
		pages.Use(middleware.PageGuard(cfg.JWTSecret, cfg.SessionIssuer, rules))
		pages.PathPrefix("/").HandlerFunc(webController.SPAHandler).Methods(http.MethodGet, http.MethodHead)
		utils.Logger.Infof("Serving web UI from %s", cfg.WebDistDir)
	}

	c := cron.New(cron.WithLocation(time.UTC))
	_, sweepErr := c.AddFunc(cfg.MilestoneSweepCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, e := sweepService.SweepOverdue(ctx); e != nil {
			utils.Logger.WithError(e).Error("Scheduled milestone sweep failed")
		}
	})
	if sweepErr != nil {
		utils.Logger.WithError(sweepErr).Fatal("Failed to schedule milestone sweep cron")
	}
	c.Start()
	defer c.Stop()

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, constants.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("portal failed to start:", err)
	}
}
