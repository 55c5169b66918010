package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/sebasotodlp/schoolar/internal/service"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/handler"
	"github.com/sebasotodlp/schoolar/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	CodeService         *service.CodeService
	ResponseService     *service.ResponseService
	CustomSurveyService *service.CustomSurveyService
	InsightService      *service.InsightService
	AgentService        *service.AgentService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.AuthService)
	codeHandler := handler.NewCodeHandler(c.CodeService)
	sessionHandler := handler.NewSessionHandler(c.ResponseService)
	surveyHandler := handler.NewCustomSurveyHandler(c.CustomSurveyService, c.CodeService)
	indicatorHandler := handler.NewIndicatorHandler(c.ResponseService, c.CodeService)
	recommendationHandler := handler.NewRecommendationHandler(c.InsightService, c.ResponseService, c.CodeService)
	agentHandler := handler.NewAgentHandler(c.AgentService, c.ResponseService, c.CodeService)
	exportHandler := handler.NewExportHandler(c.ResponseService, c.CodeService, c.CustomSurveyService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/codes/school", codeHandler.ValidateSchool).Methods("POST", "OPTIONS")
	v1.HandleFunc("/codes/survey", codeHandler.ValidateSurvey).Methods("POST", "OPTIONS")

	// Respondent session routes (no account required)
	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/answers", sessionHandler.Answer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/navigate", sessionHandler.Navigate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/submit", sessionHandler.Submit).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Dashboard routes (require a valid account token)
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireUser)

	authed.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")
	authed.HandleFunc("/auth/password", authHandler.ChangePassword).Methods("POST", "OPTIONS")
	authed.HandleFunc("/users/secondary", userHandler.CreateSecondary).Methods("POST", "OPTIONS")
	authed.HandleFunc("/users/secondary", userHandler.ListSecondary).Methods("GET", "OPTIONS")
	authed.HandleFunc("/users/secondary/{userId}", userHandler.DeleteSecondary).Methods("DELETE", "OPTIONS")
	authed.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/responses", sessionHandler.ListAll).Methods("GET", "OPTIONS")

	// Survey management (admins plus secondary users with the feature)
	management := authed.NewRoute().Subrouter()
	management.Use(authMW.RequirePermission("surveyManagement"))
	management.HandleFunc("/surveys/custom", surveyHandler.Create).Methods("POST", "OPTIONS")
	management.HandleFunc("/surveys/custom/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	management.HandleFunc("/surveys/custom/{surveyId}", surveyHandler.Update).Methods("PUT", "OPTIONS")
	management.HandleFunc("/surveys/custom/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")

	// Aggregated results and spreadsheet downloads
	indicators := authed.NewRoute().Subrouter()
	indicators.Use(authMW.RequirePermission("indicators"))
	indicators.HandleFunc("/indicators", indicatorHandler.Get).Methods("GET", "OPTIONS")
	indicators.HandleFunc("/exports/responses", exportHandler.Responses).Methods("GET", "OPTIONS")

	// AI-assisted reports
	reports := authed.NewRoute().Subrouter()
	reports.Use(authMW.RequirePermission("recommendations"))
	reports.HandleFunc("/recommendations", recommendationHandler.Generate).Methods("POST", "OPTIONS")
	reports.HandleFunc("/exports/recommendations", exportHandler.Recommendations).Methods("POST", "OPTIONS")

	// Conversational consultant
	agent := authed.NewRoute().Subrouter()
	agent.Use(authMW.RequirePermission("aiAgent"))
	agent.HandleFunc("/agent/chat", agentHandler.Chat).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
