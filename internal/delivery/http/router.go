package http

import (
	"net/http"

	"pathlab/internal/delivery/http/handler"
	"pathlab/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	testHandler     *handler.TestHandler
	doctorHandler   *handler.DoctorHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	checkupHandler  *handler.CheckupHandler
	reportHandler   *handler.ReportHandler
	feedbackHandler *handler.FeedbackHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	testHandler *handler.TestHandler,
	doctorHandler *handler.DoctorHandler,
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	checkupHandler *handler.CheckupHandler,
	reportHandler *handler.ReportHandler,
	feedbackHandler *handler.FeedbackHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		testHandler:     testHandler,
		doctorHandler:   doctorHandler,
		catalogHandler:  catalogHandler,
		orderHandler:    orderHandler,
		checkupHandler:  checkupHandler,
		reportHandler:   reportHandler,
		feedbackHandler: feedbackHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog routes (public)
	api.HandleFunc("/tests", r.testHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/tests/{id}", r.testHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/schedule", r.doctorHandler.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/departments", r.catalogHandler.GetDepartments).Methods(http.MethodGet)
	api.HandleFunc("/qualifications", r.catalogHandler.GetQualifications).Methods(http.MethodGet)
	api.HandleFunc("/collections", r.catalogHandler.GetCollections).Methods(http.MethodGet)

	// Feedback routes (public)
	api.HandleFunc("/queries", r.feedbackHandler.CreateQuery).Methods(http.MethodPost)
	api.HandleFunc("/queries", r.feedbackHandler.GetQueries).Methods(http.MethodGet)
	api.HandleFunc("/queries/{id}", r.feedbackHandler.GetQueryByID).Methods(http.MethodGet)
	api.HandleFunc("/reviews", r.feedbackHandler.GetReviews).Methods(http.MethodGet)
	api.HandleFunc("/subscribes", r.feedbackHandler.Subscribe).Methods(http.MethodPost)

	// Customer routes (protected)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/orders", r.orderHandler.Place).Methods(http.MethodPost)
	protected.HandleFunc("/orders", r.orderHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}", r.orderHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}/pay", r.orderHandler.Pay).Methods(http.MethodPost)
	protected.HandleFunc("/checkups/book", r.checkupHandler.Book).Methods(http.MethodPost)
	protected.HandleFunc("/checkups", r.checkupHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/checkups/{id}", r.checkupHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/checkups/{id}/pay", r.checkupHandler.Pay).Methods(http.MethodPost)
	protected.HandleFunc("/reports", r.reportHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}", r.reportHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}/download", r.reportHandler.Download).Methods(http.MethodGet)
	protected.HandleFunc("/reviews", r.feedbackHandler.CreateReview).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Catalog management (admin)
	admin.HandleFunc("/tests", r.testHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/tests/{id}", r.testHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/tests/{id}", r.testHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/departments", r.catalogHandler.CreateDepartment).Methods(http.MethodPost)
	admin.HandleFunc("/departments/{id}", r.catalogHandler.UpdateDepartment).Methods(http.MethodPut)
	admin.HandleFunc("/departments/{id}", r.catalogHandler.DeleteDepartment).Methods(http.MethodDelete)
	admin.HandleFunc("/qualifications", r.catalogHandler.CreateQualification).Methods(http.MethodPost)
	admin.HandleFunc("/qualifications/{id}", r.catalogHandler.UpdateQualification).Methods(http.MethodPut)
	admin.HandleFunc("/qualifications/{id}", r.catalogHandler.DeleteQualification).Methods(http.MethodDelete)
	admin.HandleFunc("/collections", r.catalogHandler.CreateCollection).Methods(http.MethodPost)
	admin.HandleFunc("/collections/{id}", r.catalogHandler.UpdateCollection).Methods(http.MethodPut)
	admin.HandleFunc("/collections/{id}", r.catalogHandler.DeleteCollection).Methods(http.MethodDelete)

	// Result publication and query answering (admin)
	admin.HandleFunc("/reports", r.reportHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/queries/{id}/answer", r.feedbackHandler.AnswerQuery).Methods(http.MethodPut)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
