package http

import (
	"net/http"

	"urbancare-clinic-api/internal/delivery/http/handler"
	"urbancare-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	bookingHandler     *handler.BookingHandler
	appointmentHandler *handler.AppointmentHandler
	blockedDateHandler *handler.BlockedDateHandler
	blogHandler        *handler.BlogHandler
	videoHandler       *handler.VideoHandler
	auditLogHandler    *handler.AuditLogHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	appointmentHandler *handler.AppointmentHandler,
	blockedDateHandler *handler.BlockedDateHandler,
	blogHandler *handler.BlogHandler,
	videoHandler *handler.VideoHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		bookingHandler:     bookingHandler,
		appointmentHandler: appointmentHandler,
		blockedDateHandler: blockedDateHandler,
		blogHandler:        blogHandler,
		videoHandler:       videoHandler,
		auditLogHandler:    auditLogHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public booking flow
	booking := api.PathPrefix("/booking").Subrouter()
	booking.HandleFunc("/verification/request", r.bookingHandler.RequestCode).Methods(http.MethodPost)
	booking.HandleFunc("/verification/verify", r.bookingHandler.VerifyCode).Methods(http.MethodPost)
	booking.HandleFunc("/availability", r.bookingHandler.CheckAvailability).Methods(http.MethodGet)
	booking.HandleFunc("/time-slots", r.bookingHandler.GetTimeSlots).Methods(http.MethodGet)
	booking.HandleFunc("/appointments", r.bookingHandler.CreateAppointment).Methods(http.MethodPost)

	// Public site content
	api.HandleFunc("/blocked-dates", r.blockedDateHandler.GetAllBlockedDates).Methods(http.MethodGet)
	api.HandleFunc("/blogs", r.blogHandler.GetAllPosts).Methods(http.MethodGet)
	api.HandleFunc("/blogs/{id}", r.blogHandler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/videos", r.videoHandler.GetAllVideos).Methods(http.MethodGet)

	// Admin routes (no auth layer; the admin area is an unprotected surface)
	admin := api.PathPrefix("/admin").Subrouter()

	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)

	admin.HandleFunc("/blocked-dates", r.blockedDateHandler.GetAllBlockedDates).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", r.blockedDateHandler.CreateBlockedDate).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{id}", r.blockedDateHandler.DeleteBlockedDate).Methods(http.MethodDelete)

	admin.HandleFunc("/blogs", r.blogHandler.CreatePost).Methods(http.MethodPost)

	admin.HandleFunc("/videos", r.videoHandler.GetAllVideos).Methods(http.MethodGet)
	admin.HandleFunc("/videos", r.videoHandler.CreateVideo).Methods(http.MethodPost)
	admin.HandleFunc("/videos/{id}", r.videoHandler.DeleteVideo).Methods(http.MethodDelete)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
