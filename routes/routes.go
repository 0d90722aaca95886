package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"dms.in/freightdesk/handlers"
	"dms.in/freightdesk/handlers/masters"
	"dms.in/freightdesk/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", handlers.Login).Methods("POST")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.GetCurrentUser).Methods("GET")
	api.HandleFunc("/logout", handlers.Logout).Methods("POST")
	api.HandleFunc("/change-password", handlers.ChangePassword).Methods("POST")

	registerBookingRoutes(api)
	registerCompletedRoutes(api)
	registerMasterRoutes(api)
	registerCustomerRoutes(api)
	registerChargeRoutes(api)
	registerRequestRoutes(api)
	registerMailRoutes(api)

	// =====================================================
	// Admin Routes (user management)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)
	registerAdminRoutes(admin)

	return r
}

func registerBookingRoutes(api *mux.Router) {
	api.Handle("/bookings", middleware.RequirePermission("bookings:read")(
		http.HandlerFunc(handlers.GetAllBookings))).Methods("GET")
	api.Handle("/bookings", middleware.RequirePermission("bookings:create")(
		http.HandlerFunc(handlers.CreateBooking))).Methods("POST")

	// Export before {id} so the path does not match as an id.
	api.Handle("/bookings/export", middleware.RequirePermission("bookings:export")(
		http.HandlerFunc(handlers.ExportBookingsToExcel))).Methods("GET")

	api.Handle("/bookings/{id}", middleware.RequirePermission("bookings:read")(
		http.HandlerFunc(handlers.GetBooking))).Methods("GET")
	api.Handle("/bookings/{id}", middleware.RequirePermission("bookings:update")(
		http.HandlerFunc(handlers.UpdateBooking))).Methods("PUT")
	api.Handle("/bookings/{id}", middleware.RequirePermission("bookings:delete")(
		http.HandlerFunc(handlers.DeleteBooking))).Methods("DELETE")
	api.Handle("/bookings/{id}/flags", middleware.RequirePermission("bookings:flags")(
		http.HandlerFunc(handlers.ChangeBookingFlag))).Methods("POST")
}

func registerCompletedRoutes(api *mux.Router) {
	api.Handle("/completed", middleware.RequirePermission("completed:read")(
		http.HandlerFunc(handlers.GetAllCompletedFiles))).Methods("GET")
	api.Handle("/completed/{id}", middleware.RequirePermission("completed:read")(
		http.HandlerFunc(handlers.GetCompletedFile))).Methods("GET")
	api.Handle("/completed/{id}/invoice", middleware.RequirePermission("completed:invoice")(
		http.HandlerFunc(handlers.UpdateInvoiceNo))).Methods("PUT")
}

func registerMasterRoutes(api *mux.Router) {
	api.Handle("/masters/{category}", middleware.RequirePermission("masters:read")(
		http.HandlerFunc(masters.GetCategory))).Methods("GET")
	api.Handle("/masters/{category}", middleware.RequirePermission("masters:read")(
		http.HandlerFunc(masters.AppendRecord))).Methods("POST")
	api.Handle("/masters/{category}/{id}", middleware.RequirePermission("masters:manage")(
		http.HandlerFunc(masters.UpdateRecord))).Methods("PUT")
	api.Handle("/masters/{category}/{id}", middleware.RequirePermission("masters:manage")(
		http.HandlerFunc(masters.DeleteRecord))).Methods("DELETE")
}

func registerCustomerRoutes(api *mux.Router) {
	api.Handle("/customers", middleware.RequirePermission("customers:read")(
		http.HandlerFunc(handlers.GetAllCustomers))).Methods("GET")
	api.Handle("/customers", middleware.RequirePermission("customers:manage")(
		http.HandlerFunc(handlers.CreateCustomer))).Methods("POST")
	api.Handle("/customers/{id}", middleware.RequirePermission("customers:read")(
		http.HandlerFunc(handlers.GetCustomer))).Methods("GET")
	api.Handle("/customers/{id}", middleware.RequirePermission("customers:manage")(
		http.HandlerFunc(handlers.UpdateCustomer))).Methods("PUT")
	api.Handle("/customers/{id}", middleware.RequirePermission("customers:manage")(
		http.HandlerFunc(handlers.DeleteCustomer))).Methods("DELETE")
}

func registerChargeRoutes(api *mux.Router) {
	api.Handle("/localcharges", middleware.RequirePermission("localcharges:read")(
		http.HandlerFunc(handlers.GetLocalCharges))).Methods("GET")
	api.Handle("/localcharges", middleware.RequirePermission("localcharges:manage")(
		http.HandlerFunc(handlers.SaveLocalCharges))).Methods("PUT")
}

func registerRequestRoutes(api *mux.Router) {
	api.Handle("/requests", middleware.RequirePermission("requests:read")(
		http.HandlerFunc(handlers.GetAllBookingRequests))).Methods("GET")
	api.Handle("/requests", middleware.RequirePermission("requests:read")(
		http.HandlerFunc(handlers.CreateBookingRequest))).Methods("POST")
	api.Handle("/requests/{id}/confirm", middleware.RequirePermission("requests:manage")(
		http.HandlerFunc(handlers.ConfirmBookingRequest))).Methods("POST")
	api.Handle("/requests/{id}", middleware.RequirePermission("requests:manage")(
		http.HandlerFunc(handlers.DeleteBookingRequest))).Methods("DELETE")
}

func registerMailRoutes(api *mux.Router) {
	api.Handle("/mail/send", middleware.RequirePermission("mail:send")(
		http.HandlerFunc(handlers.SendMail))).Methods("POST")
}

func registerAdminRoutes(admin *mux.Router) {
	admin.HandleFunc("/users", handlers.GetAllUsers).Methods("GET")
	admin.HandleFunc("/users", handlers.Register).Methods("POST")
	admin.HandleFunc("/users/{id}", handlers.GetUserByID).Methods("GET")
	admin.HandleFunc("/users/{id}", handlers.UpdateUser).Methods("PUT")
	admin.HandleFunc("/users/{id}", handlers.DeleteUser).Methods("DELETE")
}
