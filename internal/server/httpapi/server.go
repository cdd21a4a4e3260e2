// Package httpapi exposes the asset system's REST interface: JWT-protected
// CRUD endpoints per resource plus the auth, profile, notification, and
// dashboard routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/krishnapriya5647/smart-asset-system/internal/logging"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/services"
)

type HTTPServer struct {
	address       string
	logger        logging.Logger
	jwtSecret     []byte
	users         *services.UserService
	assets        *services.AssetService
	inventory     *services.InventoryService
	assignments   *services.AssignmentService
	tickets       *services.TicketService
	notifications *services.NotificationService
	dashboard     *services.DashboardService
}

func NewHTTPServer(address string, l logging.Logger, secretKey string,
	us *services.UserService, as *services.AssetService, is *services.InventoryService,
	gs *services.AssignmentService, ts *services.TicketService,
	ns *services.NotificationService, ds *services.DashboardService) *HTTPServer {
	return &HTTPServer{
		address:       address,
		logger:        l.With("module", "http_server"),
		jwtSecret:     []byte(secretKey),
		users:         us,
		assets:        as,
		inventory:     is,
		assignments:   gs,
		tickets:       ts,
		notifications: ns,
		dashboard:     ds,
	}
}

// Router builds the full route table under /api.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public auth endpoints.
	api.HandleFunc("/auth/login/", s.handleLogin).Methods("POST")
	api.HandleFunc("/auth/refresh/", s.handleRefresh).Methods("POST")
	api.HandleFunc("/auth/logout/", s.handleLogout).Methods("POST")
	api.HandleFunc("/auth/password-reset/", s.handlePasswordResetRequest).Methods("POST")
	api.HandleFunc("/auth/password-reset-confirm/{uid}/{token}/", s.handlePasswordResetConfirm).Methods("POST")

	// Everything below requires a valid access token.
	api.Handle("/me/", s.requireAuth(s.handleMe)).Methods("GET")
	api.Handle("/me/", s.requireAuth(s.handleMeUpdate)).Methods("PATCH")
	api.Handle("/me/avatar/", s.requireAuth(s.handleMeAvatar)).Methods("POST")

	api.Handle("/dashboard/", s.requireAuth(s.handleDashboard)).Methods("GET")
	api.Handle("/recent-activity/", s.requireAuth(s.handleRecentActivity)).Methods("GET")

	api.Handle("/assets/", s.requireAuth(s.handleAssetList)).Methods("GET")
	api.Handle("/assets/", s.requireAuth(s.requireAdmin(s.handleAssetCreate))).Methods("POST")
	api.Handle("/assets/{id}/", s.requireAuth(s.handleAssetGet)).Methods("GET")
	api.Handle("/assets/{id}/", s.requireAuth(s.requireAdmin(s.handleAssetUpdate))).Methods("PUT", "PATCH")
	api.Handle("/assets/{id}/", s.requireAuth(s.requireAdmin(s.handleAssetDelete))).Methods("DELETE")

	api.Handle("/inventory/", s.requireAuth(s.handleInventoryList)).Methods("GET")
	api.Handle("/inventory/", s.requireAuth(s.requireAdmin(s.handleInventoryCreate))).Methods("POST")
	api.Handle("/inventory/{id}/", s.requireAuth(s.handleInventoryGet)).Methods("GET")
	api.Handle("/inventory/{id}/", s.requireAuth(s.requireAdmin(s.handleInventoryUpdate))).Methods("PUT", "PATCH")
	api.Handle("/inventory/{id}/", s.requireAuth(s.requireAdmin(s.handleInventoryDelete))).Methods("DELETE")

	api.Handle("/assignments/", s.requireAuth(s.handleAssignmentList)).Methods("GET")
	api.Handle("/assignments/", s.requireAuth(s.requireAdmin(s.handleAssignmentCreate))).Methods("POST")
	api.Handle("/assignments/{id}/", s.requireAuth(s.handleAssignmentGet)).Methods("GET")
	api.Handle("/assignments/{id}/", s.requireAuth(s.requireAdmin(s.handleAssignmentUpdate))).Methods("PUT", "PATCH")
	api.Handle("/assignments/{id}/", s.requireAuth(s.requireAdmin(s.handleAssignmentDelete))).Methods("DELETE")
	api.Handle("/assignments/{id}/request-return/", s.requireAuth(s.handleAssignmentRequestReturn)).Methods("POST")
	api.Handle("/assignments/{id}/confirm-return/", s.requireAuth(s.handleAssignmentConfirmReturn)).Methods("POST")

	api.Handle("/tickets/", s.requireAuth(s.handleTicketList)).Methods("GET")
	api.Handle("/tickets/", s.requireAuth(s.handleTicketCreate)).Methods("POST")
	api.Handle("/tickets/{id}/", s.requireAuth(s.handleTicketGet)).Methods("GET")
	api.Handle("/tickets/{id}/", s.requireAuth(s.handleTicketUpdate)).Methods("PUT", "PATCH")
	api.Handle("/tickets/{id}/", s.requireAuth(s.handleTicketDelete)).Methods("DELETE")
	api.Handle("/tickets/{id}/mark-done/", s.requireAuth(s.handleTicketMarkDone)).Methods("POST")
	api.Handle("/tickets/{id}/approve-close/", s.requireAuth(s.handleTicketApproveClose)).Methods("POST")

	api.Handle("/users/", s.requireAuth(s.requireAdmin(s.handleUserList))).Methods("GET")
	api.Handle("/users/{id}/", s.requireAuth(s.requireAdmin(s.handleUserGet))).Methods("GET")

	api.Handle("/notifications/", s.requireAuth(s.handleNotificationList)).Methods("GET")
	api.Handle("/notifications/{id}/", s.requireAuth(s.handleNotificationPatch)).Methods("PATCH")
	api.Handle("/notifications/mark-all-read/", s.requireAuth(s.handleNotificationMarkAllRead)).Methods("POST")

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
