// Package cli is the interactive terminal dashboard. It renders the asset,
// assignment and ticket lists through a shared paginated widget, polls the
// notification feed, and follows notification deep links by focusing the
// owning row.
package cli

import (
	"bufio"
	"context"
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/api"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/config"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/localstate"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/services"
)

type App struct {
	config *config.Config
	store  *localstate.Store

	authService         *services.AuthService
	assetService        *services.AssetService
	inventoryService    *services.InventoryService
	assignmentService   *services.AssignmentService
	ticketService       *services.TicketService
	userService         *services.UserService
	notificationService *services.NotificationService
	dashboardService    *services.DashboardService

	assetsView      *ListView
	assignmentsView *ListView
	ticketsView     *ListView
	activeView      *ListView

	reader      *bufio.Reader
	unreadCount atomic.Int32
	sessionLost atomic.Bool
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	store, err := localstate.Open(ctx, c.StateDSN)
	if err != nil {
		log.Printf("error initializing state database: %s", err.Error())
		return nil, err
	}

	a := &App{config: c, store: store, reader: bufio.NewReader(os.Stdin)}

	hc := &http.Client{Transport: &api.AuthTransport{
		Store:           store,
		RefreshURL:      c.ServerEndpointAddr + "/api/auth/refresh/",
		OnLoginRedirect: func() { a.sessionLost.Store(true) },
	}}
	apiClient := api.NewClient(c.ServerEndpointAddr, hc)

	a.authService = services.NewAuthService(apiClient, store)
	a.assetService = services.NewAssetService(apiClient)
	a.inventoryService = services.NewInventoryService(apiClient)
	a.assignmentService = services.NewAssignmentService(apiClient)
	a.ticketService = services.NewTicketService(apiClient)
	a.userService = services.NewUserService(apiClient)
	a.notificationService = services.NewNotificationService(apiClient)
	a.dashboardService = services.NewDashboardService(apiClient)

	a.assetsView = NewListView("Assets",
		[]string{"id", "name", "type", "serial", "status"}, c.PageSize)
	a.assignmentsView = NewListView("Assignments",
		[]string{"id", "asset", "employee", "assigned", "status"}, c.PageSize)
	a.ticketsView = NewListView("Repair tickets",
		[]string{"id", "asset", "issue", "status", "technician"}, c.PageSize)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	go a.StartNotificationWatcher(ctx, a.config.NotificationPollInterval)

	a.Root(ctx)
}

func (a *App) Close() {
	a.assetsView.Close()
	a.assignmentsView.Close()
	a.ticketsView.Close()
	if err := a.store.Close(); err != nil {
		log.Printf("error closing state database: %s", err.Error())
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.LoggedIn(context.Background())
}

// StartNotificationWatcher polls the unread notification count so the prompt
// can show it without blocking the REPL.
func (a *App) StartNotificationWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			pollCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			n, err := a.notificationService.UnreadCount(pollCtx)
			cancel()
			if err == nil {
				a.unreadCount.Store(int32(n))
			}

		case <-ctx.Done():
			return
		}
	}
}
