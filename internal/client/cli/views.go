package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/services"
)

// ViewRequest carries the navigation parameters a list view consumes on
// arrival: an optional focus target, an optional edit target, and an
// optional employee scope filter. Focus and edit ids are consumed once per
// request.
type ViewRequest struct {
	FocusID    int64
	EditID     int64
	EmployeeID int64
	Query      string
}

func (a *App) showAssets(ctx context.Context, req ViewRequest) error {
	// Assets are the one list the backend searches server-side.
	list, err := a.assetService.List(ctx, services.ListFilter{Query: req.Query, EmployeeID: req.EmployeeID})
	if err != nil {
		return err
	}

	rows := make([]Row, 0, len(list))
	for _, item := range list {
		rows = append(rows, Row{ID: item.ID, Cells: []string{
			strconv.FormatInt(item.ID, 10), item.Name, item.Type, item.SerialNumber, item.Status,
		}})
	}
	a.renderList(a.assetsView, rows, req)
	if req.EditID != 0 {
		return a.editAsset(ctx, req.EditID)
	}
	return nil
}

func (a *App) showAssignments(ctx context.Context, req ViewRequest) error {
	// The backend ignores free text on assignments; the filter is applied
	// client-side by the view.
	list, err := a.assignmentService.List(ctx, services.ListFilter{EmployeeID: req.EmployeeID})
	if err != nil {
		return err
	}

	rows := make([]Row, 0, len(list))
	for _, item := range list {
		rows = append(rows, Row{ID: item.ID, Cells: []string{
			strconv.FormatInt(item.ID, 10), item.AssetName, item.EmployeeName, item.DateAssigned, item.Status,
		}})
	}
	a.renderList(a.assignmentsView, rows, req)
	return nil
}

func (a *App) showTickets(ctx context.Context, req ViewRequest) error {
	// Same as assignments: ticket search is client-side only.
	list, err := a.ticketService.List(ctx, services.ListFilter{EmployeeID: req.EmployeeID})
	if err != nil {
		return err
	}

	rows := make([]Row, 0, len(list))
	for _, item := range list {
		tech := item.TechnicianName
		if tech == "" {
			tech = "-"
		}
		rows = append(rows, Row{ID: item.ID, Cells: []string{
			strconv.FormatInt(item.ID, 10), item.AssetName, item.Issue, item.Status, tech,
		}})
	}
	a.renderList(a.ticketsView, rows, req)
	return nil
}

// renderList loads data into the view, applies the request's text filter and
// one-shot focus, and prints the resulting page. The view stays active so
// page/find commands keep operating on it. The filter goes through SetQuery
// so the focus coordinator sees the same filtered sequence the view renders.
func (a *App) renderList(v *ListView, rows []Row, req ViewRequest) {
	v.SetRows(rows)
	v.SetQuery(req.Query)
	if req.FocusID != 0 {
		v.Focus(req.FocusID)
	}
	a.activeView = v
	v.Render(os.Stdout)
}

func (a *App) showInventory(ctx context.Context) error {
	list, err := a.inventoryService.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Inventory")
	for _, item := range list {
		low := ""
		if item.LowStock() {
			low = "  LOW STOCK"
		}
		fmt.Printf("  %d | %s | qty %d (threshold %d)%s\n", item.ID, item.ItemType, item.Quantity, item.Threshold, low)
	}
	return nil
}

func (a *App) showUsers(ctx context.Context) error {
	list, err := a.userService.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Users")
	for _, u := range list {
		fmt.Printf("  %d | %s | %s | %s\n", u.ID, u.UserName, u.Email, u.Role)
	}
	return nil
}

func (a *App) showDashboard(ctx context.Context) error {
	stats, err := a.dashboardService.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Assets: %d total, %d assigned | Inventory items: %d | Open tickets: %d\n",
		stats.Totals.AssetsTotal, stats.Totals.AssignedAssets,
		stats.Totals.InventoryItemsTotal, stats.Totals.OpenTickets)
	for _, sc := range stats.AssetByStatus {
		fmt.Printf("  %-10s %d\n", sc.Status, sc.Count)
	}
	return nil
}

func (a *App) showRecent(ctx context.Context) error {
	recent, err := a.dashboardService.Recent(ctx, 5)
	if err != nil {
		return err
	}
	fmt.Println("Recent tickets")
	for _, t := range recent.Tickets {
		fmt.Printf("  #%d %s [%s]\n", t.ID, t.Issue, t.Status)
	}
	fmt.Println("Recent assignments")
	for _, g := range recent.Assignments {
		fmt.Printf("  #%d %s -> %s [%s]\n", g.ID, g.AssetName, g.EmployeeName, g.Status)
	}
	return nil
}

func (a *App) showNotifications(ctx context.Context) error {
	list, err := a.notificationService.List(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Notifications (open <id> to jump to the record)")
	for _, n := range list {
		mark := "*"
		if n.IsRead() {
			mark = " "
		}
		fmt.Printf(" %s %d | %s | %s\n", mark, n.ID, n.Title, n.Message)
	}
	return nil
}

// openNotification marks the notification read and deep-links into the view
// owning the referenced record, arming a focus request for its row.
func (a *App) openNotification(ctx context.Context, id int64) error {
	list, err := a.notificationService.List(ctx)
	if err != nil {
		return err
	}
	var target *models.Notification
	for _, n := range list {
		if n.ID == id {
			target = n
			break
		}
	}
	if target == nil {
		fmt.Println("No such notification:", id)
		return nil
	}

	if !target.IsRead() {
		if err := a.notificationService.SetRead(ctx, id, true); err != nil {
			fmt.Println("could not mark as read:", err)
		}
	}

	if target.EntityID == nil {
		fmt.Println(target.Title + ": " + target.Message)
		return nil
	}

	req := ViewRequest{FocusID: *target.EntityID}
	switch target.EntityType {
	case "asset":
		return a.showAssets(ctx, req)
	case "assignment":
		return a.showAssignments(ctx, req)
	case "ticket":
		return a.showTickets(ctx, req)
	default:
		fmt.Println(target.Title + ": " + target.Message)
		return nil
	}
}
