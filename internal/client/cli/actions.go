package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) requestReturn(ctx context.Context, id int64) error {
	note, err := getSimpleText(a.reader, "Return note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.assignmentService.RequestReturn(ctx, id, note); err != nil {
		return err
	}
	fmt.Println("Return requested")
	return nil
}

func (a *App) confirmReturn(ctx context.Context, id int64) error {
	if err := a.assignmentService.ConfirmReturn(ctx, id); err != nil {
		return err
	}
	fmt.Println("Return confirmed, asset released")
	return nil
}

func (a *App) markDone(ctx context.Context, id int64) error {
	note, err := getSimpleText(a.reader, "Resolution note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.ticketService.MarkDone(ctx, id, note); err != nil {
		return err
	}
	fmt.Println("Ticket marked as resolved")
	return nil
}

func (a *App) approveClose(ctx context.Context, id int64) error {
	if err := a.ticketService.ApproveClose(ctx, id); err != nil {
		return err
	}
	fmt.Println("Ticket closed")
	return nil
}

func (a *App) markAllRead(ctx context.Context) error {
	if err := a.notificationService.MarkAllRead(ctx); err != nil {
		return err
	}
	a.unreadCount.Store(0)
	fmt.Println("All notifications marked as read")
	return nil
}

// toggleTheme flips the persisted theme between light and dark.
func (a *App) toggleTheme(ctx context.Context) error {
	theme, err := a.store.Theme(ctx)
	if err != nil {
		return err
	}
	next := "dark"
	if theme == "dark" {
		next = "light"
	}
	if err := a.store.SetTheme(ctx, next); err != nil {
		return err
	}
	fmt.Println("Theme:", next)
	return nil
}

// toggleSidebar flips the persisted sidebar flag.
func (a *App) toggleSidebar(ctx context.Context) error {
	collapsed, err := a.store.SidebarCollapsed(ctx)
	if err != nil {
		return err
	}
	if err := a.store.SetSidebarCollapsed(ctx, !collapsed); err != nil {
		return err
	}
	if collapsed {
		fmt.Println("Sidebar expanded")
	} else {
		fmt.Println("Sidebar collapsed")
	}
	return nil
}
