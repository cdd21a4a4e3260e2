package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	s := ""
	if a.sessionLost.Load() {
		return "(session expired, please login)"
	}
	if a.isLoggedIn() {
		s = "logged in"
		if n := a.unreadCount.Load(); n > 0 {
			s = fmt.Sprintf("%s, %d unread", s, n)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the asset dashboard CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("adash %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if !a.dispatch(ctx, line) {
			return
		}
	}
}

// dispatch runs one REPL command. It returns false when the user exits.
// Command errors are printed, never propagated; the loop stays alive.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	cmd := parts[0]
	args := parts[1:]

	var err error

	switch cmd {
	case "help":
		a.printHelp()

	case "login":
		err = a.Login(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "me":
		err = a.Me(ctx)

	case "dashboard":
		err = a.showDashboard(ctx)
	case "recent":
		err = a.showRecent(ctx)

	case "assets":
		err = a.showAssets(ctx, listRequest(args))
	case "assignments":
		err = a.showAssignments(ctx, listRequest(args))
	case "tickets":
		err = a.showTickets(ctx, listRequest(args))
	case "inventory":
		err = a.showInventory(ctx)
	case "users":
		err = a.showUsers(ctx)

	case "page":
		if len(args) == 0 || a.activeView == nil {
			printlnFn("Usage: page <n> (after opening a list)")
			break
		}
		var n int
		if n, err = strconv.Atoi(args[0]); err == nil {
			a.activeView.SetPage(n - 1)
			a.activeView.Render(os.Stdout)
		}
	case "find":
		if a.activeView == nil {
			printlnFn("Open a list first")
			break
		}
		a.activeView.SetQuery(strings.Join(args, " "))
		a.activeView.Render(os.Stdout)

	case "notifications":
		err = a.showNotifications(ctx)
	case "open":
		err = a.withID(ctx, args, "open <id>", a.openNotification)
	case "readall":
		err = a.markAllRead(ctx)

	case "asset":
		err = a.withID(ctx, args, "asset <id>", a.showAsset)
	case "new-asset":
		err = a.newAsset(ctx)
	case "edit-asset":
		err = a.withID(ctx, args, "edit-asset <id>", a.editAsset)
	case "del-asset":
		err = a.withID(ctx, args, "del-asset <id>", a.deleteAsset)

	case "new-item":
		err = a.newItem(ctx)
	case "edit-item":
		err = a.withID(ctx, args, "edit-item <id>", a.editItem)
	case "del-item":
		err = a.withID(ctx, args, "del-item <id>", a.deleteItem)

	case "assign":
		err = a.newAssignment(ctx)
	case "new-ticket":
		err = a.newTicket(ctx)

	case "profile":
		err = a.updateProfile(ctx)
	case "reset-request":
		err = a.resetRequest(ctx)
	case "reset-confirm":
		if len(args) < 2 {
			printlnFn("Usage: reset-confirm <user-id> <token>")
			break
		}
		var uid int64
		if uid, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			printlnFn("Usage: reset-confirm <user-id> <token>")
			err = nil
			break
		}
		err = a.resetConfirm(ctx, uid, args[1])

	case "request-return":
		err = a.withID(ctx, args, "request-return <id>", a.requestReturn)
	case "confirm-return":
		err = a.withID(ctx, args, "confirm-return <id>", a.confirmReturn)
	case "mark-done":
		err = a.withID(ctx, args, "mark-done <id>", a.markDone)
	case "approve-close":
		err = a.withID(ctx, args, "approve-close <id>", a.approveClose)

	case "theme":
		err = a.toggleTheme(ctx)
	case "sidebar":
		err = a.toggleSidebar(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return false

	default:
		printlnFn("Unknown command:", cmd)
	}

	if err != nil {
		log.Printf("error: %v", err)
	}
	return true
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		printlnFn("Views:    dashboard, recent, assets [q], assignments [q], tickets [q], inventory, users")
		printlnFn("Lists:    page <n>, find <text>  (args: e:<id> scope, f:<id> focus, ed:<id> edit)")
		printlnFn("Feed:     notifications, open <id>, readall")
		printlnFn("Assets:   asset <id>, new-asset, edit-asset <id>, del-asset <id>")
		printlnFn("Stock:    new-item, edit-item <id>, del-item <id>")
		printlnFn("Actions:  assign, new-ticket, request-return <id>, confirm-return <id>, mark-done <id>, approve-close <id>")
		printlnFn("Other:    me, profile, theme, sidebar, logout, exit")
	} else {
		printlnFn("Available commands: login, reset-request, reset-confirm <user-id> <token>, exit")
	}
}

// withID parses the single integer argument the id-taking commands share.
func (a *App) withID(ctx context.Context, args []string, usage string, fn func(context.Context, int64) error) error {
	if len(args) == 0 {
		printlnFn("Usage: " + usage)
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: " + usage)
		return nil
	}
	return fn(ctx, id)
}

// listRequest interprets trailing command arguments: "e:<id>" sets the
// employee scope filter, "f:<id>" requests a row focus, "ed:<id>" opens the
// edit dialog on arrival (assets only), anything else is the free-text query.
func listRequest(args []string) ViewRequest {
	var req ViewRequest
	var query []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "ed:"):
			req.EditID, _ = strconv.ParseInt(arg[3:], 10, 64)
		case strings.HasPrefix(arg, "e:"):
			req.EmployeeID, _ = strconv.ParseInt(arg[2:], 10, 64)
		case strings.HasPrefix(arg, "f:"):
			req.FocusID, _ = strconv.ParseInt(arg[2:], 10, 64)
		default:
			query = append(query, arg)
		}
	}
	req.Query = strings.Join(query, " ")
	return req
}
