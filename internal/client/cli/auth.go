package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and authenticates against the
// backend. On success the token pair lands in the local store and the
// session-lost flag resets.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, userName, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.sessionLost.Store(false)
	log.Printf("Login successful")
	return nil
}

// Logout drops the refresh token server-side and clears local credentials.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.unreadCount.Store(0)
	fmt.Println("Logged out")
	return nil
}

// Me prints the current profile.
func (a *App) Me(ctx context.Context) error {
	p, err := a.authService.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s\n", p.UserName, p.Email, p.Role)
	if p.AvatarURL != "" {
		fmt.Println("avatar:", p.AvatarURL)
	}
	return nil
}
