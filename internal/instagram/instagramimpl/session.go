package instagramimpl

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Davincible/goinsta/v3"
	pkgerrors "github.com/orgball2608/insta-virality-exporter/pkg/errors"
)

// Login attempts to connect to Instagram, first trying to load from an existing session,
// or logging in with credentials if the session isn't available.
func (ig *IgImpl) Login() error {
	if err := ig.reloadSession(); err == nil {
		if err := ig.Client.Account.Sync(); err == nil {
			ig.Logger.Info("Successfully logged in using existing session")
			return nil
		}
		ig.Logger.Warn("Session loaded but appears to be invalid, attempting fresh login")
	}

	ig.Logger.Info("Attempting to log in with credentials")
	ig.Client = goinsta.New(ig.Config.Instagram.User, ig.Config.Instagram.Pass)

	var loginErr error
	for attempt := 1; attempt <= 3; attempt++ {
		loginErr = ig.Client.Login()
		if loginErr == nil {
			break
		}

		ig.Logger.Error("Login attempt failed",
			"attempt", attempt,
			"error", loginErr)

		if attempt < 3 {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	if loginErr != nil {
		return fmt.Errorf("failed to log in after multiple attempts: %w: %w", pkgerrors.ErrUnauthorized, loginErr)
	}

	ig.Logger.Info("Successfully logged in with credentials")

	if err := ig.saveSession(); err != nil {
		ig.Logger.Warn("Failed to save Instagram session", "error", err)
	}

	return nil
}

// reloadSession attempts to load an existing Instagram session from disk.
func (ig *IgImpl) reloadSession() error {
	if _, err := os.Stat(ig.Config.Instagram.SessionPath); os.IsNotExist(err) {
		return fmt.Errorf("session file not found: %w", err)
	}

	client, err := goinsta.Import(ig.Config.Instagram.SessionPath)
	if err != nil {
		return fmt.Errorf("failed to import session: %w", err)
	}

	ig.Client = client
	return nil
}

// saveSession exports the current Instagram session so later runs skip the
// credential login.
func (ig *IgImpl) saveSession() error {
	if ig.Client == nil {
		return fmt.Errorf("no active Instagram session to save")
	}

	dir := filepath.Dir(ig.Config.Instagram.SessionPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	if err := ig.Client.Export(ig.Config.Instagram.SessionPath); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	ig.Logger.Info("Instagram session saved successfully",
		"path", ig.Config.Instagram.SessionPath)
	return nil
}
