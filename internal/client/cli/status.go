package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const healthTimeout = 3 * time.Second

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "backend availability changed", "mode", string(mode))
	}
}

// checkHealth probes the backend once and records the resulting mode.
func (a *App) checkHealth(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	status, err := a.health.Health(ctx)
	if err != nil || status != "ok" {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartHealthWatcher polls the backend's health endpoint every interval until
// ctx is done. The result only feeds the prompt; commands are never blocked.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {
	a.checkHealth(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkHealth(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	var parts []string
	if u := a.session.Current().User; u != nil {
		parts = append(parts, u.Username, string(u.Role))
	}
	if m := a.currentMode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Status prints who is signed in and what the stored credential says about
// its own lifetime.
func (a *App) Status(ctx context.Context) error {
	u := a.session.Current().User
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "Role: %s\n", u.Role)
	if u.IsBuyer() {
		fmt.Fprintf(a.out, "Your deposit: %d\n", u.Deposit)
	}

	claims, ok, err := a.session.CredentialInfo(ctx)
	switch {
	case err != nil:
		a.log.Debug(ctx, "credential is not a readable jwt", "error", err)
	case !ok:
	case claims.Expired(time.Now()):
		fmt.Fprintln(a.out, "Session expired, please login again")
	case claims.HasExpiry():
		fmt.Fprintf(a.out, "Session valid until %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
