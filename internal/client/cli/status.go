package cli

import (
	"context"
	"time"

	"github.com/iudanet/moviekeeper/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	ok, err := c.authService.IsAuthenticated(ctx)
	if err != nil || !ok {
		c.io.Println("Not authenticated. Use 'moviekeeper login' to sign in.")
		return nil
	}

	authData, err := c.session(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Username:  %s\n", authData.Username)
	c.io.Printf("Expires:   %s\n", time.Unix(authData.ExpiresAt, 0).Format(time.RFC3339))

	if c.monitor.Current() {
		c.io.Println("Server:    online")
	} else {
		c.io.Println("Server:    offline")
	}

	// записи, созданные в офлайне и еще не сверенные с сервером
	pending, err := c.movieStore.ListByOwner(ctx, authData.UserID, func(m *models.Movie) bool {
		return m.Version == models.VersionUnsynced
	})
	if err == nil && len(pending) > 0 {
		c.io.Printf("Pending:   %d record(s) awaiting sync\n", len(pending))
		c.io.Println()
		c.io.Println("Use 'moviekeeper sync' to reconcile them.")
	}

	return nil
}
