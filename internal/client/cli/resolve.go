package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/moviekeeper/internal/models"
)

func (c *Cli) runResolve(ctx context.Context) error {
	engine, resolver, _, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	if !c.monitor.Current() {
		return fmt.Errorf("server is unreachable, cannot resolve conflicts now")
	}

	// Сверка наполняет очередь конфликтов
	if err := engine.Reconcile(ctx); err != nil {
		return err
	}

	if resolver.Pending() == 0 {
		c.io.Println("No conflicts to resolve.")
		return nil
	}

	for {
		attempted, server, ok := resolver.Current()
		if !ok {
			break
		}

		if err := conflictTmpl.Execute(c.io, struct {
			Attempted *models.Movie
			Server    *models.Movie
		}{attempted, server}); err != nil {
			return err
		}

		c.io.Println()
		answer, err := c.io.ReadInput("Keep [y]ours or [s]erver version? ")
		if err != nil {
			return fmt.Errorf("failed to read choice: %w", err)
		}

		chosen := server
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			chosen = attempted
		}

		if err := resolver.Resolve(ctx, chosen); err != nil {
			return err
		}
		c.io.Printf("✓ Resolved %s\n", chosen.Title)
	}

	c.io.Println()
	c.io.Println("✓ All conflicts resolved.")
	return nil
}
