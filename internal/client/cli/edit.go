package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing movie id. Usage: moviekeeper edit <id>")
	}
	id := args[0]

	engine, resolver, catalogStore, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	existing, err := c.movieStore.GetMovie(ctx, id)
	if err != nil {
		return fmt.Errorf("movie %s not found in local mirror: %w", id, err)
	}

	c.io.Println("=== Edit Movie ===")
	c.io.Println()

	movie, err := c.promptMovie(existing)
	if err != nil {
		return err
	}

	if err := engine.Save(ctx, movie); err != nil {
		return err
	}

	// сервер мог отклонить правку из-за несовпадения версии
	if resolver.Pending() > 0 {
		c.io.Println()
		c.io.Println("! The record changed on the server since your last sync.")
		c.io.Println("Use 'moviekeeper resolve' to pick which version to keep.")
		return nil
	}

	state := catalogStore.State()
	c.io.Println()
	if state.SavedOffline {
		c.io.Println("✓ Saved locally. The record will sync when the server is reachable.")
	} else {
		c.io.Println("✓ Movie updated.")
	}
	return nil
}
