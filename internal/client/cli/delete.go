package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing movie id. Usage: moviekeeper delete <id>")
	}
	id := args[0]

	engine, _, catalogStore, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Delete(ctx, id); err != nil {
		return err
	}

	if catalogStore.State().SavedOffline {
		c.io.Println("✓ Deleted locally. The change will sync when the server is reachable.")
	} else {
		c.io.Println("✓ Movie deleted.")
	}
	return nil
}
