package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	engine, resolver, _, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	if !c.monitor.Current() {
		return fmt.Errorf("server is unreachable, cannot sync now")
	}

	c.io.Println("Reconciling offline edits...")

	if err := engine.Reconcile(ctx); err != nil {
		return err
	}

	if pending := resolver.Pending(); pending > 0 {
		c.io.Println()
		c.io.Printf("! %d record(s) conflicted with server versions.\n", pending)
		c.io.Println("Use 'moviekeeper resolve' to pick which versions to keep.")
		return nil
	}

	c.io.Println("✓ Sync complete.")
	return nil
}
