package cli

import (
	"context"
	"strings"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	var is3D *bool
	var prefix string

	for _, arg := range args {
		switch arg {
		case "--3d":
			v := true
			is3D = &v
		case "--2d":
			v := false
			is3D = &v
		default:
			prefix = strings.TrimSpace(arg)
		}
	}

	engine, _, catalogStore, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	c.io.Println("=== Movies ===")
	c.io.Println()

	if err := engine.Reload(ctx, is3D, prefix); err != nil {
		return err
	}

	if !c.monitor.Current() {
		c.io.Println("(offline: showing local mirror)")
		c.io.Println()
	}

	return c.printMovies(catalogStore.State().Movies)
}
