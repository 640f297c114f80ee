package cli

import (
	"context"

	"github.com/iudanet/moviekeeper/internal/client/catalog"
)

// runWatch подписывается на push-канал и печатает живые изменения
// каталога, пока процесс не прервут
func (c *Cli) runWatch(ctx context.Context) error {
	engine, _, catalogStore, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	c.io.Println("Watching catalog updates (Ctrl+C to stop)...")
	c.io.Println()

	prev := 0
	unsubscribe := catalogStore.Subscribe(func(s catalog.State) {
		if len(s.Movies) == prev {
			return
		}
		prev = len(s.Movies)
		c.io.Printf("catalog: %d movie(s)\n", prev)
	})
	defer unsubscribe()

	engine.Start(ctx)

	if err := engine.Reload(ctx, nil, ""); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
