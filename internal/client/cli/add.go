package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/moviekeeper/internal/models"
	"github.com/iudanet/moviekeeper/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context) error {
	engine, _, catalogStore, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer engine.Close()

	c.io.Println("=== Add Movie ===")
	c.io.Println()

	movie, err := c.promptMovie(&models.Movie{})
	if err != nil {
		return err
	}

	if err := engine.Save(ctx, movie); err != nil {
		return err
	}

	state := catalogStore.State()
	c.io.Println()
	if state.SavedOffline {
		c.io.Println("✓ Saved locally. The record will sync when the server is reachable.")
	} else {
		c.io.Println("✓ Movie saved.")
	}
	if len(state.Movies) > 0 {
		c.io.Printf("ID: %s\n", state.Movies[0].ID)
	}
	return nil
}

// promptMovie запрашивает поля записи; пустой ввод оставляет прежнее
// значение (для новой записи — нулевое)
func (c *Cli) promptMovie(base *models.Movie) (*models.Movie, error) {
	movie := base.Clone()

	title, err := c.io.ReadInput(fmt.Sprintf("Title [%s]: ", movie.Title))
	if err != nil {
		return nil, fmt.Errorf("failed to read title: %w", err)
	}
	if title != "" {
		movie.Title = title
	}
	if err := validation.ValidateMovieTitle(movie.Title); err != nil {
		return nil, err
	}

	director, err := c.io.ReadInput(fmt.Sprintf("Director [%s]: ", movie.Director))
	if err != nil {
		return nil, fmt.Errorf("failed to read director: %w", err)
	}
	if director != "" {
		movie.Director = director
	}

	dateInput, err := c.io.ReadInput(fmt.Sprintf("Release date (YYYY-MM-DD) [%s]: ",
		movie.ReleaseDate.Format("2006-01-02")))
	if err != nil {
		return nil, fmt.Errorf("failed to read release date: %w", err)
	}
	if dateInput != "" {
		date, err := parseDate(dateInput)
		if err != nil {
			return nil, err
		}
		movie.ReleaseDate = date
	}

	priceInput, err := c.io.ReadInput(fmt.Sprintf("Price [%.2f]: ", movie.Price))
	if err != nil {
		return nil, fmt.Errorf("failed to read price: %w", err)
	}
	if priceInput != "" {
		price, err := parsePrice(priceInput)
		if err != nil {
			return nil, err
		}
		movie.Price = price
	}
	if err := validation.ValidateMoviePrice(movie.Price); err != nil {
		return nil, err
	}

	is3DInput, err := c.io.ReadInput("3D? (y/n): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read 3D flag: %w", err)
	}
	if is3DInput != "" {
		movie.Is3D = parseYesNo(is3DInput)
	}

	return movie, nil
}
