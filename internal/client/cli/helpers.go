package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/moviekeeper/internal/models"
)

// listTmpl рендерит список записей с нумерацией
var listTmpl = template.Must(template.New("list").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(movieListTemplate))

var conflictTmpl = template.Must(template.New("conflict").Parse(conflictTemplate))

// printMovies выводит список записей через шаблон
func (c *Cli) printMovies(movies []*models.Movie) error {
	if len(movies) == 0 {
		c.io.Println("No movies found.")
		return nil
	}

	c.io.Printf("Found %d movie(s):\n", len(movies))
	return listTmpl.Execute(c.io, movies)
}

// parseDate разбирает дату в формате YYYY-MM-DD
func parseDate(input string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", input)
	}
	return t, nil
}

// parsePrice разбирает цену
func parsePrice(input string) (float64, error) {
	price, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", input)
	}
	return price, nil
}

// parseYesNo разбирает ответ да/нет
func parseYesNo(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "да":
		return true
	default:
		return false
	}
}
