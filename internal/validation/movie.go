package validation

import "fmt"

// MaxTitleLen максимальная длина названия фильма
const MaxTitleLen = 256

// ValidateMovieTitle проверяет название записи каталога
func ValidateMovieTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	return nil
}

// ValidateMoviePrice проверяет цену записи каталога
func ValidateMoviePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}

	return nil
}
