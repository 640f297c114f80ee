package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMovieTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid title",
			title:   "Dune: Part Two",
			wantErr: false,
		},
		{
			name:    "valid title - unicode",
			title:   "Сталкер",
			wantErr: false,
		},
		{
			name:    "invalid - empty title",
			title:   "",
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name:    "invalid - too long",
			title:   strings.Repeat("a", MaxTitleLen+1),
			wantErr: true,
			errMsg:  "must not exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMovieTitle(tt.title)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateMoviePrice(t *testing.T) {
	assert.NoError(t, ValidateMoviePrice(0))
	assert.NoError(t, ValidateMoviePrice(12.5))
	assert.Error(t, ValidateMoviePrice(-1))
}
