package entity

import (
	"strings"
	"testing"

	domainerrors "forkful/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInstructions(t *testing.T) {
	longEnough := strings.Repeat("stir well and fold. ", 5)

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "empty", text: "", wantErr: true},
		{name: "too short", text: "mix and serve", wantErr: true},
		{name: "exactly one under the limit", text: strings.Repeat("a", MinInstructionsLength-1), wantErr: true},
		{name: "exactly at the limit", text: strings.Repeat("a", MinInstructionsLength), wantErr: false},
		{name: "long enough", text: longEnough, wantErr: false},
		{name: "whitespace does not count", text: strings.Repeat("a", MinInstructionsLength-1) + strings.Repeat(" ", 20), wantErr: true},
		{name: "leading and trailing whitespace trimmed", text: "   " + strings.Repeat("a", MinInstructionsLength) + "   ", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInstructions(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrInstructionsTooShort)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecipe_Validate(t *testing.T) {
	recipe := &Recipe{
		Title:             "Slow Bread",
		Instructions:      strings.Repeat("knead, wait, fold. ", 5),
		MinutesToComplete: 480,
	}

	require.NoError(t, recipe.Validate())

	recipe.Instructions = "too short"
	assert.ErrorIs(t, recipe.Validate(), domainerrors.ErrInstructionsTooShort)
}
