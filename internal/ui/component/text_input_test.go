package component_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/openkeychain/keychain-tui/internal/ui/component"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	cases := []struct {
		name      string
		validator component.InputValidator
		value     string
		valid     bool
	}{
		{"empty", component.NonEmptyValidator{}, "  ", false},
		{"name", component.NonEmptyValidator{}, "Alice", true},
		{"email", component.EmailValidator{}, "alice@example.com", true},
		{"email display name", component.EmailValidator{}, "Alice <alice@example.com>", false},
		{"email missing", component.EmailValidator{}, "", false},
		{"email optional", component.EmailValidator{EmptyOk: true}, "", true},
		{"locale", component.LocaleValidator{}, "de", true},
		{"locale region", component.LocaleValidator{}, "en-GB", true},
		{"locale bad", component.LocaleValidator{}, "not a locale", false},
		{"level", component.LogLevelValidator{}, "debug", true},
		{"level bad", component.LogLevelValidator{}, "loud", false},
		{"number", component.PositiveIntValidator{}, "15", true},
		{"number zero", component.PositiveIntValidator{}, "0", false},
		{"bool", component.BoolValidator{}, "false", true},
		{"bool bad", component.BoolValidator{}, "nope", false},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.validator.Validate(testCase.value)
			if testCase.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestValidatingInputChecksInitialValue(t *testing.T) {
	input := component.NewValidatingTextInputModel("Name", "", "", component.NonEmptyValidator{})
	require.False(t, input.Valid())

	input.Focus()
	input, _ = input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Bob ")})
	require.True(t, input.Valid())
	require.Equal(t, "Bob", input.Value())
	require.Contains(t, input.View(), "Name")
}
