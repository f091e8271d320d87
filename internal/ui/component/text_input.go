package component

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/openkeychain/keychain-tui/internal/ui/styles"
	"golang.org/x/text/language"
)

var (
	errEmpty         = errors.New("cannot be empty")
	errEmailInvalid  = errors.New("invalid email address")
	errLocaleInvalid = errors.New("invalid locale")
	errNumberInvalid = errors.New("must be a positive number")
	errBoolInvalid   = errors.New("must be true or false")
)

type InputValidator interface {
	Validate(value string) error
}

func NewTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = 127
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func NewValidatingTextInputModel(label string, value string, placeholder string, validators ...InputValidator) *ValidatingTextInputModel {
	input := NewTextInputModel(value, placeholder)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
		// Validate the initial value too, textinput only does so on edits.
		input.Err = input.Validate(value)
	}

	return &ValidatingTextInputModel{Input: input, Label: label}
}

type ValidatingTextInputModel struct {
	Label string
	Input textinput.Model
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *ValidatingTextInputModel) View() string {
	var errRow string
	if m.Input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render("Validation Error: " + m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpStyle.Render(m.Label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.Input.View(), errRow))
}

// Value returns the trimmed input value.
func (m *ValidatingTextInputModel) Value() string {
	return strings.TrimSpace(m.Input.Value())
}

func (m *ValidatingTextInputModel) Valid() bool {
	return m.Input.Err == nil
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

type NonEmptyValidator struct{}

func (v NonEmptyValidator) Validate(value string) error {
	if strings.TrimSpace(value) == "" {
		return errEmpty
	}

	return nil
}

type EmailValidator struct {
	EmptyOk bool
}

func (v EmailValidator) Validate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		if v.EmptyOk {
			return nil
		}

		return errEmailInvalid
	}

	address, err := mail.ParseAddress(value)
	if err != nil {
		return errors.Join(err, errEmailInvalid)
	}

	if address.Address != value {
		return errEmailInvalid
	}

	return nil
}

type LocaleValidator struct{}

func (v LocaleValidator) Validate(value string) error {
	if _, err := language.Parse(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%w: %s", errLocaleInvalid, value)
	}

	return nil
}

type LogLevelValidator struct{}

func (v LogLevelValidator) Validate(value string) error {
	_, err := config.ParseLevel(value)

	return err
}

type PositiveIntValidator struct{}

func (v PositiveIntValidator) Validate(value string) error {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return errors.Join(err, errNumberInvalid)
	}

	if number <= 0 {
		return errNumberInvalid
	}

	return nil
}

type BoolValidator struct{}

func (v BoolValidator) Validate(value string) error {
	if _, err := strconv.ParseBool(strings.TrimSpace(value)); err != nil {
		return errors.Join(err, errBoolInvalid)
	}

	return nil
}
