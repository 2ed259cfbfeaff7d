package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/viralquiz/internal/ui/theme"
)

// Button is a labelled action. Disabled buttons render dimmed and ignore
// key presses.
type Button struct {
	Label    string
	Key      string // key that presses the button, in tea.KeyMsg.String form
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a button pressed by key.
func NewButton(label, key string, onPress func() tea.Cmd) Button {
	return Button{Label: label, Key: key, OnPress: onPress}
}

// Update runs OnPress when the button's key is pressed.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Disabled || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == b.Key {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Disabled {
		return theme.ButtonInactive.Render(b.Label)
	}
	return theme.ButtonActive.Render(b.Label)
}
