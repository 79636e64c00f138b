package views

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines keybindings for the TUI
type KeyMap struct {
	mode string
}

// NewKeyMap creates a new keymap for the given mode ("vim" or "standard")
func NewKeyMap(mode string) *KeyMap {
	if mode == "" {
		mode = "vim"
	}
	return &KeyMap{mode: mode}
}

// Mode returns the current keybinding mode
func (k *KeyMap) Mode() string {
	return k.mode
}

// IsUp returns true if the key is an "up" navigation key
func (k *KeyMap) IsUp(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyUp {
		return true
	}
	return k.mode == "vim" && msg.String() == "k"
}

// IsDown returns true if the key is a "down" navigation key
func (k *KeyMap) IsDown(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyDown {
		return true
	}
	return k.mode == "vim" && msg.String() == "j"
}

// IsLeft returns true if the key switches to the previous tab
func (k *KeyMap) IsLeft(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyLeft || msg.Type == tea.KeyShiftTab {
		return true
	}
	return k.mode == "vim" && msg.String() == "h"
}

// IsRight returns true if the key switches to the next tab
func (k *KeyMap) IsRight(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyRight || msg.Type == tea.KeyTab {
		return true
	}
	return k.mode == "vim" && msg.String() == "l"
}

// IsConfirm returns true if the key is a confirm/select key
func (k *KeyMap) IsConfirm(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter || msg.String() == " "
}

// IsCancel returns true if the key is a cancel/back key
func (k *KeyMap) IsCancel(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEsc
}

// IsQuit returns true if the key is a quit key
func (k *KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return msg.String() == "q" || msg.Type == tea.KeyCtrlC
}

// IsSearch returns true if the key should focus the filter
func (k *KeyMap) IsSearch(msg tea.KeyMsg) bool {
	return msg.String() == "/"
}

// IsHelp returns true if the key should show help
func (k *KeyMap) IsHelp(msg tea.KeyMsg) bool {
	return msg.String() == "?"
}

// IsEnabledOnly returns true if the key toggles hiding disabled mods
func (k *KeyMap) IsEnabledOnly(msg tea.KeyMsg) bool {
	return msg.String() == "e"
}

// IsHome returns true if the key should go to first item
func (k *KeyMap) IsHome(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyHome {
		return true
	}
	return k.mode == "vim" && msg.String() == "g"
}

// IsEnd returns true if the key should go to last item
func (k *KeyMap) IsEnd(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEnd {
		return true
	}
	return k.mode == "vim" && msg.String() == "G"
}

// NavigationHelp returns help text for navigation keys
func (k *KeyMap) NavigationHelp() string {
	if k.mode == "vim" {
		return "j/k: navigate  h/l: switch tab"
	}
	return "↑/↓: navigate  ←/→: switch tab"
}

// FullHelp returns complete help text
func (k *KeyMap) FullHelp() string {
	if k.mode == "vim" {
		return `Navigation:
  j/k     Move down/up
  h/l     Previous/next tab
  g/G     Go to first/last item

Actions:
  enter   Show/hide details
  e       Only enabled mods
  /       Filter
  esc     Clear filter
  ?       Help
  q       Quit`
	}

	return `Navigation:
  ↑/↓     Move up/down
  ←/→     Previous/next tab
  Home    Go to first item
  End     Go to last item

Actions:
  Enter   Show/hide details
  e       Only enabled mods
  /       Filter
  Esc     Clear filter
  ?       Help
  q       Quit`
}
