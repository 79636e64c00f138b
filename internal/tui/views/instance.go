package views

import (
	"fmt"

	"github.com/DonovanMods/mo2-inspect/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Instance shows the resolved paths of the instance
type Instance struct {
	instance domain.Instance
	keys     *KeyMap
}

// NewInstance creates an instance view
func NewInstance(keys *KeyMap, instance domain.Instance) Instance {
	return Instance{instance: instance, keys: keys}
}

// Init implements tea.Model
func (m Instance) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Instance) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View implements tea.Model
func (m Instance) View() string {
	labelStyle := lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("241"))

	kind := "shared"
	if m.instance.Portable {
		kind = "portable"
	}

	rows := []struct{ label, value string }{
		{"Type", kind},
		{"Installation", m.instance.InstallDir},
		{"Instance", m.instance.InstanceDir},
		{"Profile", m.instance.SelectedProfile},
		{"Game", m.instance.GamePath},
		{"Mods", m.instance.ModsDir},
		{"Downloads", m.instance.DownloadsDir},
		{"Profiles", m.instance.ProfilesDir},
		{"Overwrite", m.instance.OverwriteDir},
		{"Keybindings", m.keys.Mode()},
	}

	output := titleStyle.Render("Instance") + "\n"
	for _, r := range rows {
		output += itemStyle.Render(labelStyle.Render(r.label)+r.value) + "\n"
	}
	return output + helpStyle.Render(fmt.Sprintf("%s  q: quit", m.keys.NavigationHelp()))
}
