package views

import (
	"fmt"
	"strings"

	"github.com/DonovanMods/mo2-inspect/internal/core"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// LoadOrder lists the resolved mods of the selected profile
type LoadOrder struct {
	keys        *KeyMap
	profile     string
	mods        []core.ModReport
	visible     []int // Indexes into mods after filtering
	selected    int   // Index into visible
	expanded    bool
	enabledOnly bool
	filter      textinput.Model
	filtering   bool
	width       int
	height      int
}

// NewLoadOrder creates a load order view
func NewLoadOrder(keys *KeyMap, profile string, mods []core.ModReport) LoadOrder {
	ti := textinput.New()
	ti.Placeholder = "Filter by name or category..."
	ti.CharLimit = 100
	ti.Width = 40

	m := LoadOrder{
		keys:    keys,
		profile: profile,
		mods:    mods,
		filter:  ti,
		width:   80,
		height:  24,
	}
	m.applyFilter()
	return m
}

// Selected returns the cursor position among the visible mods
func (m LoadOrder) Selected() int {
	return m.selected
}

// VisibleCount returns the number of mods passing the filter
func (m LoadOrder) VisibleCount() int {
	return len(m.visible)
}

// SelectedMod returns the mod under the cursor
func (m LoadOrder) SelectedMod() *core.ModReport {
	if m.selected >= len(m.visible) {
		return nil
	}
	return &m.mods[m.visible[m.selected]]
}

// Capturing reports whether key presses go to the filter input
func (m LoadOrder) Capturing() bool {
	return m.filtering
}

// Init implements tea.Model
func (m LoadOrder) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m LoadOrder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m LoadOrder) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsCancel(msg):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m LoadOrder) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsSearch(msg):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd

	case m.keys.IsCancel(msg):
		m.filter.SetValue("")
		m.applyFilter()

	case m.keys.IsEnabledOnly(msg):
		m.enabledOnly = !m.enabledOnly
		m.applyFilter()

	case m.keys.IsConfirm(msg):
		m.expanded = !m.expanded

	case len(m.visible) == 0:
		// Nothing to move through

	case m.keys.IsUp(msg):
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.visible) - 1
		}

	case m.keys.IsDown(msg):
		m.selected++
		if m.selected >= len(m.visible) {
			m.selected = 0
		}

	case m.keys.IsHome(msg):
		m.selected = 0

	case m.keys.IsEnd(msg):
		m.selected = len(m.visible) - 1
	}

	return m, nil
}

// applyFilter recomputes the visible mods, keeping the cursor on the same mod
// when it is still visible
func (m *LoadOrder) applyFilter() {
	current := -1
	if m.selected < len(m.visible) {
		current = m.visible[m.selected]
	}

	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = make([]int, 0, len(m.mods))
	m.selected = 0
	for i, mod := range m.mods {
		if m.enabledOnly && !mod.Enabled {
			continue
		}
		if query != "" && !matches(mod, query) {
			continue
		}
		if i == current {
			m.selected = len(m.visible)
		}
		m.visible = append(m.visible, i)
	}
}

func matches(mod core.ModReport, query string) bool {
	if strings.Contains(strings.ToLower(mod.Name), query) {
		return true
	}
	for _, c := range mod.Categories {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	return false
}

// View implements tea.Model
func (m LoadOrder) View() string {
	output := titleStyle.Render("Load Order") + "\n"
	output += infoStyle.Render(fmt.Sprintf("Profile: %s", m.profile)) + "\n\n"

	if m.filtering || m.filter.Value() != "" {
		output += itemStyle.Render(m.filter.View()) + "\n\n"
	}

	if len(m.mods) == 0 {
		output += itemStyle.Render("The profile's mod list is empty.") + "\n"
		return output
	}

	header := fmt.Sprintf("%d of %d mods", len(m.visible), len(m.mods))
	if m.enabledOnly {
		header += " (enabled only)"
	}
	output += infoStyle.Render(header) + "\n\n"

	if len(m.visible) == 0 {
		output += itemStyle.Render("No mods match the filter.") + "\n"
	}

	rows := m.height - 12
	if m.expanded {
		rows -= 8
	}
	start, end := window(len(m.visible), m.selected, max(rows, 5))
	for i := start; i < end; i++ {
		mod := m.mods[m.visible[i]]

		cursor := "  "
		style := itemStyle
		if i == m.selected {
			cursor = "▸ "
			style = selectedStyle
		} else if !mod.Enabled || !mod.Installed {
			style = disabledStyle
		}

		status := "[✓]"
		if !mod.Enabled {
			status = "[ ]"
		}

		line := fmt.Sprintf("%s%s %3d %s", cursor, status, m.visible[i]+1, mod.Name)
		switch {
		case !mod.Installed:
			line += " (missing)"
		case mod.Error != "":
			line += " (unreadable)"
		}
		output += style.Render(line) + "\n"

		if i == m.selected && m.expanded {
			output += m.renderDetails(mod)
		}
	}

	output += helpStyle.Render(m.keys.NavigationHelp() + "  enter: details  e: enabled only  /: filter")
	return output
}

func (m LoadOrder) renderDetails(mod core.ModReport) string {
	if !mod.Installed {
		return detailStyle.Render("Not in the mods directory") + "\n"
	}
	if mod.Error != "" {
		return detailStyle.Render(warnStyle.Render(mod.Error)) + "\n"
	}

	var lines []string
	if len(mod.Categories) > 0 {
		lines = append(lines, "Categories: "+strings.Join(mod.Categories, ", "))
	}
	if len(mod.Plugins) > 0 {
		lines = append(lines, "Plugins: "+strings.Join(mod.Plugins, ", "))
	}
	if mod.URL != "" {
		lines = append(lines, "URL: "+mod.URL)
	}
	for _, src := range mod.Sources {
		line := fmt.Sprintf("Source: %s", src.Type)
		if src.NexusModID.IsSet() {
			line += fmt.Sprintf(" mod %s file %s", src.NexusModID, src.NexusFileID)
		}
		if src.FileName != "" {
			line += "  " + src.FileName
		}
		if src.Download != nil {
			line += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(src.Download.Size)))
		}
		lines = append(lines, line)
	}

	var out string
	for _, l := range lines {
		out += detailStyle.Render(l) + "\n"
	}
	return out + "\n"
}
