// Package tui is an interactive, read-only browser for a Mod Organizer instance.
package tui

import (
	"fmt"

	"github.com/DonovanMods/mo2-inspect/internal/core"
	"github.com/DonovanMods/mo2-inspect/internal/domain"
	"github.com/DonovanMods/mo2-inspect/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents different screens in the TUI
type ViewType int

const (
	ViewLoadOrder ViewType = iota
	ViewDownloads
	ViewInstance
)

var viewNames = []string{"[1]Load Order", "[2]Downloads", "[3]Instance"}

// NavigateMsg is sent to change views
type NavigateMsg struct {
	View ViewType
}

// Inventory is everything the browser shows, resolved up front
type Inventory struct {
	Instance  domain.Instance
	Mods      []core.ModReport
	Downloads []core.DownloadReport
}

// LoadInventory resolves the load order and downloads of an instance.
// Downloads whose file vanished while listing are skipped.
func LoadInventory(org *core.Organizer) (Inventory, error) {
	mods, err := org.Report()
	if err != nil {
		return Inventory{}, err
	}

	names, err := org.DownloadNames()
	if err != nil {
		return Inventory{}, err
	}
	downloads := make([]core.DownloadReport, 0, len(names))
	for _, name := range names {
		if dl, ok := org.Download(name); ok {
			downloads = append(downloads, dl.Report())
		}
	}

	return Inventory{Instance: org.Instance(), Mods: mods, Downloads: downloads}, nil
}

// App is the main TUI application model
type App struct {
	keys        *views.KeyMap
	currentView ViewType
	showHelp    bool
	width       int
	height      int

	loadOrder views.LoadOrder
	downloads views.Downloads
	instance  views.Instance
}

// NewApp creates a new TUI application. keybindings is "vim" or "standard".
func NewApp(inv Inventory, keybindings string) App {
	keys := views.NewKeyMap(keybindings)
	return App{
		keys:        keys,
		currentView: ViewLoadOrder,
		width:       80,
		height:      24,
		loadOrder:   views.NewLoadOrder(keys, inv.Instance.SelectedProfile, inv.Mods),
		downloads:   views.NewDownloads(keys, inv.Downloads),
		instance:    views.NewInstance(keys, inv.Instance),
	}
}

// CurrentView returns the current view type
func (a App) CurrentView() ViewType {
	return a.currentView
}

// LoadOrder returns the load order view
func (a App) LoadOrder() views.LoadOrder {
	return a.loadOrder
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every view keeps its own size
		var m tea.Model
		m, _ = a.loadOrder.Update(msg)
		a.loadOrder = m.(views.LoadOrder)
		m, _ = a.downloads.Update(msg)
		a.downloads = m.(views.Downloads)
		return a, nil

	case NavigateMsg:
		a.currentView = msg.View
		return a, nil
	}

	return a.updateCurrentView(msg)
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.currentView == ViewLoadOrder && a.loadOrder.Capturing() {
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a.updateCurrentView(msg)
	}

	if a.showHelp {
		// Any key closes help, quit keys still quit
		a.showHelp = false
		if a.keys.IsQuit(msg) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case a.keys.IsQuit(msg):
		return a, tea.Quit

	case a.keys.IsHelp(msg):
		a.showHelp = true
		return a, nil

	case a.keys.IsLeft(msg):
		a.currentView = (a.currentView + ViewType(len(viewNames)) - 1) % ViewType(len(viewNames))
		return a, nil

	case a.keys.IsRight(msg):
		a.currentView = (a.currentView + 1) % ViewType(len(viewNames))
		return a, nil
	}

	switch msg.String() {
	case "1":
		a.currentView = ViewLoadOrder
		return a, nil
	case "2":
		a.currentView = ViewDownloads
		return a, nil
	case "3":
		a.currentView = ViewInstance
		return a, nil
	}

	return a.updateCurrentView(msg)
}

func (a App) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		m   tea.Model
		cmd tea.Cmd
	)

	switch a.currentView {
	case ViewLoadOrder:
		m, cmd = a.loadOrder.Update(msg)
		a.loadOrder = m.(views.LoadOrder)
	case ViewDownloads:
		m, cmd = a.downloads.Update(msg)
		a.downloads = m.(views.Downloads)
	case ViewInstance:
		m, cmd = a.instance.Update(msg)
		a.instance = m.(views.Instance)
	}

	return a, cmd
}

// View implements tea.Model
func (a App) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	header := titleStyle.Render("mo2i - Mod Organizer inspector")

	tabBar := ""
	for i, tab := range viewNames {
		if ViewType(i) == a.currentView {
			tabBar += activeTabStyle.Render(tab) + "  "
		} else {
			tabBar += tabStyle.Render(tab) + "  "
		}
	}

	content := a.renderCurrentView()
	if a.showHelp {
		content = a.keys.FullHelp()
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	footer := footerStyle.Render("q: quit  ?: help")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, tabBar, content, footer)
}

func (a App) renderCurrentView() string {
	switch a.currentView {
	case ViewLoadOrder:
		return a.loadOrder.View()
	case ViewDownloads:
		return a.downloads.View()
	case ViewInstance:
		return a.instance.View()
	default:
		return "Unknown view"
	}
}

// Run resolves the instance and starts the TUI application
func Run(org *core.Organizer, keybindings string) error {
	inv, err := LoadInventory(org)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewApp(inv, keybindings), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
