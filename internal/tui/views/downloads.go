package views

import (
	"fmt"

	"github.com/DonovanMods/mo2-inspect/internal/core"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// Downloads lists the files in the downloads directory
type Downloads struct {
	keys      *KeyMap
	downloads []core.DownloadReport
	selected  int
	width     int
	height    int
}

// NewDownloads creates a downloads view
func NewDownloads(keys *KeyMap, downloads []core.DownloadReport) Downloads {
	return Downloads{
		keys:      keys,
		downloads: downloads,
		width:     80,
		height:    24,
	}
}

// Selected returns the currently selected index
func (m Downloads) Selected() int {
	return m.selected
}

// SelectedDownload returns the download under the cursor
func (m Downloads) SelectedDownload() *core.DownloadReport {
	if m.selected >= len(m.downloads) {
		return nil
	}
	return &m.downloads[m.selected]
}

// Init implements tea.Model
func (m Downloads) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Downloads) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Downloads) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.downloads) == 0 {
		return m, nil
	}

	switch {
	case m.keys.IsUp(msg):
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.downloads) - 1
		}
	case m.keys.IsDown(msg):
		m.selected++
		if m.selected >= len(m.downloads) {
			m.selected = 0
		}
	case m.keys.IsHome(msg):
		m.selected = 0
	case m.keys.IsEnd(msg):
		m.selected = len(m.downloads) - 1
	}
	return m, nil
}

// View implements tea.Model
func (m Downloads) View() string {
	output := titleStyle.Render("Downloads") + "\n"

	if len(m.downloads) == 0 {
		output += itemStyle.Render("The downloads directory is empty.") + "\n"
		return output
	}

	var total int64
	for _, d := range m.downloads {
		total += d.Size
	}
	output += infoStyle.Render(fmt.Sprintf("%d files, %s", len(m.downloads), humanize.Bytes(uint64(total)))) + "\n\n"

	start, end := window(len(m.downloads), m.selected, max(m.height-14, 5))
	for i := start; i < end; i++ {
		d := m.downloads[i]

		cursor := "  "
		style := itemStyle
		if i == m.selected {
			cursor = "▸ "
			style = selectedStyle
		}
		output += style.Render(fmt.Sprintf("%s%s  %s", cursor, d.FileName, humanize.Bytes(uint64(d.Size)))) + "\n"

		if i == m.selected {
			output += detailStyle.Render("Downloaded "+humanize.Time(d.DownloadedAt)) + "\n"
			if d.HasMeta {
				output += detailStyle.Render(fmt.Sprintf("NexusMods: %s (mod %s, file %s)", d.NexusFileName, d.NexusModID, d.NexusFileID)) + "\n"
			} else {
				output += detailStyle.Render(warnStyle.Render("No .meta file")) + "\n"
			}
		}
	}

	output += helpStyle.Render(m.keys.NavigationHelp())
	return output
}
