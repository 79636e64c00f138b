package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/DonovanMods/mo2-inspect/internal/domain"

	"go.uber.org/zap"
)

// ModReport is the resolved view of one load-order entry
type ModReport struct {
	Name       string         `json:"name"`
	Enabled    bool           `json:"enabled"`
	Installed  bool           `json:"installed"` // Mod directory exists
	Categories []string       `json:"categories"`
	Plugins    []string       `json:"plugins"`
	URL        string         `json:"url,omitempty"`
	Sources    []SourceReport `json:"sources"`
	Error      string         `json:"error,omitempty"` // Set when the mod's files could not be read
}

// SourceReport describes one source of a mod
type SourceReport struct {
	Type        domain.SourceType `json:"type"`
	NexusModID  domain.NexusID    `json:"nexus_mod_id"`
	NexusFileID domain.NexusID    `json:"nexus_file_id"`
	FileName    string            `json:"file_name,omitempty"`
	Download    *DownloadReport   `json:"download,omitempty"`
}

// DownloadReport describes a file in the downloads directory
type DownloadReport struct {
	FileName      string         `json:"file_name"`
	Path          string         `json:"path"`
	Size          int64          `json:"size"`
	DownloadedAt  time.Time      `json:"downloaded_at"`
	NexusFileName string         `json:"nexus_file_name,omitempty"`
	NexusModID    domain.NexusID `json:"nexus_mod_id"`
	NexusFileID   domain.NexusID `json:"nexus_file_id"`
	HasMeta       bool           `json:"has_meta"`
}

// Report resolves every entry of the load order, first applied first. A mod
// whose metadata cannot be read is still reported, with Error set.
func (o *Organizer) Report() ([]ModReport, error) {
	entries, err := o.LoadOrder()
	if err != nil {
		return nil, err
	}

	reports := make([]ModReport, 0, len(entries))
	for _, e := range entries {
		report := ModReport{
			Name:       e.Name,
			Enabled:    e.Enabled,
			Categories: []string{},
			Plugins:    []string{},
			Sources:    []SourceReport{},
		}
		if mod, ok := o.Mod(e.Name); ok {
			report.Installed = true
			if err := fillModReport(&report, mod); err != nil {
				o.logger.Warn("reading mod", zap.String("mod", e.Name), zap.Error(err))
				report.Error = err.Error()
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// ModReport resolves a single installed mod
func (o *Organizer) ModReport(name string) (ModReport, error) {
	mod, ok := o.Mod(name)
	if !ok {
		return ModReport{}, fmt.Errorf("%s: %w", name, domain.ErrModNotFound)
	}

	enabled, err := mod.Enabled()
	if err != nil && !errors.Is(err, domain.ErrProfileMissing) {
		return ModReport{}, err
	}

	report := ModReport{Name: name, Enabled: enabled, Installed: true}
	if err := fillModReport(&report, mod); err != nil {
		return ModReport{}, err
	}
	return report, nil
}

func fillModReport(report *ModReport, mod *Mod) error {
	categories, err := mod.Categories()
	if err != nil {
		return err
	}
	plugins, err := mod.Plugins()
	if err != nil {
		return err
	}
	url, _, err := mod.URL()
	if err != nil {
		return err
	}
	sources, err := mod.Sources()
	if err != nil {
		return err
	}

	report.Categories = categories
	report.Plugins = plugins
	report.URL = url
	report.Sources = make([]SourceReport, 0, len(sources))
	for _, s := range sources {
		sr := SourceReport{
			Type:        s.Type(),
			NexusModID:  s.NexusModID(),
			NexusFileID: s.NexusFileID(),
		}
		sr.FileName, _ = s.FileName()
		if dl, ok := s.Download(); ok {
			dr := dl.Report()
			sr.Download = &dr
		}
		report.Sources = append(report.Sources, sr)
	}
	return nil
}

// Report describes the download. Unreadable metadata leaves the NexusMods
// fields empty and HasMeta false.
func (d *Download) Report() DownloadReport {
	report := DownloadReport{FileName: d.fileName}
	report.Path, _ = d.FilePath()
	report.Size, _ = d.Size()
	report.DownloadedAt, _ = d.DownloadedAt()

	name, err := d.NexusFileName()
	if err != nil {
		if !errors.Is(err, domain.ErrMetadataMissing) {
			d.org.logger.Warn("reading download metadata", zap.String("file", d.fileName), zap.Error(err))
		}
		return report
	}
	report.HasMeta = true
	report.NexusFileName = name
	if report.NexusModID, err = d.NexusModID(); err != nil {
		d.org.logger.Warn("reading download mod id", zap.String("file", d.fileName), zap.Error(err))
	}
	if report.NexusFileID, err = d.NexusFileID(); err != nil {
		d.org.logger.Warn("reading download file id", zap.String("file", d.fileName), zap.Error(err))
	}
	return report
}
