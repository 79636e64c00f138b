package core

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/DonovanMods/mo2-inspect/internal/domain"
)

// MetaSuffix is appended to a downloaded file name to get its metadata file
const MetaSuffix = ".meta"

// Download is a file in the downloads directory. Its NexusMods metadata is
// read from the adjacent .meta file on first use.
type Download struct {
	org      *Organizer
	fileName string

	meta memo[*iniFile]
}

func newDownload(org *Organizer, fileName string) *Download {
	return &Download{org: org, fileName: fileName}
}

// FileName returns the name of the file relative to the downloads directory
func (d *Download) FileName() string {
	return d.fileName
}

// FilePath returns the full path of the downloaded file. The second value is
// false when the file does not exist.
func (d *Download) FilePath() (string, bool) {
	fullPath := path.Join(d.org.DownloadsDir(), d.fileName)
	if _, err := os.Stat(fullPath); err != nil {
		return "", false
	}
	return fullPath, true
}

// DownloadedAt returns the modification time of the downloaded file in UTC.
// The second value is false when the file does not exist.
func (d *Download) DownloadedAt() (time.Time, bool) {
	info, err := os.Stat(path.Join(d.org.DownloadsDir(), d.fileName))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime().UTC(), true
}

// Size returns the size in bytes of the downloaded file. The second value is
// false when the file does not exist.
func (d *Download) Size() (int64, bool) {
	info, err := os.Stat(path.Join(d.org.DownloadsDir(), d.fileName))
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// NexusFileName returns the original file name on NexusMods
func (d *Download) NexusFileName() (string, error) {
	meta, err := d.metadata()
	if err != nil {
		return "", err
	}
	return meta.value("General", "name"), nil
}

// NexusModID returns the NexusMods mod id recorded for the download
func (d *Download) NexusModID() (domain.NexusID, error) {
	return d.nexusID("modID")
}

// NexusFileID returns the NexusMods file id recorded for the download
func (d *Download) NexusFileID() (domain.NexusID, error) {
	return d.nexusID("fileID")
}

func (d *Download) nexusID(key string) (domain.NexusID, error) {
	meta, err := d.metadata()
	if err != nil {
		return domain.NexusID{}, err
	}
	id, err := domain.ParseNexusID(meta.value("General", key))
	if err != nil {
		return domain.NexusID{}, fmt.Errorf("download %s: %s: %w: %w", d.fileName, key, domain.ErrMetadataParse, err)
	}
	return id, nil
}

// metadata returns the parsed .meta file. It fails with ErrMetadataMissing
// when the download has no .meta file.
func (d *Download) metadata() (*iniFile, error) {
	return d.meta.get(func() (*iniFile, error) {
		metaPath := path.Join(d.org.DownloadsDir(), d.fileName+MetaSuffix)
		meta, err := loadINI(metaPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading %s: %w", metaPath, domain.ErrMetadataMissing)
			}
			return nil, fmt.Errorf("download %s: %w: %w", d.fileName, domain.ErrMetadataParse, err)
		}
		return meta, nil
	})
}
