package core

import "github.com/DonovanMods/mo2-inspect/internal/domain"

// Source is something that provided content to a mod, such as a file
// downloaded from NexusMods
type Source struct {
	org         *Organizer
	nexusModID  domain.NexusID
	nexusFileID domain.NexusID
	fileName    string
}

// NexusModID returns the NexusMods mod id, if any
func (s Source) NexusModID() domain.NexusID {
	return s.nexusModID
}

// NexusFileID returns the NexusMods file id, if any
func (s Source) NexusFileID() domain.NexusID {
	return s.nexusFileID
}

// FileName returns the name of the installed file. The second value is false
// when none was recorded.
func (s Source) FileName() (string, bool) {
	return s.fileName, s.fileName != ""
}

// Type returns where the source came from
func (s Source) Type() domain.SourceType {
	if s.nexusModID.IsSet() {
		return domain.SourceNexusMods
	}
	return domain.SourceUnknown
}

// Download returns the downloaded file this source was installed from. The
// second value is false when the source has no file name or the file is no
// longer in the downloads directory.
func (s Source) Download() (*Download, bool) {
	if s.fileName == "" || s.org == nil {
		return nil, false
	}
	return s.org.Download(s.fileName)
}
