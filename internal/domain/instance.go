package domain

// Instance is the resolved configuration of one Mod Organizer instance.
// All directory paths use forward slashes.
type Instance struct {
	InstallDir      string // Mod Organizer installation directory
	InstanceDir     string // Directory holding ModOrganizer.ini
	Portable        bool   // True when InstanceDir == InstallDir
	SelectedProfile string
	GamePath        string
	ProfilesDir     string
	ModsDir         string
	OverwriteDir    string
	DownloadsDir    string
}

// ProfileDir returns the directory of the selected profile
func (i Instance) ProfileDir() string {
	return i.ProfilesDir + "/" + i.SelectedProfile
}
