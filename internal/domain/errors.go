package domain

import "errors"

var (
	ErrConfigurationMissing = errors.New("mod organizer configuration missing")
	ErrConfigurationParse   = errors.New("mod organizer configuration invalid")
	ErrProfileMissing       = errors.New("profile mod list missing")
	ErrMetadataMissing      = errors.New("download metadata missing")
	ErrMetadataParse        = errors.New("mod metadata invalid")
	ErrCatalogParse         = errors.New("category catalog invalid")
	ErrModNotFound          = errors.New("mod not found")
	ErrDownloadNotFound     = errors.New("download not found")
	ErrSnapshotNotFound     = errors.New("snapshot not found")
	ErrInvalidConfig        = errors.New("invalid configuration")
)
