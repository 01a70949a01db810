// Package errconsts holds the error sentinels and constant error messages shared by
// the shell and its collaborators.
package errconsts

import "errors"

// Input errors. No collaborator is called when one of these is returned.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCancelled    = errors.New("cancelled")
	ErrNoArtifacts  = errors.New("no video files found in downloads folder")
)

// Authorization errors.
var (
	ErrAuthUnavailable = errors.New("authorization unavailable")
	ErrAuthRequired    = errors.New("authorization required")
)

// Collaborator failures.
var (
	ErrDownloadFailed = errors.New("download failed")
	ErrInfoFailed     = errors.New("could not fetch info")
	ErrStitchFailed   = errors.New("stitch failed")
	ErrUploadFailed   = errors.New("upload failed")
	ErrBackupFailed   = errors.New("backup failed")
	ErrQRFailed       = errors.New("could not generate QR code")
)

// Startup errors.
var (
	ErrMissingBinary = errors.New("required program not found")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Programs
const (
	FFmpegFailure = "ffmpeg command failed: %w"
)

// File
const (
	ConfigFileLoadFail = "failed to load config file %q: %w"
)
