package models

import "time"

// Artifact is a media file in the artifact directory.
type Artifact struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Video   bool
	Index   int // 1-based position among video artifacts, 0 otherwise
}
