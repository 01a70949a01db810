package consts

import "time"

// Network timeouts
const (
	ScraperTimeout = 15 * time.Second
)

// Progress reporting
const (
	ProgressInterval = 500 * time.Millisecond
)
