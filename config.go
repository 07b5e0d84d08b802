package main

import "time"

// Runtime constants for the driver loop, profiling, and overlays.
const (
	pgoRecordDuration = 15 * time.Second
	pgoProfilePath    = "default.pgo"
	missLogInterval   = 2 * time.Second
	minimapCell       = 3
	minimapMargin     = 4
)
