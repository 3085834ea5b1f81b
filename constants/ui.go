package constants

// HUD Layout
const (
	// HUDMarginX is the left margin of the status lines
	HUDMarginX = 2

	// HUDMarginY is the top margin of the status lines
	HUDMarginY = 1

	// SweepRow is the screen row offset, from the bottom, of the moving marker
	SweepRow = 3

	// SweepCellsPerSecond is the marker speed in columns per elapsed second
	SweepCellsPerSecond = 20.0

	// TrailLength is the number of fading cells drawn behind the marker
	TrailLength = 8
)

// Logging
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active debug log file name
	LogFileName = "tinyclock.log"

	// MaxLogSizeMB is the size at which the debug log rotates
	MaxLogSizeMB = 10

	// MaxLogBackups is the number of rotated logs kept
	MaxLogBackups = 3
)
