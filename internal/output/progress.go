package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// OutputMode represents the output style
type OutputMode int

const (
	// OutputModeInteractive shows spinners and emojis
	OutputModeInteractive OutputMode = iota
	// OutputModeCI shows plain text, no spinners
	OutputModeCI
)

// ProgressManager manages output mode and creates appropriate indicators
type ProgressManager struct {
	mode   OutputMode
	mu     sync.Mutex
	writer io.Writer
}

// NewProgressManager creates a new progress manager with auto-detected mode
func NewProgressManager() *ProgressManager {
	mode := OutputModeInteractive
	if IsCI() {
		mode = OutputModeCI
	}

	return &ProgressManager{
		mode:   mode,
		writer: os.Stderr,
	}
}

// NewProgressManagerWithMode creates a progress manager with explicit mode
func NewProgressManagerWithMode(mode OutputMode) *ProgressManager {
	return &ProgressManager{
		mode:   mode,
		writer: os.Stderr,
	}
}

// Mode returns the current output mode
func (pm *ProgressManager) Mode() OutputMode {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return pm.mode
}

// Spinner creates a new spinner with the given message
func (pm *ProgressManager) Spinner(message string) *Spinner {
	return NewSpinner(message, pm.mode)
}

// Printf prints a formatted message (respects output mode)
func (pm *ProgressManager) Printf(format string, args ...interface{}) {
	fmt.Fprintf(pm.writer, format, args...)
}
