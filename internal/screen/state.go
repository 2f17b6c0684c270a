package screen

import (
	"os"

	"photoframe/internal/logging"
	"photoframe/internal/metrics"
)

const (
	tokenOn  = "ON"
	tokenOff = "OFF"
)

// StateFile is the single-writer/single-reader screen state cell. The
// daemon writes it, the server reads it; they share nothing else.
type StateFile struct {
	path string
}

// NewStateFile returns a StateFile at path. The file is not created until
// the first Write.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Path returns the backing file path.
func (s *StateFile) Path() string {
	return s.path
}

// Write overwrites the state file with the ON or OFF token.
// The token is small enough that the write is effectively atomic; last
// fully-written value wins.
func (s *StateFile) Write(on bool) error {
	token := tokenOff
	if on {
		token = tokenOn
	}
	return os.WriteFile(s.path, []byte(token), 0o644)
}

// Read reports whether the display is on. Only a file containing exactly
// OFF yields false; absence, read failure or any other content defaults to
// true so the slideshow never stalls on a missing or garbled file.
func (s *StateFile) Read() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logging.Debug("screen state: %v (defaulting to on)", err)
		metrics.ScreenStateReads.WithLabelValues("default").Inc()
		return true
	}
	switch string(data) {
	case tokenOff:
		metrics.ScreenStateReads.WithLabelValues("off").Inc()
		return false
	case tokenOn:
		metrics.ScreenStateReads.WithLabelValues("on").Inc()
		return true
	default:
		metrics.ScreenStateReads.WithLabelValues("default").Inc()
		return true
	}
}
