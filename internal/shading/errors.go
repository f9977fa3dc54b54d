package shading

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBackendUnavailable = errors.New("shading backend unavailable")
	ErrShaderCompile      = errors.New("shader compilation failed")
	ErrProgramLink        = errors.New("program link failed")
)

// BuildError carries the driver diagnostic for a failed shader build.
// It unwraps to one of the sentinel errors above.
type BuildError struct {
	Stage string // "vertex", "fragment", "program"
	Log   string
	Err   error
}

func (e *BuildError) Error() string {
	log := strings.TrimSpace(e.Log)
	if log == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Stage, e.Err, log)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
