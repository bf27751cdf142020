// Package script loads YAML figure scripts and runs them against a plot session.
package script

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/mathplot-go/pkg/mathplot/formula"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/models"
	"gopkg.in/yaml.v3"
)

// ErrFileNotFound indicates the script file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidScript indicates a script that cannot be run as written.
var ErrInvalidScript = errors.New("invalid script")

// StepError represents a failure while running one step of a script.
type StepError struct {
	Index int
	Op    models.Op
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError creates a new StepError.
func NewStepError(index int, op models.Op, err error) *StepError {
	return &StepError{
		Index: index,
		Op:    op,
		Err:   err,
	}
}

// Load reads and parses a figure script.
func Load(path string) (*models.Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return Parse(data)
}

// Parse decodes a figure script from YAML.
func Parse(data []byte) (*models.Figure, error) {
	var fig models.Figure
	if err := yaml.Unmarshal(data, &fig); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}
	return &fig, nil
}

// Compile compiles the script's function table.
func Compile(fig *models.Figure) (map[string]geom.Func, error) {
	funcs, err := formula.CompileAll(fig.Functions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	return funcs, nil
}
