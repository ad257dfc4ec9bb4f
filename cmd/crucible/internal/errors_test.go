package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/internal/config"
)

func TestCLIError(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(ExitInputError, "cannot read grid a.txt", cause)

	assert.Equal(t, "cannot read grid a.txt: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "plain", NewCLIError(ExitUsageError, "plain").Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"cancelled", fmt.Errorf("solve: %w", context.Canceled), ExitCancelled},
		{"cli error", NewCLIError(ExitUsageError, "bad flag"), ExitUsageError},
		{"wrapped cli error", fmt.Errorf("outer: %w", WrapError(ExitConfigError, "cfg", errors.New("x"))), ExitConfigError},
		{"invalid config", fmt.Errorf("load: %w", config.ErrInvalidConfig), ExitConfigError},
		{"bad run window", fmt.Errorf("%w: min > max", dijkstra.ErrBadRunWindow), ExitConfigError},
		{"ragged grid", fmt.Errorf("a.txt: %w", grid.ErrNonRectangular), ExitInputError},
		{"not a digit", grid.ErrNotDigit, ExitInputError},
		{"other", errors.New("disk on fire"), ExitError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "crucible"}
	cmd.SetErr(&buf)

	assert.Equal(t, ExitSuccess, HandleError(cmd, nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, ExitCancelled, HandleError(cmd, context.Canceled))
	assert.Contains(t, buf.String(), "Operation cancelled")

	buf.Reset()
	assert.Equal(t, ExitInputError, HandleError(cmd, WrapError(ExitInputError, "cannot read grid x", grid.ErrEmptyGrid)))
	assert.Contains(t, buf.String(), "Error: cannot read grid x")
}
