package runner

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/born-ml/numtasks/backend/cpu"
	"github.com/born-ml/numtasks/internal/npy"
	"github.com/born-ml/numtasks/internal/tasks"
)

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.InfoLevel})
}

func TestRun_Catalog(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	r := New(testLogger(&buf))

	rep, err := r.Run(context.Background(), tasks.Catalog())
	require.NoError(t, err)

	require.Len(t, rep.Results, len(tasks.Catalog()))
	assert.Zero(t, rep.Failed())
	assert.NotEmpty(t, rep.RunID)
	for i, res := range rep.Results {
		assert.Equal(t, i+1, res.TaskID)
		assert.NotEmpty(t, res.Steps, res.Name)
	}

	out := buf.String()
	assert.Contains(t, out, "Original List: [12.23, 13.32, 100, 36.32]")
	assert.Less(t, strings.Index(out, "Original List"), strings.Index(out, "3x3 matrix"))
	assert.Less(t, strings.Index(out, "3x3 matrix"), strings.Index(out, "Checkerboard pattern"))
}

func TestRun_WorkersKeepOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	var seq, par bytes.Buffer
	_, err := New(testLogger(&seq), WithBackend(cpu.NewSequential())).Run(context.Background(), tasks.Catalog())
	require.NoError(t, err)
	_, err = New(testLogger(&par), WithWorkers(8)).Run(context.Background(), tasks.Catalog())
	require.NoError(t, err)

	assert.Equal(t, seq.String(), par.String())
}

func TestRun_FailureIsolated(t *testing.T) {
	defer goleak.VerifyNone(t)

	ts := []tasks.Task{
		{ID: 1, Name: "boom", Run: func(*cpu.Backend) ([]tasks.Step, error) {
			panic("reshape: cannot reshape 5 elements into (2, 2)")
		}},
		{ID: 2, Name: "broken", Run: func(*cpu.Backend) ([]tasks.Step, error) {
			return nil, errors.New("broken input")
		}},
		{ID: 3, Name: "fine", Run: func(*cpu.Backend) ([]tasks.Step, error) {
			return []tasks.Step{{Label: "ok", Value: "1"}}, nil
		}},
		{ID: 4, Name: "empty"},
	}

	var buf bytes.Buffer
	rep, err := New(testLogger(&buf), WithWorkers(2)).Run(context.Background(), ts)
	require.NoError(t, err)
	require.Len(t, rep.Results, 4)

	assert.Equal(t, "panic: reshape: cannot reshape 5 elements into (2, 2)", rep.Results[0].Error)
	assert.Equal(t, "broken input", rep.Results[1].Error)
	assert.True(t, rep.Results[2].OK())
	assert.False(t, rep.Results[3].OK())
	assert.Equal(t, 3, rep.Failed())
	assert.Contains(t, buf.String(), "ok: 1")
	assert.Contains(t, buf.String(), "task failed")
}

func TestRun_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	ts := []tasks.Task{{ID: 1, Name: "never", Run: func(*cpu.Backend) ([]tasks.Step, error) {
		calls.Add(1)
		return nil, nil
	}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := New(testLogger(&bytes.Buffer{})).Run(ctx, ts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Results)
	assert.Zero(t, calls.Load())
}

func TestWithWorkers_Minimum(t *testing.T) {
	r := New(nil, WithWorkers(0))
	assert.Equal(t, 1, r.workers)
	assert.NotNil(t, r.logger)
}

func TestRun_SaveDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := filepath.Join(t.TempDir(), "arrays")
	task, err := tasks.Lookup("create_matrix")
	require.NoError(t, err)

	rep, err := New(testLogger(&bytes.Buffer{}), WithSaveDir(dir)).Run(context.Background(), []tasks.Task{task})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)

	want := filepath.Join(dir, "02_create_matrix_0.npy")
	assert.Equal(t, []string{want}, rep.Results[0].Files)

	raw, err := npy.Load(want)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5, 6, 7, 8, 9, 10}, raw.AsInt64())
}
