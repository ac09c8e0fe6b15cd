package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util"
)

const testBatch = `
defaults:
  mode: i
  x1: -1
  x2: 1
jobs:
  - name: sum
    expression: x+y+z
  - expression: 10/x
    mode: d
  - name: wide
    expression: x
    x2: 3
    z2: 1
`

func TestLoad(t *testing.T) {
	jobs, err := Load(context.Background(), strings.NewReader(testBatch))
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "sum", jobs[0].Name)
	assert.Equal(t, "i", jobs[0].Mode)
	assert.Equal(t, tabulator.Bounds{X1: -1, X2: 1}, jobs[0].Bounds)

	assert.Equal(t, "job-2", jobs[1].Name)
	assert.Equal(t, "d", jobs[1].Mode)
	assert.Equal(t, "10/x", jobs[1].Expression)

	assert.Equal(t, "wide", jobs[2].Name)
	assert.Equal(t, "i", jobs[2].Mode)
	assert.Equal(t, tabulator.Bounds{X1: -1, X2: 3, Z2: 1}, jobs[2].Bounds)
}

func TestLoadErrors(t *testing.T) {
	cases := []string{
		"jobs:\n  - name: empty\n",
		"jobs: [",
		"jobs:\n  - x1: abc\n    expression: x\n",
	}

	for i, c := range cases {
		_, err := Load(context.Background(), strings.NewReader(c))
		assert.Errorf(t, err, "Failed #%d:", i)
	}
}

func TestLoadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(testBatch), 0644))

	jobs, err := LoadFile(context.Background(), filename)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	jobs, err := Load(context.Background(), strings.NewReader(testBatch+"  - expression: (x\n"))
	require.NoError(t, err)

	tab := tabulator.NewTabulator(tabulator.NewRegistry(), recognizer.DefaultIdentifiers(),
		tabulator.NewConfig(), util.NewNopLogger())
	results, err := Run(context.Background(), jobs, 3, func(ctx context.Context, job *Job) (*tabulator.EncodedGrid, error) {
		grid, err := tab.Tabulate(job.Mode, job.Expression, job.Bounds)
		if err != nil {
			return nil, err
		}
		return grid.Encode(), nil
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equalf(t, jobs[i], r.Job, "Failed #%d:", i)
	}
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 0, results[0].Grid.Failed)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, "+Inf", *results[1].Grid.Cells[1][0][0])
	assert.Len(t, results[2].Grid.Cells, 5)

	_, ok := recognizer.AsParsingError(results[3].Err)
	assert.True(t, ok)
}

func TestRunCanceled(t *testing.T) {
	jobs, err := Load(context.Background(), strings.NewReader(testBatch))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var calls int32
	_, err = Run(ctx, jobs, 1, func(ctx context.Context, job *Job) (*tabulator.EncodedGrid, error) {
		atomic.AddInt32(&calls, 1)
		cancel()
		return nil, nil
	})
	assert.Equal(t, context.Canceled, errors.Cause(err))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}
