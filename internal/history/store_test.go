// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/dmitriid/panpipe/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{Path: filepath.Join(t.TempDir(), "state", "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func invocation(at time.Time, status int, args ...string) types.Invocation {
	return types.Invocation{
		Binary:     "pandoc",
		Args:       args,
		Mode:       types.InputFile,
		ExitStatus: status,
		StartedAt:  at,
		Duration:   150 * time.Millisecond,
	}
}

func TestRecordAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, invocation(t0, 0, "a.md", "--to=html")))
	require.NoError(t, s.Record(ctx, invocation(t0.Add(time.Second), 1, "missing.md")))

	invs, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, invs, 2)

	assert.Equal(t, []string{"missing.md"}, invs[0].Args, "newest first")
	assert.Equal(t, 1, invs[0].ExitStatus)

	got := invs[1]
	assert.NotZero(t, got.ID)
	assert.Equal(t, "pandoc", got.Binary)
	assert.Equal(t, []string{"a.md", "--to=html"}, got.Args)
	assert.Equal(t, types.InputFile, got.Mode)
	assert.True(t, got.StartedAt.Equal(t0))
	assert.Equal(t, 150*time.Millisecond, got.Duration)
	assert.True(t, got.Succeeded())
}

func TestList_FailedOnlyAndLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, invocation(t0, 0, "ok.md")))
	require.NoError(t, s.Record(ctx, invocation(t0, 64, "bad.md")))
	notStarted := invocation(t0, -1, "x.md")
	notStarted.Error = "executable file not found"
	require.NoError(t, s.Record(ctx, notStarted))

	failed, err := s.List(ctx, ListOptions{FailedOnly: true})
	require.NoError(t, err)
	require.Len(t, failed, 2)
	assert.Equal(t, "executable file not found", failed[0].Error)

	limited, err := s.List(ctx, ListOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestPrune(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, invocation(t0, 0, "old.md")))
	require.NoError(t, s.Record(ctx, invocation(t0.Add(500*time.Millisecond), 0, "newer.md")))
	require.NoError(t, s.Record(ctx, invocation(t0.Add(48*time.Hour), 0, "new.md")))

	n, err := s.Prune(ctx, t0.Add(time.Second))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	invs, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, []string{"new.md"}, invs[0].Args)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, invocation(t0, 0, "a.md", "--to=rst")))

	var buf bytes.Buffer
	require.NoError(t, s.Export(ctx, ListOptions{}, &buf))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "pandoc", decoded[0]["binary"])
	assert.Equal(t, "file", decoded[0]["mode"])
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(types.HistoryConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, invocation(t0, 0, "a.md")))
	require.NoError(t, s.Close())

	s, err = Open(types.HistoryConfig{Path: path})
	require.NoError(t, err)
	defer s.Close()

	invs, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, invs, 1)
}
