package tracelog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/grid"
	"github.com/katalvlaran/hillclimb/pathfind"
	"github.com/katalvlaran/hillclimb/tracelog"
)

var _ pathfind.Observer = (*tracelog.Observer)(nil)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), tracelog.FromContext(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := tracelog.WithLogger(context.Background(), l)
	assert.Same(t, l, tracelog.FromContext(ctx))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := tracelog.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := tracelog.ParseLevel("loud")
	assert.Error(t, err)
}

func TestObserver_JSONRecords(t *testing.T) {
	var buf bytes.Buffer
	obs := tracelog.New(tracelog.NewLogger("debug", "json", &buf), "part", 1)
	require.True(t, obs.Enabled())

	g := grid.New(2, 1, 0)
	_, err := pathfind.Solve(g, grid.C(0, 0), func(_, _ int) bool { return true }, pathfind.WithObserver(obs))
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.EqualValues(t, 1, rec["part"])
		msgs = append(msgs, rec["msg"].(string))
	}
	assert.Equal(t, []string{"visit", "improve", "visit"}, msgs)
}

func TestObserver_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	obs := tracelog.New(tracelog.NewLogger("info", "text", &buf))
	assert.False(t, obs.Enabled())
	obs.OnVisit(grid.C(0, 0), 0, 0)
	obs.OnImprove(grid.C(1, 0), grid.C(0, 0), pathfind.Unreached, 1)
	assert.Empty(t, buf.String())
}

func TestObserver_TextFields(t *testing.T) {
	var buf bytes.Buffer
	obs := tracelog.New(tracelog.NewLogger("debug", "text", &buf))
	obs.OnImprove(grid.C(3, 4), grid.C(3, 3), 9, 5)
	out := buf.String()
	assert.Contains(t, out, "msg=improve")
	assert.Contains(t, out, "x=3")
	assert.Contains(t, out, "y=4")
	assert.Contains(t, out, "via=(3,3)")
	assert.Contains(t, out, "old=9")
	assert.Contains(t, out, "cost=5")
}
