package gridio

import (
	"bytes"
	"compress/gzip"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qverkk/osrs-nav/internal/model"
	"github.com/qverkk/osrs-nav/internal/pathfinder"
	"github.com/qverkk/osrs-nav/internal/testutil"
)

func decompress(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	return raw
}

func recompress(t *testing.T, raw []byte) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func fixtureGrid(t *testing.T) *model.NavGrid {
	t.Helper()
	g := testutil.SplitGrid(16, 8, 8)
	g.AddEdge(model.Coordinate{X: 7, Y: 0}, model.Edge{
		Destination:  model.Coordinate{X: 8, Y: 0},
		Cost:         3,
		Requirements: []model.Requirement{{Kind: model.RequirementSkill, Name: "Agility", Value: 21}},
		Definition:   &model.EdgeDefinition{Kind: "shortcut", ObjectID: 9300, Action: "Squeeze-through"},
	})
	g.AddTeleport(model.Edge{
		Destination:  model.Coordinate{X: 2, Y: 2},
		Cost:         10,
		Requirements: []model.Requirement{{Kind: model.RequirementVarbit, Index: 4070, Value: 1}},
		Definition:   &model.EdgeDefinition{Kind: "teleport", Name: "Home Teleport"},
	})
	pathfinder.AssignGroups(g)
	return g
}

func TestRoundTrip(t *testing.T) {
	g := fixtureGrid(t)
	path := filepath.Join(t.TempDir(), "world.navgrid")

	require.NoError(t, WriteFile(path, g))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, g.Width, loaded.Width)
	assert.Equal(t, g.Height, loaded.Height)
	assert.Equal(t, g.Vertices, loaded.Vertices)
	assert.Equal(t, g.Edges, loaded.Edges)
	assert.Equal(t, g.Teleports, loaded.Teleports)
	assert.Len(t, loaded.Checksum, 32)
}

func TestRoundTripSearchable(t *testing.T) {
	g := fixtureGrid(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	loaded, err := Read(&buf)
	require.NoError(t, err)

	s := pathfinder.NewSearcher(pathfinder.NewBucketRing(loaded.MaxEdgeCost()))
	state := &model.GameState{Skills: map[string]int32{"Agility": 50}}
	steps, found := s.FindPath(loaded, model.Coordinate{X: 0, Y: 0}, model.Coordinate{X: 15, Y: 7}, state)
	require.True(t, found, "loaded grid must route across the gated shortcut")

	var edgeSteps int
	for _, step := range steps {
		if step.Edge != nil {
			edgeSteps++
			assert.Equal(t, "shortcut", step.Edge.Kind)
		}
	}
	assert.Equal(t, 1, edgeSteps)
}

func TestChecksumIdentifiesGrid(t *testing.T) {
	g := fixtureGrid(t)

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, g))
	require.NoError(t, Write(&second, g))

	a, err := Read(&first)
	require.NoError(t, err)
	b, err := Read(&second)
	require.NoError(t, err)
	assert.Equal(t, a.Checksum, b.Checksum, "identical payloads share a checksum")

	g.Vertices[0].Flags ^= model.FlagNorth
	var changed bytes.Buffer
	require.NoError(t, Write(&changed, g))
	c, err := Read(&changed)
	require.NoError(t, err)
	assert.NotEqual(t, a.Checksum, c.Checksum, "any payload change moves the checksum")
}

func TestReadEmptyGrid(t *testing.T) {
	g := model.NewNavGrid(4, 4)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	loaded, err := Read(&buf)
	require.NoError(t, err)

	assert.NotNil(t, loaded.Edges, "edge map stays usable on an edgeless grid")
	assert.Empty(t, loaded.Teleports)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a gzip stream")))
	require.Error(t, err)
	assert.ErrorContains(t, err, "gzip")
}

func TestReadRejectsBadMagic(t *testing.T) {
	g := model.NewNavGrid(2, 2)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))

	// Corrupt the magic inside the gzip stream by rewriting the payload.
	raw := decompress(t, buf.Bytes())
	raw[0] = 'X'
	_, err := Read(recompress(t, raw))
	require.Error(t, err)
	assert.ErrorContains(t, err, "magic")
}

func TestReadRejectsBadVersion(t *testing.T) {
	g := model.NewNavGrid(2, 2)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))

	raw := decompress(t, buf.Bytes())
	raw[4] = 99
	_, err := Read(recompress(t, raw))
	require.Error(t, err)
	assert.ErrorContains(t, err, "version")
}

func TestReadRejectsTruncated(t *testing.T) {
	g := fixtureGrid(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))

	raw := decompress(t, buf.Bytes())
	_, err := Read(recompress(t, raw[:len(raw)/2]))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.navgrid"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "open nav grid")
}
