package graphio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/graphio"
)

func TestReadGraph(t *testing.T) {
	src := "4 5\n0 1 1\n0 2 4\n1 2 2\n1 3 5\n2 3 1\n"
	in, err := graphio.ReadGraph(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, in.VertexCount)
	require.Equal(t, 5, in.EdgeCount)
	require.Equal(t, graph.Triple{U: 1, V: 3, W: 5}, in.Edges[3])
	require.Nil(t, in.Coordinates)
}

func TestReadGraph_InlineCoordinates(t *testing.T) {
	src := "3 2\n0 0\n3 4\n6.5 -1e2\n0 1 5\n1 2 7.25\n"
	in, err := graphio.ReadGraph(strings.NewReader(src), graphio.WithInlineCoordinates())
	require.NoError(t, err)
	require.Equal(t, []graph.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6.5, Y: -100}}, in.Coordinates)
	require.Equal(t, 7.25, in.Edges[1].W)
}

func TestReadGraph_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"short header":   "4",
		"negative":       "-1 0",
		"missing edges":  "3 2\n0 1 1\n",
		"bad endpoint":   "2 1\na 1 1\n",
		"bad weight":     "2 1\n0 1 x\n",
		"float endpoint": "2 1\n0.5 1 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.ReadGraph(strings.NewReader(src))
			require.ErrorIs(t, err, graph.ErrMalformedInput)
		})
	}
}

func TestReadGraph_HeaderCountsNotBackedByData(t *testing.T) {
	for name, tc := range map[string]struct {
		src    string
		inline bool
	}{
		"huge edge count":   {src: "3 1000000000000000\n0 1 1\n"},
		"huge vertex count": {src: "1000000000000000 1\n0 0\n", inline: true},
	} {
		t.Run(name, func(t *testing.T) {
			var opts []graphio.Option
			if tc.inline {
				opts = append(opts, graphio.WithInlineCoordinates())
			}
			require.NotPanics(t, func() {
				_, err := graphio.ReadGraph(strings.NewReader(tc.src), opts...)
				require.ErrorIs(t, err, graph.ErrMalformedInput)
			})
		})
	}

	require.NotPanics(t, func() {
		_, err := graphio.ReadCoordinates(strings.NewReader("0 1 1\n"), 1000000000000000)
		require.ErrorIs(t, err, graph.ErrMalformedInput)
	})
	_, err := graphio.ReadCoordinates(strings.NewReader(""), -1)
	require.ErrorIs(t, err, graph.ErrMalformedInput)
}

func TestReadCoordinates(t *testing.T) {
	pts, err := graphio.ReadCoordinates(strings.NewReader("2 5 5\n0 1.5 2\n1 -3 0\n"), 3)
	require.NoError(t, err)
	require.Equal(t, []graph.Point{{X: 1.5, Y: 2}, {X: -3, Y: 0}, {X: 5, Y: 5}}, pts)

	for name, src := range map[string]string{
		"duplicate": "0 1 1\n0 2 2\n",
		"range":     "0 1 1\n2 2 2\n",
		"missing":   "0 1 1\n",
		"extra":     "0 1 1\n1 2 2\n2 3 3\n",
	} {
		_, err := graphio.ReadCoordinates(strings.NewReader(src), 2)
		require.ErrorIs(t, err, graph.ErrMalformedInput, name)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	in, err := builder.BuildInput(
		[]builder.BuilderOption{builder.WithSeed(2), builder.WithDetour(1.2)},
		builder.Geometric(40, 300))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, in))
	back, err := graphio.ReadGraph(&buf, graphio.WithInlineCoordinates())
	require.NoError(t, err)
	require.Equal(t, in, back)
}

func TestWritePath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WritePath(&buf, []int{0, 1, 2, 3}))
	require.Equal(t, "0\n1\n2\n3\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WritePathEdges(&buf, []int{0, 1, 2, 3}))
	require.Equal(t, "0 1\n1 2\n2 3\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WritePathEdges(&buf, []int{7}))
	require.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteCoordinates(&buf, []graph.Point{{X: 1, Y: 2.5}}))
	require.Equal(t, "0 1 2.5\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_ReportsErrors(t *testing.T) {
	err := graphio.WritePath(failingWriter{}, []int{1, 2})
	require.ErrorContains(t, err, "disk full")
	require.ErrorContains(t, err, "graphio: write path")
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	gpath := filepath.Join(dir, "g.txt")
	cpath := filepath.Join(dir, "nodes.txt")
	require.NoError(t, os.WriteFile(gpath, []byte("3 2\n0 1 5\n1 2 5\n"), 0o644))
	require.NoError(t, os.WriteFile(cpath, []byte("0 0 0\n1 3 4\n2 6 8\n"), 0o644))

	g, err := graphio.LoadGraph(gpath, cpath)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 5.0, g.Euclidean(0, 1))

	_, err = graphio.LoadGraph(filepath.Join(dir, "missing.txt"), "")
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(gpath, []byte("2 1\n0 1 -3\n"), 0o644))
	_, err = graphio.LoadGraph(gpath, "")
	require.ErrorIs(t, err, graph.ErrInvalidWeight)
}
