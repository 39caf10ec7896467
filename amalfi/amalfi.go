// SPDX-License-Identifier: MIT

package amalfi

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	errwrap "github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/katalvlaran/motif/graph"
)

var (
	// ErrTruncated indicates the input ended before the declared data.
	ErrTruncated = errors.New("amalfi: truncated input")

	// ErrBadVertex indicates an arc that cannot be added to the graph.
	ErrBadVertex = errors.New("amalfi: bad arc")

	// ErrTrailingData indicates bytes left over after the last declared row.
	ErrTrailingData = errors.New("amalfi: trailing data")

	// ErrTooLarge indicates a graph that does not fit 16-bit indices.
	ErrTooLarge = errors.New("amalfi: graph too large")
)

// MaxVertices is the largest vertex count the format can address.
const MaxVertices = math.MaxUint16

// Read decodes one graph from r.
// Complexity: O(n + arcs).
func Read[D graph.Orientation](r io.Reader) (*graph.EdgeList[D], error) {
	br := bufio.NewReader(r)
	n, err := readWord(br)
	if err != nil {
		return nil, errwrap.Wrap(err, "amalfi: header")
	}

	l := graph.NewEdgeList[D](n)
	for u := 0; u < n; u++ {
		k, err := readWord(br)
		if err != nil {
			return nil, errwrap.Wrapf(err, "amalfi: vertex %d: arc count", u)
		}
		for i := 0; i < k; i++ {
			v, err := readWord(br)
			if err != nil {
				return nil, errwrap.Wrapf(err, "amalfi: vertex %d: arc %d of %d", u, i, k)
			}
			if v >= n {
				return nil, errwrap.Wrapf(ErrBadVertex, "amalfi: vertex %d: arc %d targets %d, have %d vertices", u, i, v, n)
			}
			// mirrored arc of an undirected edge
			if !l.Directed() && u > v && l.HasEdge(v, u) {
				continue
			}
			if err := l.AddEdge(u, v, 0); err != nil {
				return nil, errwrap.Wrapf(fmt.Errorf("%w: %w", ErrBadVertex, err), "amalfi: vertex %d: arc %d", u, i)
			}
		}
	}
	// the declared rows must account for the whole input
	if _, err := br.ReadByte(); err == nil {
		return nil, errwrap.Wrapf(ErrTrailingData, "amalfi: after vertex %d", n-1)
	} else if !errors.Is(err, io.EOF) {
		return nil, errwrap.Wrap(err, "amalfi: trailer")
	}

	return l, nil
}

// ReadFile decodes the graph stored at path on fs.
func ReadFile[D graph.Orientation](fs afero.Fs, path string) (*graph.EdgeList[D], error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errwrap.Wrapf(err, "amalfi: open %s", path)
	}
	defer f.Close()

	l, err := Read[D](f)
	if err != nil {
		return nil, errwrap.Wrapf(err, "amalfi: read %s", path)
	}

	return l, nil
}

// Write encodes g. Undirected edges are written in both directions; labels
// are dropped.
// Complexity: O(n + arcs).
func Write(w io.Writer, g graph.Graph) error {
	n := g.NumVertices()
	if n > MaxVertices {
		return errwrap.Wrapf(ErrTooLarge, "amalfi: %d vertices, max %d", n, MaxVertices)
	}

	bw := bufio.NewWriter(w)
	writeWord(bw, n)
	for u := 0; u < n; u++ {
		row := g.OutEdges(u)
		writeWord(bw, len(row))
		for _, nb := range row {
			writeWord(bw, nb.Vertex)
		}
	}

	return errwrap.Wrap(bw.Flush(), "amalfi: write")
}

// WriteFile encodes g into path on fs, replacing any existing file.
func WriteFile(fs afero.Fs, path string, g graph.Graph) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return errwrap.Wrapf(err, "amalfi: create %s", path)
	}
	defer func() {
		err = multierr.Append(err, errwrap.Wrapf(f.Close(), "amalfi: close %s", path))
	}()

	return Write(f, g)
}

func readWord(r io.Reader) (int, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrTruncated
		}
		return 0, err
	}

	return int(binary.LittleEndian.Uint16(buf[:])), nil
}

// writeWord buffers one word; bufio.Writer keeps the first error for Flush.
func writeWord(w *bufio.Writer, v int) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	_, _ = w.Write(buf[:])
}
