// Package gridio reads and writes the on-disk movement grid format: a
// gzip stream holding a small header, two bytes per vertex, then a CBOR
// document of extra edges and a CBOR document of teleports. A BLAKE2b-256
// checksum of the decompressed payload is recorded on the loaded grid so
// downstream caches can tell grids apart.
package gridio

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/qverkk/osrs-nav/internal/model"
)

const (
	formatMagic   = "NAVG"
	formatVersion = 1
	headerSize    = 13 // magic + version + width + height
)

// Vertices per read/write block.
const blockVertices = 4096

// Load reads a grid file from disk.
func Load(path string) (*model.NavGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open nav grid: %w", err)
	}
	defer f.Close()

	g, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("load nav grid %s: %w", path, err)
	}
	return g, nil
}

// Read parses a gzip-compressed grid stream.
func Read(r io.Reader) (*model.NavGrid, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	hash, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("init checksum: %w", err)
	}
	payload := io.TeeReader(zr, hash)

	var header [headerSize]byte
	if _, err := io.ReadFull(payload, header[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if string(header[:4]) != formatMagic {
		return nil, fmt.Errorf("bad magic %q", header[:4])
	}
	if header[4] != formatVersion {
		return nil, fmt.Errorf("unsupported format version %d", header[4])
	}
	width := binary.LittleEndian.Uint32(header[5:9])
	height := binary.LittleEndian.Uint32(header[9:13])
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("bad grid dimensions %dx%d", width, height)
	}

	grid := model.NewNavGrid(width, height)
	var block [2 * blockVertices]byte
	for done := 0; done < len(grid.Vertices); {
		n := len(grid.Vertices) - done
		if n > blockVertices {
			n = blockVertices
		}
		if _, err := io.ReadFull(payload, block[:2*n]); err != nil {
			return nil, fmt.Errorf("read vertices at %d: %w", done, err)
		}
		for i := range n {
			grid.Vertices[done+i] = model.Vertex{Flags: block[2*i], Attrs: block[2*i+1]}
		}
		done += n
	}

	dec := cbor.NewDecoder(payload)
	if err := dec.Decode(&grid.Edges); err != nil {
		return nil, fmt.Errorf("decode edges: %w", err)
	}
	if grid.Edges == nil {
		grid.Edges = make(map[uint32][]model.Edge)
	}
	if err := dec.Decode(&grid.Teleports); err != nil {
		return nil, fmt.Errorf("decode teleports: %w", err)
	}

	grid.Checksum = hash.Sum(nil)
	return grid, nil
}

// Write serializes a grid as a gzip-compressed stream.
func Write(w io.Writer, g *model.NavGrid) error {
	zw := gzip.NewWriter(w)

	var header [headerSize]byte
	copy(header[:4], formatMagic)
	header[4] = formatVersion
	binary.LittleEndian.PutUint32(header[5:9], g.Width)
	binary.LittleEndian.PutUint32(header[9:13], g.Height)
	if _, err := zw.Write(header[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var block [2 * blockVertices]byte
	for done := 0; done < len(g.Vertices); {
		n := len(g.Vertices) - done
		if n > blockVertices {
			n = blockVertices
		}
		for i := range n {
			v := g.Vertices[done+i]
			block[2*i] = v.Flags
			block[2*i+1] = v.Attrs
		}
		if _, err := zw.Write(block[:2*n]); err != nil {
			return fmt.Errorf("write vertices at %d: %w", done, err)
		}
		done += n
	}

	enc := cbor.NewEncoder(zw)
	if err := enc.Encode(g.Edges); err != nil {
		return fmt.Errorf("encode edges: %w", err)
	}
	if err := enc.Encode(g.Teleports); err != nil {
		return fmt.Errorf("encode teleports: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush gzip stream: %w", err)
	}
	return nil
}

// WriteFile serializes a grid to a file on disk.
func WriteFile(path string, g *model.NavGrid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create nav grid: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, g); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush nav grid: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close nav grid: %w", err)
	}
	return nil
}
