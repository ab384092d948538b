package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
)

// CompressedExt marks level files stored zstd-compressed
const CompressedExt = ".zst"

// Format errors, wrapped in *FormatError with the offending line
var (
	ErrUnknownKey    = errors.New("unknown key")
	ErrArity         = errors.New("wrong number of values")
	ErrSizeFirst     = errors.New("level size must be specified before its contents")
	ErrMapLine       = errors.New("map line length must be twice the level X size")
	ErrTile          = errors.New("unsupported tile format")
	ErrShortMap      = errors.New("map ends before SizeY lines")
	ErrMissingSize   = errors.New("level size not specified")
	ErrMissingStart  = errors.New("spawn point not specified")
	ErrMissingCastle = errors.New("castle bounds not specified")
	ErrNoHostages    = errors.New("no hostage points specified")
)

// FormatError locates a parse failure in a level file
// Line is 0 for errors detected after the whole file was read
type FormatError struct {
	File string
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("level %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("level %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Level is a parsed level: terrain plus round layout
type Level struct {
	Name   string
	Voxels *engine.VoxelGrid
	Layout engine.Layout
}

// NewWorld builds a fresh world over a copy of the level terrain
func (l *Level) NewWorld() (*engine.World, error) {
	grid := engine.NewVoxelGrid(l.Voxels.SizeX, l.Voxels.SizeY)
	for y := range l.Voxels.SizeY {
		for x := range l.Voxels.SizeX {
			mask, err := l.Voxels.Column(x, y)
			if err != nil {
				return nil, fmt.Errorf("level %s: %w", l.Name, err)
			}
			if err := grid.SetColumn(x, y, mask); err != nil {
				return nil, fmt.Errorf("level %s: %w", l.Name, err)
			}
		}
	}
	return engine.NewWorld(grid, l.Layout), nil
}

// Load reads a level file, decompressing it first when it ends in CompressedExt
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, CompressedExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	lvl, err := Parse(r, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return lvl, nil
}

// parser tracks position while reading a level
type parser struct {
	name string
	line int
	sc   *bufio.Scanner
}

func (p *parser) fail(err error) error {
	return &FormatError{File: p.name, Line: p.line, Err: err}
}

func (p *parser) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.line++
	return strings.TrimRight(p.sc.Text(), "\r"), true
}

// Parse reads the text level format from r, name is used in errors
func Parse(r io.Reader, name string) (*Level, error) {
	p := &parser{name: name, sc: bufio.NewScanner(r)}
	lvl := &Level{Name: name}

	var haveStart, haveCastle bool

	for {
		raw, ok := p.next()
		if !ok {
			break
		}
		fields := strings.Fields(raw)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		key, args := fields[0], fields[1:]
		switch key {
		case "size:":
			v, err := p.ints(args, 2)
			if err != nil {
				return nil, err
			}
			if v[0] <= 0 || v[1] <= 0 {
				return nil, p.fail(fmt.Errorf("size %dx%d: %w", v[0], v[1], core.ErrOutOfRange))
			}
			lvl.Voxels = engine.NewVoxelGrid(v[0], v[1])
		case "start:":
			v, err := p.ints(args, 3)
			if err != nil {
				return nil, err
			}
			lvl.Layout.Spawn = core.Tile{X: v[0], Y: v[1], Z: v[2]}
			haveStart = true
		case "castle:":
			v, err := p.ints(args, 4)
			if err != nil {
				return nil, err
			}
			lvl.Layout.Castle = core.Area{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
			haveCastle = true
		case "hostage:":
			v, err := p.ints(args, 3)
			if err != nil {
				return nil, err
			}
			lvl.Layout.Hostages = append(lvl.Layout.Hostages, core.Tile{X: v[0], Y: v[1], Z: v[2]})
		case "map:":
			if len(args) != 0 {
				return nil, p.fail(ErrArity)
			}
			if lvl.Voxels == nil {
				return nil, p.fail(ErrSizeFirst)
			}
			if err := p.readMap(lvl.Voxels); err != nil {
				return nil, err
			}
		default:
			return nil, p.fail(fmt.Errorf("%w %q", ErrUnknownKey, key))
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, p.fail(err)
	}

	p.line = 0
	switch {
	case lvl.Voxels == nil:
		return nil, p.fail(ErrMissingSize)
	case !haveStart:
		return nil, p.fail(ErrMissingStart)
	case len(lvl.Layout.Hostages) == 0:
		return nil, p.fail(ErrNoHostages)
	case !haveCastle:
		return nil, p.fail(ErrMissingCastle)
	}

	// Entities spawned off the grid would be clamped onto the edge silently
	points := append([]core.Tile{lvl.Layout.Spawn}, lvl.Layout.Hostages...)
	for _, t := range points {
		if !lvl.Voxels.InBounds(t.X, t.Y, t.Z) {
			return nil, p.fail(&core.RangeError{X: t.X, Y: t.Y, Z: t.Z})
		}
	}
	return lvl, nil
}

func (p *parser) ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, p.fail(fmt.Errorf("%w: want %d, got %d", ErrArity, n, len(args)))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, p.fail(err)
		}
		out[i] = v
	}
	return out, nil
}

// readMap fills the grid from SizeY lines of two characters per column
func (p *parser) readMap(grid *engine.VoxelGrid) error {
	for y := range grid.SizeY {
		line, ok := p.next()
		if !ok {
			return p.fail(ErrShortMap)
		}
		if len(line) != 2*grid.SizeX {
			return p.fail(fmt.Errorf("%w: got %d", ErrMapLine, len(line)))
		}
		for x := range grid.SizeX {
			mask, err := parseColumn(line[2*x : 2*x+2])
			if err != nil {
				return p.fail(fmt.Errorf("column %d: %w", x, err))
			}
			if err := grid.SetColumn(x, y, mask); err != nil {
				return p.fail(err)
			}
		}
	}
	return nil
}

// parseColumn decodes a hex layer mask, or " N" for a solid column N layers high
func parseColumn(pair string) (byte, error) {
	if pair[0] == ' ' {
		h, err := strconv.Atoi(pair[1:])
		if err != nil || h < 0 || h > constant.WorldDepth {
			return 0, fmt.Errorf("%w %q", ErrTile, pair)
		}
		return byte(uint16(1)<<h - 1), nil
	}
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrTile, pair)
	}
	return byte(v), nil
}
