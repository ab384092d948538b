package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Encode writes the level in the text format Parse reads
// Columns are always written as hex masks
func (l *Level) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n", l.Name)
	fmt.Fprintf(bw, "size: %d %d\n", l.Voxels.SizeX, l.Voxels.SizeY)
	s := l.Layout.Spawn
	fmt.Fprintf(bw, "start: %d %d %d\n", s.X, s.Y, s.Z)
	c := l.Layout.Castle
	fmt.Fprintf(bw, "castle: %d %d %d %d\n", c.X, c.Y, c.Width, c.Height)
	for _, h := range l.Layout.Hostages {
		fmt.Fprintf(bw, "hostage: %d %d %d\n", h.X, h.Y, h.Z)
	}

	bw.WriteString("map:\n")
	for y := range l.Voxels.SizeY {
		for x := range l.Voxels.SizeX {
			mask, err := l.Voxels.Column(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%02x", mask)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes the level to path, zstd-compressed when path ends in CompressedExt
func (l *Level) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, CompressedExt) {
		return l.Encode(f)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("level %s: %w", path, err)
	}
	if err := l.Encode(enc); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
