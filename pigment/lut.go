package pigment

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"sync"
	"time"

	"github.com/klauspost/compress/flate"
)

const (
	// GridSize is the number of samples along each RGB axis of the table.
	GridSize = 64

	// HeaderSize is the number of leading asset bytes skipped before the
	// deflate stream.
	HeaderSize = 192

	planeSize = GridSize * GridSize * GridSize

	// payloadSize is the inflated stream length: a 192 byte lead followed
	// by three concentration planes.
	payloadSize = planeSize*3 + 192

	// lutLen leaves room for the +1 neighbor of the last cell on every axis.
	lutLen = planeSize*3 + 4353

	deltaBaseline = 127
	rowLen        = 64
)

// offsets of the three concentration planes within the table.
const (
	plane0 = 192
	plane1 = plane0 + planeSize
	plane2 = plane1 + planeSize
)

// ErrCorruptLUT is returned when the table asset is missing, truncated
// or does not inflate to the expected size.
var ErrCorruptLUT = errors.New("pigment: corrupt lookup table")

//go:embed lut.dat
var lutAsset []byte

// LUT is the decoded 64x64x64 table of pigment concentrations sampled
// over RGB space. It is never modified after LoadLUT returns, so a
// single LUT can be read from any number of goroutines.
type LUT struct {
	data []byte
}

// LoadLUT reads a table asset: a 192 byte header followed by a raw
// deflate stream. The inflated samples are delta decoded along rows of 64.
func LoadLUT(r io.Reader) (*LUT, error) {
	if _, e := io.CopyN(io.Discard, r, HeaderSize); e != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrCorruptLUT, e)
	}

	fr := flate.NewReader(r)
	defer fr.Close()

	data := make([]byte, lutLen)
	n, e := io.ReadFull(fr, data[:payloadSize])
	if e != nil {
		return nil, fmt.Errorf("%w: inflated %d of %d bytes: %v", ErrCorruptLUT, n, payloadSize, e)
	}
	// the stream must end exactly at payloadSize
	var extra [1]byte
	if m, _ := fr.Read(extra[:]); m != 0 {
		return nil, fmt.Errorf("%w: payload longer than %d bytes", ErrCorruptLUT, payloadSize)
	}

	deltaDecode(data)
	return &LUT{data: data}, nil
}

// deltaDecode turns stored row differences into absolute samples. Every
// row of 64 starts over from the baseline; arithmetic wraps modulo 256.
func deltaDecode(data []byte) {
	for i := range data {
		prev := byte(deltaBaseline)
		if i%rowLen != 0 {
			prev = data[i-1]
		}
		data[i] = prev + data[i] - deltaBaseline
	}
}

var defaultLUT = sync.OnceValues(func() (*LUT, error) {
	start := time.Now()
	lut, e := LoadLUT(bytes.NewReader(lutAsset))
	if e != nil {
		Logger().Error("decoding embedded lookup table", "err", e)
		return nil, e
	}
	Logger().Debug("decoded lookup table",
		"asset", len(lutAsset), "size", len(lut.data), "elapsed", time.Since(start))
	return lut, nil
})

// DefaultLUT returns the table embedded in the package. It is decoded
// once, on first use.
func DefaultLUT() (*LUT, error) {
	return defaultLUT()
}

// MustDefaultLUT is like DefaultLUT but panics if the embedded asset
// cannot be decoded. No conversion is possible without it.
func MustDefaultLUT() *LUT {
	lut, e := defaultLUT()
	if e != nil {
		panic(e)
	}
	return lut
}

// At returns the stored sample of concentration plane (0, 1 or 2) at
// grid position x, y, z, each in [0, GridSize).
func (l *LUT) At(plane, x, y, z int) uint8 {
	return l.data[plane0+plane*planeSize+x+y*GridSize+z*GridSize*GridSize]
}

// Checksum returns the CRC-32 (IEEE) of the decoded table.
func (l *LUT) Checksum() uint32 {
	return crc32.ChecksumIEEE(l.data)
}
