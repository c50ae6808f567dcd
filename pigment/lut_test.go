package pigment

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deflate builds an asset from a raw payload: zero header plus raw deflate.
func deflate(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, HeaderSize))
	w, e := flate.NewWriter(&buf, flate.BestSpeed)
	require.NoError(t, e)
	_, e = w.Write(payload)
	require.NoError(t, e)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDefaultLUT(t *testing.T) {
	lut, e := DefaultLUT()
	require.NoError(t, e)
	assert.Len(t, lut.data, lutLen)
	assert.Equal(t, 64*64*64*3+4353, len(lut.data))

	again, e := DefaultLUT()
	require.NoError(t, e)
	assert.Same(t, lut, again)
}

func TestLUTSamples(t *testing.T) {
	lut := MustDefaultLUT()
	assert.Equal(t, uint8(124), lut.At(0, 0, 0, 0))
	assert.Equal(t, uint8(67), lut.At(1, 0, 0, 0))
	assert.Equal(t, uint8(63), lut.At(2, 0, 0, 0))
	assert.Equal(t, uint8(0), lut.At(0, 63, 0, 0))
	assert.Equal(t, uint8(128), lut.At(0, 1, 2, 3))
	assert.Equal(t, uint8(54), lut.At(1, 5, 7, 9))
	assert.Equal(t, uint8(0), lut.At(2, 63, 63, 63))
}

func TestLUTDeterministic(t *testing.T) {
	a, e := LoadLUT(bytes.NewReader(lutAsset))
	require.NoError(t, e)
	b, e := LoadLUT(bytes.NewReader(lutAsset))
	require.NoError(t, e)

	assert.Equal(t, a.data, b.data)
	assert.Equal(t, uint32(0xcfbc236c), a.Checksum())
	assert.Equal(t, MustDefaultLUT().Checksum(), a.Checksum())
}

func TestDeltaDecode(t *testing.T) {
	data := make([]byte, 2*rowLen)
	for i := range data {
		data[i] = deltaBaseline + 1
	}
	data[rowLen] = deltaBaseline + 5
	data[rowLen+1] = deltaBaseline - 10

	deltaDecode(data)

	assert.Equal(t, byte(128), data[0])
	assert.Equal(t, byte(129), data[1])
	assert.Equal(t, byte(127+64), data[rowLen-1])
	// rows restart from the baseline
	assert.Equal(t, byte(132), data[rowLen])
	assert.Equal(t, byte(122), data[rowLen+1])
	assert.Equal(t, byte(123), data[rowLen+2])
}

func TestDeltaDecodeWraps(t *testing.T) {
	data := []byte{deltaBaseline - 128 + 1, 0}
	deltaDecode(data)
	assert.Equal(t, byte(0), data[0])
	assert.Equal(t, byte(129), data[1])
}

func TestLoadLUTSynthetic(t *testing.T) {
	payload := bytes.Repeat([]byte{deltaBaseline}, payloadSize)
	lut, e := LoadLUT(bytes.NewReader(deflate(t, payload)))
	require.NoError(t, e)
	assert.Equal(t, uint8(127), lut.At(0, 10, 20, 30))
	assert.Equal(t, uint8(127), lut.At(2, 63, 63, 63))
}

func TestLoadLUTErrors(t *testing.T) {
	tests := []struct {
		name  string
		asset []byte
	}{
		{"empty", nil},
		{"header only", make([]byte, HeaderSize)},
		{"not deflate", append(make([]byte, HeaderSize), bytes.Repeat([]byte{0xff}, 64)...)},
		{"truncated", lutAsset[:len(lutAsset)/2]},
		{"short payload", deflate(t, make([]byte, payloadSize-1))},
		{"long payload", deflate(t, make([]byte, payloadSize+1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lut, e := LoadLUT(bytes.NewReader(tt.asset))
			assert.Nil(t, lut)
			assert.True(t, errors.Is(e, ErrCorruptLUT), "got %v", e)
		})
	}
}

func TestTexture(t *testing.T) {
	lut := MustDefaultLUT()
	img := lut.Texture()
	require.Equal(t, TextureSize, img.Bounds().Dx())
	require.Equal(t, TextureSize, img.Bounds().Dy())

	// blue level 9 lives in tile (1, 1)
	c := img.NRGBAAt(64+5, 64+7)
	assert.Equal(t, lut.At(0, 5, 7, 9), c.R)
	assert.Equal(t, uint8(54), c.G)
	assert.Equal(t, lut.At(2, 5, 7, 9), c.B)
	assert.Equal(t, uint8(255), c.A)
}
