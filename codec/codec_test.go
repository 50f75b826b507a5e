package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type celsius float64

type level int16

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, Width[int8]())
	assert.Equal(t, 2, Width[uint16]())
	assert.Equal(t, 4, Width[float32]())
	assert.Equal(t, 8, Width[float64]())
	assert.Equal(t, 8, Width[celsius]())
	assert.Equal(t, 2, Width[level]())
}

func TestNthByte(t *testing.T) {
	u := uint64(0x0807060504030201)
	for n := 0; n < 8; n++ {
		assert.Equal(t, uint8(n+1), NthByte(u, n))
	}
}

func assertStrictlyIncreasing(t *testing.T, encoded []uint64) {
	t.Helper()
	for i := 1; i < len(encoded); i++ {
		assert.Less(t, encoded[i-1], encoded[i], "boundary %d", i)
	}
}

func TestIntegerBoundaries(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		keys := []int8{math.MinInt8, -1, 0, 1, math.MaxInt8}
		var enc []uint64
		for _, k := range keys {
			enc = append(enc, Encode(k))
		}
		assertStrictlyIncreasing(t, enc)
		assert.Equal(t, uint64(0), enc[0])
		assert.Equal(t, uint64(math.MaxUint8), enc[len(enc)-1])
	})
	t.Run("int16", func(t *testing.T) {
		keys := []int16{math.MinInt16, -1, 0, 1, math.MaxInt16}
		var enc []uint64
		for _, k := range keys {
			enc = append(enc, Encode(k))
		}
		assertStrictlyIncreasing(t, enc)
	})
	t.Run("int32", func(t *testing.T) {
		keys := []int32{math.MinInt32, -1, 0, 1, math.MaxInt32}
		var enc []uint64
		for _, k := range keys {
			enc = append(enc, Encode(k))
		}
		assertStrictlyIncreasing(t, enc)
		assert.Equal(t, uint64(1<<31), enc[2])
	})
	t.Run("int64", func(t *testing.T) {
		keys := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
		var enc []uint64
		for _, k := range keys {
			enc = append(enc, Encode(k))
		}
		assertStrictlyIncreasing(t, enc)
		assert.Equal(t, uint64(math.MaxUint64), enc[len(enc)-1])
	})
	t.Run("int", func(t *testing.T) {
		keys := []int{math.MinInt, -1, 0, 1, math.MaxInt}
		var enc []uint64
		for _, k := range keys {
			enc = append(enc, Encode(k))
		}
		assertStrictlyIncreasing(t, enc)
	})
}

func TestFloatBoundaries(t *testing.T) {
	negZero32 := float32(math.Copysign(0, -1))
	keys32 := []float32{float32(math.Inf(-1)), -math.MaxFloat32, -1, -math.SmallestNonzeroFloat32,
		negZero32, 0, math.SmallestNonzeroFloat32, 1, math.MaxFloat32, float32(math.Inf(1))}
	var enc32 []uint64
	for _, k := range keys32 {
		enc32 = append(enc32, Encode(k))
	}
	assertStrictlyIncreasing(t, enc32)

	negZero := math.Copysign(0, -1)
	keys64 := []float64{math.Inf(-1), -math.MaxFloat64, -1, -math.SmallestNonzeroFloat64,
		negZero, 0, math.SmallestNonzeroFloat64, 1, math.MaxFloat64, math.Inf(1)}
	var enc64 []uint64
	for _, k := range keys64 {
		enc64 = append(enc64, Encode(k))
	}
	assertStrictlyIncreasing(t, enc64)
	assert.Equal(t, uint64(1<<63), Float64(0))
	assert.Equal(t, uint64(1<<63)-1, Float64(negZero))
}

func TestNamedTypes(t *testing.T) {
	assert.Equal(t, Float64(-2.5), Encode(celsius(-2.5)))
	assert.Equal(t, uint64(Int16(-7)), Encode(level(-7)))
}

func TestProject(t *testing.T) {
	type reading struct {
		id   int
		temp celsius
	}
	ukey := Project(func(r reading) celsius { return r.temp })
	assert.Less(t, ukey(reading{1, -10}), ukey(reading{2, 3}))
	assert.Equal(t, Float64(3), ukey(reading{2, 3}))
}

func TestSignedOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64().Draw(t, "a")
		b := rapid.Int64().Draw(t, "b")
		if a < b {
			require.Less(t, Int64(a), Int64(b))
		}
		require.Equal(t, a, DecodeInt64(Int64(a)))

		c := rapid.Int16().Draw(t, "c")
		d := rapid.Int16().Draw(t, "d")
		if c < d {
			require.Less(t, Int16(c), Int16(d))
		}
		require.Equal(t, c, DecodeInt16(Int16(c)))

		e := rapid.Int32().Draw(t, "e")
		f := rapid.Int32().Draw(t, "f")
		if e < f {
			require.Less(t, Int32(e), Int32(f))
		}
		require.Equal(t, e, DecodeInt32(Int32(e)))
	})
}

func TestInt8RoundTrip(t *testing.T) {
	for k := math.MinInt8; k <= math.MaxInt8; k++ {
		assert.Equal(t, int8(k), DecodeInt8(Int8(int8(k))))
		assert.Equal(t, uint8(k-math.MinInt8), Int8(int8(k)))
	}
}

func TestFloatOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64().Draw(t, "a")
		b := rapid.Float64().Draw(t, "b")
		if math.IsNaN(a) || math.IsNaN(b) {
			t.Skip("NaN has no defined order")
		}
		if a < b {
			require.Less(t, Float64(a), Float64(b))
		}
		require.Equal(t, math.Float64bits(a), math.Float64bits(DecodeFloat64(Float64(a))))

		c := rapid.Float32().Draw(t, "c")
		d := rapid.Float32().Draw(t, "d")
		if math.IsNaN(float64(c)) || math.IsNaN(float64(d)) {
			t.Skip("NaN has no defined order")
		}
		if c < d {
			require.Less(t, Float32(c), Float32(d))
		}
		require.Equal(t, math.Float32bits(c), math.Float32bits(DecodeFloat32(Float32(c))))
	})
}
