/*
Package codec converts scalar sort keys into unsigned integers whose
natural order is the order of the keys.

Radix-based algorithms cannot process signed integers or IEEE floats
byte by byte directly: the sign bit of a two's complement integer
sorts negative values after positive ones, and negative floats are
stored as sign and magnitude. The encoders in this package fix both
problems with a single exclusive-or, so that for all keys a and b,
a < b if and only if Encode(a) < Encode(b).

NaN values are not treated specially. They are encoded like any other
bit pattern, so the relative order of NaNs, and of NaNs with respect
to other values, is whatever their raw bits imply.
*/
package codec

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Key is the set of scalar types that can be used as sort keys.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Width returns the size of K in bytes, which is also the number of
// significant bytes in its encoded form.
func Width[K Key]() int {
	var k K
	return int(unsafe.Sizeof(k))
}

// NthByte returns byte n of an encoded key, where byte 0 is the least
// significant one.
func NthByte(u uint64, n int) uint8 {
	return uint8(u >> (8 * uint(n)))
}

// Uint8 encodes an uint8 key. Unsigned keys are their own encoding.
func Uint8(k uint8) uint8 { return k }

// Uint16 encodes an uint16 key.
func Uint16(k uint16) uint16 { return k }

// Uint32 encodes an uint32 key.
func Uint32(k uint32) uint32 { return k }

// Uint64 encodes an uint64 key.
func Uint64(k uint64) uint64 { return k }

// Int8 encodes an int8 key by flipping its sign bit.
func Int8(k int8) uint8 { return uint8(k) ^ 1<<7 }

// Int16 encodes an int16 key by flipping its sign bit.
func Int16(k int16) uint16 { return uint16(k) ^ 1<<15 }

// Int32 encodes an int32 key by flipping its sign bit.
func Int32(k int32) uint32 { return uint32(k) ^ 1<<31 }

// Int64 encodes an int64 key by flipping its sign bit.
func Int64(k int64) uint64 { return uint64(k) ^ 1<<63 }

// Float32 encodes a float32 key. Non-negative values get their sign
// bit set, negative values have all their bits complemented.
func Float32(f float32) uint32 {
	u := math.Float32bits(f)
	mask := uint32(int32(u) >> 31)
	return u ^ (mask | 1<<31)
}

// Float64 encodes a float64 key. Non-negative values get their sign
// bit set, negative values have all their bits complemented.
func Float64(f float64) uint64 {
	u := math.Float64bits(f)
	mask := uint64(int64(u) >> 63)
	return u ^ (mask | 1<<63)
}

// DecodeInt8 is the inverse of Int8.
func DecodeInt8(u uint8) int8 { return int8(u ^ 1<<7) }

// DecodeInt16 is the inverse of Int16.
func DecodeInt16(u uint16) int16 { return int16(u ^ 1<<15) }

// DecodeInt32 is the inverse of Int32.
func DecodeInt32(u uint32) int32 { return int32(u ^ 1<<31) }

// DecodeInt64 is the inverse of Int64.
func DecodeInt64(u uint64) int64 { return int64(u ^ 1<<63) }

// DecodeFloat32 is the inverse of Float32.
func DecodeFloat32(u uint32) float32 {
	if u&(1<<31) != 0 {
		return math.Float32frombits(u ^ 1<<31)
	}
	return math.Float32frombits(^u)
}

// DecodeFloat64 is the inverse of Float64.
func DecodeFloat64(u uint64) float64 {
	if u&(1<<63) != 0 {
		return math.Float64frombits(u ^ 1<<63)
	}
	return math.Float64frombits(^u)
}

/*
Encoder returns the encoding function for keys of type K, widened to
uint64. Only the low Width[K]() bytes of the result are significant;
the others are always zero.

The encoder is selected once by the underlying kind of K, so named
types such as

	type Celsius float64

are encoded like their underlying type. Callers that encode many keys
should obtain the encoder once and reuse it.
*/
func Encoder[K Key]() func(K) uint64 {
	var zero K
	switch kind := reflect.TypeOf(zero).Kind(); kind {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uint, reflect.Uintptr:
		return func(k K) uint64 { return uint64(k) }
	case reflect.Int8:
		return func(k K) uint64 { return uint64(Int8(int8(k))) }
	case reflect.Int16:
		return func(k K) uint64 { return uint64(Int16(int16(k))) }
	case reflect.Int32:
		return func(k K) uint64 { return uint64(Int32(int32(k))) }
	case reflect.Int64:
		return func(k K) uint64 { return Int64(int64(k)) }
	case reflect.Int:
		if Width[K]() == 4 {
			return func(k K) uint64 { return uint64(Int32(int32(k))) }
		}
		return func(k K) uint64 { return Int64(int64(k)) }
	case reflect.Float32:
		return func(k K) uint64 { return uint64(Float32(float32(k))) }
	case reflect.Float64:
		return func(k K) uint64 { return Float64(float64(k)) }
	default:
		panic(fmt.Sprintf("unsupported key kind: %v", kind))
	}
}

// Encode encodes a single key. It is a convenience for occasional use;
// loops should call Encoder once and reuse the returned function.
func Encode[K Key](k K) uint64 {
	return Encoder[K]()(k)
}

// Project composes a key function with the encoder for its key type,
// yielding a function that maps elements directly to encoded keys.
func Project[V any, K Key](key func(V) K) func(V) uint64 {
	enc := Encoder[K]()
	return func(v V) uint64 {
		return enc(key(v))
	}
}
