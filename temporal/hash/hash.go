// Package hash implements the PostgreSQL hash functions for integers, floats,
// and byte strings. The results match those of PostgreSQL on little-endian
// hardware, so values hashed here partition and join the same way they do
// in the database.
//
// The algorithm is Bob Jenkins' lookup3 hashlittle(), as adapted by
// PostgreSQL. Every function comes in two forms: a 32-bit hash, and an
// "extended" 64-bit hash that takes a seed. A seed of zero produces the
// 32-bit hash in the low 32 bits of the extended hash.
package hash

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// nanBits is the bit pattern of the canonical float64 NaN. All NaNs hash to
// its hash value.
const nanBits = 0x7FF8000000000000

// golden is the lookup3 initialization constant plus the PostgreSQL salt.
const golden = 0x9e3779b9 + 3923095

func rot(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, k)
}

// mix reversibly mixes three 32-bit values.
func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= rot(c, 4)
	c += b
	b -= a
	b ^= rot(a, 6)
	a += c
	c -= b
	c ^= rot(b, 8)
	b += a
	a -= c
	a ^= rot(c, 16)
	c += b
	b -= a
	b ^= rot(a, 19)
	a += c
	c -= b
	c ^= rot(b, 4)
	b += a
	return a, b, c
}

// final irreversibly mixes three 32-bit values into c.
func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= rot(b, 14)
	a ^= c
	a -= rot(c, 11)
	b ^= a
	b -= rot(a, 25)
	c ^= b
	c -= rot(b, 16)
	a ^= c
	a -= rot(c, 4)
	b ^= a
	b -= rot(a, 14)
	c ^= b
	c -= rot(b, 24)
	return a, b, c
}

// seeded returns the initial state for hashing size bytes with seed.
func seeded(size int, seed uint64) (uint32, uint32, uint32) {
	a := uint32(golden) + uint32(size) //nolint:gosec
	b, c := a, a
	if seed != 0 {
		a += uint32(seed >> 32)
		b += uint32(seed) //nolint:gosec
		a, b, c = mix(a, b, c)
	}
	return a, b, c
}

// bytes hashes key from the initial state a, b, c.
//
// https://github.com/postgres/postgres/blob/REL_17_2/src/common/hashfn.c
func bytes(key []byte, a, b, c uint32) (uint32, uint32, uint32) {
	for len(key) >= 12 {
		a += binary.LittleEndian.Uint32(key)
		b += binary.LittleEndian.Uint32(key[4:])
		c += binary.LittleEndian.Uint32(key[8:])
		a, b, c = mix(a, b, c)
		key = key[12:]
	}

	// The low byte of c is reserved for the length.
	switch len(key) {
	case 11:
		c += uint32(key[10]) << 24
		fallthrough
	case 10:
		c += uint32(key[9]) << 16
		fallthrough
	case 9:
		c += uint32(key[8]) << 8
		fallthrough
	case 8:
		b += uint32(key[7]) << 24
		fallthrough
	case 7:
		b += uint32(key[6]) << 16
		fallthrough
	case 6:
		b += uint32(key[5]) << 8
		fallthrough
	case 5:
		b += uint32(key[4])
		fallthrough
	case 4:
		a += uint32(key[3]) << 24
		fallthrough
	case 3:
		a += uint32(key[2]) << 16
		fallthrough
	case 2:
		a += uint32(key[1]) << 8
		fallthrough
	case 1:
		a += uint32(key[0])
	}

	return final(a, b, c)
}

// Bytes returns the 32-bit hash of key, as PostgreSQL's hash_any().
func Bytes(key []byte) uint32 {
	a, b, c := seeded(len(key), 0)
	_, _, c = bytes(key, a, b, c)
	return c
}

// BytesExtended returns the 64-bit hash of key with seed, as PostgreSQL's
// hash_any_extended().
func BytesExtended(key []byte, seed uint64) uint64 {
	a, b, c := seeded(len(key), seed)
	_, b, c = bytes(key, a, b, c)
	return uint64(b)<<32 | uint64(c)
}

// Uint32 returns the 32-bit hash of k. It produces the same result as
// hashing the four little-endian bytes of k with Bytes.
func Uint32(k uint32) uint32 {
	a, b, c := seeded(4, 0)
	a += k
	_, _, c = final(a, b, c)
	return c
}

// Uint32Extended returns the 64-bit hash of k with seed.
func Uint32Extended(k uint32, seed uint64) uint64 {
	a, b, c := seeded(4, seed)
	a += k
	_, b, c = final(a, b, c)
	return uint64(b)<<32 | uint64(c)
}

// fold folds an int64 into 32 bits so that values that fit in an int32
// hash the same as the int32.
func fold(v int64) uint32 {
	lo := uint32(v) //nolint:gosec
	hi := uint32(v >> 32)
	if v >= 0 {
		return lo ^ hi
	}
	return lo ^ ^hi
}

// Int64 returns the 32-bit hash of v, as PostgreSQL's hashint8(). Values
// within the int32 range hash the same as Int32.
//
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/access/hash/hashfunc.c
func Int64(v int64) uint32 {
	return Uint32(fold(v))
}

// Int64Extended returns the 64-bit hash of v with seed.
func Int64Extended(v int64, seed uint64) uint64 {
	return Uint32Extended(fold(v), seed)
}

// Int32 returns the 32-bit hash of v, as PostgreSQL's hashint4().
func Int32(v int32) uint32 {
	return Uint32(uint32(v)) //nolint:gosec
}

// Int32Extended returns the 64-bit hash of v with seed.
func Int32Extended(v int32, seed uint64) uint64 {
	return Uint32Extended(uint32(v), seed) //nolint:gosec
}

// Int16 returns the 32-bit hash of v, as PostgreSQL's hashint2().
func Int16(v int16) uint32 {
	return Int32(int32(v))
}

// Int16Extended returns the 64-bit hash of v with seed.
func Int16Extended(v int16, seed uint64) uint64 {
	return Int32Extended(int32(v), seed)
}

// floatBytes returns the little-endian bytes of f, with every NaN replaced
// by the canonical NaN.
func floatBytes(f float64) []byte {
	u := math.Float64bits(f)
	if math.IsNaN(f) {
		u = nanBits
	}
	return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), u)
}

// Float64 returns the 32-bit hash of f, as PostgreSQL's hashfloat8(). Zero
// and negative zero hash to 0, and all NaNs hash the same.
func Float64(f float64) uint32 {
	if f == 0 {
		return 0
	}
	return Bytes(floatBytes(f))
}

// Float64Extended returns the 64-bit hash of f with seed. Zero and negative
// zero hash to seed.
func Float64Extended(f float64, seed uint64) uint64 {
	if f == 0 {
		return seed
	}
	return BytesExtended(floatBytes(f), seed)
}

// Float32 returns the 32-bit hash of f, as PostgreSQL's hashfloat4(). It
// hashes f widened to float64, so a float32 and float64 with the same value
// hash the same.
func Float32(f float32) uint32 {
	return Float64(float64(f))
}

// Text returns the 32-bit hash of the bytes of s, as PostgreSQL's
// hashtext() with a deterministic collation.
func Text(s string) uint32 {
	return Bytes([]byte(s))
}

// TextExtended returns the 64-bit hash of the bytes of s with seed.
func TextExtended(s string, seed uint64) uint64 {
	return BytesExtended([]byte(s), seed)
}
