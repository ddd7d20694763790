// Package entropy sources 64-bit seed material from the operating system,
// with a wall-clock derivation for hosts where the entropy source fails.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"

	"github.com/coder/quartz"
)

// Clock supplies the wall time for ClockSeed. Tests swap in a mock.
var Clock quartz.Clock = quartz.NewReal()

// Read returns 8 bytes of OS entropy as a uint64.
func Read() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ClockSeed derives a seed from the wall clock: the number of nanoseconds
// since the Unix epoch is computed as a 128-bit count and its high and low
// halves are XORed together.
func ClockSeed() uint64 {
	t := Clock.Now()
	hi, lo := bits.Mul64(uint64(t.Unix()), 1e9)
	var carry uint64
	lo, carry = bits.Add64(lo, uint64(t.Nanosecond()), 0)
	hi += carry
	return hi ^ lo
}
