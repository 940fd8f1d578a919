package piodecode

import "fmt"

// ShiftRegister is the value half of the ISR/OSR pair: a 32-bit
// contents word plus a bit counter in [0, 32].
//
// For the ISR the counter tracks how many bits have been shifted in
// since the register was last cleared by a PUSH: ShiftIn adds bitCount
// and saturates at 32. For the OSR the counter starts at 32 (see
// NewState), a PULL sets it to 0, and ShiftOut subtracts bitCount,
// clamping at 0 (see ShiftDirection.ShiftIn / ShiftOut).
type ShiftRegister struct {
	Contents uint32
	Counter  uint8
}

// String renders the register the way a debugger would want it, not
// the way Go's default struct formatting would.
func (sr ShiftRegister) String() string {
	return fmt.Sprintf("{%#08x bits:%d}", sr.Contents, sr.Counter)
}

// ShiftDirection selects which end of the register a shift-in prepends
// to and a shift-out is drawn from. It mirrors the IN_SHIFTDIR and
// OUT_SHIFTDIR bits of the real SHIFTCTRL register, generalized here to
// a pure value rather than a hardware bitfield.
type ShiftDirection uint8

const (
	// ShiftLeft shifts new bits into the low end and drains from the high end.
	ShiftLeft ShiftDirection = iota
	// ShiftRight shifts new bits into the high end and drains from the low end.
	ShiftRight
)

func (d ShiftDirection) String() string {
	if d == ShiftRight {
		return "right"
	}
	return "left"
}

// lowMask returns a mask selecting the low n bits of a 32-bit word,
// with n == 32 correctly producing all-ones (1<<32 would overflow).
func lowMask(n uint8) uint32 {
	if n >= 32 {
		return 0xFFFF_FFFF
	}
	return 1<<n - 1
}

// ShiftIn merges the low bitCount bits of value into sr according to d,
// saturating the bit counter at 32. bitCount must be in [1, 32]. The
// second return value is bitCount itself, echoing the contract the PIO
// decoder is parameterized over (see Decoder.Decode): a shift-in
// method always reports how many bits it consumed.
func (d ShiftDirection) ShiftIn(sr ShiftRegister, value uint32, bitCount uint8) (ShiftRegister, uint8) {
	v := value & lowMask(bitCount)

	var contents uint32
	if d == ShiftLeft {
		contents = sr.Contents<<bitCount | v
	} else {
		contents = sr.Contents>>bitCount | v<<(32-bitCount)
		if bitCount == 32 {
			contents = v
		}
	}

	counter := uint16(sr.Counter) + uint16(bitCount)
	if counter > 32 {
		counter = 32
	}

	return ShiftRegister{Contents: contents, Counter: uint8(counter)}, bitCount
}

// ShiftOut draws the low (ShiftRight) or high (ShiftLeft) bitCount bits
// out of sr, shifting the remainder into their place and decreasing the
// bit counter by bitCount (clamped at 0). bitCount must be in [1, 32].
func (d ShiftDirection) ShiftOut(sr ShiftRegister, bitCount uint8) (ShiftRegister, uint32) {
	var extracted uint32
	var contents uint32
	if d == ShiftRight {
		extracted = sr.Contents & lowMask(bitCount)
		contents = sr.Contents >> bitCount
	} else {
		if bitCount >= 32 {
			extracted = sr.Contents
			contents = 0
		} else {
			extracted = sr.Contents >> (32 - bitCount)
			contents = sr.Contents << bitCount
		}
	}

	counter := int16(sr.Counter) - int16(bitCount)
	if counter < 0 {
		counter = 0
	}

	return ShiftRegister{Contents: contents, Counter: uint8(counter)}, extracted
}
