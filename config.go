package piodecode

import "fmt"

// ShiftConfig carries the ISR and OSR shift directions a Decoder was
// built for. It is the portable, register-free analogue of the
// shiftRight bool that rp2-pio's StateMachineConfig.SetInShift and
// SetOutShift pack into the real SHIFTCTRL register: this core has no
// register to pack into, just a direction to apply.
type ShiftConfig struct {
	ISR ShiftDirection
	OSR ShiftDirection
}

// DefaultShiftConfig matches pio_get_default_sm_config in the C SDK:
// both shift registers configured to shift right.
func DefaultShiftConfig() ShiftConfig {
	return ShiftConfig{ISR: ShiftRight, OSR: ShiftRight}
}

// Decoder turns opcodes into Instructions. It is built once for a given
// shift configuration and JMP pin, and its Decode method may then be
// called concurrently from as many executors as needed (see package
// doc): a Decoder holds no mutable state.
type Decoder struct {
	cfg     ShiftConfig
	jmpPin  uint8
	jmpCond [8]Condition
}

// NewDecoder builds a Decoder for the given shift configuration and the
// GPIO pin that "jmp pin" conditions and instructions branch on.
// jmpPin must be in [0, 31], matching the 5-bit EXECCTRL_JMP_PIN field
// it models; out-of-range values are a construction-time error rather
// than a decode-time one, the same validated-constructor style as
// ClkDivFromPeriod/ClkDivFromFrequency.
func NewDecoder(cfg ShiftConfig, jmpPin uint8) (*Decoder, error) {
	if jmpPin > 31 {
		return nil, fmt.Errorf("piodecode: jmp pin %d out of range [0, 31]", jmpPin)
	}

	d := &Decoder{cfg: cfg, jmpPin: jmpPin}
	d.jmpCond = [8]Condition{
		Always,
		XRegisterEqualsZero,
		XRegisterNotEqualToZero,
		YRegisterEqualsZero,
		YRegisterNotEqualToZero,
		XRegisterNotEqualToYRegister,
		GPIOHigh(jmpPin),
		OutputShiftRegisterNotEmpty,
	}
	return d, nil
}

// JmpPin returns the GPIO pin this Decoder's "jmp pin" condition reads.
func (d *Decoder) JmpPin() uint8 { return d.jmpPin }
