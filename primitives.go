package piodecode

// Source reads a 32-bit word out of a State without modifying it. It is
// the first argument to every Destination.
type Source func(State) uint32

// Destination applies a Source's value to one field of a State and
// returns the resulting State. Ordering is significant: a Destination
// always evaluates its Source before producing the new State (see
// WriteToNull), so the read always happens before the write.
type Destination func(Source, State) State

// ReadFromPins reads the GPIO input levels.
func ReadFromPins(s State) uint32 { return s.PinValues }

// ReadFromX reads the X scratch register.
func ReadFromX(s State) uint32 { return s.XRegister }

// ReadFromY reads the Y scratch register.
func ReadFromY(s State) uint32 { return s.YRegister }

// ReadFromISR reads the input shift register's contents.
func ReadFromISR(s State) uint32 { return s.InputShiftRegister.Contents }

// ReadFromOSR reads the output shift register's contents.
func ReadFromOSR(s State) uint32 { return s.OutputShiftRegister.Contents }

// SuppliesValue returns a Source that ignores the State and always
// reads the given constant, used to feed a literal (a JMP address, a
// SET value, or an already-shifted OUT word) through a Destination.
func SuppliesValue(v uint32) Source {
	return func(State) uint32 { return v }
}

// reservedSource stands in for a datasheet-reserved encoding that this
// core still decodes (see Decoder.Decode's IN handling): it is total
// and side-effect free, always reading zero, rather than making
// decoding of an otherwise-valid IN opcode fail.
func reservedSource(State) uint32 { return 0 }

// WriteToPins writes src's value to the GPIO output levels.
func WriteToPins(src Source, s State) State {
	s.PinValues = src(s)
	return s
}

// WriteToX writes src's value to the X scratch register.
func WriteToX(src Source, s State) State {
	s.XRegister = src(s)
	return s
}

// WriteToY writes src's value to the Y scratch register.
func WriteToY(src Source, s State) State {
	s.YRegister = src(s)
	return s
}

// WriteToPinDirections writes src's value to the GPIO direction bitmap.
func WriteToPinDirections(src Source, s State) State {
	s.PinDirections = src(s)
	return s
}

// WriteToProgramCounter writes src's value to the program counter,
// masked to the valid 5-bit address range.
func WriteToProgramCounter(src Source, s State) State {
	s.ProgramCounter = uint8(src(s)) & 0x1F
	return s
}

// WriteToISR writes src's value to the input shift register's contents
// without touching its bit counter. OUT's special ISR-counter-reset
// behavior is implemented separately by WriteToISRResettingCounter,
// since no other writer of the ISR has that side effect.
func WriteToISR(src Source, s State) State {
	s.InputShiftRegister.Contents = src(s)
	return s
}

// WriteToISRResettingCounter is WriteToISR plus the OUT-to-ISR side
// effect described in RP2040 datasheet 3.4.5.2: the ISR shift counter
// is set to bitCount, not to 0 or 32. Preserve this exactly; it looks
// like a workaround but is the specified behavior.
func WriteToISRResettingCounter(src Source, s State, bitCount uint8) State {
	s = WriteToISR(src, s)
	s.InputShiftRegister.Counter = bitCount
	return s
}

// WriteToOSR writes src's value to the output shift register's
// contents without touching its bit counter.
func WriteToOSR(src Source, s State) State {
	s.OutputShiftRegister.Contents = src(s)
	return s
}

// WriteToNull evaluates src for its ordering guarantee and discards the
// result, implementing OUT/MOV to the null destination.
func WriteToNull(src Source, s State) State {
	_ = src(s)
	return s
}
