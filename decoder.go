package piodecode

// destPC and destISR are table indices shared by the OUT and MOV
// destination tables, where the RP2040 encoding happens to agree: both
// classes put the program counter at index 5 and the ISR at index 6.
const (
	destPC  = 5
	destISR = 6
)

// inSources is indexed by opcode[7:5] for an IN instruction. Unlike the
// MOV/SET tables below, none of its entries are absent: a
// datasheet-reserved IN source still decodes, it just reads zero (see
// reservedSource).
var inSources = [8]Source{
	ReadFromPins,
	ReadFromX,
	ReadFromY,
	SuppliesValue(0),
	reservedSource,
	reservedSource,
	ReadFromISR,
	ReadFromOSR,
}

// outDestinations is indexed by opcode[7:5] for an OUT instruction. A
// nil entry (only "exec", the unimplemented OUT-to-EXEC path) makes
// Decode return no Instruction.
var outDestinations = [8]Destination{
	WriteToPins,
	WriteToX,
	WriteToY,
	WriteToNull,
	WriteToPinDirections,
	WriteToProgramCounter,
	WriteToISR,
	nil, // exec: unimplemented
}

// movSources is indexed by opcode[2:0] for a MOV instruction. Indices 4
// (reserved) and 5 (status, unimplemented) are nil, matching the
// "MOV with source index 4 or 5 returns absent" testable property.
var movSources = [8]Source{
	ReadFromPins,
	ReadFromX,
	ReadFromY,
	SuppliesValue(0),
	nil, // reserved
	nil, // status: unimplemented
	ReadFromISR,
	ReadFromOSR,
}

// movDestinations is indexed by opcode[7:5] for a MOV instruction.
// Indices 3 (reserved) and 4 (exec, unimplemented) are nil.
var movDestinations = [8]Destination{
	WriteToPins,
	WriteToX,
	WriteToY,
	nil, // reserved
	nil, // exec: unimplemented
	WriteToProgramCounter,
	WriteToISR,
	WriteToOSR,
}

// setDestinations is indexed by opcode[7:5] for a SET instruction.
// Indices 3, 5, 6 and 7 are reserved encodings and are nil.
var setDestinations = [8]Destination{
	WriteToPins,
	WriteToX,
	WriteToY,
	nil, // reserved
	WriteToPinDirections,
	nil, // reserved
	nil, // reserved
	nil, // reserved
}

// Decode decodes a 16-bit opcode, dispatching on its top 3 bits to one
// of the eight instruction classes. It returns ok == false if the
// opcode encodes the IRQ class (unimplemented by this core) or a
// reserved/unimplemented source or destination slot within a class.
// IN's reserved sources are the exception: they decode and read zero
// (see inSources).
func (d *Decoder) Decode(opcode uint16) (instr Instruction, ok bool) {
	switch (opcode >> 13) & 7 {
	case 0:
		return d.decodeJMP(opcode)
	case 1:
		return decodeWAIT(opcode)
	case 2:
		return d.decodeIN(opcode)
	case 3:
		return d.decodeOUT(opcode)
	case 4:
		return decodePushPull(opcode)
	case 5:
		return decodeMOV(opcode)
	case 6:
		return Instruction{}, false // IRQ: unimplemented
	default: // 7
		return decodeSET(opcode)
	}
}

func (d *Decoder) decodeJMP(opcode uint16) (Instruction, bool) {
	address := uint32(opcode & 0x1F)
	condition := d.jmpCond[(opcode>>5)&7]

	effect := func(s State) State {
		return WriteToProgramCounter(SuppliesValue(address), s)
	}

	return Instruction{condition, effect, PCAdvanceWhenConditionNotMet}, true
}

func decodeWAIT(opcode uint16) (Instruction, bool) {
	index := uint8(opcode & 0x1F)

	var condition Condition
	if opcode&0x0080 != 0 {
		condition = GPIOHigh(index)
	} else {
		condition = GPIOLow(index)
	}

	identity := func(s State) State { return s }

	return Instruction{condition, identity, PCAdvanceWhenConditionMet}, true
}

func (d *Decoder) decodeIN(opcode uint16) (Instruction, bool) {
	source := inSources[(opcode>>5)&7]
	bitCount := bitCountField(opcode)

	effect := func(s State) State {
		isr, _ := d.cfg.ISR.ShiftIn(s.InputShiftRegister, source(s), bitCount)
		s.InputShiftRegister = isr
		return s
	}

	return Instruction{Always, effect, PCAdvanceAlways}, true
}

func (d *Decoder) decodeOUT(opcode uint16) (Instruction, bool) {
	destIndex := (opcode >> 5) & 7
	destination := outDestinations[destIndex]
	if destination == nil {
		return Instruction{}, false
	}
	bitCount := bitCountField(opcode)

	effect := func(s State) State {
		osr, extracted := d.cfg.OSR.ShiftOut(s.OutputShiftRegister, bitCount)
		s.OutputShiftRegister = osr

		// Somewhat hacky workaround: OUT to ISR also resets the ISR
		// shift counter to bitCount, a side effect no other ISR writer
		// has. See RP2040 datasheet section 3.4.5.2.
		if destIndex == destISR {
			return WriteToISRResettingCounter(SuppliesValue(extracted), s, bitCount)
		}
		return destination(SuppliesValue(extracted), s)
	}

	pcAdvance := PCAdvanceAlways
	if destIndex == destPC {
		pcAdvance = PCAdvanceNever
	}
	return Instruction{Always, effect, pcAdvance}, true
}

func decodeMOV(opcode uint16) (Instruction, bool) {
	source := movSources[opcode&7]
	destIndex := (opcode >> 5) & 7
	destination := movDestinations[destIndex]
	if source == nil || destination == nil {
		return Instruction{}, false
	}

	supplier := source
	if (opcode>>3)&3 == 1 {
		supplier = func(s State) uint32 { return source(s) ^ 0xFFFF_FFFF }
	}

	effect := func(s State) State { return destination(supplier, s) }

	pcAdvance := PCAdvanceAlways
	if destIndex == destPC {
		pcAdvance = PCAdvanceNever
	}
	return Instruction{Always, effect, pcAdvance}, true
}

func decodeSET(opcode uint16) (Instruction, bool) {
	destination := setDestinations[(opcode>>5)&7]
	if destination == nil {
		return Instruction{}, false
	}

	value := uint32(opcode & 0x1F)
	effect := func(s State) State { return destination(SuppliesValue(value), s) }

	return Instruction{Always, effect, PCAdvanceAlways}, true
}

func decodePushPull(opcode uint16) (Instruction, bool) {
	if opcode&0x0080 != 0 { // PULL
		if opcode&0x0020 != 0 {
			return Instruction{TransmitFIFONotEmpty, PullBlocking, PCAdvanceWhenConditionMet}, true
		}
		return Instruction{Always, PullNonblocking, PCAdvanceAlways}, true
	}
	// PUSH
	if opcode&0x0020 != 0 {
		return Instruction{ReceiveFIFONotFull, PushBlocking, PCAdvanceWhenConditionMet}, true
	}
	return Instruction{Always, PushNonblocking, PCAdvanceAlways}, true
}

// bitCountField reads opcode[4:0] as a shift-register bit count, where
// the all-zero encoding means 32 rather than 0 (every IN/OUT instruction
// must move at least one bit).
func bitCountField(opcode uint16) uint8 {
	bitCount := uint8(opcode & 0x1F)
	if bitCount == 0 {
		return 32
	}
	return bitCount
}

// pushEffect moves the ISR's contents to the tail of the receive FIFO
// and clears the ISR, matching the RP2040's behavior on PUSH whether or
// not the FIFO had room: a full FIFO silently drops the word and sets a
// sticky overflow flag this core does not model — that belongs to the
// executor, not the decoder.
func pushEffect(s State) State {
	if fifo, ok := s.ReceiveFIFO.Push(s.InputShiftRegister.Contents); ok {
		s.ReceiveFIFO = fifo
	}
	s.InputShiftRegister = ShiftRegister{}
	return s
}

// pullEffect fills the OSR from the head of the transmit FIFO. If the
// FIFO is empty, X is copied into the OSR instead, matching the
// RP2040's documented PULL-with-empty-FIFO fallback.
func pullEffect(s State) State {
	if fifo, v, ok := s.TransmitFIFO.Pop(); ok {
		s.TransmitFIFO = fifo
		s.OutputShiftRegister = ShiftRegister{Contents: v, Counter: 0}
		return s
	}
	s.OutputShiftRegister = ShiftRegister{Contents: s.XRegister, Counter: 0}
	return s
}

// PushBlocking and PushNonblocking differ only in the PCAdvance policy
// Decode pairs them with; the data movement they perform is identical.
var (
	PushBlocking    Effect = pushEffect
	PushNonblocking Effect = pushEffect
	PullBlocking    Effect = pullEffect
	PullNonblocking Effect = pullEffect
)
