package piodecode

// DefaultFIFODepth is the depth of an unjoined RP2040 TX/FIFO (4 words).
// FifoJoinTx/FifoJoinRx in a real state machine config doubles this by
// handing one side's 4 slots to the other; callers that model joining
// can construct a FIFO with NewFIFO(2*DefaultFIFODepth) directly.
const DefaultFIFODepth = 4

// FIFO is a bounded, value-semantic queue of 32-bit words. Push and Pop
// never mutate the receiver; they return a new FIFO so that a State
// built from one stays independent of states built from another.
type FIFO struct {
	items []uint32
	depth int
}

// NewFIFO returns an empty FIFO with room for depth words.
func NewFIFO(depth int) FIFO {
	return FIFO{depth: depth}
}

// Len returns the number of words currently queued.
func (f FIFO) Len() int { return len(f.items) }

// Full reports whether the FIFO has no room for another Push.
func (f FIFO) Full() bool { return len(f.items) >= f.depth }

// Empty reports whether the FIFO has nothing left to Pop.
func (f FIFO) Empty() bool { return len(f.items) == 0 }

// Push appends v to the tail of the FIFO. It returns ok == false and the
// receiver unchanged if the FIFO is already full.
func (f FIFO) Push(v uint32) (fifo FIFO, ok bool) {
	if f.Full() {
		return f, false
	}
	items := make([]uint32, len(f.items)+1)
	copy(items, f.items)
	items[len(f.items)] = v
	return FIFO{items: items, depth: f.depth}, true
}

// Pop removes and returns the word at the head of the FIFO. It returns
// ok == false and the receiver unchanged if the FIFO is empty.
func (f FIFO) Pop() (fifo FIFO, value uint32, ok bool) {
	if f.Empty() {
		return f, 0, false
	}
	items := make([]uint32, len(f.items)-1)
	copy(items, f.items[1:])
	return FIFO{items: items, depth: f.depth}, f.items[0], true
}

// State is a single, immutable snapshot of a PIO state machine. Every
// operation in this package takes a State by value and returns a new
// State; none of them mutate their argument, so a State may be shared
// freely across goroutines (see package doc).
type State struct {
	Clock uint32

	// ProgramCounter addresses one of 32 instruction slots.
	ProgramCounter uint8

	PinDirections uint32
	PinValues     uint32

	// TransmitFIFO carries words from the host CPU into the state
	// machine; PULL drains it into the OSR.
	TransmitFIFO FIFO
	// ReceiveFIFO carries words from the state machine to the host
	// CPU; PUSH fills it from the ISR.
	ReceiveFIFO FIFO

	InputShiftRegister  ShiftRegister
	OutputShiftRegister ShiftRegister

	XRegister uint32
	YRegister uint32
}

// NewState returns the reset state of a PIO state machine: program
// counter 0, both FIFOs empty with DefaultFIFODepth capacity, an empty
// ISR (0, 0), and a fully-drained OSR (0, 32) per the RP2040 reset
// values described in the datasheet.
func NewState() State {
	return State{
		TransmitFIFO:        NewFIFO(DefaultFIFODepth),
		ReceiveFIFO:         NewFIFO(DefaultFIFODepth),
		InputShiftRegister:  ShiftRegister{Contents: 0, Counter: 0},
		OutputShiftRegister: ShiftRegister{Contents: 0, Counter: 32},
	}
}
