package piodecode

import "fmt"

// Effect transforms a State into its successor. Effects are pure and
// total over every valid State; they never mutate their argument.
type Effect func(State) State

// ProgramCounterAdvance is the policy an executor uses to decide
// whether to increment the program counter after applying an
// Instruction's effect.
type ProgramCounterAdvance uint8

const (
	// PCAdvanceAlways increments the program counter unconditionally.
	PCAdvanceAlways ProgramCounterAdvance = iota
	// PCAdvanceNever leaves the program counter exclusively to the
	// effect (used when the effect itself writes the program counter).
	PCAdvanceNever
	// PCAdvanceWhenConditionMet increments only if the condition
	// evaluated true (used by stalling WAIT and blocking PUSH/PULL).
	PCAdvanceWhenConditionMet
	// PCAdvanceWhenConditionNotMet increments only if the condition
	// evaluated false (used by JMP: a taken branch already wrote the
	// program counter, so only the fallthrough should advance it).
	PCAdvanceWhenConditionNotMet
)

func (p ProgramCounterAdvance) String() string {
	switch p {
	case PCAdvanceAlways:
		return "always"
	case PCAdvanceNever:
		return "never"
	case PCAdvanceWhenConditionMet:
		return "when-condition-met"
	case PCAdvanceWhenConditionNotMet:
		return "when-condition-not-met"
	default:
		return fmt.Sprintf("ProgramCounterAdvance(%d)", uint8(p))
	}
}

// Instruction is the decoded form of an opcode: a condition to
// evaluate, the effect to apply when running it, and the policy an
// executor uses to advance the program counter afterward. An
// Instruction is stateless and may be cached or shared across
// goroutines.
type Instruction struct {
	Condition Condition
	Effect    Effect
	PCAdvance ProgramCounterAdvance
}
