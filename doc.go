// Package piodecode emulates the instruction set of the RP2040's
// Programmable I/O (PIO) state machine: given a 16-bit opcode and a
// State, Decoder.Decode produces an Instruction whose Condition,
// Effect and PCAdvance describe how that opcode transforms the State.
//
// The package is purely functional. Decode, every Condition and every
// Effect are pure functions of their arguments: there is no I/O, no
// locking, and no shared mutable state, so a single Decoder and the
// Instructions it produces may be used concurrently by any number of
// callers. A State is a value; no function in this package mutates the
// State passed to it.
//
// This package models the decoder and execution semantics only. It has
// no opinion on clock-cycle scheduling, FIFO-to-CPU plumbing, GPIO
// hardware, side-set/delay bitfields, or IRQ instructions — callers
// supply opcodes and observe the resulting State themselves.
package piodecode
