package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned when a return instruction is executed with an empty call stack.
	ErrStackUnderflow = errors.New("return with empty call stack")
	// ErrStackOverflow is returned when a call exceeds the configured call stack depth.
	ErrStackOverflow = errors.New("call stack depth limit exceeded")
	// ErrAddressOutOfRange is returned when memory outside of the address space is accessed.
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrProgramTooLarge is returned when a program does not fit into program memory.
	ErrProgramTooLarge = errors.New("program does not fit into memory")
)

// AddressError describes a memory access outside of the machine address space.
type AddressError struct {
	Op      string // operation that accessed memory, for example "fetch"
	Address int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s at address $%04X: %s", e.Op, e.Address, ErrAddressOutOfRange)
}

// Unwrap allows matching the error with errors.Is(err, ErrAddressOutOfRange).
func (e *AddressError) Unwrap() error {
	return ErrAddressOutOfRange
}
