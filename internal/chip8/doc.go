// Package chip8 implements the CHIP-8 fetch, decode and execute engine.
//
// # Machine Model
//
// The machine has 4KB of memory (0x000-MaxAddress):
//   - 0x000-0x1FF: Interpreter area, reserved and left zeroed by this engine
//   - ProgramStart-MaxAddress: Program image, copied verbatim by LoadProgram
//
// Registers:
//   - V0-VF: 16 general purpose 8-bit registers, VF doubles as carry, borrow
//     and collision flag
//   - I: index register, only set from a 12-bit field
//   - PC: program counter, advanced by 2 on every fetch
//   - Call stack of return addresses with a configurable depth limit
//   - Delay timer, decremented on execution cadence
//
// # Execution
//
// A host drives the machine by calling Fetch and Execute (or Step) once per
// tick. Execute decodes the fetched opcode into an Instruction value and runs
// one exhaustive switch over its Kind. Opcodes outside of the supported
// families decode to KindUnknown and are executed as a no-op, so programs
// using unsupported instructions keep running.
//
// Fatal conditions are returned as errors:
//   - ErrStackUnderflow: return without a matching call
//   - ErrStackOverflow: call beyond the configured depth limit
//   - ErrAddressOutOfRange (wrapped in *AddressError): fetch or sprite read
//     outside of memory
//
// # Display
//
// Draw and clear instructions go through the Display interface, which the
// display package framebuffer implements. The engine never renders; the host
// checks the dirty flag of the framebuffer after each tick.
//
// # Unsupported Instruction Families
//
// Keyboard input, sound timer, BCD conversion, block memory transfer and
// random number instructions are not part of this engine.
package chip8
