// Package cpu implements the register machine and loader for regvm.
//
// The machine consists of an instruction pointer (ip), stack top and base
// pointers (sp, bp), six general purpose registers (ax-fx, also r0-r5), and
// a growable stack whose base and top live in the sp and bp registers.
// Registers hold either an integer or a text value.
//
// Programs are text, one instruction per line in the form
// opcode[:operand]*, with '!name' lines declaring labels. The Assembler
// turns program text into a Program, and Cpu.Tick runs it one instruction
// at a time.
package cpu
