// Package io provides the line devices of the register machine: a plain
// Console over any reader and writer, and an interactive Terminal with
// line editing and history.
package io

import (
	"io"
)

// Device is a line-oriented console. Lines are read for the 'in' opcode,
// and 'out' writes go to the device.
type Device interface {
	io.Writer
	// ReadLine returns the next line of input, without its line terminator.
	// At end of input it returns io.EOF.
	ReadLine() (line string, err error)
	// Close releases the device.
	Close() error
}

var (
	_ Device = (*Console)(nil)
	_ Device = (*Terminal)(nil)
)
