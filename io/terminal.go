package io

import (
	"errors"
	"io"
	"os"

	"github.com/peterh/liner"
)

// Terminal is an interactive Device on the controlling terminal. Each
// line read is added to the history, and Ctrl-C aborts the read.
type Terminal struct {
	Prompt string    // Prompt shown before each line.
	Output io.Writer // Destination of writes, os.Stdout if nil.

	state *liner.State
}

// NewTerminal opens the terminal for line editing.
func NewTerminal(prompt string) (term *Terminal) {
	term = &Terminal{
		Prompt: prompt,
		state:  liner.NewLiner(),
	}
	term.state.SetCtrlCAborts(true)

	return
}

// terminalError maps line editor errors to device errors.
func terminalError(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) {
		return ErrAborted
	}

	return err
}

// ReadLine prompts for and returns one line of input.
func (term *Terminal) ReadLine() (line string, err error) {
	if term.state == nil {
		err = io.EOF
		return
	}

	line, err = term.state.Prompt(term.Prompt)
	if err != nil {
		err = terminalError(err)
		return
	}

	if len(line) > 0 {
		term.state.AppendHistory(line)
	}

	return
}

// Write sends text to the terminal output.
func (term *Terminal) Write(data []byte) (n int, err error) {
	out := term.Output
	if out == nil {
		out = os.Stdout
	}

	n, err = out.Write(data)
	return
}

// Close restores the terminal mode. Further reads return io.EOF.
func (term *Terminal) Close() (err error) {
	if term.state == nil {
		return
	}

	err = term.state.Close()
	term.state = nil

	return
}
