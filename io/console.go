package io

import (
	"bufio"
	"io"
	"strings"
)

// Console reads lines from Input and writes to Output.
type Console struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	source io.Reader
}

// ReadLine returns the next line of Input, without the trailing "\n" or
// "\r\n". A final line with no terminator is still returned; io.EOF
// follows it.
func (con *Console) ReadLine() (line string, err error) {
	if con.Input == nil {
		err = ErrNoInput
		return
	}

	// Input may be swapped between reads.
	if con.reader == nil || con.source != con.Input {
		con.reader = bufio.NewReader(con.Input)
		con.source = con.Input
	}

	line, err = con.reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil {
		return
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return
}

// Write sends text to Output.
func (con *Console) Write(data []byte) (n int, err error) {
	if con.Output == nil {
		err = ErrNoOutput
		return
	}

	n, err = con.Output.Write(data)
	return
}

// Close drops any buffered input.
func (con *Console) Close() (err error) {
	con.reader = nil
	con.source = nil
	return
}
