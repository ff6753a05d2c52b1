// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Console reads lines of input from a user and writes responses back.
type Console interface {
	// ReadLine reads the next line of input, returning io.EOF when there is
	// none.
	ReadLine() (string, error)
	// Write output to the console.
	Write(bytes []byte) (int, error)
	// Colourful indicates whether escapes should be used in output.
	Colourful() bool
	// Close the console, restoring any state changed on opening it.
	Close() error
}

// NewConsole constructs a console reading from stdin.  When stdin is a terminal
// this is a line editing terminal, otherwise lines are read as is.
func NewConsole(prompt string) (Console, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewPlainConsole(os.Stdin, os.Stdout), nil
	}
	//
	return NewTerminal(prompt)
}

// Terminal is a console backed by a terminal in raw mode, which provides line
// editing and history.
type Terminal struct {
	// file descriptor for input.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// NewTerminal constructs a new terminal over stdin and stdout.
func NewTerminal(prompt string) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	return &Terminal{fd, term.NewTerminal(screen, prompt), state}, nil
}

// ReadLine implementation for Console interface.
func (t *Terminal) ReadLine() (string, error) {
	return t.xterm.ReadLine()
}

// Write implementation for Console interface.  Newlines are translated for the
// raw terminal.
func (t *Terminal) Write(bytes []byte) (int, error) {
	return t.xterm.Write(bytes)
}

// Colourful implementation for Console interface.
func (t *Terminal) Colourful() bool {
	return true
}

// Close implementation for Console interface, which restores the terminal to
// its original state.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.state)
}

// PlainConsole is a console over arbitrary streams, such as when input is
// piped in.
type PlainConsole struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPlainConsole constructs a console over the given streams.
func NewPlainConsole(in io.Reader, out io.Writer) *PlainConsole {
	return &PlainConsole{bufio.NewScanner(in), out}
}

// ReadLine implementation for Console interface.
func (p *PlainConsole) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// Write implementation for Console interface.
func (p *PlainConsole) Write(bytes []byte) (int, error) {
	return p.out.Write(bytes)
}

// Colourful implementation for Console interface.
func (p *PlainConsole) Colourful() bool {
	return false
}

// Close implementation for Console interface.
func (p *PlainConsole) Close() error {
	return nil
}
