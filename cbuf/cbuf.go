// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf buffers config script text and executes it line by line.
package cbuf

import (
	"log"
	"os"
	"strings"

	"gospades/conlog"
)

// Efunc tries to execute a command. It returns true if it handled it.
type Efunc func(*CommandBuffer, Arguments) (bool, error)

type CommandBuffer struct {
	text string
	// a 'wait' defers the rest of the buffer to the next Execute
	wait      bool
	executors []Efunc
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

func (c *CommandBuffer) AddText(text string) {
	c.text += text
}

func (c *CommandBuffer) InsertText(text string) {
	c.text = text + "\n" + c.text
}

// Empty reports whether all buffered text has been executed.
func (c *CommandBuffer) Empty() bool {
	return len(c.text) == 0
}

// ExecFile appends the contents of the named script.
func (c *CommandBuffer) ExecFile(name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	c.InsertText(string(b))
	return nil
}

// Execute runs buffered commands until the buffer is empty or a 'wait'
// is reached.
func (c *CommandBuffer) Execute() error {
	for len(c.text) != 0 {
		i := nextLineEnd(c.text)
		line := c.text[:i]
		if i < len(c.text) {
			i++
		}
		c.text = c.text[i:]
		if err := c.executeLine(line); err != nil {
			return err
		}
		if c.wait {
			c.wait = false
			return nil
		}
	}
	return nil
}

func nextLineEnd(s string) int {
	quote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quote = !quote
		case ';':
			if !quote {
				return i
			}
		case '\n':
			return i
		}
	}
	return len(s)
}

func (c *CommandBuffer) executeLine(s string) error {
	a := Parse(s)
	args := a.Args()
	if len(args) == 0 {
		return nil
	}
	if strings.EqualFold(args[0].String(), "wait") {
		c.wait = true
		return nil
	}
	for _, e := range c.executors {
		if ok, err := e(c, a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	name := args[0].String()
	log.Printf("Unknown command \"%s\"", name)
	conlog.Printf("Unknown command \"%s\"\n", name)
	return nil
}
