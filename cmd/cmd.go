// SPDX-License-Identifier: GPL-2.0-or-later

// Package cmd holds the console command registry.
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"gospades/cbuf"
)

type QFunc func(args cbuf.Arguments) error

type Commands map[string]QFunc

func (c Commands) Add(name string, f QFunc) error {
	ln := strings.ToLower(name)
	if _, ok := c[ln]; ok {
		return fmt.Errorf("command %s already defined", ln)
	}
	c[ln] = f
	return nil
}

func (c Commands) Exists(cmdName string) bool {
	_, ok := c[strings.ToLower(cmdName)]
	return ok
}

func (c Commands) List() []string {
	cmds := make([]string, 0, len(c))
	for cmd := range c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

func (c Commands) Execute(a cbuf.Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	if cmd, ok := c[strings.ToLower(n[0].String())]; ok {
		if err := cmd(a); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

var (
	commands = make(Commands)
)

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func AddCommand(name string, f QFunc) error {
	return commands.Add(name, f)
}

func Exists(cmdName string) bool {
	return commands.Exists(cmdName)
}

func List() []string {
	return commands.List()
}

// Execute is a cbuf.Efunc for the global command list.
func Execute(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	return commands.Execute(a)
}
