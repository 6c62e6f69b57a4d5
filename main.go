// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gospades/cbuf"
	"gospades/client"
	"gospades/cmd"
	"gospades/commandline"
	"gospades/conlog"
	"gospades/cvar"
	"gospades/runner"

	"github.com/gopxl/mainthread/v2"
)

// scripts may not wait forever
const maxScriptFrames = 64

func settingsFile() string {
	return filepath.Join(commandline.BaseDirectory(), "settings.pb")
}

func registerCommands() {
	cmd.Must(cmd.AddCommand("echo", func(a cbuf.Arguments) error {
		conlog.Printf("%s\n", a.ArgumentString())
		return nil
	}))
	cmd.Must(cmd.AddCommand("cmdlist", func(a cbuf.Arguments) error {
		names := cmd.List()
		for _, n := range names {
			conlog.Printf("  %s\n", n)
		}
		conlog.Printf("%d commands\n", len(names))
		return nil
	}))
	cmd.Must(cmd.AddCommand("writeconfig", func(a cbuf.Arguments) error {
		return cvar.Save(settingsFile())
	}))
}

func execConfig() {
	name := commandline.Exec()
	if name == "" {
		return
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(commandline.BaseDirectory(), name)
	}
	var cb cbuf.CommandBuffer
	cb.SetCommandExecutors([]cbuf.Efunc{cmd.Execute, cvar.Execute})
	if err := cb.ExecFile(name); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Couldn't exec %s: %v", name, err)
		}
		return
	}
	conlog.Printf("execing %s\n", name)
	for i := 0; i < maxScriptFrames && !cb.Empty(); i++ {
		if err := cb.Execute(); err != nil {
			log.Printf("Error in %s: %v", name, err)
			return
		}
	}
}

// applyOverrides sets the cvars given on the command line for this run,
// settings.pb keeps the previous values.
func applyOverrides() {
	for _, o := range commandline.Overrides() {
		cv, ok := cvar.Get(o[0])
		if !ok {
			continue
		}
		cv.Override(o[1])
	}
}

func main() {
	flag.Parse()
	conlog.SetDeveloper(commandline.ConsoleDebug())

	if err := os.MkdirAll(commandline.BaseDirectory(), 0755); err != nil {
		log.Printf("Couldn't create base directory: %v", err)
	}
	if err := cvar.Load(settingsFile()); err != nil {
		log.Printf("Couldn't load settings: %v", err)
	}
	registerCommands()
	execConfig()
	applyOverrides()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	mainthread.Run(func() {
		err = mainthread.CallErr(func() error {
			newView := client.WithHistory(filepath.Join(commandline.BaseDirectory(), "chat_history.pb"))
			return runner.New(newView).Run(ctx)
		})
	})
	if serr := cvar.Save(settingsFile()); serr != nil {
		log.Printf("Couldn't save settings: %v", serr)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}
