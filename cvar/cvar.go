// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"gospades/cbuf"
	"gospades/cmd"
	"gospades/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	NONE    flag = 0
	ARCHIVE flag = 1
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	// set by Override, cleared by any later assignment
	overridden bool
	persisted  string
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.stringValue = s
	cv.overridden = false
	pf, _ := strconv.ParseFloat(strings.TrimSpace(s), 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

// Override sets s for the current run only. Save keeps writing the
// previous value until the cvar is assigned again.
func (cv *Cvar) Override(s string) {
	if cv.rom {
		return
	}
	prev := cv.stringValue
	if cv.overridden {
		prev = cv.persisted
	}
	cv.SetByString(s)
	cv.overridden = true
	cv.persisted = prev
}

// savedString is the value written by Save.
func (cv *Cvar) savedString() string {
	if cv.overridden {
		return cv.persisted
	}
	return cv.stringValue
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		cv.SetByString(strconv.FormatInt(int64(value), 10))
	} else {
		cv.SetByString(strconv.FormatFloat(float64(value), 'f', -1, 32))
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) Toggle() {
	if cv.Bool() {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) Int() int {
	return int(cv.value)
}

func (cv *Cvar) Bool() bool {
	return cv.value != 0
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[strings.ToLower(name)]
	return cv, ok
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	cvarArray = append(cvarArray, cv)
	cvarByName[strings.ToLower(name)] = cv
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := Get(name); ok {
		return nil, fmt.Errorf("can't register variable %s, already defined", name)
	}
	cv := create(name, value)
	cv.archive = flags&ARCHIVE != 0
	cv.rom = flags&ROM != 0
	return cv, nil
}

func MustRegister(n, v string, flags flag) *Cvar {
	cv, err := Register(n, v, flags)
	if err != nil {
		log.Panic(err)
	}
	return cv
}

// Execute is a cbuf.Efunc which shows or sets a cvar named by the first
// argument.
func Execute(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(args[1].String())
	return true, nil
}

func init() {
	cmd.Must(cmd.AddCommand("cvarlist", list))
	cmd.Must(cmd.AddCommand("reset", reset))
	cmd.Must(cmd.AddCommand("resetall", resetAll))
	cmd.Must(cmd.AddCommand("set", set))
	cmd.Must(cmd.AddCommand("seta", seta))
	cmd.Must(cmd.AddCommand("toggle", toggle))
}

func setOrCreate(a cbuf.Arguments, archive bool) {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("%s <cvar> <value>\n", a.Args()[0].String())
		return
	}
	name := args[0].String()
	if cmd.Exists(name) {
		conlog.Printf("%s conflicts with a command\n", name)
		return
	}
	cv, ok := Get(name)
	if !ok {
		cv = create(name, args[1].String())
		cv.user = true
	} else {
		cv.SetByString(args[1].String())
	}
	if archive {
		cv.archive = true
	}
}

func set(a cbuf.Arguments) error {
	setOrCreate(a, false)
	return nil
}

func seta(a cbuf.Arguments) error {
	setOrCreate(a, true)
	return nil
}

// toggle flips a cvar or, with a second argument, sets it to that
// boolean value.
func toggle(a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 1 || len(args) > 2 {
		conlog.Printf("toggle <cvar> [on|off] : toggle cvar\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		conlog.Printf("toggle: variable %v not found\n", args[0].String())
		return nil
	}
	if len(args) == 1 {
		cv.Toggle()
	} else if args[1].Bool() {
		cv.SetByString("1")
	} else {
		cv.SetByString("0")
	}
	return nil
}

func reset(a cbuf.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("reset <cvar> : reset cvar to default\n")
		return nil
	}
	if cv, ok := Get(args[0].String()); ok {
		cv.Reset()
	} else {
		conlog.Printf("reset: variable %v not found\n", args[0].String())
	}
	return nil
}

func resetAll(_ cbuf.Arguments) error {
	for _, cv := range All() {
		cv.Reset()
	}
	return nil
}

func list(a cbuf.Arguments) error {
	prefix := ""
	if args := a.Args(); len(args) > 1 {
		prefix = strings.ToLower(args[1].String())
	}
	cvs := make([]*Cvar, 0, len(cvarArray))
	for _, cv := range cvarArray {
		if strings.HasPrefix(strings.ToLower(cv.name), prefix) {
			cvs = append(cvs, cv)
		}
	}
	sort.Slice(cvs, func(i, j int) bool { return cvs[i].name < cvs[j].name })
	for _, cv := range cvs {
		a := " "
		if cv.archive {
			a = "*"
		}
		conlog.Printf("%s %s \"%s\"\n", a, cv.name, cv.stringValue)
	}
	conlog.Printf("%v cvars\n", len(cvs))
	return nil
}
