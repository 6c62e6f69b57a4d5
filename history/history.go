// SPDX-License-Identifier: GPL-2.0-or-later

// Package history keeps recently submitted chat lines for recall.
package history

import (
	"os"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// add a max size to prevent the file from growing indefinitely
	maxHistory = 32
)

type History struct {
	txt []string
	idx int
}

func (h *History) String() string {
	if len(h.txt) == h.idx {
		return ""
	}
	return h.txt[h.idx]
}

func (h *History) Up() {
	if h.idx > 0 {
		h.idx--
	}
}

func (h *History) Down() {
	if h.idx < len(h.txt) {
		h.idx++
	}
}

func (h *History) Add(s string) {
	h.txt = append(h.txt, s)
	h.idx = len(h.txt)
}

func (h *History) Len() int {
	return len(h.txt)
}

// Load replaces the entries by the ones stored in filename. A missing
// file leaves the history empty.
func (h *History) Load(filename string) error {
	in, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "reading history")
	}
	data := &structpb.ListValue{}
	if err := proto.Unmarshal(in, data); err != nil {
		return errors.Wrapf(err, "decoding history %s", filename)
	}
	h.txt = h.txt[:0]
	for _, v := range data.GetValues() {
		h.txt = append(h.txt, v.GetStringValue())
	}
	h.idx = len(h.txt)
	return nil
}

// Save writes the newest entries to filename.
func (h *History) Save(filename string) error {
	txt := h.txt[max(0, len(h.txt)-maxHistory):]
	data := &structpb.ListValue{}
	for _, s := range txt {
		data.Values = append(data.Values, structpb.NewStringValue(s))
	}
	out, err := proto.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "encoding history")
	}
	if err := os.WriteFile(filename, out, 0660); err != nil {
		return errors.Wrap(err, "writing history")
	}
	return nil
}
