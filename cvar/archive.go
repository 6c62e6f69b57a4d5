// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"os"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Save writes all archived cvars to filename. Overridden cvars are
// written with the value they had before the override.
func Save(filename string) error {
	fields := make(map[string]*structpb.Value)
	for _, cv := range cvarArray {
		if !cv.archive {
			continue
		}
		fields[cv.name] = structpb.NewStringValue(cv.savedString())
	}
	out, err := proto.Marshal(&structpb.Struct{Fields: fields})
	if err != nil {
		return errors.Wrap(err, "encoding settings")
	}
	if err := os.WriteFile(filename, out, 0644); err != nil {
		return errors.Wrap(err, "writing settings")
	}
	return nil
}

// Load applies the cvars stored in filename. A missing file is not an
// error. Unknown names become archived user cvars.
func Load(filename string) error {
	in, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "reading settings")
	}
	data := &structpb.Struct{}
	if err := proto.Unmarshal(in, data); err != nil {
		return errors.Wrapf(err, "decoding %s", filename)
	}
	for name, v := range data.GetFields() {
		s := v.GetStringValue()
		if cv, ok := Get(name); ok {
			cv.SetByString(s)
			continue
		}
		cv := create(name, s)
		cv.user = true
		cv.archive = true
	}
	return nil
}
