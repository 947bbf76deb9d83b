// Package imui is a small immediate-mode UI layer on top of bubbletea.
//
// Each input message from the terminal becomes one frame: the caller's frame
// function runs against a snapshot of that frame's events, widgets read and
// write their persistent state through Memory by ID, and everything painted
// during the frame is composed into a single string with lipgloss layers.
package imui

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a widget across frames.
type ID uint64

// NewID derives an ID from any hashable source value, e.g. a string.
func NewID(source any) ID {
	return ID(xxhash.Sum64String(sourceString(source)))
}

// With derives a child ID scoped under id.
func (id ID) With(source any) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(sourceString(source))
	return ID(d.Sum64())
}

func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// sourceString includes the dynamic type so that "1" and 1 hash differently.
func sourceString(source any) string {
	if id, ok := source.(ID); ok {
		return "imui.ID:" + id.String()
	}
	return fmt.Sprintf("%T:%v", source, source)
}
