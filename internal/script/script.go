// Package script replays a list of edits against a headless table and
// reports how the selection moves.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/reselect/internal/config"
	"github.com/ruminaider/reselect/internal/editor"
	"github.com/ruminaider/reselect/internal/headless"
	"github.com/ruminaider/reselect/internal/reselect"
	"go.yaml.in/yaml/v3"
)

var (
	ErrUnknownOp   = errors.New("unknown op")
	ErrBadPosition = errors.New("position must be [section, row]")
)

// Ops understood by Run.
const (
	OpSelect = "select" // user selection of At
	OpEdit   = "edit"   // enter edit mode
	OpDone   = "done"   // leave edit mode
	OpDelete = "delete" // delete Rows (or At)
	OpMove   = "move"   // move From to To
	OpInsert = "insert" // insert Title at At
)

// Script is a starting list plus the steps to apply to it.
type Script struct {
	config.Config `yaml:",inline"`
	Steps         []Step `yaml:"steps"`
}

// Step is one edit. Positions are written as [section, row].
type Step struct {
	Op    string  `yaml:"op"`
	At    []int   `yaml:"at,omitempty"`
	Rows  [][]int `yaml:"rows,omitempty"`
	From  []int   `yaml:"from,omitempty"`
	To    []int   `yaml:"to,omitempty"`
	Title string  `yaml:"title,omitempty"`
}

// Result summarizes a replay.
type Result struct {
	Steps    int
	Selects  int
	Selected string
	Position reselect.Position
	Found    bool
}

// Parse decodes and validates a script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parsing script: %w", err)
	}
	if s.Version == "" {
		s.Version = config.CurrentVersion
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Load reads and parses the script at path.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks ops and position shapes without running anything.
func (s Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpEdit, OpDone:
		return nil
	case OpSelect, OpInsert:
		_, err := position(st.At)
		return err
	case OpDelete:
		_, err := st.removed()
		return err
	case OpMove:
		if _, err := position(st.From); err != nil {
			return err
		}
		_, err := position(st.To)
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
}

func (st Step) removed() ([]reselect.Position, error) {
	rows := st.Rows
	if len(rows) == 0 && st.At != nil {
		rows = [][]int{st.At}
	}
	if len(rows) == 0 {
		return nil, ErrBadPosition
	}
	out := make([]reselect.Position, 0, len(rows))
	for _, r := range rows {
		p, err := position(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func position(v []int) (reselect.Position, error) {
	if len(v) != 2 || v[0] < 0 || v[1] < 0 {
		return reselect.Position{}, fmt.Errorf("%w, got %v", ErrBadPosition, v)
	}
	return reselect.At(v[0], v[1]), nil
}

// Run replays s and writes one transcript line per step to w.
func Run(s Script, w io.Writer) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	list := editor.ListFromConfig(s.Config)
	table := headless.NewTable(list)
	ed := editor.New(list, table)

	fmt.Fprintf(w, "   start   %s\n", describe(ed, table))
	for i, st := range s.Steps {
		if err := apply(ed, st); err != nil {
			return Result{}, fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		fmt.Fprintf(w, "%3d %-7s %s\n", i+1, st.Op, describe(ed, table))
	}

	res := Result{Steps: len(s.Steps), Selects: table.Selects}
	if sel, ok := table.Selected(); ok {
		entry, _ := list.ItemAt(sel.Position)
		res.Selected, res.Position, res.Found = entry.Title, sel.Position, true
	}
	return res, nil
}

func apply(ed *editor.Editor, st Step) error {
	switch st.Op {
	case OpSelect:
		pos, _ := position(st.At)
		ed.Select(pos)
	case OpEdit:
		ed.BeginEditing()
	case OpDone:
		ed.EndEditing()
	case OpDelete:
		removed, _ := st.removed()
		return ed.Delete(removed...)
	case OpMove:
		from, _ := position(st.From)
		to, _ := position(st.To)
		return ed.Move(from, to)
	case OpInsert:
		at, _ := position(st.At)
		_, err := ed.Insert(at, st.Title)
		return err
	}
	return nil
}

func describe(ed *editor.Editor, table *headless.Table) string {
	selected := "-"
	if sel, ok := table.Selected(); ok {
		entry, _ := ed.List().ItemAt(sel.Position)
		selected = fmt.Sprintf("%s %s", sel.Position, entry.Title)
	}
	pending := "-"
	if pos, ok := ed.PendingPosition(); ok {
		entry, _ := ed.List().ItemAt(pos)
		pending = fmt.Sprintf("%s %s", pos, entry.Title)
	}
	return fmt.Sprintf("selected=%s pending=%s editing=%t", selected, pending, ed.Editing())
}
