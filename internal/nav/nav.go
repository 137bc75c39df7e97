// Package nav is the application core: a pure state machine over the
// three nested screens (line list, field list, full value) plus the
// find overlay. Update consumes one input message and produces the
// next state value, optionally with a follow-up message the driver
// feeds back in before rendering. The line store is read-only here;
// settings are owned and only written on an explicit save.
package nav

import (
	"jlview/internal/render"
	"jlview/internal/settings"
	"jlview/internal/store"
	"jlview/internal/util/logx"
)

// Screen is the active view. ObjectDetails is only reachable with a
// line selected on Main, ValueDetails only with a field selected on
// ObjectDetails.
type Screen int

const (
	Done Screen = iota
	Main
	ObjectDetails
	ValueDetails
)

func (s Screen) String() string {
	switch s {
	case Done:
		return "done"
	case Main:
		return "main"
	case ObjectDetails:
		return "object-details"
	case ValueDetails:
		return "value-details"
	default:
		return "unknown"
	}
}

// Msg is one input to the state machine. The set is closed.
type Msg interface{ isMsg() }

type (
	First        struct{}
	Last         struct{}
	ScrollUp     struct{}
	ScrollDown   struct{}
	PageUp       struct{}
	PageDown     struct{}
	ScrollLeft   struct{}
	ScrollRight  struct{}
	Enter        struct{}
	Exit         struct{}
	SaveSettings struct{}
	OpenFind     struct{}
	Backspace    struct{}

	Resized struct{ Width, Height int }

	CharInput struct{ Ch rune }
)

func (First) isMsg()        {}
func (Last) isMsg()         {}
func (ScrollUp) isMsg()     {}
func (ScrollDown) isMsg()   {}
func (PageUp) isMsg()       {}
func (PageDown) isMsg()     {}
func (ScrollLeft) isMsg()   {}
func (ScrollRight) isMsg()  {}
func (Enter) isMsg()        {}
func (Exit) isMsg()         {}
func (SaveSettings) isMsg() {}
func (OpenFind) isMsg()     {}
func (Backspace) isMsg()    {}
func (Resized) isMsg()      {}
func (CharInput) isMsg()    {}

// State is the whole navigation model. Update treats it as a value:
// old state in, new state out, no aliasing between the two beyond the
// shared read-only store.
type State struct {
	Screen Screen

	Store    *store.Store
	Settings settings.Settings

	// MainSelection is the selected line index on Main; -1 only when
	// the store is empty.
	MainSelection int

	// DetailSelection is the selected field index on ObjectDetails.
	DetailSelection int

	// SelectedField mirrors DetailSelection as a field name. The
	// renderer recomputes it each frame since field order depends on
	// the selected line.
	SelectedField string

	// ValueScroll is the vertical offset into the wrapped value text.
	// Increments are not pre-clamped; the renderer clamps against the
	// wrapped length it alone knows and writes the result back.
	ValueScroll int

	// FieldOffset hides that many leading fields of each rendered
	// line. Bounded by MaxFieldsSeen.
	FieldOffset int

	// MaxFieldsSeen is the high-water mark of per-line field counts
	// observed by the renderer so far. Only exact once every line has
	// been rendered once; a full pre-scan is deliberately avoided.
	MaxFieldsSeen int

	Width  int
	Height int

	// LastAction is the transient status text of the last explicit
	// action. Cleared at the start of every update unless the message
	// itself sets it.
	LastAction string

	Find *FindTask
}

// NewState builds the startup state: Main screen, first line selected
// when the store has any.
func NewState(st *store.Store, cfg settings.Settings, width, height int) State {
	sel := 0
	if st.Empty() {
		sel = -1
	}
	return State{
		Screen:        Main,
		Store:         st,
		Settings:      cfg,
		MainSelection: sel,
		Width:         width,
		Height:        height,
	}
}

// PageLen is the page-scroll step: viewport height minus the two
// border rows, never below 1.
func (s State) PageLen() int {
	if s.Height-2 < 1 {
		return 1
	}
	return s.Height - 2
}

// DetailEntries lists the "key : value" rows of the selected line in
// display order. Undecodable lines degrade to a single raw row
// instead of failing, so one bad line never takes the viewer down.
func (s State) DetailEntries() []render.Pair {
	if s.MainSelection < 0 || s.MainSelection >= s.Store.Len() {
		return nil
	}
	fields, ok := s.Store.Fields(s.MainSelection)
	if !ok {
		return []render.Pair{{Key: "raw", Value: s.Store.Raw(s.MainSelection)}}
	}
	return render.DetailEntries(fields, s.Settings.FieldOrder)
}

// SelectedValue returns the full value text of the field selected on
// ObjectDetails, for the ValueDetails screen.
func (s State) SelectedValue() string {
	if s.MainSelection < 0 {
		return ""
	}
	fields, ok := s.Store.Fields(s.MainSelection)
	if !ok {
		return s.Store.Raw(s.MainSelection)
	}
	entries := render.DetailEntries(fields, s.Settings.FieldOrder)
	if s.DetailSelection < 0 || s.DetailSelection >= len(entries) {
		return ""
	}
	key := entries[s.DetailSelection].Key
	for _, f := range fields {
		if f.Name == key {
			return f.Text()
		}
	}
	return ""
}

// Update is the transition function. Dispatch order: global messages
// first, then the find overlay when active, then the active screen's
// own table. The returned follow-up message, when non-nil, is fed
// back in by the driver before the next render.
func (s State) Update(msg Msg) (State, Msg) {
	s.LastAction = ""

	switch m := msg.(type) {
	case Resized:
		s.Width, s.Height = m.Width, m.Height
		return s, nil
	case SaveSettings:
		// Save failures surface in the status line only; the session
		// keeps running either way.
		if err := s.Settings.Save(); err != nil {
			logx.Warnf("settings save failed: %v", err)
			s.LastAction = "Error: failed to save settings"
		} else {
			s.LastAction = "Ok: settings saved"
		}
		return s, nil
	}

	if s.Find != nil {
		return s.updateFind(msg)
	}

	switch s.Screen {
	case Main:
		return s.updateMain(msg)
	case ObjectDetails:
		return s.updateDetails(msg)
	case ValueDetails:
		return s.updateValue(msg)
	}
	return s, nil
}

func (s State) updateMain(msg Msg) (State, Msg) {
	total := s.Store.Len()
	switch msg.(type) {
	case First:
		if total > 0 {
			s.MainSelection = 0
		}
	case Last:
		if total > 0 {
			s.MainSelection = total - 1
		}
	case ScrollUp:
		s.MainSelection = moveSelection(s.MainSelection, -1, total)
	case ScrollDown:
		s.MainSelection = moveSelection(s.MainSelection, 1, total)
	case PageUp:
		s.MainSelection = moveSelection(s.MainSelection, -s.PageLen(), total)
	case PageDown:
		s.MainSelection = moveSelection(s.MainSelection, s.PageLen(), total)
	case ScrollLeft:
		if s.FieldOffset > 0 {
			s.FieldOffset--
		}
	case ScrollRight:
		if s.FieldOffset+1 < s.MaxFieldsSeen {
			s.FieldOffset++
		}
	case Enter:
		if s.MainSelection >= 0 {
			s.Screen = ObjectDetails
			s.DetailSelection = 0
			s.SelectedField = ""
			s.Find = nil
		}
	case Exit:
		s.Screen = Done
	case OpenFind:
		s.Find = &FindTask{}
	}
	return s, nil
}

func (s State) updateDetails(msg Msg) (State, Msg) {
	total := len(s.DetailEntries())
	switch msg.(type) {
	case First:
		if total > 0 {
			s.DetailSelection = 0
		}
	case Last:
		if total > 0 {
			s.DetailSelection = total - 1
		}
	case ScrollUp:
		s.DetailSelection = moveSelection(s.DetailSelection, -1, total)
	case ScrollDown:
		s.DetailSelection = moveSelection(s.DetailSelection, 1, total)
	case PageUp:
		s.DetailSelection = moveSelection(s.DetailSelection, -s.PageLen(), total)
	case PageDown:
		s.DetailSelection = moveSelection(s.DetailSelection, s.PageLen(), total)
	case Enter:
		if total > 0 && s.DetailSelection >= 0 && s.DetailSelection < total {
			s.Screen = ValueDetails
			s.ValueScroll = 0
			s.Find = nil
		}
	case Exit:
		s.Screen = Main
		s.Find = nil
	case OpenFind:
		s.Find = &FindTask{}
	}
	return s, nil
}

func (s State) updateValue(msg Msg) (State, Msg) {
	switch msg.(type) {
	case ScrollUp:
		if s.ValueScroll > 0 {
			s.ValueScroll--
		}
	case ScrollDown:
		s.ValueScroll++
	case PageUp:
		s.ValueScroll -= s.PageLen()
		if s.ValueScroll < 0 {
			s.ValueScroll = 0
		}
	case PageDown:
		s.ValueScroll += s.PageLen()
	case Exit:
		s.Screen = ObjectDetails
	}
	return s, nil
}

// moveSelection shifts a list selection by delta, clamped to
// [0, total-1]. A nonexistent selection stays nonexistent.
func moveSelection(sel, delta, total int) int {
	if sel < 0 || total <= 0 {
		return sel
	}
	next := sel + delta
	if next < 0 {
		next = 0
	}
	if next > total-1 {
		next = total - 1
	}
	return next
}

// ObserveFieldCount feeds one rendered line's total field count into
// the high-water mark bounding horizontal scroll.
func (s *State) ObserveFieldCount(n int) {
	if n > s.MaxFieldsSeen {
		s.MaxFieldsSeen = n
	}
}

// SetSelectedField is the renderer's write-back of the field name at
// the current DetailSelection.
func (s *State) SetSelectedField(name string) {
	s.SelectedField = name
}

// ClampValueScroll is the renderer's write-back for the value screen:
// only the renderer knows the wrapped line count, so the scroll
// offset is corrected here against it.
func (s *State) ClampValueScroll(wrappedLines int) {
	max := wrappedLines - s.PageLen()
	if max < 0 {
		max = 0
	}
	if s.ValueScroll > max {
		s.ValueScroll = max
	}
	if s.ValueScroll < 0 {
		s.ValueScroll = 0
	}
}
