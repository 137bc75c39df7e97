package nav

import "strings"

// MatchState is the tri-state outcome of the last search step.
type MatchState int

const (
	// MatchUnknown: no evaluation since the query last changed.
	MatchUnknown MatchState = iota
	MatchNotFound
	MatchFound
)

func (m MatchState) String() string {
	switch m {
	case MatchNotFound:
		return "not found"
	case MatchFound:
		return "found"
	default:
		return ""
	}
}

// FindTask is the incremental-search overlay. It exists only while
// the user is finding; any screen switch discards it.
type FindTask struct {
	Query string
	Match MatchState
}

// updateFind routes input while a find task is active. Global
// messages were already intercepted by Update.
func (s State) updateFind(msg Msg) (State, Msg) {
	switch m := msg.(type) {
	case OpenFind:
		// The trigger key pressed while already finding means the
		// user wants to search for the trigger character itself.
		// Reissue it as plain input via the follow-up chain.
		return s, CharInput{Ch: '/'}
	case CharInput:
		s.Find = &FindTask{Query: s.Find.Query + string(m.Ch)}
		return s.searchFrom(searchForward, true), nil
	case Backspace:
		q := s.Find.Query
		if q != "" {
			runes := []rune(q)
			q = string(runes[:len(runes)-1])
		}
		s.Find = &FindTask{Query: q}
		return s.searchFrom(searchForward, true), nil
	case ScrollDown:
		return s.searchFrom(searchForward, false), nil
	case ScrollUp:
		return s.searchFrom(searchBackward, false), nil
	case Enter:
		return s, ScrollDown{}
	case Exit:
		s.Find = nil
		return s, nil
	}
	return s, nil
}

type searchDirection int

const (
	searchForward  searchDirection = 1
	searchBackward searchDirection = -1
)

// searchFrom runs one search step on the active screen. With
// includeCurrent the scan starts at the current selection (query just
// changed); otherwise strictly after/before it (explicit next/prev).
// On a hit the selection moves; otherwise it stays and only the match
// state records the miss.
func (s State) searchFrom(dir searchDirection, includeCurrent bool) State {
	task := *s.Find

	// An empty query matches everything under plain substring
	// containment; treat it as "no search yet" instead of trivially
	// jumping to the neighbor line.
	if task.Query == "" {
		task.Match = MatchUnknown
		s.Find = &task
		return s
	}

	switch s.Screen {
	case Main:
		idx, found := scan(s.Store.Len(), s.MainSelection, dir, includeCurrent, func(i int) string {
			return s.Store.Raw(i)
		}, task.Query)
		if found {
			s.MainSelection = idx
			task.Match = MatchFound
		} else {
			task.Match = MatchNotFound
		}
	case ObjectDetails:
		entries := s.DetailEntries()
		idx, found := scan(len(entries), s.DetailSelection, dir, includeCurrent, func(i int) string {
			return entries[i].Entry()
		}, task.Query)
		if found {
			s.DetailSelection = idx
			s.SelectedField = entries[idx].Key
			task.Match = MatchFound
		} else {
			task.Match = MatchNotFound
		}
	default:
		// ValueDetails has no list to search; leave the match state
		// as it was.
	}

	s.Find = &task
	return s
}

// scan walks candidate texts from the current position in the given
// direction and reports the first index whose text contains query as
// a literal substring.
func scan(total, current int, dir searchDirection, includeCurrent bool, text func(int) string, query string) (int, bool) {
	if total <= 0 || current < 0 {
		return 0, false
	}
	start := current
	if !includeCurrent {
		start += int(dir)
	}
	for i := start; i >= 0 && i < total; i += int(dir) {
		if strings.Contains(text(i), query) {
			return i, true
		}
	}
	return 0, false
}
