package catalog

import (
	"strings"
	"sync"
	"time"
)

// DefaultBlurGrace is how long the suggestion dropdown stays open after the
// input loses focus, so a click landing on a suggestion still registers.
const DefaultBlurGrace = 100 * time.Millisecond

// Suggestion is one typeahead hit.
type Suggestion struct {
	ProductID int64
	Name      string
}

// SearchSession is the typeahead state machine: the live query, the current
// matches, the keyboard-highlighted row, and whether the dropdown is open.
// It locks itself; callers may drive it from HTTP handlers directly.
type SearchSession struct {
	mu        sync.Mutex
	grace     time.Duration
	query     string
	matches   []Suggestion
	active    int
	open      bool
	blurTimer *time.Timer
}

// NewSearchSession returns a session with no query and a closed dropdown.
func NewSearchSession(grace time.Duration) *SearchSession {
	if grace <= 0 {
		grace = DefaultBlurGrace
	}
	return &SearchSession{grace: grace, active: -1}
}

// SetQuery replaces the query and recomputes matches against the collection
// with a case-insensitive substring test. The dropdown is open exactly when
// the query is non-empty, even with zero matches. Every keystroke resets the
// highlight.
func (s *SearchSession) SetQuery(c Collection, text string) []Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = text
	s.matches = s.matches[:0]
	s.active = -1

	if text == "" {
		s.open = false
		return nil
	}

	needle := strings.ToLower(text)
	for _, p := range c {
		if strings.Contains(strings.ToLower(p.ProductName), needle) {
			s.matches = append(s.matches, Suggestion{ProductID: p.ID, Name: p.ProductName})
		}
	}
	s.open = true
	return s.snapshotLocked()
}

// Focus cancels any pending blur close and reopens the dropdown when the
// previous query still has matches to show.
func (s *SearchSession) Focus() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blurTimer != nil {
		s.blurTimer.Stop()
		s.blurTimer = nil
	}
	if len(s.matches) > 0 {
		s.open = true
	}
}

// Blur schedules the dropdown to close after the grace period. A Focus
// inside the window cancels the close.
func (s *SearchSession) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blurTimer != nil {
		s.blurTimer.Stop()
	}
	s.blurTimer = time.AfterFunc(s.grace, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.open = false
		s.blurTimer = nil
	})
}

// ArrowDown moves the highlight down one row, wrapping to the top. With no
// matches it is a no-op.
func (s *SearchSession) ArrowDown() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.matches) == 0 {
		return s.active
	}
	s.active = (s.active + 1) % len(s.matches)
	return s.active
}

// ArrowUp moves the highlight up one row, wrapping to the bottom. From the
// unhighlighted state it lands on the last row.
func (s *SearchSession) ArrowUp() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.matches) == 0 {
		return s.active
	}
	if s.active <= 0 {
		s.active = len(s.matches) - 1
	} else {
		s.active--
	}
	return s.active
}

// Hover highlights the row under the pointer. Out-of-range indexes are
// ignored.
func (s *SearchSession) Hover(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i >= 0 && i < len(s.matches) {
		s.active = i
	}
}

// Enter commits the highlighted suggestion: the query becomes the product
// name and the dropdown closes. Without a highlight it reports false and
// changes nothing.
func (s *SearchSession) Enter() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active < 0 || s.active >= len(s.matches) {
		return 0, false
	}
	hit := s.matches[s.active]
	s.commitLocked(hit)
	return hit.ProductID, true
}

// Escape closes the dropdown without touching the query.
func (s *SearchSession) Escape() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.active = -1
}

// Select commits the suggestion at i regardless of the highlight, the
// click path. Out-of-range indexes report false.
func (s *SearchSession) Select(i int) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.matches) {
		return 0, false
	}
	s.commitLocked(s.matches[i])
	return s.matches[i].ProductID, true
}

// SelectProduct commits the suggestion for the given product id. It reports
// false when the id is not among the current matches.
func (s *SearchSession) SelectProduct(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, hit := range s.matches {
		if hit.ProductID == id {
			s.commitLocked(hit)
			return true
		}
	}
	return false
}

func (s *SearchSession) commitLocked(hit Suggestion) {
	s.query = hit.Name
	s.open = false
	s.active = -1
}

// State reports the current query, matches, highlight, and open flag.
func (s *SearchSession) State() (string, []Suggestion, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.snapshotLocked(), s.active, s.open
}

func (s *SearchSession) snapshotLocked() []Suggestion {
	out := make([]Suggestion, len(s.matches))
	copy(out, s.matches)
	return out
}
