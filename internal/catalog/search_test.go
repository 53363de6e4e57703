package catalog

import (
	"testing"
	"time"
)

func TestSetQueryMatchesSubstringCaseInsensitive(t *testing.T) {
	s := NewSearchSession(0)
	hits := s.SetQuery(sampleCollection(), "sho")
	if len(hits) != 2 || hits[0].ProductID != 1 || hits[1].ProductID != 2 {
		t.Fatalf("expected products 1 and 2, got %v", hits)
	}
	_, _, active, open := s.State()
	if !open {
		t.Fatal("dropdown must open on a non-empty query")
	}
	if active != -1 {
		t.Fatalf("keystroke must reset the highlight, got %d", active)
	}
}

func TestSetQueryEmptyClosesDropdown(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")
	s.SetQuery(sampleCollection(), "")
	_, hits, _, open := s.State()
	if open || len(hits) != 0 {
		t.Fatalf("empty query must close and clear, open=%v hits=%v", open, hits)
	}
}

func TestSetQueryNoMatchesStaysOpen(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "zzz")
	_, hits, _, open := s.State()
	if !open {
		t.Fatal("dropdown stays open with zero matches to show the empty state")
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %v", hits)
	}
}

func TestArrowNavigationWraps(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")

	if got := s.ArrowDown(); got != 0 {
		t.Fatalf("first down should land on 0, got %d", got)
	}
	if got := s.ArrowDown(); got != 1 {
		t.Fatalf("second down should land on 1, got %d", got)
	}
	if got := s.ArrowDown(); got != 0 {
		t.Fatalf("third down should wrap to 0, got %d", got)
	}
	if got := s.ArrowUp(); got != 1 {
		t.Fatalf("up from 0 should wrap to 1, got %d", got)
	}
}

func TestArrowUpFromUnhighlightedLandsOnLast(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")
	if got := s.ArrowUp(); got != 1 {
		t.Fatalf("up with no highlight should land on the last row, got %d", got)
	}
}

func TestArrowsNoopWithoutMatches(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "zzz")
	if got := s.ArrowDown(); got != -1 {
		t.Fatalf("down with no matches must not move, got %d", got)
	}
	if got := s.ArrowUp(); got != -1 {
		t.Fatalf("up with no matches must not move, got %d", got)
	}
}

func TestEnterCommitsHighlight(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")

	if _, ok := s.Enter(); ok {
		t.Fatal("enter without a highlight must not commit")
	}

	s.ArrowDown()
	s.ArrowDown()
	id, ok := s.Enter()
	if !ok || id != 2 {
		t.Fatalf("expected commit of product 2, got id=%d ok=%v", id, ok)
	}
	query, _, _, open := s.State()
	if query != "Blue Shoe" {
		t.Fatalf("query must become the committed name, got %q", query)
	}
	if open {
		t.Fatal("dropdown must close on commit")
	}
}

func TestSelectCommitsRegardlessOfHighlight(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")
	id, ok := s.Select(0)
	if !ok || id != 1 {
		t.Fatalf("expected product 1, got id=%d ok=%v", id, ok)
	}
	if _, ok := s.Select(5); ok {
		t.Fatal("out-of-range select must report false")
	}
}

func TestSelectProductByID(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")
	if !s.SelectProduct(2) {
		t.Fatal("expected commit of a matched product id")
	}
	query, _, _, open := s.State()
	if open || query != "Blue Shoe" {
		t.Fatalf("commit must close and adopt the name, open=%v query=%q", open, query)
	}
	if s.SelectProduct(3) {
		t.Fatal("product outside the matches must not commit")
	}
}

func TestEscapeClosesWithoutClearingQuery(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")
	s.Escape()
	query, _, _, open := s.State()
	if open {
		t.Fatal("escape must close the dropdown")
	}
	if query != "sho" {
		t.Fatalf("escape must keep the query, got %q", query)
	}
}

func TestBlurClosesAfterGraceUnlessRefocused(t *testing.T) {
	s := NewSearchSession(5 * time.Millisecond)
	s.SetQuery(sampleCollection(), "sho")

	s.Blur()
	s.Focus()
	time.Sleep(20 * time.Millisecond)
	if _, _, _, open := s.State(); !open {
		t.Fatal("focus inside the grace window must cancel the close")
	}

	s.Blur()
	time.Sleep(20 * time.Millisecond)
	if _, _, _, open := s.State(); open {
		t.Fatal("dropdown must close after the grace window")
	}
}

func TestFocusReopensWhenMatchesRemain(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")
	s.Escape()
	s.Focus()
	if _, _, _, open := s.State(); !open {
		t.Fatal("focus must reopen when prior matches exist")
	}

	s.SetQuery(sampleCollection(), "zzz")
	s.Escape()
	s.Focus()
	if _, _, _, open := s.State(); open {
		t.Fatal("focus must not reopen without matches")
	}
}

func TestHover(t *testing.T) {
	s := NewSearchSession(0)
	s.SetQuery(sampleCollection(), "sho")
	s.Hover(1)
	if _, _, active, _ := s.State(); active != 1 {
		t.Fatalf("expected highlight 1, got %d", active)
	}
	s.Hover(7)
	if _, _, active, _ := s.State(); active != 1 {
		t.Fatalf("out-of-range hover must be ignored, got %d", active)
	}
}
