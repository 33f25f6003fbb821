package sessionstore

import (
	"sync"
	"ulascansenturk/weather-widget/internal/weather"
)

// Session is the state of one browser session: what the page currently shows,
// the places viewed so far and a pending error message.
type Session struct {
	mu        sync.Mutex
	history   []weather.HistoryEntry
	report    *weather.Report
	flash     string
	lastToken uint64
}

// BeginLoad registers a new load and returns its token. Starting a load makes every
// earlier, still running load stale.
func (s *Session) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastToken++
	return s.lastToken
}

// Commit replaces the shown report and records the place in history, but only when
// token belongs to the newest load. Stale results are dropped and false is returned.
func (s *Session) Commit(token uint64, report weather.Report) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.lastToken {
		return false
	}

	s.report = &report
	s.addToHistory(weather.HistoryEntry{
		Name:       report.Query.Name,
		Coordinate: report.Query.Coordinate,
	})
	return true
}

// AddToHistory puts entry at the top of the history. Duplicates are kept.
func (s *Session) AddToHistory(entry weather.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addToHistory(entry)
}

func (s *Session) addToHistory(entry weather.HistoryEntry) {
	s.history = append([]weather.HistoryEntry{entry}, s.history...)
}

// History returns a copy of the entries, most recent first.
func (s *Session) History() []weather.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]weather.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Report() (weather.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.report == nil {
		return weather.Report{}, false
	}
	return *s.report, true
}

func (s *Session) SetFlash(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flash = message
}

// TakeFlash returns the pending error message and clears it.
func (s *Session) TakeFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.flash
	s.flash = ""
	return msg
}
