package editor

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
)

// Session owns one Document and mediates every mutation: each committing
// operation snapshots the document first, so any committed edit can be
// undone. A Document belongs to exactly one Session at a time; concurrent
// callers must serialize on the embedding side.
type Session struct {
	Doc     *board.Document
	History *History
	Config  Config

	// zonePriority is the shared stacking-order counter for zones created in
	// this session. It lives on the session, not in package state, so two
	// sessions never interleave.
	zonePriority int
}

// NewSession creates an editing session over a document.
func NewSession(doc *board.Document, cfg Config) *Session {
	cfg = cfg.withDefaults()
	return &Session{
		Doc:     doc,
		History: NewHistory(cfg.HistoryLimit),
		Config:  cfg,
	}
}

// commit snapshots the document, then applies the mutation. All committed
// operations in this package funnel through here.
func (s *Session) commit(mutate func(doc *board.Document)) {
	s.History.Push(s.Doc)
	mutate(s.Doc)
}

// Undo replaces the live document with the most recent snapshot. It returns
// false when there is nothing to undo.
func (s *Session) Undo() bool {
	doc, ok := s.History.Undo(s.Doc)
	if !ok {
		return false
	}
	s.Doc = doc
	return true
}

// Redo replaces the live document with the most recently undone state. It
// returns false when there is nothing to redo.
func (s *Session) Redo() bool {
	doc, ok := s.History.Redo(s.Doc)
	if !ok {
		return false
	}
	s.Doc = doc
	return true
}

// nextZonePriority returns the next zone stacking priority.
func (s *Session) nextZonePriority() int {
	p := s.zonePriority
	s.zonePriority++
	return p
}
