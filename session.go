package pagedraw

import (
	"fmt"

	"github.com/pagedraw/pagedraw/contentstream"
	"github.com/pagedraw/pagedraw/draw"
	"github.com/pagedraw/pagedraw/render"
)

// Command is one backend-agnostic drawing instruction.
type Command = draw.Command

// Session provides a fluent interface for interpreting the content streams
// of one document. Configuration methods return a new Session instance, so
// a configured chain can be stored and reused.
//
// The session is the caching boundary: form XObject expansions, the
// missing-font set, and warning deduplication all span the pages
// interpreted through one session. Configuration must happen before the
// first terminal call; afterwards the interpreter is pinned.
type Session struct {
	options InterpretOptions

	// interp is created on the first terminal call and shared by clones
	// made afterwards
	interp *render.Interpreter

	// pageSeq numbers the interpreted streams so each gets its own form
	// cache scope
	pageSeq int

	// warnMark separates warnings already returned from earlier calls
	warnMark int
}

// NewSession creates a session with default options.
//
// Example:
//
//	cmds, warnings, err := pagedraw.NewSession().Interpret(content, resources)
func NewSession() *Session {
	return &Session{options: defaultOptions()}
}

// clone creates a copy of the Session with a copy of options. The built
// interpreter, when one exists, stays shared.
func (s *Session) clone() *Session {
	return &Session{
		options:  s.options.clone(),
		interp:   s.interp,
		pageSeq:  s.pageSeq,
		warnMark: s.warnMark,
	}
}

// MetricsScale sets the factor applied to font sizes during text
// measurement. Advances grow with the factor while the emitted font size
// stays put, which lets a host lay text out for a different output
// resolution than it draws at.
func (s *Session) MetricsScale(factor float64) *Session {
	c := s.clone()
	c.options.metricsScale = factor
	return c
}

// SizeScale sets the factor applied to font sizes on emitted SetFont
// commands.
func (s *Session) SizeScale(factor float64) *Session {
	c := s.clone()
	c.options.sizeScale = factor
	return c
}

// Measurer sets the host text measurement hook consulted for fonts the
// built-in width tables do not cover.
func (s *Session) Measurer(m TextMeasurer) *Session {
	c := s.clone()
	c.options.measurer = m
	return c
}

// ensureInterpreter builds the interpreter from the configured options on
// the first terminal call.
func (s *Session) ensureInterpreter() *render.Interpreter {
	if s.interp == nil {
		s.interp = render.New(render.Options{
			MetricsScale: s.options.metricsScale,
			SizeScale:    s.options.sizeScale,
			Measurer:     s.options.measurer,
		})
	}
	return s.interp
}

// Interpret tokenizes and interprets one content stream and returns the
// draw commands plus the warnings this call added. A non-nil error means
// the stream bytes were malformed at the token level; interpretation-level
// problems surface as warnings instead.
//
// Each call gets its own form cache scope, so a form name reused across
// streams is expanded once per stream.
func (s *Session) Interpret(content []byte, res Resources) ([]Command, []Warning, error) {
	ops, err := contentstream.NewParser(content).Parse()
	if err != nil {
		return nil, nil, fmt.Errorf("tokenizing content stream: %w", err)
	}
	return s.interpretOps(ops, res)
}

// InterpretOperations interprets an already tokenized operation list, for
// callers that ran the contentstream parser themselves.
func (s *Session) InterpretOperations(ops []contentstream.Operation, res Resources) ([]Command, []Warning, error) {
	return s.interpretOps(ops, res)
}

func (s *Session) interpretOps(ops []contentstream.Operation, res Resources) ([]Command, []Warning, error) {
	interp := s.ensureInterpreter()

	if res == nil {
		res = EmptyResources{}
	}
	s.pageSeq++
	scope := fmt.Sprintf("stream-%d", s.pageSeq)
	cmds := interp.RunPage(scope, ops, res)

	all := interp.Warnings()
	fresh := append([]Warning(nil), all[s.warnMark:]...)
	s.warnMark = len(all)
	return cmds, fresh, nil
}

// Warnings returns every warning accumulated across the session so far.
func (s *Session) Warnings() []Warning {
	if s.interp == nil {
		return nil
	}
	return s.interp.Warnings()
}

// MissingFonts returns the sorted base-font names that matched no standard
// family across the session.
func (s *Session) MissingFonts() []string {
	if s.interp == nil {
		return nil
	}
	return s.interp.MissingFonts()
}
