// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package watermark

// Session holds the marker runs derived from one token. It is computed once
// when an exam page is set up and is read-only afterwards, so a single
// Session may back any number of fields.
type Session struct {
	token           Token
	observer        bool
	zeroWidthPrefix string
	tagPrefix       string
}

// NewSession derives both channel runs for token. Observer sessions carry
// an extra sentinel codepoint at the head of each run.
func NewSession(token Token, observer bool) (*Session, error) {
	token, err := ParseToken(string(token))
	if err != nil {
		return nil, err
	}

	s := &Session{token: token, observer: observer}
	if observer {
		s.zeroWidthPrefix = string(ZeroWidth.ObserverMarker())
		s.tagPrefix = string(Tag.ObserverMarker())
	}
	s.zeroWidthPrefix += EncodeToken(token, ZeroWidth)
	s.tagPrefix += EncodeToken(token, Tag)

	return s, nil
}

// Token returns the session token.
func (s *Session) Token() Token { return s.token }

// Observer reports whether the session belongs to an observer.
func (s *Session) Observer() bool { return s.observer }

// ZeroWidthPrefix returns the run inserted before spaces.
func (s *Session) ZeroWidthPrefix() string { return s.zeroWidthPrefix }

// TagPrefix returns the run inserted after spaces and at the end of text.
func (s *Session) TagPrefix() string { return s.tagPrefix }

// Mark interleaves the session runs into text. See [Mark].
func (s *Session) Mark(text string) string {
	return Mark(text, s.zeroWidthPrefix, s.tagPrefix)
}
