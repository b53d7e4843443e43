// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of ANCOR.
//
//  ANCOR is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ANCOR is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ANCOR.  If not, see <https://www.gnu.org/licenses/>.

package conllu

import (
	"strconv"
	"strings"
)

// Sentence is an ordered sequence of tokens along with the original
// sentence text and its 1-based position within the article. Token
// order matches surface order; the slice index + 1 is the CONLL-U
// token id.
type Sentence struct {
	position int
	text     string
	tokens   []*Token
}

func NewSentence(position int, text string, tokens []*Token) *Sentence {
	return &Sentence{
		position: position,
		text:     text,
		tokens:   tokens,
	}
}

// Position returns the 1-based position of the sentence in the article.
func (s *Sentence) Position() int {
	return s.position
}

// Text returns the original sentence text.
func (s *Sentence) Text() string {
	return s.text
}

// Tokens returns the tokens in surface order.
func (s *Sentence) Tokens() []*Token {
	return s.tokens
}

// ConlluText renders the sentence as a CONLL-U block: a sent_id
// comment, a text comment, one line per token and a terminating blank
// line.
func (s *Sentence) ConlluText(includeMorphTags bool) string {
	var sb strings.Builder
	sb.WriteString("# sent_id = " + strconv.Itoa(s.position) + "\n")
	sb.WriteString("# text = " + s.text + "\n")
	for i, tok := range s.tokens {
		sb.WriteString(tok.ConlluText(i+1, includeMorphTags))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// CleanedSentence returns the cleaned forms of the tokens joined by
// single spaces. Punctuation-only tokens clean to empty strings and
// are omitted from the join, so the result never contains consecutive
// spaces.
func (s *Sentence) CleanedSentence() string {
	cleaned := make([]string, 0, len(s.tokens))
	for _, tok := range s.tokens {
		if c := tok.Cleaned(); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return strings.Join(cleaned, " ")
}
