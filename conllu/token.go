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

// Package conllu models tokenized sentences and serializes them into
// the CONLL-U format (one token per line, ten tab-separated columns,
// sentences separated by blank lines).
package conllu

import (
	"strconv"
	"strings"
	"unicode"

	"ancor/ud"
)

const (
	fieldSep    = "\t"
	placeholder = "_"
	numFields   = 10
)

// Morphology carries the morphological annotation of a single token:
// its lemma, UD part-of-speech tag and UD feature string (ordered
// "Key=Value" pairs joined by "|", possibly empty). The zero value
// means "not annotated".
type Morphology struct {
	Lemma string
	Pos   ud.PosTag
	Feats string
}

// Token is a single word form of a sentence.
type Token struct {
	text  string
	morph Morphology
}

func NewToken(text string) *Token {
	return &Token{text: text}
}

// Text returns the original surface form.
func (t *Token) Text() string {
	return t.text
}

// SetMorphology replaces the morphological annotation of the token.
func (t *Token) SetMorphology(m Morphology) {
	t.morph = m
}

// Morphology returns the current morphological annotation.
func (t *Token) Morphology() Morphology {
	return t.morph
}

// Cleaned returns the lowercased surface form with punctuation
// stripped. For a punctuation-only token the result is an empty
// string, never a missing value.
func (t *Token) Cleaned() string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, t.text)
}

// ConlluText renders the token as a CONLL-U line with the given
// 1-based token id. With includeMorphTags disabled the LEMMA, UPOS and
// FEATS columns degrade to placeholders, which supports the basic
// (non-annotating) preprocessing mode. The XPOS, HEAD, DEPREL, DEPS
// and MISC columns are always placeholders as no syntactic annotation
// is produced.
func (t *Token) ConlluText(id int, includeMorphTags bool) string {
	fields := make([]string, numFields)
	fields[0] = strconv.Itoa(id)
	fields[1] = t.text
	if includeMorphTags {
		fields[2] = t.morph.Lemma
		fields[3] = string(t.morph.Pos)
		fields[5] = t.morph.Feats
	}
	for i, f := range fields {
		if f == "" {
			fields[i] = placeholder
		}
	}
	return strings.Join(fields, fieldSep)
}
