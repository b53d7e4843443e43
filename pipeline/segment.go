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

package pipeline

import (
	"strings"
	"unicode"
)

var (
	sentenceTerminals = map[rune]bool{
		'.': true,
		'!': true,
		'?': true,
		'…': true,
	}
	closingMarks = map[rune]bool{
		'"':  true,
		'»':  true,
		'”':  true,
		'\'': true,
		')':  true,
		']':  true,
	}
	openingMarks = map[rune]bool{
		'"':  true,
		'«':  true,
		'“':  true,
		'\'': true,
		'(':  true,
	}
)

// startsSentence tests whether a rune can open a new sentence.
func startsSentence(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsDigit(r) || openingMarks[r]
}

// normalizeSentence collapses whitespace runs to single spaces so a
// sentence always fits a single "# text = ..." comment line.
func normalizeSentence(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitSentences splits raw article text into sentences with a fixed
// heuristic: a run of terminal punctuation ('.', '!', '?', '…'),
// optionally followed by closing quotes or brackets, ends a sentence
// when it is followed by whitespace and an upper-case letter, a digit
// or an opening quote, or by the end of the text. The rule is purely
// lexical (abbreviations such as "т.д." followed by a capitalized word
// do split), which keeps the output a deterministic function of the
// input.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	appendSentence := func(s string) {
		if s = normalizeSentence(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	start := 0
	i := 0
	for i < len(runes) {
		if !sentenceTerminals[runes[i]] {
			i++
			continue
		}
		end := i + 1
		for end < len(runes) && sentenceTerminals[runes[end]] {
			end++
		}
		for end < len(runes) && closingMarks[runes[end]] {
			end++
		}
		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next == len(runes) || (next > end && startsSentence(runes[next])) {
			appendSentence(string(runes[start:end]))
			start = next
			i = next

		} else {
			i = end
		}
	}
	if start < len(runes) {
		appendSentence(string(runes[start:]))
	}
	return sentences
}

// TokenizeSentence splits a sentence into surface tokens: maximal runs
// of letters and digits (hyphens and apostrophes are kept when
// surrounded by such runes, e.g. "кто-то"), with every other
// non-whitespace rune emitted as a token of its own.
func TokenizeSentence(sentence string) []string {
	runes := []rune(sentence)
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cur = append(cur, r)
		case (r == '-' || r == '\'' || r == '’') && len(cur) > 0 &&
			i+1 < len(runes) && (unicode.IsLetter(runes[i+1]) || unicode.IsNumber(runes[i+1])):
			cur = append(cur, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}
