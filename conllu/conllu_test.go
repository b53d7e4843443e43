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
	"strings"
	"testing"

	"ancor/ud"

	"github.com/stretchr/testify/assert"
)

func TestTokenConlluTextWithMorphology(t *testing.T) {
	tok := NewToken("Прага")
	tok.SetMorphology(Morphology{
		Lemma: "прага",
		Pos:   ud.PosPropn,
		Feats: "Case=Nom|Gender=Fem|Number=Sing",
	})
	ans := tok.ConlluText(3, true)
	assert.Equal(
		t,
		"3\tПрага\tпрага\tPROPN\t_\tCase=Nom|Gender=Fem|Number=Sing\t_\t_\t_\t_",
		ans,
	)
	assert.Len(t, strings.Split(ans, "\t"), 10)
}

func TestTokenConlluTextWithoutMorphology(t *testing.T) {
	tok := NewToken("word")
	tok.SetMorphology(Morphology{Lemma: "word", Pos: ud.PosNoun})
	// morphology must not leak into the basic rendering mode
	assert.Equal(t, "1\tword\t_\t_\t_\t_\t_\t_\t_\t_", tok.ConlluText(1, false))
}

func TestTokenConlluTextEmptyFeats(t *testing.T) {
	tok := NewToken("and")
	tok.SetMorphology(Morphology{Lemma: "and", Pos: ud.PosCconj})
	assert.Equal(t, "1\tand\tand\tCCONJ\t_\t_\t_\t_\t_\t_", tok.ConlluText(1, true))
}

func TestTokenCleaned(t *testing.T) {
	assert.Equal(t, "hello", NewToken("Hello,").Cleaned())
	assert.Equal(t, "", NewToken("!").Cleaned())
	assert.Equal(t, "2026", NewToken("2026").Cleaned())
	assert.Equal(t, "говорит", NewToken("Говорит!").Cleaned())
}

func TestSentenceConlluText(t *testing.T) {
	tokens := []*Token{NewToken("Hello"), NewToken(","), NewToken("World"), NewToken("!")}
	s := NewSentence(1, "Hello, World!", tokens)
	ans := s.ConlluText(false)
	assert.Equal(
		t,
		"# sent_id = 1\n"+
			"# text = Hello, World!\n"+
			"1\tHello\t_\t_\t_\t_\t_\t_\t_\t_\n"+
			"2\t,\t_\t_\t_\t_\t_\t_\t_\t_\n"+
			"3\tWorld\t_\t_\t_\t_\t_\t_\t_\t_\n"+
			"4\t!\t_\t_\t_\t_\t_\t_\t_\t_\n"+
			"\n",
		ans,
	)
}

// Rendering a sentence without morphology and parsing the block back
// must recover the surface tokens in their original order with every
// annotation column a placeholder.
func TestSentenceRenderRoundTrip(t *testing.T) {
	surface := []string{"Hello", ",", "World", "!"}
	tokens := make([]*Token, len(surface))
	for i, w := range surface {
		tokens[i] = NewToken(w)
	}
	block := NewSentence(1, "Hello, World!", tokens).ConlluText(false)

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	var parsed []string
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		assert.Len(t, fields, 10)
		parsed = append(parsed, fields[1])
		for _, f := range fields[2:] {
			assert.Equal(t, "_", f)
		}
	}
	assert.Equal(t, surface, parsed)
}

func TestCleanedSentence(t *testing.T) {
	tokens := []*Token{NewToken("Hello"), NewToken(","), NewToken("World"), NewToken("!")}
	s := NewSentence(1, "Hello, World!", tokens)
	assert.Equal(t, "hello world", s.CleanedSentence())
}

func TestCleanedSentencePunctuationOnly(t *testing.T) {
	s := NewSentence(1, "?!", []*Token{NewToken("?"), NewToken("!")})
	assert.Equal(t, "", s.CleanedSentence())
}
