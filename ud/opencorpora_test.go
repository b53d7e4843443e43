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

package ud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenCorporaConvertPos(t *testing.T) {
	var conv OpenCorporaConverter
	assert.Equal(t, PosNoun, conv.ConvertPos(OpenCorporaTag{POS: "NOUN"}))
	assert.Equal(t, PosVerb, conv.ConvertPos(OpenCorporaTag{POS: "INFN"}))
	assert.Equal(t, PosAdj, conv.ConvertPos(OpenCorporaTag{POS: "ADJS"}))
	assert.Equal(t, PosPunct, conv.ConvertPos(OpenCorporaTag{POS: "PNCT"}))
}

func TestOpenCorporaConvertPosUnknown(t *testing.T) {
	var conv OpenCorporaConverter
	assert.Equal(t, PosX, conv.ConvertPos(OpenCorporaTag{POS: "ZZZ"}))
	assert.Equal(t, PosX, conv.ConvertPos(OpenCorporaTag{}))
}

func TestOpenCorporaConvertMorphTags(t *testing.T) {
	var conv OpenCorporaConverter
	tag := OpenCorporaTag{
		POS:     "NOUN",
		Animacy: "anim",
		Gender:  "masc",
		Number:  "sing",
		Case:    "nomn",
	}
	assert.Equal(
		t,
		"Animacy=Anim|Case=Nom|Gender=Masc|Number=Sing",
		conv.ConvertMorphTags(tag),
	)
}

func TestOpenCorporaConvertMorphTagsVerb(t *testing.T) {
	var conv OpenCorporaConverter
	tag := OpenCorporaTag{
		POS:    "VERB",
		Aspect: "impf",
		Tense:  "past",
		Number: "sing",
		Gender: "femn",
		Mood:   "indc",
		Voice:  "actv",
	}
	assert.Equal(
		t,
		"Aspect=Imp|Gender=Fem|Mood=Ind|Number=Sing|Tense=Past|Voice=Act",
		conv.ConvertMorphTags(tag),
	)
}

func TestOpenCorporaConvertMorphTagsEmpty(t *testing.T) {
	var conv OpenCorporaConverter
	assert.Equal(t, "", conv.ConvertMorphTags(OpenCorporaTag{POS: "PREP"}))
	assert.Equal(t, "", conv.ConvertMorphTags(OpenCorporaTag{Case: "zzz"}))
}

func TestParseOpenCorporaTag(t *testing.T) {
	tag := ParseOpenCorporaTag("NOUN,anim,masc sing,nomn")
	assert.Equal(t, "NOUN", tag.POS)
	assert.Equal(t, "anim", tag.Animacy)
	assert.Equal(t, "masc", tag.Gender)
	assert.Equal(t, "sing", tag.Number)
	assert.Equal(t, "nomn", tag.Case)
}

func TestParseOpenCorporaTagIgnoresUnknown(t *testing.T) {
	tag := ParseOpenCorporaTag("VERB,zzz,perf,past")
	assert.Equal(t, "VERB", tag.POS)
	assert.Equal(t, "perf", tag.Aspect)
	assert.Equal(t, "past", tag.Tense)
	assert.Equal(t, "", tag.Case)
}
