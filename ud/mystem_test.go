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

func TestMystemConvertPos(t *testing.T) {
	var conv MystemConverter
	assert.Equal(t, PosNoun, conv.ConvertPos("S,anim,masc,sing,nom"))
	assert.Equal(t, PosVerb, conv.ConvertPos("V,pf,act,praet"))
	assert.Equal(t, PosAdp, conv.ConvertPos("PR"))
	assert.Equal(t, PosDet, conv.ConvertPos("APRO,sing,fem"))
}

func TestMystemConvertPosProperName(t *testing.T) {
	var conv MystemConverter
	assert.Equal(t, PosPropn, conv.ConvertPos("S,persn,masc,sing,nom"))
	assert.Equal(t, PosPropn, conv.ConvertPos("S,geo,inan,sing,nom"))
	// name grammemes only promote nouns
	assert.Equal(t, PosNoun, conv.ConvertPos("S,anim,fem,sing,nom"))
}

func TestMystemConvertPosUnknown(t *testing.T) {
	var conv MystemConverter
	assert.Equal(t, PosX, conv.ConvertPos("ZZZ"))
	assert.Equal(t, PosX, conv.ConvertPos(""))
	assert.Equal(t, PosX, conv.ConvertPos("ZZZ,anim,sing"))
}

func TestMystemConvertMorphTagsOrdering(t *testing.T) {
	var conv MystemConverter
	// keys must come out in alphabetical order regardless of source order
	ans := conv.ConvertMorphTags("S,persn,masc,sing,nom")
	assert.Equal(t, "Case=Nom|Gender=Masc|Number=Sing", ans)
}

func TestMystemConvertMorphTagsFormPart(t *testing.T) {
	var conv MystemConverter
	ans := conv.ConvertMorphTags("S,fem,anim=acc,sing")
	assert.Equal(t, "Animacy=Anim|Case=Acc|Gender=Fem|Number=Sing", ans)
}

func TestMystemConvertMorphTagsFirstVariantWins(t *testing.T) {
	var conv MystemConverter
	ans := conv.ConvertMorphTags("S,fem,anim=(acc,sing|gen,sing)")
	assert.Equal(t, "Animacy=Anim|Case=Acc|Gender=Fem|Number=Sing", ans)
}

func TestMystemConvertMorphTagsUnknown(t *testing.T) {
	var conv MystemConverter
	assert.Equal(t, "", conv.ConvertMorphTags("ZZZ"))
	assert.Equal(t, "", conv.ConvertMorphTags(""))
	// unknown grammemes are dropped, known ones survive
	assert.Equal(t, "Number=Sing", conv.ConvertMorphTags("S,zzz,sing"))
}

func TestMystemConvertMorphTagsVerb(t *testing.T) {
	var conv MystemConverter
	ans := conv.ConvertMorphTags("V,pf,intr,act=praet,sing,indic,masc")
	assert.Equal(
		t,
		"Aspect=Perf|Gender=Masc|Mood=Ind|Number=Sing|Tense=Past|Voice=Act",
		ans,
	)
}
