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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentencesBasic(t *testing.T) {
	ans := SplitSentences("Мама мыла раму. Папа читал газету.")
	assert.Equal(t, []string{"Мама мыла раму.", "Папа читал газету."}, ans)
}

func TestSplitSentencesNoBoundaryBeforeLowercase(t *testing.T) {
	// ellipsis followed by a lowercase word continues the sentence
	ans := SplitSentences("Он ждал… и ждал. Потом ушел.")
	assert.Equal(t, []string{"Он ждал… и ждал.", "Потом ушел."}, ans)
}

func TestSplitSentencesClosingQuote(t *testing.T) {
	ans := SplitSentences("Он сказал: «Привет!» Она ушла.")
	assert.Equal(t, []string{"Он сказал: «Привет!»", "Она ушла."}, ans)
}

func TestSplitSentencesMultipleTerminals(t *testing.T) {
	ans := SplitSentences("Что?! Не может быть.")
	assert.Equal(t, []string{"Что?!", "Не может быть."}, ans)
}

func TestSplitSentencesNoTrailingTerminal(t *testing.T) {
	ans := SplitSentences("Первое предложение. Второе без точки")
	assert.Equal(t, []string{"Первое предложение.", "Второе без точки"}, ans)
}

func TestSplitSentencesNormalizesWhitespace(t *testing.T) {
	ans := SplitSentences("Первая   строка\nпродолжается. Вторая строка.")
	assert.Equal(t, []string{"Первая строка продолжается.", "Вторая строка."}, ans)
}

func TestSplitSentencesDigitStartsSentence(t *testing.T) {
	ans := SplitSentences("Это было давно. 2020 год изменил все.")
	assert.Equal(t, []string{"Это было давно.", "2020 год изменил все."}, ans)
}

func TestSplitSentencesEmptyInput(t *testing.T) {
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences("   \n\t "))
}

func TestTokenizeSentence(t *testing.T) {
	ans := TokenizeSentence("Hello, World!")
	assert.Equal(t, []string{"Hello", ",", "World", "!"}, ans)
}

func TestTokenizeSentenceHyphenated(t *testing.T) {
	ans := TokenizeSentence("Кто-то пришел.")
	assert.Equal(t, []string{"Кто-то", "пришел", "."}, ans)
}

func TestTokenizeSentenceDashIsSeparate(t *testing.T) {
	// a dash between spaces is punctuation, not part of a word
	ans := TokenizeSentence("Жизнь - это сон.")
	assert.Equal(t, []string{"Жизнь", "-", "это", "сон", "."}, ans)
}

func TestTokenizeSentenceNumbers(t *testing.T) {
	ans := TokenizeSentence("В 2026 году.")
	assert.Equal(t, []string{"В", "2026", "году", "."}, ans)
}

func TestTokenizeSentenceQuotes(t *testing.T) {
	ans := TokenizeSentence("«Привет!»")
	assert.Equal(t, []string{"«", "Привет", "!", "»"}, ans)
}
