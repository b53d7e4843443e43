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

// Package pipeline orchestrates the annotation of a validated corpus:
// sentence splitting, tokenization, optional morphological analysis
// and CONLL-U serialization, one output file pair per article.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"ancor/conllu"
	"ancor/corpus"
	"ancor/morph"

	"github.com/rs/zerolog/log"
)

// Stage identifies how far an article has progressed through a run.
type Stage string

const (
	StageLoaded    Stage = "loaded"
	StageTokenized Stage = "tokenized"
	StageAnalyzed  Stage = "analyzed"
	StageRendered  Stage = "rendered"
	StagePersisted Stage = "persisted"
)

// ArticleError wraps a per-article failure with the article id and the
// stage the article failed at. Any such failure aborts the whole run:
// downstream tooling expects a dense corpus, so skipping an article is
// not an option.
type ArticleError struct {
	ArticleID int
	Stage     Stage
	Err       error
}

func (err *ArticleError) Error() string {
	return fmt.Sprintf("article %d failed at stage %s: %s", err.ArticleID, err.Stage, err.Err)
}

func (err *ArticleError) Unwrap() error {
	return err.Err
}

// Options configures a pipeline run.
type Options struct {
	// WithMorphology selects the extended variant which annotates
	// each token via the analyzer. When false, only tokenization and
	// cleaning are performed and the annotation columns render as
	// placeholders.
	WithMorphology bool

	// MaxNumConcurrentJobs bounds the worker pool; values below 1
	// mean sequential processing.
	MaxNumConcurrentJobs int

	// OutputDirPath is where per-article output files are written.
	OutputDirPath string

	// OnArticleDone, when set, is called after an article has been
	// persisted. It may be called from multiple goroutines.
	OnArticleDone func(articleID int)
}

// Pipeline processes all articles of a corpus into CONLL-U and
// cleaned-text files. Articles are independent, so they are distributed
// over a bounded worker pool; output files are keyed by article id
// which makes the result independent of worker completion order.
type Pipeline struct {
	cm       *corpus.Manager
	analyzer morph.Analyzer
	opts     Options
}

// New creates a Pipeline. The analyzer may be nil unless
// opts.WithMorphology is enabled.
func New(cm *corpus.Manager, analyzer morph.Analyzer, opts Options) *Pipeline {
	return &Pipeline{
		cm:       cm,
		analyzer: analyzer,
		opts:     opts,
	}
}

// Run processes every article of the corpus in a deterministic way.
// The first failed article aborts the run and its error is returned;
// when several workers fail concurrently, the error of the lowest
// article id wins so reruns report reproducibly.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.opts.WithMorphology && p.analyzer == nil {
		return errors.New("morphological annotation requested but no analyzer configured")
	}
	if err := os.MkdirAll(p.opts.OutputDirPath, 0755); err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}

	articles := p.cm.Articles()
	numWorkers := p.opts.MaxNumConcurrentJobs
	if numWorkers < 1 {
		numWorkers = 1
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	artErrors := make([]error, p.cm.Size()+1)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				if runCtx.Err() != nil {
					continue
				}
				if err := p.processArticle(articles[id]); err != nil {
					artErrors[id] = err
					cancel()
					continue
				}
				log.Debug().Int("articleId", id).Msg("article persisted")
				if p.opts.OnArticleDone != nil {
					p.opts.OnArticleDone(id)
				}
			}
		}()
	}

	for id := 1; id <= p.cm.Size(); id++ {
		if runCtx.Err() != nil {
			break
		}
		jobs <- id
	}
	close(jobs)
	wg.Wait()

	for id := 1; id <= p.cm.Size(); id++ {
		if artErrors[id] != nil {
			return artErrors[id]
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("annotation run aborted: %w", err)
	}
	return nil
}

// processArticle runs a single article through the
// loaded-tokenized-analyzed-rendered-persisted progression.
func (p *Pipeline) processArticle(art *corpus.RawArticle) error {
	sentences, err := p.process(art.Text)
	if err != nil {
		return &ArticleError{ArticleID: art.ID, Stage: StageTokenized, Err: err}
	}
	if p.opts.WithMorphology {
		if err := p.annotate(sentences); err != nil {
			return &ArticleError{ArticleID: art.ID, Stage: StageAnalyzed, Err: err}
		}
	}
	conlluText, cleanedText := p.render(sentences)
	if err := p.persist(art.ID, conlluText, cleanedText); err != nil {
		return &ArticleError{ArticleID: art.ID, Stage: StagePersisted, Err: err}
	}
	return nil
}

// process splits raw text into sentence models with untagged tokens.
func (p *Pipeline) process(text string) ([]*conllu.Sentence, error) {
	rawSentences := SplitSentences(text)
	if len(rawSentences) == 0 {
		return nil, errors.New("article text contains no sentences")
	}
	sentences := make([]*conllu.Sentence, len(rawSentences))
	for i, sentText := range rawSentences {
		forms := TokenizeSentence(sentText)
		tokens := make([]*conllu.Token, len(forms))
		for j, form := range forms {
			tokens[j] = conllu.NewToken(form)
		}
		sentences[i] = conllu.NewSentence(i+1, sentText, tokens)
	}
	return sentences, nil
}

// annotate attaches a morphological reading to every token.
func (p *Pipeline) annotate(sentences []*conllu.Sentence) error {
	for _, sent := range sentences {
		for _, tok := range sent.Tokens() {
			ans, err := p.analyzer.Analyze(tok.Text())
			if err != nil {
				return fmt.Errorf("sentence %d: %w", sent.Position(), err)
			}
			tok.SetMorphology(conllu.Morphology{
				Lemma: ans.Lemma,
				Pos:   ans.Pos,
				Feats: ans.Feats,
			})
		}
	}
	return nil
}

// render serializes sentences into the CONLL-U document and the
// cleaned-text document (one sentence per line; a punctuation-only
// sentence stays as an empty line to keep line numbers aligned with
// sentence positions).
func (p *Pipeline) render(sentences []*conllu.Sentence) (string, string) {
	var conlluSB, cleanedSB strings.Builder
	for _, sent := range sentences {
		conlluSB.WriteString(sent.ConlluText(p.opts.WithMorphology))
		cleanedSB.WriteString(sent.CleanedSentence())
		cleanedSB.WriteString("\n")
	}
	return conlluSB.String(), cleanedSB.String()
}

// persist writes both per-article output files. Paths depend only on
// the article id, so reruns overwrite idempotently.
func (p *Pipeline) persist(articleID int, conlluText, cleanedText string) error {
	conlluPath := corpus.GenConlluPath(p.opts.OutputDirPath, articleID)
	if err := os.WriteFile(conlluPath, []byte(conlluText), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", conlluPath, err)
	}
	cleanedPath := corpus.GenCleanedPath(p.opts.OutputDirPath, articleID)
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cleanedPath, err)
	}
	return nil
}
