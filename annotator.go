// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"

	"ancor/cnf"
	"ancor/corpus"
	"ancor/morph"
	"ancor/pipeline"
)

func runAnnotator(conf *cnf.Conf) {
	runID := uuid.New().String()
	log.Logger = log.Logger.With().Str("run", runID).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mgr, err := corpus.NewManager(conf.DataDirPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open corpus dataset")
		return
	}

	var analyzer morph.Analyzer
	if conf.WithMorphology {
		analyzer, err = morph.NewAnalyzer(conf.Tagset, conf.LexiconPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create morphological analyzer")
			return
		}
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(mgr.Size())
	bar.AppendCompleted()
	bar.PrependElapsed()

	pipe := pipeline.New(mgr, analyzer, pipeline.Options{
		WithMorphology:       conf.WithMorphology,
		MaxNumConcurrentJobs: conf.MaxNumConcurrentJobs,
		OutputDirPath:        conf.OutputDirPath,
		OnArticleDone: func(articleID int) {
			bar.Incr()
		},
	})
	err = pipe.Run(ctx)
	uiprogress.Stop()
	if err != nil {
		log.Fatal().Err(err).Msg("annotation run failed")
		return
	}
	log.Info().
		Int("numArticles", mgr.Size()).
		Str("outputDir", conf.OutputDirPath).
		Msg("annotation run finished")
}
