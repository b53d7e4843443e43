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
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"ancor/cnf"
	"ancor/corpus"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type versionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func main() {
	ver := versionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ANCOR - an article corpus annotator (CONLL-U)\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] annotate [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] validate [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("ancor %s\nbuild date: %s\nlast commit: %s\n", ver.Version, ver.BuildDate, ver.GitCommit)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.LogFile, conf.LogLevel)

	if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return
	}

	log.Info().Msg("Starting ANCOR")
	cnf.ValidateAndDefaults(conf)

	switch action {
	case "annotate":
		runAnnotator(conf)
	case "validate":
		mgr, err := corpus.NewManager(conf.DataDirPath)
		if err != nil {
			log.Fatal().Err(err).Msg("dataset validation failed")
			return
		}
		log.Info().Int("numArticles", mgr.Size()).Msg("dataset OK")
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
