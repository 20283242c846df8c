/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command eqxgen generates dispatch-safe capability methods and typed
// helpers from a declarative TOML manifest. Typical use:
//
//	//go:generate eqxgen -manifest eqxgen.toml
//
// The manifest names the target package, the output path, and the types
// to cover; see internal/gen for the accepted kinds and fields.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"dirpx.dev/eqx/internal/gen"
)

func main() {
	manifest := flag.String("manifest", "eqxgen.toml", "path to the generation manifest")
	output := flag.String("output", "", "output path (overrides the manifest's output)")
	validate := flag.Bool("validate", false, "validate the manifest without writing")
	force := flag.Bool("force", false, "overwrite a non-generated output file")
	quiet := flag.Bool("quiet", false, "suppress non-error output")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *quiet {
		log = log.Level(zerolog.ErrorLevel)
	}

	m, err := gen.Load(*manifest)
	if err != nil {
		log.Error().Err(err).Str("manifest", *manifest).Msg("manifest rejected")
		os.Exit(1)
	}
	if *validate {
		log.Info().Str("manifest", *manifest).Int("types", len(m.Types)).Msg("manifest ok")
		return
	}

	target := *output
	if target == "" {
		target = m.Output
	}
	if target == "" {
		log.Error().Str("manifest", *manifest).Msg("no output path (set output in the manifest or pass -output)")
		os.Exit(1)
	}

	if err := gen.Write(m, target, *force); err != nil {
		log.Error().Err(err).Str("output", target).Msg("generation failed")
		os.Exit(1)
	}
	log.Info().Str("output", target).Str("package", m.Package).Int("types", len(m.Types)).Msg("generated")
}
