// SPDX-License-Identifier: Apache-2.0
//
// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/binaek/cling"

	"github.com/worldrules/ruleexport/analyzer"
	"github.com/worldrules/ruleexport/exporter"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/loader"
)

func addValidateCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("validate", validateCmd).
			WithFlag(cling.
				NewStringCmdInput("pack-location").
				WithDefault(".").
				WithDescription("Pack directory to load ruleexport.pack.toml from").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("world-location").
				WithDefault(".").
				WithDescription("Directory containing *.world.json world documents").
				AsFlag(),
			).
			WithFlag(cling.
				NewCmdSliceInput[string]("world").
				WithDefault([]string{}).
				WithDescription("Explicit world document paths; overrides world-location discovery").
				AsFlag(),
			),
	)
}

type validateCmdArgs struct {
	PackLocation  string   `cling-name:"pack-location"`
	WorldLocation string   `cling-name:"world-location"`
	World         []string `cling-name:"world"`
}

// validateCmd runs the exporter in diagnostics-only mode: every world
// is analyzed and every diagnostic printed, but no JSON document is
// written. A SchemaViolation still aborts and returns a non-zero exit
// code; every other diagnostic is reported without failing the run.
func validateCmd(ctx context.Context, args []string) error {
	input := validateCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	pack, err := loader.LoadPack(ctx, input.PackLocation)
	if err != nil {
		return err
	}

	worlds, err := loader.LoadWorlds(ctx, input.WorldLocation, input.World)
	if err != nil {
		return err
	}

	registry := handler.NewRegistry()
	an := analyzer.New(registry, analyzer.NewAnalysisCache(4096), nil, false)
	exp := exporter.New(registry, an, false)
	if len(pack.KnownHelpers) > 0 {
		exp.DeclaredHelpers = pack.KnownHelpers
	}

	for game, group := range groupByGame(worlds) {
		_, diags, err := exp.Export(ctx, game, group)
		if err != nil {
			return err
		}
		for _, d := range diags.Warnings {
			fmt.Fprintln(os.Stderr, d.String())
		}
	}

	fmt.Println("ok")
	return nil
}
