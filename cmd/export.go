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
	"path/filepath"
	"strings"

	"github.com/binaek/cling"
	"github.com/pkg/errors"

	"github.com/worldrules/ruleexport/analyzer"
	"github.com/worldrules/ruleexport/exporter"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/loader"
	"github.com/worldrules/ruleexport/worldmodel"
)

func addExportCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("export", exportCmd).
			WithArgument(cling.NewStringCmdInput("seed-id").
				WithDescription("Seed identifier, used in the output path").
				AsArgument(),
			).
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
				WithDescription("Explicit world document paths (world_list); overrides world-location discovery").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("output").
				WithDefault("./export-out").
				WithDescription("Output root directory").
				AsFlag(),
			).
			WithFlag(cling.
				NewBoolCmdInput("assume-bidirectional-exits").
				WithDefault(false).
				WithDescription("Whether the frontend should assume every exit is traversable in reverse").
				AsFlag(),
			),
	)
}

type exportCmdArgs struct {
	SeedID                   string   `cling-name:"seed-id"`
	PackLocation             string   `cling-name:"pack-location"`
	WorldLocation            string   `cling-name:"world-location"`
	World                    []string `cling-name:"world"`
	Output                   string   `cling-name:"output"`
	AssumeBidirectionalExits bool     `cling-name:"assume-bidirectional-exits"`
}

// exportCmd implements §6.5's single entry point, export(world_list,
// output_root): load every named world document, group worlds by
// declared game, run one Exporter pass per game, and write each
// game's document to its own <output_root>/<game_slug>/<seed_id>/
// directory (§6.2). A SchemaViolation anywhere aborts the whole run;
// every other diagnostic is written to stderr but does not fail it.
func exportCmd(ctx context.Context, args []string) error {
	input := exportCmdArgs{}
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
	exp := exporter.New(registry, an, input.AssumeBidirectionalExits)
	if len(pack.KnownHelpers) > 0 {
		exp.DeclaredHelpers = pack.KnownHelpers
	}

	wb, err := exporter.NewWriteBack(4)
	if err != nil {
		return err
	}
	defer wb.Close()

	var tasks []exporter.WriteTask
	for game, group := range groupByGame(worlds) {
		doc, diags, err := exp.Export(ctx, game, group)
		if err != nil {
			return errors.Wrapf(err, "export %s", game)
		}
		for _, d := range diags.Warnings {
			fmt.Fprintln(os.Stderr, d.String())
		}

		destFile := filepath.Join(input.Output, gameSlug(game), input.SeedID, input.SeedID+"_rules.json")
		tasks = append(tasks, exporter.WriteTask{Path: destFile, Doc: doc})
	}

	return wb.Write(ctx, tasks)
}

// groupByGame partitions a seed's worlds by declared game name,
// preserving each group's original relative order — a multi-world
// seed may mix games, but §6.2's output layout is one document per
// game.
func groupByGame(worlds []*worldmodel.World) map[string][]*worldmodel.World {
	groups := map[string][]*worldmodel.World{}
	for _, w := range worlds {
		groups[w.Game] = append(groups[w.Game], w)
	}
	return groups
}

// gameSlug derives the directory-safe game_slug §6.2 names from a
// world's declared game attribute.
func gameSlug(game string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(game) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
