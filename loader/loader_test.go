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

package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/loader"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadPack_Success(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, loader.PackFileName), `
schema_version = "1.0"
name = "lttpr"

[engines]
compiler = "^0.1"
`)

	p, err := loader.LoadPack(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, "lttpr", p.Name)
}

func TestLoadPack_IncompatibleEngine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, loader.PackFileName), `
schema_version = "1.0"
name = "lttpr"

[engines]
compiler = "^9.0"
`)

	_, err := loader.LoadPack(context.Background(), dir)
	require.Error(t, err)
}

func TestLoadPack_NotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := loader.LoadPack(context.Background(), dir)
	require.ErrorIs(t, err, loader.ErrPackFileNotFound)
}

func TestLoadPack_WalksUpDirectoryTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, loader.PackFileName), `
schema_version = "1.0"
name = "lttpr"
`)
	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	p, err := loader.LoadPack(context.Background(), nested)
	require.NoError(t, err)
	require.Equal(t, "lttpr", p.Name)
}

const sampleWorld = `
{
  "game": "A Link to the Past Randomizer",
  "player_id": 1,
  "origin_region": "Menu",
  "items": [
    {"name": "Sword", "id": 1, "advancement": true},
    {"name": "Bow", "id": 2, "advancement": true}
  ],
  "regions": [
    {
      "name": "Menu",
      "locations": [],
      "exits": [{"target": "Light World"}]
    },
    {
      "name": "Light World",
      "locations": [
        {"name": "Link's House", "id": 10}
      ],
      "exits": []
    }
  ]
}
`

func TestLoadWorld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p1.world.json")
	writeFile(t, path, sampleWorld)

	w, err := loader.LoadWorld(path)
	require.NoError(t, err)
	require.Equal(t, "A Link to the Past Randomizer", w.Game)
	require.Equal(t, 1, w.PlayerID)
	require.Equal(t, "Menu", w.OriginRegion)

	_, ok := w.Items.Get("Sword")
	require.True(t, ok)

	region, ok := w.Graph.Region("Light World")
	require.True(t, ok)
	require.Len(t, region.Locations, 1)
	require.Equal(t, "Link's House", region.Locations[0].Name)
}

func TestLoadWorlds_DiscoversBySuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "p1.world.json"), sampleWorld)
	writeFile(t, filepath.Join(dir, "ignored.json"), "{}")

	worlds, err := loader.LoadWorlds(context.Background(), dir, nil)
	require.NoError(t, err)
	require.Len(t, worlds, 1)
}

func TestLoadWorlds_ExplicitList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "somewhere.json")
	writeFile(t, path, sampleWorld)

	worlds, err := loader.LoadWorlds(context.Background(), dir, []string{path})
	require.NoError(t, err)
	require.Len(t, worlds, 1)
}

func TestLoadWorlds_NoneFound(t *testing.T) {
	dir := t.TempDir()
	_, err := loader.LoadWorlds(context.Background(), dir, nil)
	require.Error(t, err)
}
