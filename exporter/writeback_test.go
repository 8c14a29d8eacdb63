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

package exporter_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/exporter"
	"github.com/worldrules/ruleexport/rulegraph"
)

func TestWriteBack_WritesEveryTask(t *testing.T) {
	dir := t.TempDir()

	wb, err := exporter.NewWriteBack(2)
	require.NoError(t, err)
	defer wb.Close()

	tasks := []exporter.WriteTask{
		{Path: filepath.Join(dir, "a", "seed_rules.json"), Doc: rulegraph.NewDocument("Alttp", false)},
		{Path: filepath.Join(dir, "b", "seed_rules.json"), Doc: rulegraph.NewDocument("Oot", true)},
	}

	require.NoError(t, wb.Write(context.Background(), tasks))

	for _, task := range tasks {
		b, err := os.ReadFile(task.Path)
		require.NoError(t, err)

		var doc rulegraph.Document
		require.NoError(t, json.Unmarshal(b, &doc))
		require.Equal(t, task.Doc.Game, doc.Game)
	}
}

func TestWriteBack_DefaultsConcurrency(t *testing.T) {
	wb, err := exporter.NewWriteBack(0)
	require.NoError(t, err)
	defer wb.Close()
	require.NotNil(t, wb)
}

func TestWriteBack_ReportsWriteError(t *testing.T) {
	dir := t.TempDir()
	// Create a file where the destination directory needs to be, so
	// MkdirAll fails.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	wb, err := exporter.NewWriteBack(1)
	require.NoError(t, err)
	defer wb.Close()

	tasks := []exporter.WriteTask{
		{Path: filepath.Join(blocked, "seed_rules.json"), Doc: rulegraph.NewDocument("Alttp", false)},
	}
	require.Error(t, wb.Write(context.Background(), tasks))
}
