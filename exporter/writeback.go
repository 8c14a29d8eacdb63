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

package exporter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/jackc/puddle/v2"
	"github.com/pkg/errors"

	"github.com/worldrules/ruleexport/rulegraph"
)

// WriteTask is one document destined for one output file. §6.2's
// layout is <output_root>/<game_slug>/<seed_id>/<seed_id>_rules.json,
// already resolved into Path by the caller.
type WriteTask struct {
	Path string
	Doc  *rulegraph.Document
}

type fileWriter struct{}

// WriteBack bounds concurrent output-file writes across many games in
// a single seed. This is pure I/O, outside the synchronous analysis
// path §5 requires — a multi-game seed's documents are already fully
// assembled in memory before any write begins, so writing them
// concurrently cannot change analysis results.
type WriteBack struct {
	pool *puddle.Pool[*fileWriter]
}

// NewWriteBack builds a pool bounded to maxConcurrent simultaneous
// writers (0 or negative defaults to 4).
func NewWriteBack(maxConcurrent int) (*WriteBack, error) {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	pool, err := puddle.NewPool(&puddle.Config[*fileWriter]{
		Constructor: func(context.Context) (*fileWriter, error) { return &fileWriter{}, nil },
		Destructor:  func(*fileWriter) {},
		MaxSize:     int32(maxConcurrent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create writeback pool")
	}
	return &WriteBack{pool: pool}, nil
}

// Write runs every task, bounded by the pool's capacity, and returns
// the first error encountered (others are abandoned in place — a
// partial output tree on error is expected and the caller is
// responsible for treating the whole run as failed).
func (w *WriteBack) Write(ctx context.Context, tasks []WriteTask) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for _, task := range tasks {
		res, err := w.pool.Acquire(ctx)
		if err != nil {
			return errors.Wrap(err, "acquire writeback slot")
		}

		wg.Add(1)
		go func(task WriteTask, res *puddle.Resource[*fileWriter]) {
			defer wg.Done()
			defer res.Release()

			if err := writeDocument(task.Path, task.Doc); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = errors.Wrapf(err, "write %s", task.Path)
				}
				mu.Unlock()
			}
		}(task, res)
	}

	wg.Wait()
	return firstErr
}

// Close releases the pool's resources. Safe to call once, after the
// last Write.
func (w *WriteBack) Close() {
	w.pool.Close()
}

func writeDocument(path string, doc *rulegraph.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	encErr := enc.Encode(doc)
	closeErr := f.Close()
	if encErr != nil {
		return encErr
	}
	return closeErr
}
