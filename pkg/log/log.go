// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log owns the report stream and user feedback for iconsplit.
// The report stream (stdout) carries exactly one line per modified file and
// a final summary; everything else goes to stderr.
package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Reporter writes the per-file report lines and the run summary
type Reporter struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	count   int
}

// 🏭 NewReporter creates a reporter writing to the given console stream
func NewReporter(console io.Writer, zlog zerolog.Logger) *Reporter {
	return &Reporter{
		zlog:    zlog,
		console: console,
	}
}

// 📝 Refactored reports one rewritten file
func (r *Reporter) Refactored(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	fmt.Fprintf(r.console, "Refactored %s\n", color.New(color.FgCyan).Sprint(path))

	r.zlog.Info().
		Str("file", path).
		Msg("refactored")
}

// 📝 Summary reports the total number of rewritten files
func (r *Reporter) Summary(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.console, "Total refactored: %d\n", count)

	r.zlog.Info().
		Int("total", count).
		Msg("run complete")
}

// 📊 Count returns the number of files reported so far
func (r *Reporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
