package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"
)

// 🚶 Execute walks the root and rewrites every candidate file, strictly one
// at a time, in whatever order the traversal yields. Any I/O error aborts
// the run; already-written files are not rolled back.
func (o *Operator) Execute(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("root", o.cfg.Root).
		Str("package", o.cfg.Package).
		Strs("extensions", o.cfg.Extensions).
		Msg("starting rewrite run")

	result := &Result{}

	err := filepath.WalkDir(o.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !o.isCandidate(d.Name()) {
			return nil
		}

		ignored, err := o.isIgnored(path)
		if err != nil {
			return err
		}
		if ignored {
			logger.Debug().Str("file", path).Msg("skipping ignored file")
			return nil
		}

		return o.processFile(ctx, path, d, result)
	})
	if err != nil {
		return nil, err
	}

	o.reporter.Summary(len(result.ModifiedFiles))

	logger.Info().
		Int("files_scanned", result.FilesScanned).
		Int("files_modified", len(result.ModifiedFiles)).
		Str("bytes_rewritten", humanize.Bytes(uint64(result.BytesRewritten))).
		Msg("rewrite run complete")

	return result, nil
}

// 📄 processFile reads one candidate, rewrites it, and writes it back only
// when content actually changed
func (o *Operator) processFile(ctx context.Context, path string, d fs.DirEntry, result *Result) error {
	logger := zerolog.Ctx(ctx)
	result.FilesScanned++

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	res := o.rewriter.Rewrite(string(data))
	if !res.WasModified {
		return nil
	}

	info, err := d.Info()
	if err != nil {
		return errors.Errorf("stating %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(res.ModifiedContent), info.Mode().Perm()); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}

	if e := logger.Debug(); e.Enabled() {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(res.OriginalContent, res.ModifiedContent, false)
		e.Str("file", path).
			Int("imports", res.MatchCount).
			Int("symbols", res.SymbolCount).
			Int("diff_hunks", len(diffs)).
			Msg("split bulk imports")
	}

	result.ModifiedFiles = append(result.ModifiedFiles, path)
	result.BytesRewritten += int64(len(res.ModifiedContent))
	o.reporter.Refactored(path)

	return nil
}

// 🔍 isCandidate checks the file name against the configured extensions
func (o *Operator) isCandidate(name string) bool {
	for _, ext := range o.cfg.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// 🚫 isIgnored checks the path (relative to root) against the ignore globs
func (o *Operator) isIgnored(path string) (bool, error) {
	if len(o.cfg.IgnoreGlobs) == 0 {
		return false, nil
	}
	rel, err := filepath.Rel(o.cfg.Root, path)
	if err != nil {
		return false, errors.Errorf("resolving %s relative to %s: %w", path, o.cfg.Root, err)
	}
	rel = filepath.ToSlash(rel)
	for _, glob := range o.cfg.IgnoreGlobs {
		matched, err := doublestar.Match(glob, rel)
		if err != nil {
			return false, errors.Errorf("matching glob %q: %w", glob, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
