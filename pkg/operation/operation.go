// Package operation drives the one-shot rewrite over a source tree
package operation

import (
	"github.com/walteh/iconsplit/pkg/config"
	"github.com/walteh/iconsplit/pkg/log"
	"github.com/walteh/iconsplit/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the iconsplit configuration
	Config *config.Config
	// Reporter writes the per-file report lines
	Reporter *log.Reporter
}

// 🎮 Operator walks the configured root and rewrites candidate files in place
type Operator struct {
	cfg      *config.Config
	reporter *log.Reporter
	rewriter *rewrite.Rewriter
}

// 📊 Result summarizes one completed run
type Result struct {
	FilesScanned   int      // candidate files read
	ModifiedFiles  []string // paths rewritten, in traversal order
	BytesRewritten int64    // total size of rewritten content
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return &Operator{
		cfg:      opts.Config,
		reporter: opts.Reporter,
		rewriter: rewrite.New(opts.Config.Package, opts.Config.ModuleSuffix),
	}, nil
}
