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

package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🎛️ Default run parameters; a zero-argument invocation uses exactly these
const (
	DefaultRoot         = "ui/src"
	DefaultPackage      = "@tabler/icons-react"
	DefaultModuleSuffix = ".mjs"

	// DefaultConfigPath is where Load looks when no --config flag is given
	DefaultConfigPath = ".iconsplit.yaml"
)

// 📚 Config represents the complete configuration for one rewrite run
type Config struct {
	Root         string   `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`                            // directory walked for script files
	Package      string   `json:"package,omitempty" yaml:"package,omitempty" hcl:"package,optional"`                   // package whose bulk imports get split
	ModuleSuffix string   `json:"module_suffix,omitempty" yaml:"module_suffix,omitempty" hcl:"module_suffix,optional"` // per-symbol module file extension
	Extensions   []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`          // file name suffixes considered candidates
	IgnoreGlobs  []string `json:"ignore_globs,omitempty" yaml:"ignore_globs,omitempty" hcl:"ignore_globs,optional"`    // doublestar patterns excluded from the walk
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Root:         DefaultRoot,
		Package:      DefaultPackage,
		ModuleSuffix: DefaultModuleSuffix,
		Extensions:   []string{".ts", ".tsx"},
	}
}

// ✅ Validate checks the configuration
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.New("root is required")
	}
	if c.Package == "" {
		return errors.New("package is required")
	}
	if !strings.HasPrefix(c.ModuleSuffix, ".") {
		return errors.Errorf("module_suffix %q must start with a dot", c.ModuleSuffix)
	}
	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("extension %q must start with a dot", ext)
		}
	}
	for _, glob := range c.IgnoreGlobs {
		if !doublestar.ValidatePattern(glob) {
			return errors.Errorf("invalid ignore glob %q", glob)
		}
	}
	return nil
}
