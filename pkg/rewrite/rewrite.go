// Package rewrite locates bulk icon imports in script source and splits
// them into per-symbol default imports bound to direct module paths.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// 🎯 Symbol is one entry extracted from a bulk import's brace list
type Symbol struct {
	Name  string // name as exported by the source package
	Alias string // local rename from an "as" clause, empty when absent
}

// 📛 Binding returns the name the rest of the file refers to the symbol by
func (s Symbol) Binding() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// 🔍 Match is one located bulk import statement within a file's content
type Match struct {
	Start      int    // byte offset of the statement start
	End        int    // byte offset just past the statement, including any trailing semicolon
	RawSymbols string // raw text between the braces
}

// 📊 Result holds the outcome of rewriting one file's content
type Result struct {
	OriginalContent string // content before rewriting
	ModifiedContent string // content after rewriting
	WasModified     bool   // whether content changed
	MatchCount      int    // bulk imports found
	SymbolCount     int    // symbols split out across all matches
}

// 🎯 Rewriter splits bulk imports of a single package into per-symbol imports
type Rewriter struct {
	pkg     string
	suffix  string
	pattern *regexp.Regexp
}

// 🏭 New creates a Rewriter for the given package and per-symbol module suffix
func New(pkg, suffix string) *Rewriter {
	// Braces may span multiple lines ([^}] crosses newlines), quotes may be
	// single or double, the trailing semicolon is optional.
	pattern := regexp.MustCompile(`import\s+\{([^}]+)\}\s+from\s+['"]` + regexp.QuoteMeta(pkg) + `['"];?`)
	return &Rewriter{
		pkg:     pkg,
		suffix:  suffix,
		pattern: pattern,
	}
}

// 🔍 FindMatches returns every bulk import of the package in content, in
// document order, with exact byte offsets for splicing. An empty slice means
// the file has nothing to rewrite.
func (r *Rewriter) FindMatches(content string) []Match {
	idx := r.pattern.FindAllStringSubmatchIndex(content, -1)
	if idx == nil {
		return nil
	}
	matches := make([]Match, 0, len(idx))
	for _, m := range idx {
		matches = append(matches, Match{
			Start:      m[0],
			End:        m[1],
			RawSymbols: content[m[2]:m[3]],
		})
	}
	return matches
}

// 📝 ParseSymbols splits the raw brace-list text into symbols. Order is
// preserved, duplicates pass through, empty pieces (trailing commas) are
// dropped.
func (r *Rewriter) ParseSymbols(raw string) []Symbol {
	var symbols []Symbol
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		name, alias, found := strings.Cut(piece, " as ")
		if found {
			symbols = append(symbols, Symbol{
				Name:  strings.TrimSpace(name),
				Alias: strings.TrimSpace(alias),
			})
		} else {
			symbols = append(symbols, Symbol{Name: piece})
		}
	}
	return symbols
}

// 📝 RenderReplacement emits one default-import line per symbol. The module
// path always uses the original name (it must match the upstream per-icon
// file naming); the binding uses the alias when present. Lines are joined
// with a single newline and no trailing newline.
func (r *Rewriter) RenderReplacement(symbols []Symbol) string {
	lines := make([]string, 0, len(symbols))
	for _, s := range symbols {
		lines = append(lines, fmt.Sprintf("import %s from '%s/%s%s';", s.Binding(), r.pkg, s.Name, r.suffix))
	}
	return strings.Join(lines, "\n")
}

// 🔄 Rewrite transforms every bulk import in content. Matches are spliced in
// reverse start-offset order so earlier offsets stay valid while later
// matches are replaced. A match whose symbol list parses empty is left
// untouched rather than spliced into nothing.
func (r *Rewriter) Rewrite(content string) *Result {
	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}

	matches := r.FindMatches(content)
	if len(matches) == 0 {
		return result
	}
	result.MatchCount = len(matches)

	modified := content
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		symbols := r.ParseSymbols(m.RawSymbols)
		if len(symbols) == 0 {
			continue
		}
		result.SymbolCount += len(symbols)
		modified = modified[:m.Start] + r.RenderReplacement(symbols) + modified[m.End:]
	}

	result.ModifiedContent = modified
	result.WasModified = modified != content
	return result
}
