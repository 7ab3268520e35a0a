/*
Package operation implements the one-shot walk-and-rewrite run.

	+-------------+
	|  Operation  |
	|  (Driver)   |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	|  (Engine)   |
	+------+------+

🎯 Purpose:
- Walks the configured root recursively, one file at a time
- Filters candidates by extension and ignore globs
- Feeds each candidate through the rewrite engine
- Writes changed files back in place, preserving permission bits
- Reports each rewritten file and a final total

🔄 Flow:
1. WalkDir over the root, depth-first
2. Extension filter, then ignore-glob filter
3. Read full content, rewrite, compare
4. Write back only when content changed
5. Summary line after traversal completes

📝 Design Philosophy:
The driver is deliberately sequential: files are independent and the rewrite
is idempotent per file, so there is nothing to coordinate and nothing to
lock. Errors are fail-fast; a half-finished run over a source tree is
acceptable collateral for a batch tool, rollback is not attempted.
*/
package operation
