/*
Package config manages configuration loading and validation for iconsplit.

	            +-------------+
	            |   Config    |
	            | (Defaults)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   YAML   |  |  JSON   |  |   HCL   |
	+----------+  +---------+  +---------+

🎯 Purpose:
- Holds the run parameters (root, package, suffix, extensions, ignore globs)
- Ships built-in defaults so a zero-argument run needs no file at all
- Loads overrides from YAML, JSON, or HCL, chosen by file extension
- Validates values before any file is touched

📝 Design Philosophy:
The defaults ARE the configuration; a file only overrides them. A missing
file at the default location is normal operation, not an error. Unknown
fields in any format are rejected so typos surface immediately instead of
silently running with defaults.

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, config.DefaultConfigPath)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
*/
package config
