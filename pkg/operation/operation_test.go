package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/iconsplit/pkg/config"
	"github.com/walteh/iconsplit/pkg/log"
)

func TestNew(t *testing.T) {
	reporter := log.NewReporter(&bytes.Buffer{}, zerolog.Nop())

	tests := []struct {
		name        string
		opts        Options
		wantErr     bool
		errContains string
	}{
		{
			name:        "missing_config",
			opts:        Options{Reporter: reporter},
			wantErr:     true,
			errContains: "config is required",
		},
		{
			name:        "missing_reporter",
			opts:        Options{Config: config.Default()},
			wantErr:     true,
			errContains: "reporter is required",
		},
		{
			name: "invalid_config",
			opts: Options{
				Config:   &config.Config{Root: "x"},
				Reporter: reporter,
			},
			wantErr:     true,
			errContains: "validating config",
		},
		{
			name: "valid",
			opts: Options{Config: config.Default(), Reporter: reporter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := New(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, op)
		})
	}
}

// writeTree lays out files under a temp root and returns the root
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func newTestOperator(t *testing.T, cfg *config.Config, console *bytes.Buffer) *Operator {
	t.Helper()
	op, err := New(Options{
		Config:   cfg,
		Reporter: log.NewReporter(console, zerolog.Nop()),
	})
	require.NoError(t, err)
	return op
}

func TestOperator_Execute(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	bulk := "import { IconHome, IconUser as UserIcon } from '@tabler/icons-react';\nexport const x = 1;\n"

	root := writeTree(t, map[string]string{
		"App.tsx":            bulk,
		"pages/Home.ts":      "import { IconBell } from \"@tabler/icons-react\"\n",
		"pages/About.tsx":    "export const about = true;\n",
		"styles/site.css":    "body { color: red }\n",
		"notes/icons.tsx.md": "import { IconHome } from '@tabler/icons-react';\n",
	})

	cfg := config.Default()
	cfg.Root = root

	var console bytes.Buffer
	op := newTestOperator(t, cfg, &console)

	result, err := op.Execute(context.Background())
	require.NoError(t, err)

	// Only the two script files with bulk imports were rewritten
	assert.Equal(t, 3, result.FilesScanned)
	assert.Len(t, result.ModifiedFiles, 2)
	assert.Contains(t, result.ModifiedFiles, filepath.Join(root, "App.tsx"))
	assert.Contains(t, result.ModifiedFiles, filepath.Join(root, "pages", "Home.ts"))

	got, err := os.ReadFile(filepath.Join(root, "App.tsx"))
	require.NoError(t, err)
	assert.Equal(t,
		"import IconHome from '@tabler/icons-react/IconHome.mjs';\n"+
			"import UserIcon from '@tabler/icons-react/IconUser.mjs';\n"+
			"export const x = 1;\n",
		string(got))

	got, err = os.ReadFile(filepath.Join(root, "pages", "Home.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import IconBell from '@tabler/icons-react/IconBell.mjs';\n", string(got))

	// Untouched files stay byte-for-byte identical
	got, err = os.ReadFile(filepath.Join(root, "pages", "About.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "export const about = true;\n", string(got))

	got, err = os.ReadFile(filepath.Join(root, "notes", "icons.tsx.md"))
	require.NoError(t, err)
	assert.Equal(t, "import { IconHome } from '@tabler/icons-react';\n", string(got))

	// Console carries one line per modified file plus the summary
	assert.Contains(t, console.String(), "Refactored "+filepath.Join(root, "App.tsx")+"\n")
	assert.Contains(t, console.String(), "Refactored "+filepath.Join(root, "pages", "Home.ts")+"\n")
	assert.Contains(t, console.String(), "Total refactored: 2\n")
}

func TestOperator_Execute_SecondRunIsNoop(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	root := writeTree(t, map[string]string{
		"App.tsx": "import { IconHome } from '@tabler/icons-react';\n",
	})

	cfg := config.Default()
	cfg.Root = root

	first := newTestOperator(t, cfg, &bytes.Buffer{})
	result, err := first.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, result.ModifiedFiles, 1)

	var console bytes.Buffer
	second := newTestOperator(t, cfg, &console)
	result, err = second.Execute(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.ModifiedFiles)
	assert.Equal(t, "Total refactored: 0\n", console.String())
}

func TestOperator_Execute_IgnoreGlobs(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	bulk := "import { IconHome } from '@tabler/icons-react';\n"
	root := writeTree(t, map[string]string{
		"App.tsx":               bulk,
		"generated/Icons.tsx":   bulk,
		"vendor/pkg/Widget.tsx": bulk,
		"pages/deep/Nested.tsx": bulk,
	})

	cfg := config.Default()
	cfg.Root = root
	cfg.IgnoreGlobs = []string{"generated/**", "vendor/**"}

	op := newTestOperator(t, cfg, &bytes.Buffer{})
	result, err := op.Execute(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.ModifiedFiles, 2)
	assert.Contains(t, result.ModifiedFiles, filepath.Join(root, "App.tsx"))
	assert.Contains(t, result.ModifiedFiles, filepath.Join(root, "pages", "deep", "Nested.tsx"))

	// Ignored files keep their bulk imports
	got, err := os.ReadFile(filepath.Join(root, "generated", "Icons.tsx"))
	require.NoError(t, err)
	assert.Equal(t, bulk, string(got))
}

func TestOperator_Execute_PreservesFileMode(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	root := t.TempDir()
	path := filepath.Join(root, "script.ts")
	require.NoError(t, os.WriteFile(path, []byte("import { IconHome } from '@tabler/icons-react';\n"), 0755))

	cfg := config.Default()
	cfg.Root = root

	op := newTestOperator(t, cfg, &bytes.Buffer{})
	_, err := op.Execute(context.Background())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestOperator_Execute_MissingRootFails(t *testing.T) {
	cfg := config.Default()
	cfg.Root = filepath.Join(t.TempDir(), "does-not-exist")

	op := newTestOperator(t, cfg, &bytes.Buffer{})
	_, err := op.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "walking")
}
