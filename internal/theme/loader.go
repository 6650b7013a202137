package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/trigger-segfault/vscode-find-colors/internal/color"
)

// ErrIncludeCycle is returned when a file ends up including itself.
var ErrIncludeCycle = errors.New("include cycle detected")

// LoadError wraps a failure while reading one file of an include chain.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// LoadOptions control include resolution and table construction.
type LoadOptions struct {
	// NoIncludes skips include directives entirely.
	NoIncludes bool

	// Workbench folds the workbench "colors" table into the scope table.
	Workbench bool

	// Progress, when set, receives one call per file opened. Stage is
	// "loading" for the top file and "including" for included files; name
	// is the path as it should be shown to the user.
	Progress func(stage, name string)
}

// themeFile is the on-disk schema. VS Code theme files are JSONC, so
// comments and trailing commas are stripped before decoding.
type themeFile struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Include     stringList        `json:"include"`
	Colors      map[string]string `json:"colors"`
	TokenColors []tokenColor      `json:"tokenColors"`
}

type tokenColor struct {
	Name     string        `json:"name"`
	Scope    stringList    `json:"scope"`
	Settings tokenSettings `json:"settings"`
}

type tokenSettings struct {
	Foreground string `json:"foreground"`
	FontStyle  string `json:"fontStyle"`
}

// stringList accepts either a single string or an array of strings, which
// is how theme files write both "include" and "scope".
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = stringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = stringList(many)
		return nil
	}
	return fmt.Errorf("expected a string or a list of strings")
}

// Load reads the theme file at path, resolves its include chain and returns
// the merged scope table. Included files are applied before the including
// file's own entries, so downstream definitions win.
func Load(path string, opts LoadOptions) (*Theme, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	t := New()
	t.Path = abs

	state := &loadState{
		loaded: make(map[string]bool),
		stack:  make(map[string]bool),
	}
	if err := t.load(abs, "", opts, state); err != nil {
		return nil, err
	}

	if t.Name == "" {
		base := filepath.Base(abs)
		t.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return t, nil
}

// loadState tracks include resolution. A file on the current resolution
// stack is a cycle; a file already merged through another branch is skipped.
type loadState struct {
	loaded map[string]bool
	stack  map[string]bool
}

func (t *Theme) load(path, includePath string, opts LoadOptions, state *loadState) error {
	if state.stack[path] {
		return &LoadError{Path: path, Err: ErrIncludeCycle}
	}
	if state.loaded[path] {
		slog.Debug("include already merged, skipping", "path", path)
		return nil
	}
	state.stack[path] = true
	defer delete(state.stack, path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	var file themeFile
	if err := json.Unmarshal(jsonc.ToJSON(raw), &file); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	if opts.Progress != nil {
		if includePath == "" {
			opts.Progress("loading", "./"+filepath.Base(path))
		} else {
			opts.Progress("including", includePath)
		}
	}
	slog.Debug("loaded theme file", "path", path, "tokens", len(file.TokenColors))

	// Includes merge first so that this file's entries overwrite theirs.
	// Relative paths resolve against this file's directory.
	if !opts.NoIncludes {
		baseDir := filepath.Dir(path)
		for _, inc := range file.Include {
			if err := t.load(filepath.Join(baseDir, inc), inc, opts, state); err != nil {
				return err
			}
		}
	}

	if includePath == "" {
		if file.Name != "" {
			t.Name = file.Name
		}
		t.Type = file.Type
	}

	for _, tc := range file.TokenColors {
		t.addToken(tc)
	}
	if opts.Workbench {
		t.addWorkbench(file.Colors)
	}

	state.loaded[path] = true
	t.Chain = append(t.Chain, path)
	return nil
}

func (t *Theme) addToken(tc tokenColor) {
	if len(tc.Scope) == 0 {
		slog.Debug("skipping token entry without scope", "name", tc.Name)
		return
	}

	fg := tc.Settings.Foreground
	if fg != "" {
		norm, err := color.Normalize(fg)
		if err != nil {
			slog.Warn("ignoring unparseable foreground", "scope", tc.Scope[0], "value", fg)
			fg = ""
		} else {
			fg = norm
		}
	}

	for _, scope := range tc.Scope {
		t.SetScope(scope, fg, tc.Settings.FontStyle)
	}
}

// addWorkbench folds the workbench color table in. Keys are UI element IDs
// and never carry a font style.
func (t *Theme) addWorkbench(colors map[string]string) {
	for key, value := range colors {
		norm, err := color.Normalize(value)
		if err != nil {
			slog.Warn("ignoring unparseable workbench color", "key", key, "value", value)
			continue
		}
		t.SetScope(key, norm, "")
	}
}
