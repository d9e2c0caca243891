// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the translation keys used in the Go sources against the
// embedded locale files. Keys missing from a locale fail the run; keys no
// source file mentions are reported as orphans.
//
// Usage, from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "pt-BR.yaml"
)

// keyLiteral matches i18n.T("key") calls and bare literals shaped like a
// key, e.g. message ID constants. Bare literals only count when their first
// segment is a namespace of the primary locale, which keeps config keys
// such as "log.level" out.
var keyLiteral = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z_]+\.[a-z_.]+)"`)

// skipDirs are never scanned for keys.
var skipDirs = map[string]bool{"tools": true, "_examples": true, ".git": true}

type report struct {
	used    map[string]bool
	missing map[string][]string // locale file -> keys
	orphans []string
}

func main() {
	rep, err := lint(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	if !rep.print(os.Stdout) {
		os.Exit(1)
	}
}

func lint(root string) (*report, error) {
	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}

	namespaces := make(map[string]bool)
	for key := range primary {
		ns, _, _ := strings.Cut(key, ".")
		namespaces[ns] = true
	}

	used, err := findUsedKeys(root, namespaces)
	if err != nil {
		return nil, fmt.Errorf("scanning sources: %w", err)
	}

	rep := &report{used: used, missing: map[string][]string{}}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
		// used keys must exist everywhere, the primary locale's keys too
		want := keysOf(used)
		if filepath.Base(file) != primaryLocale {
			want = append(want, keysOf(primary)...)
		}
		for _, key := range want {
			if !keys[key] && !slices.Contains(rep.missing[file], key) {
				rep.missing[file] = append(rep.missing[file], key)
			}
		}
		slices.Sort(rep.missing[file])
	}

	for key := range primary {
		if !used[key] {
			rep.orphans = append(rep.orphans, key)
		}
	}
	slices.Sort(rep.orphans)

	return rep, nil
}

// print writes the findings and reports whether the locales are consistent.
func (r *report) print(w io.Writer) bool {
	fmt.Fprintf(w, "found %d translation keys in the sources\n", len(r.used))

	ok := true
	files := make([]string, 0, len(r.missing))
	for file := range r.missing {
		files = append(files, file)
	}
	slices.Sort(files)
	for _, file := range files {
		for _, key := range r.missing[file] {
			fmt.Fprintf(w, "missing  %s: %s\n", file, key)
			ok = false
		}
	}
	for _, key := range r.orphans {
		fmt.Fprintf(w, "orphaned %s\n", key)
	}

	if ok {
		fmt.Fprintln(w, "all locales are consistent")
	}
	return ok
}

// findUsedKeys scans the non-test .go files below root.
func findUsedKeys(root string, namespaces map[string]bool) (map[string]bool, error) {
	keys := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyLiteral.FindAllStringSubmatch(string(content), -1) {
			switch {
			case match[1] != "":
				keys[match[1]] = true
			case match[2] != "":
				if ns, _, _ := strings.Cut(match[2], "."); namespaces[ns] {
					keys[match[2]] = true
				}
			}
		}
		return nil
	})

	return keys, err
}

// loadKeysFromLocale reads a locale file into a set of dot separated keys.
// Flat ("a.b: x") and nested ("a: {b: x}") layouts give the same keys.
func loadKeysFromLocale(path string) (map[string]bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]bool)
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]bool) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = true
		}
		return
	}
	for k, val := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, val, keys)
	}
}

func keysOf(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
