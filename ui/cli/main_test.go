// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/prompt"
	"github.com/contabancaria/contabancaria/ui/tui"
)

// isolate points the config lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("CONTABANCARIA_LANGUAGE", "")
	t.Setenv("CONTABANCARIA_LOG_LEVEL", "")
	t.Chdir(dir)
	return dir
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func testApp(terminal bool) (*app, *tui.Options) {
	a := newApp()
	a.isTerminal = func() bool { return terminal }
	got := &tui.Options{}
	a.runTUI = func(_ context.Context, opts tui.Options) error {
		*got = opts
		return nil
	}
	return a, got
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_RunsTUIWithConfig(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(cfg, []byte("ui:\n  alt_screen: false\n  copy_summary: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a, got := testApp(true)
	if _, err := execute(t, a, "--config", cfg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.AltScreen || !got.CopySummary {
		t.Fatalf("tui options not taken from the config file: %+v", *got)
	}
	if a.config.Language != "pt-BR" {
		t.Fatalf("language = %q, want the default pt-BR", a.config.Language)
	}
}

func TestRoot_RequiresTerminal(t *testing.T) {
	isolate(t)
	a, _ := testApp(false)

	_, err := execute(t, a)
	if err == nil || err.Error() != "um terminal interativo é necessário" {
		t.Fatalf("expected the no terminal error, got %v", err)
	}
}

func TestRoot_LanguageFlag(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { i18n.Init(i18n.DefaultLang) })
	a, _ := testApp(false)

	_, err := execute(t, a, "--language", "en")
	if err == nil || err.Error() != "an interactive terminal is required" {
		t.Fatalf("expected the english error, got %v", err)
	}
	if i18n.GetLang() != "en" {
		t.Fatalf("language = %q", i18n.GetLang())
	}
}

func TestRoot_LanguageIsMatchedAgainstLocales(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { i18n.Init(i18n.DefaultLang) })

	a, _ := testApp(false)
	if _, err := execute(t, a, "--language", "EN"); err == nil || err.Error() != "an interactive terminal is required" {
		t.Fatalf("EN should select the english locale, got %v", err)
	}
	if a.config.Language != "en" {
		t.Fatalf("language = %q, want en", a.config.Language)
	}

	a, _ = testApp(true)
	_, err := execute(t, a, "--language", "fr")
	want := `idioma desconhecido "fr" (disponíveis: en, pt-BR)`
	if err == nil || err.Error() != want {
		t.Fatalf("error = %v, want %q", err, want)
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	isolate(t)
	a, _ := testApp(true)

	if _, err := execute(t, a, "--log.level", "loud"); err == nil {
		t.Fatalf("expected an error for an unknown log level")
	}
}

func TestRoot_MissingConfigFile(t *testing.T) {
	dir := isolate(t)
	a, _ := testApp(true)

	if _, err := execute(t, a, "--config", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing --config file")
	}
}

func TestRoot_LogFileDuringTUI(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "app.log")
	cfg := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(cfg, []byte("log:\n  file: "+logPath+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var opened string
	var buf bytes.Buffer
	a, _ := testApp(true)
	a.openLogFile = func(path string) (io.WriteCloser, error) {
		opened = path
		return nopCloser{&buf}, nil
	}

	if _, err := execute(t, a, "--config", cfg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opened != logPath {
		t.Fatalf("log file = %q, want %q", opened, logPath)
	}
}

type scriptedDriver struct {
	inputs []string
	out    io.Writer
	pos    int
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if d.pos >= len(d.inputs) {
		return "", prompt.ErrAborted
	}
	v := d.inputs[d.pos]
	d.pos++
	if cfg.Validator != nil {
		if err := cfg.Validator(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 2, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	_, err := io.WriteString(d.out, msg+"\n")
	return err
}

func TestPrompt_PrintsSummary(t *testing.T) {
	isolate(t)
	a, _ := testApp(true)
	a.newDriver = func(out io.Writer) prompt.Driver {
		return &scriptedDriver{inputs: []string{"Bia", "42", "500"}, out: out}
	}

	out, err := execute(t, a, "prompt")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Nome: Bia", "Idade: 42", "Sexo: Outro", "Limite: R$ 500.00", "Estudante: Não"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestPrompt_AbortIsNotAnError(t *testing.T) {
	isolate(t)
	a, _ := testApp(true)
	a.newDriver = func(out io.Writer) prompt.Driver {
		return &scriptedDriver{out: out}
	}

	out, err := execute(t, a, "prompt")
	if err != nil {
		t.Fatalf("abort should exit cleanly, got %v", err)
	}
	if !strings.Contains(out, "Operação cancelada.") {
		t.Fatalf("missing abort notice:\n%s", out)
	}
}

func TestPrompt_ValidationErrorIsReturned(t *testing.T) {
	isolate(t)
	a, _ := testApp(true)
	a.newDriver = func(out io.Writer) prompt.Driver {
		return &scriptedDriver{inputs: []string{"Bia", "16"}, out: out}
	}

	_, err := execute(t, a, "prompt")
	if err == nil || errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected the minimum age error, got %v", err)
	}
}

func TestConfigInit_WritesFile(t *testing.T) {
	dir := isolate(t)
	a, _ := testApp(true)

	out, err := execute(t, a, "config", "init", "--language", "en")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	t.Cleanup(func() { i18n.Init(i18n.DefaultLang) })

	path := filepath.Join(dir, "contabancaria", "contabancaria.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v (output %q)", err, out)
	}
	if !strings.Contains(string(data), "language: en") {
		t.Fatalf("config file does not carry the flag value:\n%s", data)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("output should name the written file: %q", out)
	}
}
