package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitCreatesSample(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "config.toml")

	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, target) {
		t.Errorf("output should name the target: %q", output)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[tts]") {
		t.Errorf("sample config content unexpected: %q", data)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

func TestConfigShowDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	output, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"showing defaults", "segmenter.mode", "auto"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestVoicesMockListsOffline(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	output, err := runCommand(t, "voices", "--mock")
	if err != nil {
		t.Fatalf("voices --mock failed: %v", err)
	}
	if !strings.Contains(output, "mock-narrator") {
		t.Errorf("mock voices missing:\n%s", output)
	}
}

func TestRootListsSubcommands(t *testing.T) {
	cmd := newRootCommand()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"build", "voices", "history", "status", "config"} {
		if !names[want] {
			t.Errorf("subcommand %q not registered", want)
		}
	}
}
