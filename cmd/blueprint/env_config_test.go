package main

import (
	"bytes"
	"strings"
	"testing"

	blueprint "github.com/alnah/go-blueprint"
	"github.com/alnah/go-blueprint/internal/config"
)

// Tests in this file use t.Setenv and cannot run in parallel.

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("BLUEPRINT_SECTIONS_DIR", "docs")
	t.Setenv("BLUEPRINT_OUTPUT_DIR", "dist")
	t.Setenv("BLUEPRINT_ENGINE", "goldmark")
	t.Setenv("BLUEPRINT_HTML_ONLY", "true")

	env := loadEnvConfig()

	if env.SectionsDir != "docs" || env.OutputDir != "dist" || env.Engine != "goldmark" {
		t.Errorf("loadEnvConfig() = %+v", env)
	}
	if env.HTMLOnly == nil || !*env.HTMLOnly {
		t.Errorf("HTMLOnly = %v, want true", env.HTMLOnly)
	}
}

func TestLoadEnvConfig_InvalidBoolIgnored(t *testing.T) {
	t.Setenv("BLUEPRINT_HTML_ONLY", "maybe")

	if env := loadEnvConfig(); env.HTMLOnly != nil {
		t.Errorf("HTMLOnly = %v, want nil for an unparsable value", *env.HTMLOnly)
	}
}

func TestPrecedence_FlagsOverEnvOverFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Dir = "from-file"
	cfg.Document.Author = "File Author"
	cfg.Document.Title = "File Title"

	env := &envConfig{OutputDir: "from-env", Author: "Env Author"}
	flags := &buildFlags{output: "from-flag"}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if cfg.Output.Dir != "from-flag" {
		t.Errorf("Output.Dir = %q, want the flag value", cfg.Output.Dir)
	}
	if cfg.Document.Author != "Env Author" {
		t.Errorf("Document.Author = %q, want the env value", cfg.Document.Author)
	}
	if cfg.Document.Title != "File Title" {
		t.Errorf("Document.Title = %q, want the file value", cfg.Document.Title)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("BLUEPRINT_AUTOR", "typo")
	t.Setenv("BLUEPRINT_AUTHOR", "ok")

	var stderr bytes.Buffer
	r := &reporter{stdout: &bytes.Buffer{}, stderr: &stderr}
	warnUnknownEnvVars(r)

	out := stderr.String()
	if !strings.Contains(out, "[WARN] unknown environment variable BLUEPRINT_AUTOR") {
		t.Errorf("stderr = %q, want a warning for BLUEPRINT_AUTOR", out)
	}
	if strings.Contains(out, "BLUEPRINT_AUTHOR ") {
		t.Error("known variables must not be reported")
	}
}

func TestRunMain_EnvOverridesOutputDir(t *testing.T) {
	outDir := t.TempDir()
	t.Setenv("BLUEPRINT_OUTPUT_DIR", outDir)
	t.Setenv("BLUEPRINT_AUTHOR", "Env Author")

	fake := &fakeBuilder{result: &blueprint.Result{}}
	env, _, _ := testEnv(fake)

	if code := runMain(nil, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if fake.input.OutputDir != outDir {
		t.Errorf("OutputDir = %q, want %q", fake.input.OutputDir, outDir)
	}
	if fake.input.Document.Author != "Env Author" {
		t.Errorf("Author = %q, want Env Author", fake.input.Document.Author)
	}
}
