package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	blueprint "github.com/alnah/go-blueprint"
	"github.com/alnah/go-blueprint/internal/assets"
	"github.com/alnah/go-blueprint/internal/config"
	"github.com/alnah/go-blueprint/internal/hints"
	"github.com/alnah/go-blueprint/internal/sections"
	"github.com/alnah/go-blueprint/internal/site"
)

// errUnknownTarget indicates an unrecognized positional argument.
var errUnknownTarget = errors.New("unknown target")

// defaultTarget is used when no positional argument is given.
const defaultTarget = "platform-blueprint"

// targets are synonyms: every one runs the full build.
var targets = map[string]bool{
	defaultTarget: true,
	"combined":    true,
	"all":         true,
}

// siteSubdir receives the prerendered site pages under the output directory.
const siteSubdir = "site"

// runMain parses args, runs the build and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "blueprint %s\n", Version)
		return ExitSuccess
	}

	r := newReporter(env, flags.common.quiet, flags.common.verbose)

	target, err := resolveTarget(positional)
	if err != nil {
		r.fail(err)
		printUsage(env.Stderr)
		return ExitGeneral
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, target, flags, env, r); err != nil {
		r.fail(err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// resolveTarget validates the optional positional argument.
func resolveTarget(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return defaultTarget, nil
	case 1:
		if !targets[positional[0]] {
			return "", fmt.Errorf("%w: %q", errUnknownTarget, positional[0])
		}
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one target, got %d", errUnknownTarget, len(positional))
	}
}

// run executes one build for target.
func run(ctx context.Context, target string, flags *buildFlags, env *Environment, r *reporter) error {
	start := env.Now()

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(r)
	if r.verbose {
		printEnvConfig(env.Stdout, envCfg)
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := builderOptions(cfg, env)
	if err != nil {
		return err
	}
	b, err := env.NewBuilder(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()

	r.build(fmt.Sprintf("Building %s from %s", target, cfg.Sections.Dir))

	res, err := b.Build(ctx, blueprint.Input{
		SectionsDir: cfg.Sections.Dir,
		OutputDir:   cfg.Output.Dir,
		Basename:    cfg.Output.Basename,
		HTMLOnly:    cfg.Output.HTMLOnly,
		Document: blueprint.Document{
			Heading:    cfg.Document.Heading,
			PageTitle:  cfg.Document.PageTitle,
			Title:      cfg.Document.Title,
			Subtitle:   cfg.Document.Subtitle,
			Author:     cfg.Document.Author,
			DateFormat: cfg.Document.DateFormat,
		},
	})
	if err != nil {
		if errors.Is(err, sections.ErrNoSections) {
			return fmt.Errorf("%w%s", err, hints.ForNoSections(cfg.Sections.Dir))
		}
		return err
	}

	reportBuild(r, res)

	if cfg.Site.Dir != "" {
		if err := prerenderSite(cfg, r); err != nil {
			return err
		}
	}

	r.timing("build", env.Now().Sub(start))
	return r.listOutputs(cfg.Output.Dir)
}

// loadConfig returns the config named by --config or BLUEPRINT_CONFIG, or
// the defaults when neither is set.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return cfg, err
}

// builderOptions translates configuration into builder options.
func builderOptions(cfg *config.Config, env *Environment) ([]blueprint.Option, error) {
	timeout, err := cfg.Browser.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	opts := []blueprint.Option{
		blueprint.WithTimeout(timeout),
		blueprint.WithEngine(cfg.Render.Engine),
		blueprint.WithClock(env.Now),
		blueprint.WithBrowser(blueprint.BrowserOptions{
			Bin:       cfg.Browser.Bin,
			Download:  cfg.Browser.Download,
			NoSandbox: cfg.Browser.NoSandbox,
		}),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, blueprint.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.CSS != "" {
		css, err := os.ReadFile(cfg.Assets.CSS) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("reading assets.css: %w", err)
		}
		opts = append(opts, blueprint.WithStyle(string(css)))
	}
	return opts, nil
}

// reportBuild prints the written files and the PDF outcome.
func reportBuild(r *reporter, res *blueprint.Result) {
	r.info(fmt.Sprintf("Combined %d sections", len(res.Sections)))
	for _, p := range res.Markdown {
		r.build("Created " + relPath(p))
	}

	switch {
	case res.PDFPath != "":
		r.build("Created " + relPath(res.PDFPath))
	case res.PDFErr != nil:
		r.warn(fmt.Sprintf("PDF export failed, continuing with HTML only: %v%s", res.PDFErr, hints.ForHTMLFallback()))
	}

	r.build("Created " + relPath(res.HTMLPath))
}

// prerenderSite applies the footer include and the blog index prerender to
// every page of the site directory.
func prerenderSite(cfg *config.Config, r *reporter) error {
	start := time.Now()

	loader, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return fmt.Errorf("%w: %v", blueprint.ErrInvalidAssetPath, err)
	}

	links := site.DefaultLinks()
	if len(cfg.Site.Links) > 0 {
		links = make([]site.Link, len(cfg.Site.Links))
		for i, l := range cfg.Site.Links {
			links[i] = site.Link{URL: l.URL, Label: l.Label, Icon: l.Icon, Class: l.Class}
		}
	}

	footer, err := site.RenderFooter(loader, links)
	if err != nil {
		return err
	}

	outDir := filepath.Join(cfg.Output.Dir, siteSubdir)
	written, err := site.ProcessDir(cfg.Site.Dir, outDir, site.NewIncluder(footer))
	if err != nil {
		return fmt.Errorf("prerendering site: %w", err)
	}

	r.build(fmt.Sprintf("Prerendered %d site pages into %s", len(written), relPath(outDir)))
	r.timing("site", time.Since(start))
	return nil
}
