package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	partyreport "github.com/goliatone/go-partyreport"
	"github.com/goliatone/go-partyreport/internal/prompt"
	"github.com/goliatone/go-partyreport/pkg/config"
	"github.com/goliatone/go-partyreport/pkg/convert"
	"github.com/goliatone/go-partyreport/pkg/logging"
	"github.com/goliatone/go-partyreport/pkg/pipeline"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "partyreport",
		Short: "Render the MP party affiliation analysis as Markdown and HTML",
		Long: `Reads the analysis JSON, builds the summary and per-party tables, splices
them into the Markdown template, converts the document to HTML and writes it
into the HTML shell.

Settings come from partyreport.yaml (when present), .env and GITHUB_TOKEN,
then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := logging.New(a.flags.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runReport,
	}

	persistent := root.PersistentFlags()
	persistent.StringVarP(&a.flags.configPath, "config", "c", config.DefaultConfigFile, "YAML settings file")
	persistent.StringVarP(&a.flags.input, "input", "i", config.DefaultInput, "analysis JSON file or http(s) URL")
	persistent.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	flags := root.Flags()
	flags.StringVar(&a.flags.markdownTemplate, "markdown-template", config.DefaultMarkdownTemplate, "Markdown template with the summary and results markers")
	flags.StringVar(&a.flags.htmlTemplate, "html-template", config.DefaultHTMLTemplate, "HTML shell with the content marker")
	flags.StringVarP(&a.flags.output, "output", "o", config.DefaultOutput, "HTML output path")
	flags.StringVar(&a.flags.markdownOutput, "markdown-output", "", "also write the composed Markdown to this path")
	flags.StringVar(&a.flags.converter, "converter", convert.GitHubName,
		fmt.Sprintf("markdown converter (%s)", strings.Join(converterNames(), "|")))
	flags.StringVar(&a.flags.endpoint, "endpoint", convert.DefaultEndpoint, "conversion endpoint for the github converter")
	flags.DurationVar(&a.flags.timeout, "timeout", convert.DefaultTimeout, "conversion request timeout")
	flags.BoolVar(&a.flags.sanitize, "sanitize", false, "sanitise the converted HTML")
	flags.BoolVar(&a.flags.strict, "strict", false, "fail when the conversion request cannot be sent")
	flags.BoolVar(&a.flags.interactive, "interactive", false, "prompt for a token when none is configured")

	root.AddCommand(newSummaryCommand(a), newInitCommand(a))
	return root
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the summary table as Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			// summary never converts
			cfg.Converter.Name = convert.GoldmarkName

			summary, err := pipeline.New(cfg,
				pipeline.WithFileSystem(a.files),
				pipeline.WithLogger(a.logger),
			).Summary(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, strings.TrimPrefix(summary, "\n"))
			return err
		},
	}
}

func newInitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the default templates and a settings file that renders them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := partyreport.WriteTemplates(a.files, dir, a.flags.force)
			if err != nil {
				return err
			}

			settings := a.flags.configPath
			exists, err := afero.Exists(a.files, settings)
			if err != nil {
				return fmt.Errorf("stat %s: %w", settings, err)
			}
			if !exists || a.flags.force {
				if err := config.Save(a.files, settings, partyreport.StarterConfig(dir)); err != nil {
					return err
				}
				written = append(written, settings)
			}

			if len(written) == 0 {
				a.logger.Info("templates already present, nothing written", zap.String("dir", dir))
			}
			for _, path := range written {
				fmt.Fprintln(a.stdout, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&a.flags.force, "force", "f", false, "overwrite existing templates and settings")
	return cmd
}

func (a *app) runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Token == "" && cfg.Converter.Name == convert.GitHubName {
		if a.flags.interactive {
			token, err := prompt.Token(ctx, a.prompter, tokenEnv(cfg))
			if err != nil {
				return err
			}
			cfg.Token = token
		}
		if cfg.Token == "" {
			a.logger.Warn("no token configured, sending an anonymous conversion request",
				zap.String("env", tokenEnv(cfg)))
		}
	}

	var extra []convert.GitHubOption
	if a.httpClient != nil {
		extra = append(extra, convert.WithHTTPClient(a.httpClient))
	}

	outcome, err := pipeline.New(cfg,
		pipeline.WithFileSystem(a.files),
		pipeline.WithLogger(a.logger),
		pipeline.WithRegistry(pipeline.DefaultRegistry(cfg, a.logger, extra...)),
	).Run(ctx)
	if err != nil {
		return err
	}
	if !outcome.Written {
		a.logger.Warn("conversion did not complete, previous output left unchanged",
			zap.String("path", cfg.Output))
	}
	return nil
}

// loadConfig layers the YAML file, flags and environment. An explicit
// --config must exist; the default file is optional.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	changed := cmd.Flags().Changed

	cfg, err := config.Load(a.files, a.flags.configPath, changed("config"))
	if err != nil {
		return cfg, err
	}

	if changed("input") {
		cfg.Input = a.flags.input
	}
	if changed("markdown-template") {
		cfg.MarkdownTemplate = a.flags.markdownTemplate
	}
	if changed("html-template") {
		cfg.HTMLTemplate = a.flags.htmlTemplate
	}
	if changed("output") {
		cfg.Output = a.flags.output
	}
	if changed("markdown-output") {
		cfg.MarkdownOutput = a.flags.markdownOutput
	}
	if changed("converter") {
		cfg.Converter.Name = a.flags.converter
	}
	if changed("endpoint") {
		cfg.Converter.Endpoint = a.flags.endpoint
	}
	if changed("timeout") {
		cfg.Converter.Timeout = a.flags.timeout
	}
	if changed("sanitize") {
		cfg.Converter.Sanitize = a.flags.sanitize
	}
	if changed("strict") {
		cfg.Strict = a.flags.strict
	}

	dotenv, err := config.LoadDotEnv(a.files, config.DefaultDotEnv)
	if err != nil {
		return cfg, err
	}
	cfg.ResolveToken(a.lookupEnv, dotenv)

	if err := cfg.Validate(converterNames()...); err != nil {
		return cfg, err
	}
	a.logger.Debug("configuration resolved",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.String("converter", cfg.Converter.Name),
		zap.Bool("token", cfg.Token != ""),
	)
	return cfg, nil
}

// converterNames lists the converters the report command can select.
func converterNames() []string {
	return pipeline.DefaultRegistry(config.Default(), zap.NewNop()).List()
}

func tokenEnv(cfg config.Config) string {
	if cfg.Converter.TokenEnv != "" {
		return cfg.Converter.TokenEnv
	}
	return config.DefaultTokenEnv
}
