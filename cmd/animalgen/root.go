package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-animalgen"
	"github.com/goliatone/go-animalgen/internal/config"
	"github.com/goliatone/go-animalgen/internal/logging"
	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/generator"
	"github.com/goliatone/go-animalgen/pkg/lookup"
	"github.com/goliatone/go-animalgen/pkg/prompt"
	"github.com/goliatone/go-animalgen/pkg/source"
)

// app carries the collaborators the commands need. Zero values fall back to
// the real terminal, network, and logger.
type app struct {
	driver     prompt.Driver
	httpClient lookup.Doer

	configPath      string
	envFile         string
	templatePath    string
	builtinTemplate bool
	outputPath      string
	dataPath        string
	verbose         bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "animalgen",
		Short: "Render animal cards into a static HTML page",
		Long: `animalgen renders animal records as HTML cards inside a page shell.

The local command reads a data file and filters it by skin type; the remote
command looks animals up by name through the animals API (API_KEY required).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "animalgen.yaml", "Optional YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Optional .env file holding API_KEY")
	root.PersistentFlags().StringVarP(&a.templatePath, "template", "t", "", "HTML shell (default from config: animals_template.html)")
	root.PersistentFlags().BoolVar(&a.builtinTemplate, "builtin-template", false, "Use the embedded HTML shell")
	root.PersistentFlags().StringVarP(&a.outputPath, "output", "o", "", "Output file, replaced if it exists (default animals.html)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	local := &cobra.Command{
		Use:   "local",
		Short: "Render animals from a data file filtered by skin type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, generator.ModeLocal)
		},
	}
	local.Flags().StringVarP(&a.dataPath, "data", "d", "", "JSON or YAML data file (default animals_data.json)")

	remote := &cobra.Command{
		Use:   "remote",
		Short: "Look an animal up by name and render the matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, generator.ModeRemote)
		},
	}

	root.AddCommand(local, remote)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{File: a.configPath, EnvFile: a.envFile})
	if err != nil {
		return err
	}

	if a.templatePath != "" {
		cfg.TemplatePath = a.templatePath
	}
	if a.outputPath != "" {
		cfg.OutputPath = a.outputPath
	}
	if a.dataPath != "" {
		cfg.DataPath = a.dataPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if a.logger == nil {
		logger, err := logging.New(logging.Options{
			Level:    cfg.Logging.Level,
			Encoding: cfg.Logging.Encoding,
			Verbose:  a.verbose,
		})
		if err != nil {
			return err
		}
		a.logger = logger
	}

	a.cfg = cfg
	return nil
}

func (a *app) run(cmd *cobra.Command, mode generator.Mode) error {
	options := []generator.Option{
		generator.WithLogger(a.logger),
		generator.WithPromptDriver(a.driver),
	}

	template := source.FromFile(a.cfg.TemplatePath)
	if a.builtinTemplate {
		var opt source.LoaderOption
		opt, template = animalgen.BuiltinShellOptions()
		options = append(options, generator.WithLoader(animalgen.NewLoader(opt)))
	}

	req := generator.Request{
		Mode:       mode,
		Template:   template,
		OutputPath: a.cfg.OutputPath,
	}

	switch mode {
	case generator.ModeLocal:
		req.Data = source.FromFile(a.cfg.DataPath)
	case generator.ModeRemote:
		client, err := a.lookupClient()
		if err != nil {
			return err
		}
		options = append(options, generator.WithSearcher(client))
	}

	result, err := generator.New(options...).Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), result)
}

func (a *app) lookupClient() (*lookup.Client, error) {
	options := []lookup.Option{lookup.WithLogger(a.logger)}
	if a.httpClient != nil {
		options = append(options, lookup.WithHTTPClient(a.httpClient))
	}
	return lookup.New(lookup.Config{
		APIKey:  a.cfg.Lookup.APIKey,
		BaseURL: a.cfg.Lookup.BaseURL,
		Timeout: a.cfg.LookupTimeout(),
	}, options...)
}

func report(out io.Writer, result generator.Result) error {
	lines := []string{"", result.OutputPath + " has been created."}
	switch result.Mode {
	case generator.ModeLocal:
		lines = append(lines, fmt.Sprintf("Filter used: %s = %s", animal.KeySkinType, result.Filter))
	case generator.ModeRemote:
		lines = append(lines, "Search term: "+result.SearchTerm)
	}
	lines = append(lines, fmt.Sprintf("Animals shown: %d", result.Count))

	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}
