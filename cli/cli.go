package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/hwsys/cli/cmd"
	"github.com/ardnew/hwsys/component"
	"github.com/ardnew/hwsys/pkg"
)

// CLI is the top-level command-line interface for hwsys.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit."`

	File string `help:"Manifest file (.yaml, .yml or .hcl)." short:"f" type:"existingfile"`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	List   cmd.List   `cmd:"" help:"List components and systems"`
	Browse cmd.Browse `cmd:"" help:"Interactively filter resolved members"`

	Resolve cmd.Resolve `cmd:"" default:"withargs" help:"Resolve member expressions"`
}

// Run executes the hwsys CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(configFile)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.VersionInfo(),
		"kinds":              kindNames(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags are applied before parsing so that errors reported
	// while parsing are already formatted as requested.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithManifest(ctx, cli.File)

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// kindNames returns the comma-separated names of every member kind.
func kindNames() string {
	var names []string
	for k := range component.Kinds() {
		names = append(names, k.String())
	}

	return strings.Join(names, ", ")
}
