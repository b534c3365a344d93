package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorge-barreto/codesplit/internal/config"
	"github.com/jorge-barreto/codesplit/internal/docs"
	"github.com/jorge-barreto/codesplit/internal/fsys"
	"github.com/jorge-barreto/codesplit/internal/manifest"
	"github.com/jorge-barreto/codesplit/internal/runner"
	"github.com/jorge-barreto/codesplit/internal/scaffold"
	"github.com/jorge-barreto/codesplit/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "codesplit",
		Usage:       "Split generated source text into one file per compilation unit",
		Description: "Run 'codesplit docs' for documentation on config, splitting rules, and package normalization.",
		Commands: []*cli.Command{
			splitCmd(),
			normalizeCmd(),
			statusCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.NewConsole().Error(err)
		os.Exit(1)
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Config file (default: nearest " + config.FileName + ")"}
}

func packageFlag() cli.Flag {
	return &cli.StringFlag{Name: "package", Aliases: []string{"p"}, Usage: "Target package for public declarations, e.g. com.example"}
}

func fencesFlag() cli.Flag {
	return &cli.BoolFlag{Name: "fences", Usage: "Only use code inside markdown ``` fences"}
}

func fenceLangFlag() cli.Flag {
	return &cli.StringSliceFlag{Name: "fence-lang", Usage: "With --fences, keep only fences tagged with this language (repeatable)"}
}

func resolveConfig(cmd *cli.Command) (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(cmd.String("config"), dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadConfig resolves the config and applies the --package and --fences flags.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if pkg := cmd.String("package"); pkg != "" {
		if err := config.ValidatePackage(pkg); err != nil {
			return nil, err
		}
		cfg.Package = pkg
	}
	if cmd.IsSet("fences") {
		cfg.ExtractFences = cmd.Bool("fences")
	}
	if langs := cmd.StringSlice("fence-lang"); len(langs) > 0 {
		cfg.FenceLanguages = langs
	}
	return cfg, nil
}

func splitCmd() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Split inputs into per-unit files under the output directory",
		ArgsUsage: "<input>... (files, globs, or - for stdin)",
		Flags: []cli.Flag{
			configFlag(),
			packageFlag(),
			fencesFlag(),
			fenceLangFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output root (default: config output or " + config.DefaultOutput + ")"},
			&cli.BoolFlag{Name: "strict", Usage: "Exit non-zero when any file could not be written"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("at least one input is required")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			inputs, err := runner.LoadInputs(cmd.Args().Slice(), os.Stdin)
			if err != nil {
				return err
			}

			r, err := runner.New(cfg, runner.Options{
				Output:         cmd.String("out"),
				Package:        cfg.Package,
				ExtractFences:  cfg.ExtractFences,
				FenceLanguages: cfg.FenceLanguages,
			}, ux.NewConsole())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			m, err := r.Run(ctx, inputs)
			if err != nil {
				return err
			}
			if cmd.Bool("strict") && len(m.Failed) > 0 {
				return &runner.PartialError{Failed: m.Failed}
			}
			return nil
		},
	}
}

func normalizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Print an input with package statements set for every public declaration",
		ArgsUsage: "<input> (file or - for stdin)",
		Flags: []cli.Flag{
			configFlag(),
			packageFlag(),
			fencesFlag(),
			fenceLangFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write to this file instead of stdout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one input is required")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Package == "" {
				return fmt.Errorf("--package is required (or set 'package' in %s)", config.FileName)
			}
			inputs, err := runner.LoadInputs(cmd.Args().Slice(), os.Stdin)
			if err != nil {
				return err
			}

			r := &runner.Runner{Options: runner.Options{
				Package:        cfg.Package,
				ExtractFences:  cfg.ExtractFences,
				FenceLanguages: cfg.FenceLanguages,
			}}
			var text string
			for _, in := range inputs {
				text += r.Prepare(in.Text)
			}

			if out := cmd.String("out"); out != "" {
				return fsys.WriteFileAtomic(out, []byte(text), 0644)
			}
			fmt.Print(text)
			return nil
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show what the last split wrote",
		ArgsUsage: "[dir]",
		Flags:     []cli.Flag{configFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root := cmd.Args().First()
			if root == "" {
				cfg, err := resolveConfig(cmd)
				if err != nil {
					return err
				}
				root = cfg.Output
			}

			m, err := manifest.Load(root)
			if errors.Is(err, manifest.ErrNoManifest) {
				fmt.Printf("No split recorded in %s.\n", root)
				return nil
			}
			if err != nil {
				return fmt.Errorf("loading manifest: %w", err)
			}
			ux.NewConsole().RenderStatus(m, root)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example " + config.FileName + " in the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'codesplit docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
