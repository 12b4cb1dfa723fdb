package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/stemline-bio/mscplan/internal/cliconfig"
	"github.com/stemline-bio/mscplan/internal/report"
	"github.com/stemline-bio/mscplan/internal/watch"
	"github.com/stemline-bio/mscplan/pkg/catalog"
	logpkg "github.com/stemline-bio/mscplan/pkg/log"
	"github.com/stemline-bio/mscplan/pkg/mscplan"
)

const helpDescription = `
Plan a clinical MSC expansion protocol from patient weight and target dose.

Highlights:
  - Finds the cheapest passage schedule: fewest passages, then fewest vessels.
  - Accounts culture duration, medium consumption and optional priming fluid.
  - Equipment catalog is configurable per lab via a TOML overlay file.
  - Configure via file, environment (MSCPLAN_*), or flags.

An unreachable target is reported, not treated as an error: the plan at the
search bound is printed with an explicit warning.
`

var exampleUsage = strings.TrimSpace(`
  mscplan --weight 70 --dose 1.0 --grade grade-ii
  mscplan --vessel flask-t175 --priming --json
  mscplan --catalog lab-catalog.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "mscplan",
		Short:   "Plan a clinical MSC expansion protocol from patient weight and target dose",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.mscplan/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			log.Info().Interface("config", cfg).Msg("configuration")

			logger := logpkg.NewZerologAdapterWithLogger(log)

			runOnce := func() error {
				cat := catalog.Builtin()
				if cfg.CatalogPath != "" {
					f, err := catalog.LoadFile(cfg.CatalogPath)
					if err != nil {
						return err
					}
					if err := cat.ApplyFile(f); err != nil {
						return err
					}
				}

				req := mscplan.Request{
					WeightKg:          cfg.WeightKg,
					DosePerKg:         cfg.DosePerKg,
					VesselID:          cfg.Vessel,
					SeparatorID:       cfg.Separator,
					GradeID:           cfg.Grade,
					Priming:           cfg.Priming,
					SamplesPerPassage: cfg.Samples,
				}
				res, err := mscplan.Run(req, mscplan.WithCatalog(cat), mscplan.WithLogger(logger))
				if err != nil {
					return err
				}

				if cfg.JSON {
					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					return enc.Encode(res)
				}
				report.Render(os.Stdout, req, res)
				return nil
			}

			if err := runOnce(); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}

			// Watch mode: re-plan whenever the lab catalog file changes.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			w := watch.New(cfg.CatalogPath, watch.DefaultDebounce, logger, func() {
				if err := runOnce(); err != nil {
					log.Error().Err(err).Msg("replan after catalog change")
				}
			})
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.mscplan/config.toml)")
	root.Flags().StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "path to a TOML equipment catalog overlay")

	root.Flags().Float64Var(&cfg.WeightKg, "weight", cfg.WeightKg, "patient weight in kg")
	root.Flags().Float64Var(&cfg.DosePerKg, "dose", cfg.DosePerKg, "desired dose in ×10⁶ cells per kg")
	root.Flags().StringVar(&cfg.Grade, "grade", cfg.Grade, "GVHD grade for the dose-response reference")

	root.Flags().StringVar(&cfg.Vessel, "vessel", cfg.Vessel, "culture vessel type")
	root.Flags().StringVar(&cfg.Separator, "separator", cfg.Separator, "cell separator profile")
	root.Flags().BoolVar(&cfg.Priming, "priming", cfg.Priming, "include priming fluid for the first passage")

	root.Flags().IntVar(&cfg.Samples, "samples", cfg.Samples, "trajectory samples per passage")
	root.Flags().BoolVar(&cfg.JSON, "json", cfg.JSON, "print the result as JSON instead of a report")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-plan when the catalog file changes (requires --catalog)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("mscplan")
		os.Exit(1)
	}
}
