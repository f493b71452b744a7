// Command orbkit analyzes a fragment-analysis calculation dump and prints
// orbital overviews, overlap and interaction matrices, and ranked orbital
// pairs.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/orbtools/orbkit/analysis"
	"github.com/orbtools/orbkit/orbital"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "orbkit:", err)
		os.Exit(1)
	}
}

// cliOptions carries the flag and config state shared by all subcommands.
type cliOptions struct {
	configPath string
	name       string
	energyUnit string
	energyKey  string
	spin       string
	irreps     []string
	below1     int
	above1     int
	below2     int
	above2     int
	top        int
	verbose    bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "orbkit",
		Short:         "Fragment-orbital analysis of ADF calculation dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	pf.StringVar(&opts.name, "name", "", "calculation name (defaults to the stored title)")
	pf.StringVar(&opts.energyUnit, "energy-unit", "", "unit the stored orbital energies use (hartree|eV)")
	pf.StringVar(&opts.energyKey, "energy-key", "", "stored energy record to prefer (site-energies|escale|energy)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newOverviewCmd(opts))
	root.AddCommand(newMatrixCmd(opts))
	root.AddCommand(newPairsCmd(opts))

	return root
}

// setup wires viper (config file and ORBKIT_* environment) under the flags
// and builds the logger. Flags win over the config file, which wins over
// the environment defaults.
func (o *cliOptions) setup(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("ORBKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if o.configPath != "" {
		v.SetConfigFile(o.configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if o.energyUnit == "" {
		o.energyUnit = v.GetString("orbital_energy_unit")
	}
	if o.energyKey == "" {
		o.energyKey = v.GetString("orbital_energy_key")
	}

	logger, err := buildLogger(o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger

	return nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

// settings converts the CLI state into the analysis settings value.
func (o *cliOptions) settings() (analysis.Settings, error) {
	s := analysis.Settings{EnergyKey: o.energyKey}

	switch strings.ToLower(o.energyUnit) {
	case "", "hartree", "ha":
		s.EnergyUnit = orbital.UnitHartree
	case "ev":
		s.EnergyUnit = orbital.UnitEV
	default:
		return s, fmt.Errorf("unknown energy unit %q", o.energyUnit)
	}

	return s, nil
}

// open loads the dump at path and builds the analyzer.
func (o *cliOptions) open(path string) (analysis.Analyzer, error) {
	settings, err := o.settings()
	if err != nil {
		return nil, err
	}

	o.logger.Debug("opening calculation dump",
		zap.String("path", path),
		zap.String("energy_key", o.energyKey),
		zap.String("energy_unit", string(settings.EnergyUnit)))

	a, err := analysis.Open(path, settings)
	if err != nil {
		return nil, err
	}
	if o.name != "" {
		a, err = reopenNamed(path, o.name, settings)
		if err != nil {
			return nil, err
		}
	}

	o.logger.Info("calculation loaded",
		zap.String("name", a.Name()),
		zap.Bool("restricted", a.Restricted()),
		zap.Bool("symmetry", a.UsesSymmetry()),
		zap.Bool("relativistic", a.Relativistic()))

	return a, nil
}

func reopenNamed(path, name string, settings analysis.Settings) (analysis.Analyzer, error) {
	store, err := loadStore(path)
	if err != nil {
		return nil, err
	}

	return analysis.New(store, name, settings)
}

// windowOptions assembles the per-fragment window from the flags.
func (o *cliOptions) windowOptions() analysis.WindowOptions {
	return analysis.WindowOptions{
		Frag1Range: analysis.OrbitalRange{Below: o.below1, Above: o.above1},
		Frag2Range: analysis.OrbitalRange{Below: o.below2, Above: o.above2},
		Irreps:     o.irreps,
		Spin:       orbital.Spin(strings.ToUpper(o.spin)),
	}
}

// addWindowFlags registers the window flags shared by matrix and pairs.
func addWindowFlags(cmd *cobra.Command, opts *cliOptions) {
	f := cmd.Flags()
	f.IntVar(&opts.below1, "below1", 3, "occupied orbitals under the fragment-1 HOMO")
	f.IntVar(&opts.above1, "above1", 3, "unoccupied orbitals over the fragment-1 LUMO")
	f.IntVar(&opts.below2, "below2", 3, "occupied orbitals under the fragment-2 HOMO")
	f.IntVar(&opts.above2, "above2", 3, "unoccupied orbitals over the fragment-2 LUMO")
	f.StringSliceVar(&opts.irreps, "irreps", nil, "restrict the window to these irreps")
	f.StringVar(&opts.spin, "spin", "", "spin channel of an unrestricted file (A|B)")
}
