package cli

import (
	"github.com/alexanderramin/wbs/internal/config"
	"github.com/spf13/pflag"
)

// rootFlags are the persistent flags shared by every command. Only flags
// the user actually set override the loaded configuration.
type rootFlags struct {
	configPath  string
	title       string
	skipRows    int
	markerCol   int
	nameCol     int
	phasePrefix string
}

func (f *rootFlags) bind(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVar(&f.configPath, "config", "", "TOML config file (default $WBS_CONFIG or ./"+config.DefaultConfigFile+")")
	fs.StringVar(&f.title, "title", def.Title, "Checklist title")
	fs.IntVar(&f.skipRows, "skip-rows", def.Format.SkipRows, "Header rows to skip before data")
	fs.IntVar(&f.markerCol, "marker-col", def.Format.MarkerColumn, "Column (0-based) that is empty on phase rows")
	fs.IntVar(&f.nameCol, "name-col", def.Format.NameColumn, "Column (0-based) holding phase and task names")
	fs.StringVar(&f.phasePrefix, "phase-prefix", def.Format.PhasePrefix, "Case-insensitive prefix of phase names")
}

func (f *rootFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("title") {
		cfg.Title = f.title
	}
	if fs.Changed("skip-rows") {
		cfg.Format.SkipRows = f.skipRows
	}
	if fs.Changed("marker-col") {
		cfg.Format.MarkerColumn = f.markerCol
	}
	if fs.Changed("name-col") {
		cfg.Format.NameColumn = f.nameCol
	}
	if fs.Changed("phase-prefix") {
		cfg.Format.PhasePrefix = f.phasePrefix
	}
}
