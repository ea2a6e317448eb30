// Package cli implements the licensit command line.
package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/licensit/licensit/internal/author"
	"github.com/licensit/licensit/internal/config"
	"github.com/licensit/licensit/internal/licenses"
	"github.com/licensit/licensit/internal/logging"
)

// Version is set at build time with -ldflags "-X github.com/licensit/licensit/internal/cli.Version=...".
var Version = "dev"

var (
	cfgFile    string
	logLevel   string
	jsonOutput bool
	noColor    bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "licensit",
	Short: "Console application for working with open source licenses",
	Long: `licensit prints and writes open source license texts.

Licenses that carry a copyright line are filled in with an author and a year.
The author defaults to, in order: --user, $LICENSE_AUTHOR, git config user.name,
the current OS user name, and finally "user". The year defaults to the current year.`,
	Example: `  # List available licenses
  licensit list

  # Print the MIT license for a given author and year
  licensit show mit --user "Jane Doe" --year 2023

  # Write LICENSE in the current directory
  licensit add apache-2.0`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
}

func init() {
	rootCmd.Version = Version

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/licensit/config.yaml, or $LICENSIT_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = rootCmd
		}
		stderr := cmd.ErrOrStderr()
		printError(stderr, err, newStyles(stderr))
	}
	return err
}

// GetConfig returns the loaded configuration, nil before a command runs.
func GetConfig() *config.Config {
	return appConfig
}

func initApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return failure(err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return usageError("%v", err)
	}

	appConfig = cfg
	logger := logging.Component("cli")
	logger.Debug().Str("config", cfg.Source).Str("command", cmd.Name()).Msg("configuration loaded")
	return nil
}

// loadCatalog loads the bundled catalog once per process.
var loadCatalog = sync.OnceValues(func() (*licenses.Catalog, error) {
	catalog, err := licenses.LoadBuiltinCatalog()
	if err != nil {
		return nil, err
	}
	logger := logging.Component("catalog")
	logger.Debug().Int("licenses", catalog.Len()).Msg("catalog loaded")
	return catalog, nil
})

func currentYear() int {
	return time.Now().UTC().Year()
}

// maxYear is the largest year accepted by --year.
const maxYear = 65535

func validateYear(year int) error {
	if year < 0 || year > maxYear {
		return usageError("invalid value '%d' for '--year': expected a year between 0 and %d", year, maxYear)
	}
	return nil
}

func resolveAuthor(flag string) author.Resolution {
	var paths []string
	if cfg := GetConfig(); cfg != nil {
		paths = cfg.Author.GitConfigPaths
	}
	return author.NewResolver(paths).Resolve(flag)
}

// renderedLicense is the JSON shape shared by show and add.
type renderedLicense struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Template bool   `json:"template"`
	Author   string `json:"author,omitempty"`
	Year     *int   `json:"year,omitempty"`
	Text     string `json:"text,omitempty"`
	Path     string `json:"path,omitempty"`
	Bytes    int    `json:"bytes,omitempty"`
}

func describe(license *licenses.License, year int, res author.Resolution) string {
	if !license.HasPlaceholders() {
		return license.Name
	}
	return fmt.Sprintf("%s, %d %s", license.Name, year, res.Name)
}
