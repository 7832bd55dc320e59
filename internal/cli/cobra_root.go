package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"birthdays/internal/config"
	"birthdays/internal/errors"
	"birthdays/internal/logging"
)

// RootCommand represents the single bd command
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
}

// NewRootCommand creates the root cobra command with its flags
func NewRootCommand(loader *config.Loader, version string) *RootCommand {
	root := &RootCommand{
		loader: loader,
	}

	root.cmd = &cobra.Command{
		Use:     "bd --birthday-file <path> [--days N]",
		Short:   "Prints the upcoming birthdays from a CSV file",
		Version: version,
		Long: `bd lists the people whose birthday falls within the next few days.

INPUT:
  A CSV file with a header row naming the columns name, surname and birthdate,
  separated by ";". Birthdates look like 31-01-2000 and may be left empty.
  Files ending in .db, .sqlite or .sqlite3 are read as SQLite databases
  with a table (default "birthdays") holding the same three columns.

OUTPUT:
  One line per birthday, soonest first: "<name> <surname> <day>.<month>".
  Birthdays at most --urgent-days away are printed in red, the rest in yellow.
  Only birthdays still ahead this calendar year are shown; --wrap also looks
  into next year once the window crosses New Year.

EXAMPLES:
  bd -b birthdays.csv                      # Birthdays in the next 7 days
  bd -b birthdays.csv -d 30                # Birthdays in the next 30 days
  bd -b birthdays.csv -d 14 --wrap         # Include early January in late December
  bd -b people.db --table friends          # Read from a SQLite table

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    BD_BIRTHDAY_FILE                       Birthday file
    BD_DAYS                                Days to look ahead (default: 7)
    BD_URGENT_DAYS                         Days counted as urgent (default: 2)
    BD_DELIMITER                           CSV delimiter (default: ;)
    BD_DATE_FORMAT                         Go date layout (default: 2-1-2006)
    BD_TABLE                               SQLite table (default: birthdays)
    BD_WRAP                                Look past New Year for the next birthday
    BD_NO_COLOR                            Disable colours (NO_COLOR is honoured too)
    BD_TIMEOUT                             Read timeout (default: 30s)
    BD_VERBOSE, BD_DEBUG                   Debug output on stderr`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), root.getAppTimeout())
			defer cancel()

			return NewApp(root.config, cmd.OutOrStdout()).Run(ctx)
		},
	}

	root.addFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addFlags adds the command-line flags
func (r *RootCommand) addFlags() {
	flags := r.cmd.Flags()

	// Source configuration
	flags.StringP("birthday-file", "b", "", "CSV file with columns name, surname, birthdate (overrides BD_BIRTHDAY_FILE)")
	flags.String("delimiter", string(config.DefaultDelimiter), "CSV delimiter, \"tab\" for tabs (overrides BD_DELIMITER)")
	flags.String("date-format", config.DefaultDateFormat, "Go layout of the birthdate column (overrides BD_DATE_FORMAT)")
	flags.String("table", config.DefaultTable, "Table to read from SQLite files (overrides BD_TABLE)")

	// Window configuration
	flags.IntP("days", "d", config.DefaultDays, "Number of days to look ahead (overrides BD_DAYS)")
	flags.Int("urgent-days", 2, "Birthdays this many days away or closer are urgent (overrides BD_URGENT_DAYS)")
	flags.Bool("wrap", false, "Use next year's birthday once this year's has passed (overrides BD_WRAP)")

	// Display configuration
	flags.Bool("no-color", false, "Disable coloured output (overrides BD_NO_COLOR)")

	// Application configuration
	flags.Duration("timeout", 30*time.Second, "Read timeout (overrides BD_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Print debug output to stderr (overrides BD_VERBOSE)")
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second // Default timeout
}

// loadConfig builds the configuration from defaults, environment and flags
func (r *RootCommand) loadConfig() error {
	overrides, err := r.getOverridesFromFlags()
	if err != nil {
		return NewErrorHandler().Handle("read flags", err)
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return NewErrorHandler().Handle("load configuration", err)
	}

	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)
	logging.Debugf("config: file=%s days=%d urgent=%d wrap=%t\n",
		cfg.Source.Path, cfg.Window.Days, cfg.Window.UrgentWithin, cfg.Window.WrapYear)
	return nil
}

// getOverridesFromFlags collects the flags that were given explicitly.
// Flags left at their default do not override environment variables.
func (r *RootCommand) getOverridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.Flags()
	overrides := &config.ConfigOverrides{}

	// Source configuration
	if flags.Changed("birthday-file") {
		path, _ := flags.GetString("birthday-file")
		overrides.Path = &path
	}
	if flags.Changed("delimiter") {
		value, _ := flags.GetString("delimiter")
		delim, err := config.ParseDelimiter(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("delimiter", value, "must be a single character other than a quote or newline")
		}
		overrides.Delimiter = &delim
	}
	if flags.Changed("date-format") {
		format, _ := flags.GetString("date-format")
		overrides.DateFormat = &format
	}
	if flags.Changed("table") {
		table, _ := flags.GetString("table")
		overrides.Table = &table
	}

	// Window configuration
	if flags.Changed("days") {
		days, _ := flags.GetInt("days")
		overrides.Days = &days
	}
	if flags.Changed("urgent-days") {
		urgent, _ := flags.GetInt("urgent-days")
		overrides.UrgentWithin = &urgent
	}
	if flags.Changed("wrap") {
		wrap, _ := flags.GetBool("wrap")
		overrides.WrapYear = &wrap
	}

	// Display configuration
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		overrides.NoColor = &noColor
	}

	// Application configuration
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		if timeout <= 0 {
			return nil, errors.NewInvalidInputError("timeout", timeout, "must be positive")
		}
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides, nil
}
