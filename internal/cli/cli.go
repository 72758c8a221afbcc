package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/dbrizard/elwaspatid/wave"
	"github.com/spf13/cobra"
)

// appName is the application name
const appName = "elwaspatid"

// version is set with ldflags at build time
var version = "dev"

// log levels exported for use in main.go
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands
type CLI struct {
	Logger  *log.Logger
	Verbose bool
}

// New creates a new CLI instance
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the level of the CLI logger and of the solvers logger
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		wave.Logger.SetLevel(level)
	}
}

// RootCommand creates the root command with all subcommands registered
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Elastic wave propagation in slender structures",
		Long: `elwaspatid computes the propagation of longitudinal elastic waves in bars made of
segments of constant impedance, with the method of characteristics. Segments may
lose contact (traction cannot cross their interfaces). Split Hopkinson bar tests
and striker impacts are included.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.Verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&c.Verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.impactCommand())
	root.AddCommand(c.sweepCommand())
	root.AddCommand(c.shpbCommand())
	return root
}
