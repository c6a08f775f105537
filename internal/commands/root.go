package commands

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "An AI-assisted daily planner",
	Long: `dayplan is a single-user web application: describe your day in free text
and let the AI turn it into a time-blocked schedule you can reflect on,
export as an .ics file, or push to Google Calendar.`,
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
