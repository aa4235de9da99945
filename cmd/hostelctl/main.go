// Command hostelctl runs admin tasks against the hostel backend from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	username   string
	password   string
)

var rootCmd = &cobra.Command{
	Use:   "hostelctl",
	Short: "Administer the hostel backend",
	Long: `hostelctl signs in to the hostel backend as an admin and runs one task.

Credentials come from --username/--password or from the
HOSTEL_ADMIN_USERNAME and HOSTEL_ADMIN_PASSWORD environment variables.
The backend URL and timeout are read from the portal configuration.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Portal configuration file")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "Admin username (or set HOSTEL_ADMIN_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Admin password (or set HOSTEL_ADMIN_PASSWORD)")

	importCmd.AddCommand(importStudentsCmd)
	importCmd.AddCommand(importRoomsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(occupancyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
