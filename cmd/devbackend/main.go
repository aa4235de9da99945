// Command devbackend serves an in-memory hostel REST API for local
// development of the portal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"hostel-portal/app/devbackend"
	"hostel-portal/app/logger"
)

var (
	addr          string
	seed          bool
	adminUsername string
	adminPassword string
	adminName     string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "devbackend",
	Short: "Run an in-memory hostel backend",
	Long: `Run an in-memory implementation of the hostel REST API.

Data lives only as long as the process. With --seed (the default) the store
starts with demo rooms, students and records; the demo admin is
admin / admin123 and every student's password is their roll number.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	logger.Configure(logger.Config{Level: logLevel, Pretty: true})

	store := devbackend.NewStore(bcrypt.DefaultCost)
	if seed {
		if err := store.Seed(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	if adminUsername != "" {
		if adminPassword == "" {
			return fmt.Errorf("--admin-password is required with --admin-username")
		}
		if err := store.AddAdmin(adminUsername, adminPassword, adminName, ""); err != nil {
			return fmt.Errorf("add admin: %w", err)
		}
		logger.Info().Str("username", adminUsername).Msg("admin created")
	}

	logger.Info().Str("addr", addr).Bool("seeded", seed).Msg("dev backend starting")
	return devbackend.NewServer(store).App().Listen(addr)
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:5000", "Listen address")
	rootCmd.Flags().BoolVar(&seed, "seed", true, "Load demo data")
	rootCmd.Flags().StringVar(&adminUsername, "admin-username", "", "Create an extra admin with this username")
	rootCmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for --admin-username")
	rootCmd.Flags().StringVar(&adminName, "admin-name", "", "Display name for --admin-username")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
