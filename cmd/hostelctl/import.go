package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hostel-portal/app/client"
	"hostel-portal/app/models"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk import records from a CSV file",
}

var importStudentsCmd = &cobra.Command{
	Use:   "students <file.csv>",
	Short: "Import students",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], func(c *client.Client) uploader { return c.UploadStudentsCSV })
	},
}

var importRoomsCmd = &cobra.Command{
	Use:   "rooms <file.csv>",
	Short: "Import rooms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], func(c *client.Client) uploader { return c.UploadRoomsCSV })
	},
}

type uploader func(ctx context.Context, filename string, r io.Reader) (models.Message, error)

func runImport(cmd *cobra.Command, path string, pick func(*client.Client) uploader) error {
	if filepath.Ext(path) != ".csv" {
		return fmt.Errorf("%s: only .csv files can be imported", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	c, err := adminClient(cmd.Context())
	if err != nil {
		return err
	}
	msg, err := pick(c)(cmd.Context(), filepath.Base(path), f)
	if err != nil {
		return errors.New(client.UserMessage(err, "upload failed"))
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
	return nil
}
