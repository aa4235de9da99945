package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hostel-portal/app/models"
	"hostel-portal/app/summary"
)

var occupancyCmd = &cobra.Command{
	Use:   "occupancy",
	Short: "Print occupancy by floor and room status counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		rooms, err := c.Rooms(cmd.Context())
		if err != nil {
			return err
		}
		return writeOccupancy(cmd.OutOrStdout(), rooms)
	},
}

func writeOccupancy(out io.Writer, rooms []models.Room) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FLOOR\tOCCUPIED\tCAPACITY\tPERCENT")
	for _, f := range summary.OccupancyByFloor(rooms) {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d%%\n", f.Floor, f.CurrentOccupancy, f.TotalCapacity, f.Percentage)
	}
	fmt.Fprintln(w)
	counts := summary.CountRoomStatuses(rooms)
	for _, s := range []models.RoomStatus{models.RoomEmpty, models.RoomPartiallyFilled, models.RoomFull} {
		fmt.Fprintf(w, "%s\t%d\n", s, counts[s])
	}
	return w.Flush()
}
