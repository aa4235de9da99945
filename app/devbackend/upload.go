package devbackend

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/logger"
	"hostel-portal/app/models"
)

// readCSV reads the uploaded "file" part into header-keyed rows.
func readCSV(c *fiber.Ctx) ([]map[string]string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, badRequest("No file uploaded")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, badRequest("Could not read the uploaded file")
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, badRequest("The CSV file is empty")
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, badRequest("Malformed CSV: " + err.Error())
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func importSummary(noun string, imported, skipped int) string {
	msg := fmt.Sprintf("%d %s imported successfully", imported, noun)
	if skipped > 0 {
		msg += fmt.Sprintf(", %d skipped", skipped)
	}
	return msg
}

func (s *Server) uploadStudents(c *fiber.Ctx) error {
	rows, err := readCSV(c)
	if err != nil {
		return err
	}
	imported, skipped := 0, 0
	for _, row := range rows {
		st := models.Student{
			Name:          row["name"],
			RollNo:        row["roll_no"],
			Email:         row["email"],
			Phone:         row["phone"],
			RoomNo:        row["room_no"],
			Department:    row["department"],
			Year:          models.FlexString(row["year"]),
			Gender:        row["gender"],
			DOB:           row["dob"],
			Address:       row["address"],
			GuardianName:  row["guardian_name"],
			GuardianPhone: row["guardian_phone"],
		}
		if _, err := s.store.AddStudent(st); err != nil {
			logger.Debug().Str("roll_no", st.RollNo).Err(err).Msg("student row skipped")
			skipped++
			continue
		}
		imported++
	}
	return message(c, fiber.StatusOK, importSummary("students", imported, skipped))
}

func (s *Server) uploadRooms(c *fiber.Ctx) error {
	rows, err := readCSV(c)
	if err != nil {
		return err
	}
	imported, skipped := 0, 0
	for _, row := range rows {
		capacity, err := strconv.Atoi(row["capacity"])
		if err == nil {
			_, err = s.store.AddRoom(row["room_number"], capacity)
		}
		if err != nil {
			logger.Debug().Str("room_number", row["room_number"]).Err(err).Msg("room row skipped")
			skipped++
			continue
		}
		imported++
	}
	return message(c, fiber.StatusOK, importSummary("rooms", imported, skipped))
}
