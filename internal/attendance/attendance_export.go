package attendance

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var (
	presentHeader = []any{"ID", "Employee Name", "Date", "Time", "Latitude", "Longitude", "City"}
	onLeaveHeader = []any{"Leave ID", "Employee Name", "Reason", "Attachment", "Applied On"}
)

// buildWorkbook renders the rows of v as a single-sheet xlsx file.
func buildWorkbook(v ViewResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	rows := [][]any{}
	if v.Status == StatusOnLeave {
		rows = append(rows, onLeaveHeader)
		for _, l := range v.Leaves {
			attachment, applied := "", ""
			if l.AttachmentFile != nil {
				attachment = *l.AttachmentFile
			}
			if l.AppliedOn != nil {
				applied = l.AppliedOn.Format("2006-01-02 15:04:05")
			}
			rows = append(rows, []any{l.LeaveID, l.EmployeeName, l.Reason, attachment, applied})
		}
	} else {
		rows = append(rows, presentHeader)
		for _, a := range v.Attendance {
			rows = append(rows, []any{a.ID, a.EmployeeName, a.AttendanceDate, a.AttendanceTime,
				floatCell(a.LocationLatitude), floatCell(a.LocationLongitude), a.City})
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
