// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package export renders bookings as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/olegiv/eventdesk/internal/model"
	"github.com/olegiv/eventdesk/internal/store"
)

// SheetName is the single worksheet of the export.
const SheetName = "Bookings"

// ContentType is the MIME type of the workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{"ID", "Name", "Email", "Phone", "Event Type", "Date", "Time", "Submitted"}

var columnWidths = map[string]float64{
	"A": 8, "B": 28, "C": 32, "D": 18, "E": 18, "F": 12, "G": 8, "H": 20,
}

// WriteBookings writes one row per booking, in the given order, to w.
func WriteBookings(w io.Writer, bookings []store.Booking) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("writing header %s: %w", cell, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("setting width of column %s: %w", col, err)
		}
	}

	for i, b := range bookings {
		row := i + 2
		values := []any{
			b.ID,
			b.Name,
			b.Email,
			b.Phone,
			model.EventType(b.EventType).Label(),
			b.EventDate,
			b.EventTime,
			b.CreatedAt.UTC().Format("2006-01-02 15:04"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header row: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
