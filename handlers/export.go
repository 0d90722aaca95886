package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/models"
)

// bookingExportHeaders are the dashboard columns, exported in order.
var bookingExportHeaders = []string{
	"Booking No", "Customer", "Line", "POL", "POD", "FPOD",
	"Vessel", "Voyage", "Equipment", "Volume",
	"SI Cut-off", "VGM Cut-off",
	"VGM", "SI", "First Print", "Corrections", "Liner Inv", "SOB", "ISF", "DG",
	"BL Type", "BL No", "SOB Date", "Remarks",
}

// bookingExportRows renders one row per entry, columns matching
// bookingExportHeaders.
func bookingExportRows(entries []models.BookingEntry) [][]interface{} {
	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		var equipment []string
		for _, item := range e.EquipmentItems() {
			equipment = append(equipment, fmt.Sprintf("%d x %s", item.Quantity, item.Type))
		}
		rows = append(rows, []interface{}{
			e.BookingNo, e.Customer, e.Line, e.POL, e.POD, e.FPOD,
			e.Vessel, e.Voyage, strings.Join(equipment, ", "), e.Volume,
			e.SICutoff, e.VGMCutoff,
			yesNo(e.VGMFiled), yesNo(e.SIFiled), yesNo(e.FirstPrinted),
			yesNo(e.CorrectionsFinalised), yesNo(e.LinerInvoice),
			yesNo(e.SOB), yesNo(e.ISFSent), yesNo(e.FinalDG),
			e.BLType, e.BLNo, e.SOBDate, e.Remarks,
		})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// ExportBookingsToExcel exports the filtered booking view, one row per
// record.
// GET /api/v1/bookings/export
func ExportBookingsToExcel(w http.ResponseWriter, r *http.Request) {
	query := applyBookingFilters(config.DB.Model(&models.BookingEntry{}), r)

	var entries []models.BookingEntry
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	excelFile, err := createBookingsWorkbook(entries)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func createBookingsWorkbook(entries []models.BookingEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Bookings"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	for colIdx, header := range bookingExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		col := columnIndexToLetter(colIdx + 1)
		f.SetColWidth(sheetName, col, col, 16)
	}

	for rowIdx, row := range bookingExportRows(entries) {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}
