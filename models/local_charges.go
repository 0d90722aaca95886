package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Charge heads (grid rows) and equipment columns of a local-charge sheet.
// The desk fills a fixed 11x4 grid per (line, POL).
var ChargeHeads = []string{
	"THC",
	"BL Fee",
	"Seal Charges",
	"MUC",
	"Toll Charges",
	"EDI Fee",
	"Survey Charges",
	"DG Surcharge",
	"VGM Filing",
	"SI Amendment",
	"Container Maintenance",
}

var EquipmentColumns = []string{"20GP", "40GP", "40HC", "45HC"}

// ChargeCell is one amount in the grid, tagged with its own currency.
type ChargeCell struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ChargeGrid maps charge head -> equipment type -> cell.
type ChargeGrid map[string]map[string]ChargeCell

// LocalChargeSheet is the tariff grid for one (line, POL) pair,
// overwritten wholesale on save.
type LocalChargeSheet struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Line      string         `gorm:"not null;uniqueIndex:idx_charges_line_pol" json:"line"`
	POL       string         `gorm:"column:pol;not null;uniqueIndex:idx_charges_line_pol" json:"pol"`
	Cells     datatypes.JSON `gorm:"type:jsonb;not null" json:"cells"`
	UpdatedBy string         `json:"updatedBy"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Grid decodes the stored cells. Unknown heads or columns are dropped so
// a renamed charge head cannot resurrect stale amounts.
func (s *LocalChargeSheet) Grid() ChargeGrid {
	var raw ChargeGrid
	if len(s.Cells) > 0 {
		_ = json.Unmarshal(s.Cells, &raw)
	}
	grid := EmptyChargeGrid()
	for head, cols := range raw {
		row, ok := grid[head]
		if !ok {
			continue
		}
		for equip, cell := range cols {
			if _, ok := row[equip]; ok {
				row[equip] = cell
			}
		}
	}
	return grid
}

// EmptyChargeGrid returns a full grid with blank cells for every
// charge head and equipment column.
func EmptyChargeGrid() ChargeGrid {
	grid := make(ChargeGrid, len(ChargeHeads))
	for _, head := range ChargeHeads {
		row := make(map[string]ChargeCell, len(EquipmentColumns))
		for _, equip := range EquipmentColumns {
			row[equip] = ChargeCell{}
		}
		grid[head] = row
	}
	return grid
}
