package models

import (
	"encoding/json"
	"testing"
)

func TestEmptyChargeGrid(t *testing.T) {
	grid := EmptyChargeGrid()
	if len(grid) != len(ChargeHeads) {
		t.Fatalf("grid has %d rows, want %d", len(grid), len(ChargeHeads))
	}
	for _, head := range ChargeHeads {
		row, ok := grid[head]
		if !ok {
			t.Errorf("grid missing head %q", head)
			continue
		}
		if len(row) != len(EquipmentColumns) {
			t.Errorf("head %q has %d columns, want %d", head, len(row), len(EquipmentColumns))
		}
	}
}

func TestSheetGridDropsUnknownCells(t *testing.T) {
	raw, _ := json.Marshal(ChargeGrid{
		"THC": {
			"20GP": {Amount: "4500", Currency: "INR"},
		},
		"Demolished Head": {
			"20GP": {Amount: "999", Currency: "USD"},
		},
		"BL Fee": {
			"53FT": {Amount: "100", Currency: "USD"},
		},
	})
	sheet := LocalChargeSheet{Cells: raw}
	grid := sheet.Grid()

	if got := grid["THC"]["20GP"]; got.Amount != "4500" || got.Currency != "INR" {
		t.Errorf("THC/20GP = %+v", got)
	}
	if _, ok := grid["Demolished Head"]; ok {
		t.Error("unknown charge head should be dropped")
	}
	if got := grid["BL Fee"]["40HC"]; got.Amount != "" {
		t.Errorf("untouched cell should stay blank, got %+v", got)
	}
	if _, ok := grid["BL Fee"]["53FT"]; ok {
		t.Error("unknown equipment column should be dropped")
	}
	// Full template shape is preserved regardless of stored content.
	if len(grid) != len(ChargeHeads) {
		t.Errorf("grid has %d rows, want %d", len(grid), len(ChargeHeads))
	}
}
