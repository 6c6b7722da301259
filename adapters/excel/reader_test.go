package excel

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commissions.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGridFromExcel(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Month", "Customer", "Rep"},
		{"July 2025", "Acme", "Mata"},
	})

	grid, err := NewDataReader(path).Grid(context.Background())
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}

	want := [][]string{
		{"Month", "Customer", "Rep"},
		{"July 2025", "Acme", "Mata"},
	}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("grid = %v, want %v", grid, want)
	}
}

func TestGridFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commissions.csv")
	csv := "Month,Customer,Rep\n July 2025 ,Acme,Mata\nAugust 2025,Globex\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	grid, err := NewDataReader(path).Grid(context.Background())
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}

	// Cells are trimmed; ragged rows are tolerated.
	want := [][]string{
		{"Month", "Customer", "Rep"},
		{"July 2025", "Acme", "Mata"},
		{"August 2025", "Globex"},
	}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("grid = %v, want %v", grid, want)
	}
}

func TestGridHeaderOnlyIsNotAFault(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Month", "Customer", "Rep"},
	})

	grid, err := NewDataReader(path).Grid(context.Background())
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if len(grid) != 1 {
		t.Errorf("expected header row only, got %v", grid)
	}
}

func TestGridMissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.xlsx")).Grid(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGridEmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewDataReader(path).Grid(context.Background())
	if err == nil {
		t.Fatal("expected error for table with no header row")
	}
}
