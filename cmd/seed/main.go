// Command seed writes a small sample commissions workbook: the expected
// header row plus rows covering the date and billing-cycle shapes the
// normalizer handles. Useful for local runs against a known sheet.
package main

import (
	"flag"
	"log"

	"github.com/xuri/excelize/v2"
)

func main() {
	out := flag.String("out", "commissions.xlsx", "output workbook path")
	flag.Parse()

	rows := [][]interface{}{
		{"Month", "Customer", "Rep", "Setup Fee", "Subscription Amount", "Billing Cycle"},
		{"July 2025", "Acme", "Mata", 100, 500, "6 month"},
		{"2025-08-04", "Globex", "Mata", 0, 1200, "Monthly"},
		{"Sep 2025", "Initech", "Mata", 250, 900, "2 Year"},
		{"August 2025", "Umbrella", "Smith", 0, 700, "Yearly"},
		{"", "Hooli", "Mata", 50, 0, "Monthly"},
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			log.Fatal(err)
		}
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d data rows)", *out, len(rows)-1)
}
