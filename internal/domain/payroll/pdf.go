package payroll

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF writes a one-page payslip document to w.
func RenderPDF(w io.Writer, p Payslip, employeeName string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", time.Month(p.Month), p.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leave balance: %d days", p.LeaveBalance))
	pdf.Ln(10)

	s := p.SalaryDetails
	lines := []struct {
		label  string
		amount int64
	}{
		{"Base salary", s.Base},
		{"Bonus", s.Bonus},
		{"Provident fund", -s.PFDeduction},
		{"Final payable", s.FinalPayable},
	}
	for _, line := range lines {
		pdf.CellFormat(80, 8, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, formatAmount(line.amount), "", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

// formatAmount renders minor units with two decimal places.
func formatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
