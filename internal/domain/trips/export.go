package trips

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-fonts/liberation/liberationsansbold"
	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/jung-kurt/gofpdf"
)

// reportFont is a Unicode TrueType family; employee names are not limited
// to Latin script.
const reportFont = "LiberationSans"

// WriteEmployeeReportPDF renders the statistics block and the yearly trip
// counts of one employee as an A4 PDF.
func WriteEmployeeReportPDF(w io.Writer, overview EmployeeOverview) error {
	stat := overview.Stat

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(reportFont, "", liberationsansregular.TTF)
	pdf.AddUTF8FontFromBytes(reportFont, "B", liberationsansbold.TTF)
	pdf.SetTitle(fmt.Sprintf("Business trips: %s", stat.Name), true)
	pdf.AddPage()
	pdf.SetFont(reportFont, "B", 16)
	pdf.Cell(0, 10, stat.Name)
	pdf.Ln(12)

	pdf.SetFont(reportFont, "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Trips: %d", stat.TripCount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Money spent: %d", stat.MoneySpent))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average trips per year: %.2f", stat.AvgTripCount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average money per year: %.2f", stat.AvgMoneySpent))
	pdf.Ln(12)

	pdf.SetFont(reportFont, "B", 12)
	pdf.CellFormat(40, 8, "Year", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Trips", "1", 1, "R", false, 0, "")
	pdf.SetFont(reportFont, "", 12)
	for _, p := range overview.TripsByYear {
		pdf.CellFormat(40, 8, strconv.Itoa(p.X), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, strconv.Itoa(p.Y), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write employee report: %w", err)
	}
	return nil
}
