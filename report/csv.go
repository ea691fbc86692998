package report

import(
	"encoding/csv"
	"io"
)

func (r *Report)OutputAsCSV(w io.Writer) {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write(r.HeadersText)
	for _,row := range r.RowsText {
		csvWriter.Write(row)
	}
	csvWriter.Flush()
}
