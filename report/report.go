package report

import(
	"fmt"
	"time"

	"github.com/skypies/util/histogram"

	"github.com/skypies/coviddb"
)

type ReportFunc func(*Report, *coviddb.Dataset) error
type SummarizeFunc func(*Report)

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Output state
	RowsText    [][]string
	HeadersText []string

	I         map[string]int
	F         map[string]float64
	S         map[string]string
	H         histogram.Histogram

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		RowsText: [][]string{},
		HeadersText: []string{},
		Stats: histogram.NewSet(5000000),  // maxval, in micros; 5s covers a slow report
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof(s) }
func (r *Report)Debug(s string) { r.Debugf(s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(row []string) {
	r.RowsText = append(r.RowsText, row)
}

// RankingDate resolves the options' date: the zero value means "the last
// date in the snapshot", which is how the published rankings are pinned.
func (r *Report)RankingDate(ds *coviddb.Dataset) time.Time {
	if r.Options.Date.IsZero() { return ds.LastDate() }
	return r.Options.Date
}

// Process runs the report function over the dataset, then the summarizer.
func (r *Report)Process(ds *coviddb.Dataset) error {
	if r.Func == nil {
		return fmt.Errorf("report '%s' has no func", r.Name)
	}

	tStart := time.Now()
	if err := r.Func(r, ds); err != nil { return err }
	r.Stats.RecordValue("report", time.Since(tStart).Nanoseconds()/1000)

	if r.SummarizeFunc != nil {
		r.SummarizeFunc(r)
	}
	return nil
}
