package report

// All reports share this same options struct. Some options apply to all
// reports, and some only to one kind. They can be built directly (CLI) or
// parsed out of the http.Request (viewer).

import(
	"fmt"
	"net/http"
	"time"

	"github.com/skypies/util/widget"
)

type Options struct {
	Name     string
	Country  string    // which country the single-country reports look at
	TopN     int       // how many countries the ranked reports keep
	Date     time.Time // ranking date; zero means the snapshot's last date

	ReportLogLevel
}

func FormValueReportOptions(r *http.Request) (Options, error) {
	if r.FormValue("rep") == "" {
		return Options{}, fmt.Errorf("url arg 'rep' missing (no report specified)")
	}

	opt := Options{
		Name: r.FormValue("rep"),
		Country: r.FormValue("country"),
		TopN: widget.FormValueIntWithDefault(r, "n", 10),
	}

	if str := r.FormValue("date"); str != "" {
		t,err := time.Parse("2006-01-02", str)
		if err != nil { return Options{}, fmt.Errorf("bad date '%s': %v", str, err) }
		opt.Date = t
	}

	if opt.TopN < 1 {
		return Options{}, fmt.Errorf("n must be positive, not %d", opt.TopN)
	}

	return opt, nil
}

// A bare minimum of args, so viewer links can reproduce a report.
func (r *Report)ToCGIArgs() string {
	str := fmt.Sprintf("rep=%s&n=%d", r.Options.Name, r.Options.TopN)
	if r.Options.Country != "" {
		str += "&country=" + r.Options.Country
	}
	if !r.Options.Date.IsZero() {
		str += "&date=" + r.Options.Date.Format("2006-01-02")
	}
	return str
}
