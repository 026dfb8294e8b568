package util

import "time"

var (
	IstLocation  = loadIst()
	outputLayout = "2006-01-02 15:04:05"
)

// Tickertape is an Indian-market API; snapshot timestamps are reported
// in IST regardless of server locale.
func loadIst() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

func NowIst() string {
	return time.Now().In(IstLocation).Format(outputLayout)
}
