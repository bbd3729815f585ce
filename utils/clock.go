package utils

import "time"

// The property runs on IST; every booking and billing timestamp is stored in
// this zone so that date filters on the dashboard line up with the hotel day.
var IST = time.FixedZone("IST", 5*3600+1800)

// ISTNow returns the current time in IST.
func ISTNow() time.Time {
	return time.Now().In(IST)
}

// ToIST converts any timestamp into the hotel's zone.
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}
