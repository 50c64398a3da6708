package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		Location = time.FixedZone("JST", 9*60*60)
	}
}

// the portal records stamps in japan time regardless of where the
// client runs
func Now() time.Time {
	return time.Now().In(Location)
}
