package flights

import (
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

// FlightTime is an ISO 8601 timestamp as accepted on flight payloads.
// Seconds and the zone offset are optional; a value without an offset is
// read as UTC.
type FlightTime time.Time

var flightTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseFlightTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range flightTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON reports a bad value as *json.UnmarshalTypeError so the
// decoder attaches the field name.
func (t *FlightTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: "non-string", Type: reflect.TypeOf(*t)}
	}
	parsed, ok := parseFlightTime(s)
	if !ok {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: reflect.TypeOf(*t)}
	}
	*t = FlightTime(parsed)
	return nil
}

func (t FlightTime) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t FlightTime) Time() time.Time {
	return time.Time(t)
}
