package dto

import "todolist-api/pkg/datetime"

// TimezoneResponse is the clock diagnostic payload
type TimezoneResponse struct {
	Timezone     string                 `json:"timezone"`
	Locale       string                 `json:"locale"`
	Now          datetime.FormattedDate `json:"now"`
	Today        datetime.FormattedDate `json:"today"`
	UTCOffset    string                 `json:"utc_offset"`
	ServerUTCNow string                 `json:"server_utc_now"`
}
