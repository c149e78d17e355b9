package github

// CloneBucket is one time bucket of the clone traffic series.
// Timestamp is kept exactly as the API returned it.
type CloneBucket struct {
	Timestamp string `json:"timestamp"`
	Count     int    `json:"count"`
	Uniques   int    `json:"uniques"`
}

// TrafficRecord is the clone traffic summary for a repository.
type TrafficRecord struct {
	Count   int           `json:"count"`
	Uniques int           `json:"uniques"`
	Clones  []CloneBucket `json:"clones"`
}

// EmptyTraffic returns the zero-valued record used when no traffic is available.
func EmptyTraffic() TrafficRecord {
	return TrafficRecord{Clones: []CloneBucket{}}
}

// FetchStatus describes how a repository's traffic record was obtained.
type FetchStatus string

// Fetch status constants
const (
	StatusOK          FetchStatus = "ok"
	StatusUnavailable FetchStatus = "unavailable"
	StatusError       FetchStatus = "error"
)
