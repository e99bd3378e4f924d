package schema

// RawRecord is one upstream day as delivered by the data source. A nil
// counter means the source did not report it for that date.
type RawRecord struct {
	Date      string   `json:"date"`
	Cases     *float64 `json:"cases"`
	Deaths    *float64 `json:"deaths"`
	Recovered *float64 `json:"recovered"`
}
