package cp

// TrainStub is one entry of a station's train list. The upstream payload
// carries more fields; only the train number is consumed.
type TrainStub struct {
	TrainNumber int `json:"trainNumber"`
}

// StationCoordinate is one scraped station position. The final artifact keys
// these by station id.
type StationCoordinate struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
