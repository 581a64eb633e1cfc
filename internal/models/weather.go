package models

// WeatherData is the parsed result of one provider query. Values are built once
// per successful lookup and not modified afterwards.
type WeatherData struct {
	Location    string  `json:"location"`
	Conditions  string  `json:"conditions"`
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
	Pressure    float64 `json:"pressure"`    // hPa
	WindSpeed   float64 `json:"windSpeed"`   // m/s
}
