package client

import (
	"encoding/json"
	"fmt"

	"github.com/kjstillabower/ornithologist/internal/models"
)

// openWeatherResponse uses pointers so that absent keys can be told apart from
// zero values.
type openWeatherResponse struct {
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
		Pressure *float64 `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Name *string `json:"name"`
}

// ParseResponse decodes a current-weather body. Every field is required; a
// missing, null or mistyped key yields ErrMalformedResponse rather than a zero
// value. Only the first weather entry's description is kept.
func ParseResponse(body []byte) (models.WeatherData, error) {
	var apiResp openWeatherResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return models.WeatherData{}, fmt.Errorf("%w: parse response: %w", ErrMalformedResponse, err)
	}

	switch {
	case len(apiResp.Weather) == 0:
		return models.WeatherData{}, missing("weather")
	case apiResp.Weather[0].Description == nil:
		return models.WeatherData{}, missing("weather[0].description")
	case apiResp.Main == nil:
		return models.WeatherData{}, missing("main")
	case apiResp.Main.Temp == nil:
		return models.WeatherData{}, missing("main.temp")
	case apiResp.Main.Humidity == nil:
		return models.WeatherData{}, missing("main.humidity")
	case apiResp.Main.Pressure == nil:
		return models.WeatherData{}, missing("main.pressure")
	case apiResp.Wind == nil:
		return models.WeatherData{}, missing("wind")
	case apiResp.Wind.Speed == nil:
		return models.WeatherData{}, missing("wind.speed")
	case apiResp.Name == nil:
		return models.WeatherData{}, missing("name")
	}

	return models.WeatherData{
		Location:    *apiResp.Name,
		Conditions:  *apiResp.Weather[0].Description,
		Temperature: *apiResp.Main.Temp,
		Humidity:    *apiResp.Main.Humidity,
		Pressure:    *apiResp.Main.Pressure,
		WindSpeed:   *apiResp.Wind.Speed,
	}, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s is missing or empty", ErrMalformedResponse, field)
}
