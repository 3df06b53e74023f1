package domain

// Weather mirrors the subset of the OpenWeatherMap current-weather payload
// that the dashboard renders. Temperatures are Fahrenheit, wind is mph.
type Weather struct {
	Name       string             `json:"name"`
	Main       WeatherMain        `json:"main"`
	Conditions []WeatherCondition `json:"weather"`
	Wind       Wind               `json:"wind"`
}

type WeatherMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}
