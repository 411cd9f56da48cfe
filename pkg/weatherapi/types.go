package weatherapi

// Location identifies the resolved place for a weather reading.
type Location struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Condition is the textual weather condition.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// Current is the current-conditions snapshot.
type Current struct {
	TempC       float64   `json:"temp_c"`
	TempF       float64   `json:"temp_f"`
	Condition   Condition `json:"condition"`
	Humidity    int       `json:"humidity"`
	WindKph     float64   `json:"wind_kph"`
	WindDir     string    `json:"wind_dir"`
	FeelslikeC  float64   `json:"feelslike_c"`
	UV          float64   `json:"uv"`
	VisKm       float64   `json:"vis_km"`
	LastUpdated string    `json:"last_updated"`
}

// CurrentResponse is the /current.json payload.
type CurrentResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Day aggregates one forecast day.
type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	Condition         Condition `json:"condition"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
}

// ForecastDay is one dated entry in a forecast.
type ForecastDay struct {
	Date string `json:"date"`
	Day  Day    `json:"day"`
}

// ForecastResponse is the /forecast.json payload.
type ForecastResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// SearchResult is one /search.json match.
type SearchResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
