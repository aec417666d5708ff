package hearth

import "fmt"

// Weather is the closed set of weather/time states the surrounding screen
// can hand to a Scene. The snow layer only cares whether the value reports
// Snowing; every value additionally selects a sky/floor palette.
type Weather uint8

const (
	SunnyDay    Weather = iota // clear sky, full sunlight
	SunnyNight                 // clear night sky
	CloudyDay                  // overcast, muted sunlight
	CloudyNight                // overcast night
	SnowDay                    // snowfall over a pale day sky
	SnowNight                  // snowfall at night
)

// weatherNames maps each Weather to its canonical string form.
var weatherNames = [...]string{
	SunnyDay:    "sunny-day",
	SunnyNight:  "sunny-night",
	CloudyDay:   "cloudy-day",
	CloudyNight: "cloudy-night",
	SnowDay:     "snow-day",
	SnowNight:   "snow-night",
}

// String returns the canonical name, e.g. "snow-night".
func (w Weather) String() string {
	if int(w) < len(weatherNames) {
		return weatherNames[w]
	}
	return fmt.Sprintf("weather(%d)", uint8(w))
}

// ParseWeather converts a canonical name back to a Weather value.
func ParseWeather(s string) (Weather, error) {
	for i, name := range weatherNames {
		if s == name {
			return Weather(i), nil
		}
	}
	return SunnyDay, fmt.Errorf("unknown weather %q", s)
}

// Snowing reports whether the snow layer is visible in this weather.
func (w Weather) Snowing() bool {
	return w == SnowDay || w == SnowNight
}

// Night reports whether this is a night-time state.
func (w Weather) Night() bool {
	return w == SunnyNight || w == CloudyNight || w == SnowNight
}

// Cloudy reports whether the cloud layer is visible in this weather.
// Snowfall always comes with cloud cover.
func (w Weather) Cloudy() bool {
	return w == CloudyDay || w == CloudyNight || w.Snowing()
}
