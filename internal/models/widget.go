package models

import "time"

// StockQuote is a cached, never-persisted quote for one ticker symbol.
// Fallback distinguishes the static zero-value sentinel from a real quote
// whose numbers happen to be zero.
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume,omitempty"`
	Open          float64 `json:"open,omitempty"`
	High          float64 `json:"high,omitempty"`
	Low           float64 `json:"low,omitempty"`
	Fallback      bool    `json:"fallback"`
}

// WeatherSnapshot is a cached, never-persisted weather observation.
type WeatherSnapshot struct {
	TemperatureF float64 `json:"temperatureF"`
	Condition    string  `json:"condition"`
	Icon         string  `json:"icon"`
	Humidity     float64 `json:"humidity"`
	WindMPH      float64 `json:"windMph"`
	Location     string  `json:"location"`
	Fallback     bool    `json:"fallback"`
}

// SportScore is a cached scoreboard entry for one game.
type SportScore struct {
	League    string    `json:"league"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	State     string    `json:"state"`
	StartTime time.Time `json:"startTime"`
	Fallback  bool      `json:"fallback"`
}
