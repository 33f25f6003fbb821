package handlers

import (
	"ulascansenturk/weather-widget/internal/weather"
)

type WeatherResponse struct {
	Report  weather.Report         `json:"report"`
	History []weather.HistoryEntry `json:"history"`
}

type HistoryResponse struct {
	History []weather.HistoryEntry `json:"history"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
