package config

import (
	"fmt"
	"os"
	"strconv"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const DATE_PARSE_FORMAT = "2006-01-02"

var API_ENV = os.Getenv("API_ENV")

// Hotel holds the business settings that used to live in a mutable
// settings record. Loaded once at startup and passed explicitly to the
// reservation and billing code instead of being read from global state.
type Hotel struct {
	Name         string
	Email        string
	Phone        string
	Currency     string
	TaxRate      float64
	CheckInTime  string
	CheckOutTime string
}

const defaultTaxRate = 0.0875

func HotelFromEnv() Hotel {
	taxRate := defaultTaxRate
	if v := os.Getenv("HOTEL_TAX_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err == nil {
			taxRate = parsed
		}
	}
	cfg := Hotel{
		Name:         os.Getenv("HOTEL_NAME"),
		Email:        os.Getenv("HOTEL_EMAIL"),
		Phone:        os.Getenv("HOTEL_PHONE"),
		Currency:     os.Getenv("HOTEL_CURRENCY"),
		TaxRate:      taxRate,
		CheckInTime:  os.Getenv("HOTEL_CHECK_IN_TIME"),
		CheckOutTime: os.Getenv("HOTEL_CHECK_OUT_TIME"),
	}
	if cfg.Name == "" {
		cfg.Name = "Hotel Management System"
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.CheckInTime == "" {
		cfg.CheckInTime = "15:00"
	}
	if cfg.CheckOutTime == "" {
		cfg.CheckOutTime = "11:00"
	}
	return cfg
}
