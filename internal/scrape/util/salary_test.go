package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobscrape-engine/internal/jsonld"
)

func f64(v float64) *float64 { return &v }

func TestFormatSalaryRange(t *testing.T) {
	m := &jsonld.MonetaryAmount{
		Currency: "AUD",
		Value: &jsonld.QuantitativeValue{
			MinValue: f64(80000),
			MaxValue: f64(100000),
			UnitText: "YEAR",
		},
	}
	assert.Equal(t, "80,000 – 100,000 YEAR (AUD)", FormatSalary(m))
}

func TestFormatSalarySingleBound(t *testing.T) {
	m := &jsonld.MonetaryAmount{
		Value: &jsonld.QuantitativeValue{MinValue: f64(95000), UnitText: "YEAR"},
	}
	assert.Equal(t, "95,000 YEAR", FormatSalary(m))

	m = &jsonld.MonetaryAmount{
		Currency: "USD",
		Value:    &jsonld.QuantitativeValue{Value: f64(52.5), UnitText: "HOUR"},
	}
	assert.Equal(t, "52.50 HOUR (USD)", FormatSalary(m))
}

func TestFormatSalaryEmpty(t *testing.T) {
	assert.Equal(t, "", FormatSalary(nil))
	assert.Equal(t, "", FormatSalary(&jsonld.MonetaryAmount{Currency: "AUD"}))
	assert.Equal(t, "", FormatSalary(&jsonld.MonetaryAmount{Value: &jsonld.QuantitativeValue{UnitText: "YEAR"}}))
}

func TestFormatLocations(t *testing.T) {
	places := jsonld.Places{
		{Address: &jsonld.PostalAddress{Locality: "Sydney", Region: "NSW", Country: "AU"}},
		{Address: &jsonld.PostalAddress{Locality: "Sydney", Region: "NSW", Country: "AU"}},
		{Name: "Remote"},
	}
	assert.Equal(t, "Sydney, NSW, AU, Remote", FormatLocations(places))
	assert.Equal(t, "", FormatLocations(nil))
}

func TestFormatLocationsNameFallback(t *testing.T) {
	places := jsonld.Places{{Address: &jsonld.PostalAddress{}, Name: "  Melbourne  "}}
	assert.Equal(t, "Melbourne", FormatLocations(places))
}
