// Package pricing calculates cleaning cost estimates from the cleaning type,
// property type and area.
package pricing

import (
	"fmt"
	"math"
)

// CleaningType identifies the kind of cleaning the client requested.
type CleaningType string

// PropertyType identifies the kind of property to be cleaned.
type PropertyType string

const (
	CleaningMaintenance    CleaningType = "maintenance"
	CleaningDeep           CleaningType = "deep"
	CleaningPostRenovation CleaningType = "post_renovation"

	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
)

// Rates holds the tunable pricing parameters. Prices are in UAH per m².
type Rates struct {
	Maintenance     float64 `mapstructure:"maintenance"`
	Deep            float64 `mapstructure:"deep"`
	PostRenovation  float64 `mapstructure:"post_renovation"`
	HouseMultiplier float64 `mapstructure:"house_multiplier"`
}

// DefaultRates returns the rates the company currently charges.
func DefaultRates() Rates {
	return Rates{
		Maintenance:     50,
		Deep:            80,
		PostRenovation:  120,
		HouseMultiplier: 1.3,
	}
}

// Quote is the result of a price calculation.
type Quote struct {
	BasePricePerM2      float64
	AreaM2              float64
	PropertyMultiplier  float64
	PriceBeforeDiscount float64
	DiscountPercent     int
	DiscountAmount      float64
	FinalPrice          float64
}

// Calculator computes quotes for a fixed set of rates.
type Calculator struct {
	rates Rates
}

// NewCalculator returns a calculator using the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Quote calculates the price for one cleaning. Larger areas get a better
// rate: up to 50 m² full price, up to 100 m² 5% off, up to 150 m² 10% off,
// above that 15% off.
func (c *Calculator) Quote(cleaning CleaningType, property PropertyType, areaM2 float64) (Quote, error) {
	if areaM2 <= 0 {
		return Quote{}, fmt.Errorf("area must be positive, got %v", areaM2)
	}

	var base float64
	switch cleaning {
	case CleaningMaintenance:
		base = c.rates.Maintenance
	case CleaningDeep:
		base = c.rates.Deep
	case CleaningPostRenovation:
		base = c.rates.PostRenovation
	default:
		return Quote{}, fmt.Errorf("unknown cleaning type %q", cleaning)
	}

	var propertyMultiplier float64
	switch property {
	case PropertyApartment:
		propertyMultiplier = 1.0
	case PropertyHouse:
		propertyMultiplier = c.rates.HouseMultiplier
	default:
		return Quote{}, fmt.Errorf("unknown property type %q", property)
	}

	var discountPercent int
	switch {
	case areaM2 <= 50:
		discountPercent = 0
	case areaM2 <= 100:
		discountPercent = 5
	case areaM2 <= 150:
		discountPercent = 10
	default:
		discountPercent = 15
	}

	before := base * areaM2 * propertyMultiplier
	final := before * (1 - float64(discountPercent)/100)

	return Quote{
		BasePricePerM2:      round2(base),
		AreaM2:              round2(areaM2),
		PropertyMultiplier:  propertyMultiplier,
		PriceBeforeDiscount: round2(before),
		DiscountPercent:     discountPercent,
		DiscountAmount:      round2(before - final),
		FinalPrice:          round2(final),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DisplayName returns the Ukrainian label shown to users for a cleaning type.
func (t CleaningType) DisplayName() string {
	switch t {
	case CleaningMaintenance:
		return "Підтримуюче"
	case CleaningDeep:
		return "Генеральне"
	case CleaningPostRenovation:
		return "Після ремонту"
	default:
		return string(t)
	}
}

// DisplayName returns the Ukrainian label shown to users for a property type.
func (t PropertyType) DisplayName() string {
	switch t {
	case PropertyApartment:
		return "Квартира"
	case PropertyHouse:
		return "Будинок"
	default:
		return string(t)
	}
}
