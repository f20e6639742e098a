package booking

import "math"

type PriceCalculator interface {
	Calculate(pricePerHour int64, slot TimeSlot) (Money, error)
}

// HourlyPriceCalculator bills every started hour at the room's hourly rate.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) Calculate(pricePerHour int64, slot TimeSlot) (Money, error) {
	hours := slot.BillableHours()
	if pricePerHour > 0 && hours > math.MaxInt64/pricePerHour {
		return Money{}, ErrPriceOutOfRange
	}
	return NewMoney(hours * pricePerHour), nil
}
