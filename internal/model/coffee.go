package model

import "time"

// CoffeeOrder is the order slip collected by the barista agent. Field names in
// JSON match the order files the kiosk frontend reads.
type CoffeeOrder struct {
	DrinkType string    `json:"drinkType"`
	Size      string    `json:"size"`
	Milk      string    `json:"milk"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// StampTime fills Timestamp when the order has not been stamped yet.
func (c *CoffeeOrder) StampTime(t time.Time) {
	if c.Timestamp.IsZero() {
		c.Timestamp = t
	}
}

// Complete reports whether every required order field is filled.
func (c *CoffeeOrder) Complete() bool {
	return c.DrinkType != "" && c.Size != "" && c.Milk != "" && c.Name != ""
}
