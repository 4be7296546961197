// Package vehicle describes vehicles and cars.
package vehicle

import "fmt"

// Vehicle is immutable once constructed.
type Vehicle struct {
	make string
	year int
}

func New(make string, year int) Vehicle {
	return Vehicle{make: make, year: year}
}

// Info returns "Make: {make}, Year: {year}".
func (v Vehicle) Info() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.make, v.year)
}

// Car is a Vehicle with a model. Info is promoted from the embedded Vehicle.
type Car struct {
	Vehicle
	model string
}

func NewCar(make string, year int, model string) Car {
	return Car{
		Vehicle: New(make, year),
		model:   model,
	}
}

// Model returns "Model: {model}".
func (c Car) Model() string {
	return fmt.Sprintf("Model: %s", c.model)
}
