// Package sensor generates simulated wound-sensor readings. It stands in
// for the M5Stack device (two potentiometers and a photoresistor) that the
// WoundGuard pipeline normally reads over serial.
package sensor

// Nominal range for each simulated channel.
const (
	PHMin = 4.0
	PHMax = 7.0

	TempMin = 34.5
	TempMax = 38.0

	MoistureMin = 60
	MoistureMax = 90
)

// Reading is one simulated sensor triple. Values are already rounded to
// the precision the wire format carries.
type Reading struct {
	PH       float64 // wound pH, 1 decimal place
	TempC    float64 // skin temperature in Celsius, 1 decimal place
	Moisture int     // dressing moisture percentage
}
