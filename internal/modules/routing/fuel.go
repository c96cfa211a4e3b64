package routing

const (
	milesPerMeter  = 0.000621371
	milesPerGallon = 25.0
	pricePerGallon = 3.50
)

// EstimateFuelCost approximates the fuel cost in USD of driving meters.
// Efficiency and price are fixed assumptions.
func EstimateFuelCost(meters int) float64 {
	return float64(meters) * milesPerMeter / milesPerGallon * pricePerGallon
}
