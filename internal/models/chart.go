package models

// Point is a single chart coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series represents a named, plot-ready line
type Series struct {
	Name   string  `json:"name"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Points []Point `json:"points"`
}
