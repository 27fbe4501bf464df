package scatterplot

// Theme holds the default styles of the different geoms.
type Theme struct {
	PointStyle, LineStyle, GridStyle AesMapping
}

var DefaultTheme = Theme{
	PointStyle: AesMapping{
		"size":  "3",
		"shape": "solid-circle",
		"color": "steelblue",
		"alpha": "1",
	},
	LineStyle: AesMapping{
		"size":     "1.5",
		"linetype": "solid",
		"color":    "red",
		"alpha":    "1",
	},
	GridStyle: AesMapping{
		"size":     "0.5",
		"linetype": "solid",
		"color":    "gray80",
		"alpha":    "1",
	},
}
