// Scatterplot synthesizes noisy linear data sets and draws them as
// scatter plots in the style of R's ggplot2, rendered by gonum/plot.
//
//
// Data
//
// A SampleSet is an ordered slice of (x, y) pairs produced by Generate:
//      x_i = uniform in [XMin, XMax)
//      y_i = Intercept + Slope*x_i + uniform noise in [NoiseMin, NoiseMax)
// All x values are drawn first, then all noise values. With the default
// Config (100 samples, seed 42, generator mt19937) the values are
// identical to the numpy script
//      np.random.seed(42)
//      X = 2 * np.random.rand(100, 1)
//      y = 4 + 3 * X + np.random.rand(100, 1)
//
//
// Plots
//
// A Plot consists of Layers. Each layer has a Geom (points, straight
// lines, grid) and optionally a Stat which computes the geom's
// parameters from the data, e.g. StatLinReg which fits intercept and
// slope by the normal equation. Styling is done through AesMapping:
//      "color": "red"         a named or #rrggbb[aa] color
//      "shape": "circle"      point shape
//      "size":  "3"           point radius or line width in points
//      "alpha": "0.5"         opacity in [0,1]
//      "linetype": "dashed"   line type
// Unset aesthetics fall back to the plot's Theme and then DefaultTheme.
//
package scatterplot
