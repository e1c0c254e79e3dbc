package autodiff

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Labels used by Inspect for nodes without a name.
const (
	dependentLabel   = "Dependent"
	independentLabel = "Independent"
)

// Inspect describes d(n)/d(wrt) on one line:
//
//	df/dx(x=2.0) = 11916.415801330368
//	No relation between f and y
func Inspect(n, wrt *Node) string {
	dep := n.name
	if dep == "" {
		dep = dependentLabel
	}
	ind := wrt.name
	if ind == "" {
		ind = independentLabel
	}

	d, ok := n.Grad(wrt)
	if !ok {
		return fmt.Sprintf("No relation between %s and %s", dep, ind)
	}
	return fmt.Sprintf("d%s/d%s(%s=%s) = %s", dep, ind, ind, formatValue(wrt.value), formatValue(d))
}

// formatValue returns the shortest representation of v that round-trips,
// always showing a fractional part ("2.0") and switching to exponent
// notation for very large or small magnitudes ("1e+16", "1e-05").
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	_, expPart, _ := strings.Cut(s, "e")
	if exp, err := strconv.Atoi(expPart); err == nil && (exp < -4 || exp >= 16) {
		return s
	}

	s = strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
