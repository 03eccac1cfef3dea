package dom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnitType is the measurement of a Unit value.
type UnitType int

const (
	UnitPoint UnitType = iota
	UnitCentimeter
	UnitInch
	UnitMillimeter
	UnitPica
)

var unitSuffixes = map[UnitType]string{
	UnitPoint:      "pt",
	UnitCentimeter: "cm",
	UnitInch:       "in",
	UnitMillimeter: "mm",
	UnitPica:       "pc",
}

var pointsPer = map[UnitType]float64{
	UnitPoint:      1,
	UnitCentimeter: 72 / 2.54,
	UnitInch:       72,
	UnitMillimeter: 72 / 25.4,
	UnitPica:       12,
}

// Unit is a length with its measurement.
type Unit struct {
	Value float64
	Type  UnitType
}

// FromPoint, FromCentimeter, FromInch and FromMillimeter build units.
func FromPoint(v float64) Unit      { return Unit{Value: v, Type: UnitPoint} }
func FromCentimeter(v float64) Unit { return Unit{Value: v, Type: UnitCentimeter} }
func FromInch(v float64) Unit       { return Unit{Value: v, Type: UnitInch} }
func FromMillimeter(v float64) Unit { return Unit{Value: v, Type: UnitMillimeter} }

// Points returns the length in points.
func (u Unit) Points() float64 {
	return u.Value * pointsPer[u.Type]
}

// Equal reports whether two units denote the same length.
func (u Unit) Equal(o Unit) bool {
	return math.Abs(u.Points()-o.Points()) < 1e-6
}

// Neg returns the unit with its sign flipped.
func (u Unit) Neg() Unit {
	return Unit{Value: -u.Value, Type: u.Type}
}

func (u Unit) String() string {
	return strconv.FormatFloat(u.Value, 'f', -1, 64) + unitSuffixes[u.Type]
}

// ParseUnitType maps a unit suffix to its type. The empty suffix is points.
func ParseUnitType(suffix string) (UnitType, bool) {
	switch strings.ToLower(suffix) {
	case "", "pt":
		return UnitPoint, true
	case "cm":
		return UnitCentimeter, true
	case "in":
		return UnitInch, true
	case "mm":
		return UnitMillimeter, true
	case "pc":
		return UnitPica, true
	}
	return UnitPoint, false
}

// ParseUnit parses text such as "2cm", "-1.5 in" or "10".
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			end--
			continue
		}
		break
	}

	number := strings.TrimSpace(s[:end])
	if number == "" {
		return Unit{}, fmt.Errorf("invalid unit %q", s)
	}
	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Unit{}, fmt.Errorf("invalid unit %q: %w", s, err)
	}
	t, ok := ParseUnitType(s[end:])
	if !ok {
		return Unit{}, fmt.Errorf("invalid unit %q: unknown suffix %q", s, s[end:])
	}
	return Unit{Value: v, Type: t}, nil
}
