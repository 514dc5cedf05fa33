package quantity

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func parseNumber[N Number](s string) (N, error) {
	t := reflect.TypeFor[N]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrParse)
		}
		return N(f), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrParse)
		}
		return N(u), nil
	default:
		i, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrParse)
		}
		return N(i), nil
	}
}

// parseBody parses the text between prefix and suffix into n numbers.
func parseBody[N Number](body string, n int, bracketed bool) ([]N, error) {
	if bracketed {
		inner, ok := strings.CutPrefix(body, "[")
		if ok {
			inner, ok = strings.CutSuffix(inner, "]")
		}
		if !ok {
			return nil, fmt.Errorf("%q: missing brackets: %w", body, ErrParse)
		}
		body = inner
	}
	fields := strings.Split(body, " ")
	if len(fields) != n {
		return nil, fmt.Errorf("%q: want %d components, got %d: %w", body, n, len(fields), ErrParse)
	}
	out := make([]N, n)
	for i, f := range fields {
		v, err := parseNumber[N](f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseStatic[N Number](s, prefix string, unit *UnitDef, n int, bracketed bool) ([]N, error) {
	body, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return nil, fmt.Errorf("%q: missing %q prefix: %w", s, prefix, ErrParse)
	}
	body, ok = strings.CutSuffix(body, unit.suffix)
	if !ok {
		return nil, fmt.Errorf("%q: missing unit suffix %q: %w", s, unit.suffix, ErrParse)
	}
	return parseBody[N](body, n, bracketed)
}

// ParseVector1 parses the String form of a Vector1 of U.
func ParseVector1[U Unit, N Number](s string) (Vector1[U, N], error) {
	vals, err := parseStatic[N](s, "", defOf[U](), 1, false)
	if err != nil {
		return Vector1[U, N]{}, err
	}
	return Vector1[U, N]{v: vals[0]}, nil
}

// ParsePoint1 parses the String form of a Point1 of U.
func ParsePoint1[U Unit, N Number](s string) (Point1[U, N], error) {
	vals, err := parseStatic[N](s, "", defOf[U](), 1, true)
	if err != nil {
		return Point1[U, N]{}, err
	}
	return Point1[U, N]{v: vals[0]}, nil
}

// ParseVector2 reads the form written by Vector2.String.
func ParseVector2[U Unit, N Number](s string) (Vector2[U, N], error) {
	vals, err := parseStatic[N](s, "", defOf[U](), 2, false)
	if err != nil {
		return Vector2[U, N]{}, err
	}
	return Vector2[U, N]{x: vals[0], y: vals[1]}, nil
}

// ParsePoint2 reads the form written by Point2.String.
func ParsePoint2[U Unit, N Number](s string) (Point2[U, N], error) {
	vals, err := parseStatic[N](s, "", defOf[U](), 2, true)
	if err != nil {
		return Point2[U, N]{}, err
	}
	return Point2[U, N]{x: vals[0], y: vals[1]}, nil
}

// ParseVector3 reads the form written by Vector3.String.
func ParseVector3[U Unit, N Number](s string) (Vector3[U, N], error) {
	vals, err := parseStatic[N](s, "", defOf[U](), 3, false)
	if err != nil {
		return Vector3[U, N]{}, err
	}
	return Vector3[U, N]{x: vals[0], y: vals[1], z: vals[2]}, nil
}

// ParsePoint3 reads the form written by Point3.String.
func ParsePoint3[U Unit, N Number](s string) (Point3[U, N], error) {
	vals, err := parseStatic[N](s, "", defOf[U](), 3, true)
	if err != nil {
		return Point3[U, N]{}, err
	}
	return Point3[U, N]{x: vals[0], y: vals[1], z: vals[2]}, nil
}

// ParseSignedAzimuth parses "S<num><suffix>". The value is folded into
// one turn like any other construction.
func ParseSignedAzimuth[A AngularUnit, N SignedNumber](s string) (SignedAzimuth[A, N], error) {
	vals, err := parseStatic[N](s, "S", defOf[A](), 1, false)
	if err != nil {
		return SignedAzimuth[A, N]{}, err
	}
	return NewSignedAzimuth[A](vals[0]), nil
}

// ParseUnsignedAzimuth parses "U<num><suffix>".
func ParseUnsignedAzimuth[A AngularUnit, N SignedNumber](s string) (UnsignedAzimuth[A, N], error) {
	vals, err := parseStatic[N](s, "U", defOf[A](), 1, false)
	if err != nil {
		return UnsignedAzimuth[A, N]{}, err
	}
	return NewUnsignedAzimuth[A](vals[0]), nil
}

// parseDynamic resolves the unit of a dynamic quantity from its suffix.
// Longer suffixes are tried first so " km" is not read as " m".
func parseDynamic[N Number](reg *Registry, s string, n int, bracketed bool) (*UnitDef, []N, error) {
	body, ok := strings.CutPrefix(s, dynPrefix)
	if !ok {
		return nil, nil, fmt.Errorf("%q: missing %q prefix: %w", s, dynPrefix, ErrParse)
	}
	var firstErr error
	for _, suffix := range reg.suffixesLongestFirst() {
		rest, ok := strings.CutSuffix(body, suffix)
		if !ok {
			continue
		}
		vals, err := parseBody[N](rest, n, bracketed)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		unit, err := reg.UnitBySuffix(suffix)
		if err != nil {
			return nil, nil, err
		}
		return unit, vals, nil
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}
	return nil, nil, fmt.Errorf("%q: no registered suffix: %w", s, ErrUnknownUnit)
}

// ParseDynVector1 parses the String form of a DynVector1, looking the
// unit up in reg.
func ParseDynVector1[N Number](reg *Registry, s string) (DynVector1[N], error) {
	u, vals, err := parseDynamic[N](reg, s, 1, false)
	if err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: u, v: vals[0]}, nil
}

// ParseDynPoint1 reads the form written by DynPoint1.String, resolving the suffix in reg.
func ParseDynPoint1[N Number](reg *Registry, s string) (DynPoint1[N], error) {
	u, vals, err := parseDynamic[N](reg, s, 1, true)
	if err != nil {
		return DynPoint1[N]{}, err
	}
	return DynPoint1[N]{unit: u, v: vals[0]}, nil
}

// ParseDynVector2 reads the form written by DynVector2.String, resolving the suffix in reg.
func ParseDynVector2[N Number](reg *Registry, s string) (DynVector2[N], error) {
	u, vals, err := parseDynamic[N](reg, s, 2, false)
	if err != nil {
		return DynVector2[N]{}, err
	}
	return DynVector2[N]{unit: u, x: vals[0], y: vals[1]}, nil
}

// ParseDynPoint2 reads the form written by DynPoint2.String, resolving the suffix in reg.
func ParseDynPoint2[N Number](reg *Registry, s string) (DynPoint2[N], error) {
	u, vals, err := parseDynamic[N](reg, s, 2, true)
	if err != nil {
		return DynPoint2[N]{}, err
	}
	return DynPoint2[N]{unit: u, x: vals[0], y: vals[1]}, nil
}

// ParseDynVector3 reads the form written by DynVector3.String, resolving the suffix in reg.
func ParseDynVector3[N Number](reg *Registry, s string) (DynVector3[N], error) {
	u, vals, err := parseDynamic[N](reg, s, 3, false)
	if err != nil {
		return DynVector3[N]{}, err
	}
	return DynVector3[N]{unit: u, x: vals[0], y: vals[1], z: vals[2]}, nil
}

// ParseDynPoint3 reads the form written by DynPoint3.String, resolving the suffix in reg.
func ParseDynPoint3[N Number](reg *Registry, s string) (DynPoint3[N], error) {
	u, vals, err := parseDynamic[N](reg, s, 3, true)
	if err != nil {
		return DynPoint3[N]{}, err
	}
	return DynPoint3[N]{unit: u, x: vals[0], y: vals[1], z: vals[2]}, nil
}
