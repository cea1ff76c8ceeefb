// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/katalvlaran/linalg/internal/kernel"
)

// Component readers a host may implement. A host providing every reader the
// target dimension needs is read through its methods.
type (
	xReader interface{ X() float64 }
	yReader interface{ Y() float64 }
	zReader interface{ Z() float64 }
	wReader interface{ W() float64 }
)

// hostAttributes receives decoded host fields; nil marks a missing attribute.
type hostAttributes struct {
	X *float64 `mapstructure:"x"`
	Y *float64 `mapstructure:"y"`
	Z *float64 `mapstructure:"z"`
	W *float64 `mapstructure:"w"`
}

var componentNames = [...]string{"X", "Y", "Z", "W"}

// Wrap2D builds a read-only Vector2D from a host exposing X and Y.
//
// Accepted hosts, tried in order:
//   - values with X() float64 and Y() float64 methods;
//   - maps and structs carrying x/y keys or fields (case-insensitive),
//     decoded weakly so integer and numeric-string values widen to float64.
//
// The host is read once. A missing attribute is ErrMissingAttribute; every
// setter on the result fails with ErrWrapped.
func Wrap2D(host any) (Vector2D, error) {
	var v Vector2D
	err := wrap(v.c[:], host, opName(name2D, opWrap), Context2D)
	v.wrapped = err == nil

	return v, err
}

// Wrap3D is Wrap2D for hosts exposing X, Y and Z.
func Wrap3D(host any) (Vector3D, error) {
	var v Vector3D
	err := wrap(v.c[:], host, opName(name3D, opWrap), Context3D)
	v.wrapped = err == nil

	return v, err
}

// Wrap4D is Wrap2D for hosts exposing X, Y, Z and W.
func Wrap4D(host any) (Vector4D, error) {
	var v Vector4D
	err := wrap(v.c[:], host, opName(name4D, opWrap), Context4D)
	v.wrapped = err == nil

	return v, err
}

// wrap fills dst from host or leaves it untouched on error.
func wrap(dst []float64, host any, op, context string) error {
	if host == nil {
		return NewDimensionError(op, context, ErrUnsupportedOperand, "nil host")
	}
	vals, ok := readMethods(host, len(dst))
	if !ok {
		var err error
		if vals, err = decodeHost(host, len(dst), op, context); err != nil {
			return err
		}
	}
	kernel.Copy(dst, vals)

	return nil
}

func readMethods(host any, n int) ([]float64, bool) {
	x, okX := host.(xReader)
	y, okY := host.(yReader)
	if !okX || !okY {
		return nil, false
	}
	vals := []float64{x.X(), y.Y()}
	if n > 2 {
		z, ok := host.(zReader)
		if !ok {
			return nil, false
		}
		vals = append(vals, z.Z())
	}
	if n > 3 {
		w, ok := host.(wReader)
		if !ok {
			return nil, false
		}
		vals = append(vals, w.W())
	}

	return vals, true
}

func decodeHost(host any, n int, op, context string) ([]float64, error) {
	var attrs hostAttributes
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &attrs,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, NewDimensionError(op, context, ErrUnsupportedOperand, err.Error())
	}
	if err = dec.Decode(host); err != nil {
		return nil, NewDimensionError(op, context, ErrMissingAttribute, err.Error())
	}

	fields := [...]*float64{attrs.X, attrs.Y, attrs.Z, attrs.W}
	vals := make([]float64, n)
	for i := range vals {
		if fields[i] == nil {
			return nil, dimErrorf(op, context, ErrMissingAttribute, "no %s", componentNames[i])
		}
		vals[i] = *fields[i]
	}

	return vals, nil
}
