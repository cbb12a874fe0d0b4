package readfiles

import (
	"fmt"
	"os"

	"github.com/daniellowtw/matlab"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ReadBurgersMat reads a MATLAB v5 solution file holding three arrays:
// x (Nx x 1 positions), t (Nt x 1 times) and usol (Nx x Nt solution values).
// usol is stored column major, per MATLAB convention.
func ReadBurgersMat(filename string, verbose bool) (X, T []float64, U *mat.Dense, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading Burgers solution file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = errors.Wrapf(err, "unable to open solution file %q", filename)
		return
	}
	defer file.Close()

	mf, err := matlab.NewFileFromReader(file)
	if err != nil {
		err = errors.Wrapf(err, "unable to parse %q as a MATLAB v5 file", filename)
		return
	}
	if X, err = readFloatVar(mf, "x", filename); err != nil {
		return
	}
	if T, err = readFloatVar(mf, "t", filename); err != nil {
		return
	}
	usol, err := readFloatVar(mf, "usol", filename)
	if err != nil {
		return
	}
	Nx, Nt := len(X), len(T)
	if len(usol) != Nx*Nt {
		err = errors.Errorf("var \"usol\" in %q has %d values, want Nx*Nt = %d*%d = %d",
			filename, len(usol), Nx, Nt, Nx*Nt)
		return
	}
	U = ReshapeColumnMajor(usol, Nx, Nt)
	if verbose {
		fmt.Printf("Nx = %d, Nt = %d\n", Nx, Nt)
	}
	return
}

func readFloatVar(mf *matlab.File, name, filename string) (vals []float64, err error) {
	v, found := mf.GetVar(name)
	if !found {
		err = errors.Errorf("var %q not found in MATLAB file %q", name, filename)
		return
	}
	return FloatValues(v.Value())
}

// FloatValues coerces the boxed values produced by the matlab reader into
// float64. Solution files written by older tools store singles.
func FloatValues(boxed []interface{}) (vals []float64, err error) {
	vals = make([]float64, len(boxed))
	for i, b := range boxed {
		switch val := b.(type) {
		case float64:
			vals[i] = val
		case float32:
			vals[i] = float64(val)
		case int32:
			vals[i] = float64(val)
		case int16:
			vals[i] = float64(val)
		case uint8:
			vals[i] = float64(val)
		default:
			err = errors.Errorf("unsupported MATLAB element type %T", b)
			return
		}
	}
	return
}

// ReshapeColumnMajor builds the Nx x Nt dense matrix from MATLAB column major
// storage, element (i,j) at flat index i + j*Nx.
func ReshapeColumnMajor(flat []float64, Nx, Nt int) (U *mat.Dense) {
	U = mat.NewDense(Nx, Nt, nil)
	for j := 0; j < Nt; j++ {
		for i := 0; i < Nx; i++ {
			U.Set(i, j, flat[i+j*Nx])
		}
	}
	return
}
