package curve

import "github.com/koldar/phdtester-go/funcdict"

// AddCurve appends a new function to the dictionary, computed point-wise
// from the existing ones by F and stored under CurveName. index is the
// point's position along the shared abscissa.
type AddCurve struct {
	CurveName string
	F         func(index int, x float64, fd *funcdict.FunctionsDict) float64
}

func (AddCurve) RequireSameXAxis() bool { return false }
func (AddCurve) Name() string           { return "AddCurve" }

func (c AddCurve) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := fd.Clone()
	for i, x := range fd.XAxisOrdered() {
		out.Update(c.CurveName, x, c.F(i, x, fd))
	}
	return Unknown, out, nil
}
