package curve

import "github.com/koldar/phdtester-go/funcdict"

// TransformX applies f to every x of every function, rekeying the point.
// Collisions between two distinct original x values mapping to the same new
// x (or a function simply losing one arm of its domain) may introduce gaps,
// so the resulting status is always Unknown.
type TransformX struct {
	F func(name string, x, y float64) float64
}

func (TransformX) RequireSameXAxis() bool { return false }
func (TransformX) Name() string           { return "TransformX" }

func (c TransformX) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := funcdict.New()
	for name, points := range fd.Items() {
		for _, p := range points {
			newX := c.F(name, p.X, p.Y)
			out.Update(name, newX, p.Y)
		}
	}
	return Unknown, out, nil
}

// TransformY applies f to every y of every function in place, keeping the x
// axis untouched.
type TransformY struct {
	F func(name string, x, y float64) float64
}

func (TransformY) RequireSameXAxis() bool { return false }
func (TransformY) Name() string           { return "TransformY" }

func (c TransformY) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	out := funcdict.New()
	for name, points := range fd.Items() {
		for _, p := range points {
			out.Update(name, p.X, c.F(name, p.X, p.Y))
		}
	}
	return Unaltered, out, nil
}
