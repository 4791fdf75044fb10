package curve

import "github.com/koldar/phdtester-go/funcdict"

// AbscissaStatus tags how a changer's output relates to its input's x axis.
type AbscissaStatus int

const (
	// SameX means every function is defined at every x of the shared
	// abscissa (no NaN cells), the condition Pipeline.Run also checks on
	// its input.
	SameX AbscissaStatus = iota
	// Unaltered is only legal when the changer added, removed, or re-keyed
	// no x value of any function. Pipeline.Run does not treat it as SameX:
	// a RequireSameXAxis stage entered with status Unaltered is rejected.
	Unaltered
	// Unknown means the changer may have introduced gaps (new NaNs) or
	// changed the x axis shape; downstream same-axis-requiring changers must
	// be preceded by a normalization stage.
	Unknown
)

func (s AbscissaStatus) String() string {
	switch s {
	case SameX:
		return "SAME_X"
	case Unaltered:
		return "UNALTERED"
	default:
		return "UNKNOWN"
	}
}

// Changer is one pipeline stage: given fd, it
// returns a possibly-new dictionary and the new status. Changers must not
// mutate fd in place — AlterCurves receives the dictionary it owns and may
// return it only if it made no changes.
type Changer interface {
	// RequireSameXAxis reports whether the pipeline must normalize the x
	// axis before entering this changer.
	RequireSameXAxis() bool
	// AlterCurves runs the stage.
	AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error)
	// Name identifies the stage in diagnostics (Pipeline.Run's errors).
	Name() string
}
