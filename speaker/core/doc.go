// Package core holds what every part of the loudspeaker model shares: the
// physical constants of air, the error taxonomy and the evaluation-grid
// options.
//
// All formulas in this module raise a [DomainError] instead of letting
// NaN or ±Inf escape into results:
//
//	if err := d.SetFs(0); errors.Is(err, core.ErrDomain) {
//		var de *core.DomainError
//		errors.As(err, &de)
//		fmt.Println(de.Formula)
//	}
package core
