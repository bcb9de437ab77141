// Package families produces three-term recurrence coefficients for classical
// orthogonal polynomial families. Each family is a stateless strategy behind the
// Family interface, so quadrature and evaluation code never depend on which
// weight function produced a RecurrenceTable.
package families

import (
	"fmt"
	"strings"

	"github.com/notargets/gopoly/types"
)

type Family interface {
	Name() string
	// Recurrence returns exactly N pairs (a_n, b_n), n = 0..N-1.
	Recurrence(N int) (ab types.RecurrenceTable, err error)
}

type FamilyID uint8

const (
	JacobiFamily FamilyID = iota
	LegendreFamily
	ChebyshevFamily
	HermiteFamily
	LaguerreFamily
)

var familyNames = map[string]FamilyID{
	"jacobi":    JacobiFamily,
	"legendre":  LegendreFamily,
	"chebyshev": ChebyshevFamily,
	"hermite":   HermiteFamily,
	"laguerre":  LaguerreFamily,
}

func (id FamilyID) String() string {
	for name, fid := range familyNames {
		if fid == id {
			return name
		}
	}
	return fmt.Sprintf("FamilyID(%d)", id)
}

func NewFamilyID(name string) (id FamilyID, err error) {
	var ok bool
	if id, ok = familyNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown polynomial family %q: %w", name, types.ErrInvalidParameter)
	}
	return
}

// Params carries the weight exponents of every supported family; each family
// reads only the fields it needs.
type Params struct {
	Alpha, Beta float64 // Jacobi exponents, Alpha is also the Laguerre exponent
	Rho         float64 // Generalized Hermite exponent
}

func NewFamily(id FamilyID, p Params) (f Family, err error) {
	switch id {
	case JacobiFamily:
		f = Jacobi{Alpha: p.Alpha, Beta: p.Beta}
	case LegendreFamily:
		f = Legendre{}
	case ChebyshevFamily:
		f = Chebyshev{}
	case HermiteFamily:
		f = Hermite{Rho: p.Rho}
	case LaguerreFamily:
		f = Laguerre{Alpha: p.Alpha}
	default:
		err = fmt.Errorf("unknown polynomial family %v: %w", id, types.ErrInvalidParameter)
	}
	return
}

// NewFamilyByName resolves a configuration name like "jacobi" to its strategy.
func NewFamilyByName(name string, p Params) (f Family, err error) {
	var id FamilyID
	if id, err = NewFamilyID(name); err != nil {
		return
	}
	return NewFamily(id, p)
}

// Recurrence is the family-id entry point: params are read positionally as
// (alpha, beta) for Jacobi, (rho) for Hermite and (alpha) for Laguerre.
func Recurrence(id FamilyID, N int, params ...float64) (ab types.RecurrenceTable, err error) {
	var (
		p   Params
		f   Family
		get = func(i int) float64 {
			if i < len(params) {
				return params[i]
			}
			return 0
		}
	)
	switch id {
	case JacobiFamily:
		p.Alpha, p.Beta = get(0), get(1)
	case HermiteFamily:
		p.Rho = get(0)
	case LaguerreFamily:
		p.Alpha = get(0)
	}
	if f, err = NewFamily(id, p); err != nil {
		return
	}
	return f.Recurrence(N)
}

func checkN(name string, N int) (err error) {
	if N < 1 {
		err = fmt.Errorf("%s recurrence needs N >= 1, got %d: %w", name, N, types.ErrInvalidParameter)
	}
	return
}
