// SPDX-License-Identifier: MIT
// File: family.go
// Role: The closed set of BHOSLIB families and their naming scheme.

package bhoslib

import (
	"fmt"
	"strconv"
	"strings"
)

// Family identifies one BHOSLIB family frb<Variables>-<Domain>.
type Family struct {
	Variables int `validate:"gt=0"`
	Domain    int `validate:"gt=1"`
}

// The published families.
var (
	Frb30  = Family{Variables: 30, Domain: 15}
	Frb35  = Family{Variables: 35, Domain: 17}
	Frb40  = Family{Variables: 40, Domain: 19}
	Frb45  = Family{Variables: 45, Domain: 21}
	Frb50  = Family{Variables: 50, Domain: 23}
	Frb53  = Family{Variables: 53, Domain: 24}
	Frb56  = Family{Variables: 56, Domain: 25}
	Frb59  = Family{Variables: 59, Domain: 26}
	Frb100 = Family{Variables: 100, Domain: 40}
)

var families = []Family{Frb30, Frb35, Frb40, Frb45, Frb50, Frb53, Frb56, Frb59, Frb100}

// Families returns every known family in ascending size.
func Families() []Family {
	return append([]Family(nil), families...)
}

// InstancesPerFamily is the number of published instances per family.
const InstancesPerFamily = 5

// Name returns "frb<Variables>-<Domain>", e.g. "frb30-15".
func (f Family) Name() string {
	return "frb" + strconv.Itoa(f.Variables) + "-" + strconv.Itoa(f.Domain)
}

// String implements fmt.Stringer.
func (f Family) String() string { return f.Name() }

// Location returns the directory holding the family, e.g. "bhoslib/frb30-15-mis".
func (f Family) Location() string {
	return "bhoslib/" + f.Name() + "-mis"
}

// Filename returns the instance file name, e.g. "frb30-15-1.mis".
func (f Family) Filename(instance int) string {
	return f.Name() + "-" + strconv.Itoa(instance) + ".mis"
}

// Nodes returns the node count of every instance: Variables·Domain.
func (f Family) Nodes() int { return f.Variables * f.Domain }

// SolutionSize returns the size of the planted independent set.
func (f Family) SolutionSize() int { return f.Variables }

// known reports whether f is one of the published families.
func (f Family) known() bool {
	for _, k := range families {
		if k == f {
			return true
		}
	}

	return false
}

// Lookup resolves a family by full name ("frb30-15") or by its variable
// count alone ("30", "frb30").
//
// Errors:
//   - ErrUnknownFamily: no published family matches.
func Lookup(name string) (Family, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "frb")
	key = strings.TrimSuffix(key, "-mis")
	for _, f := range families {
		full := strconv.Itoa(f.Variables) + "-" + strconv.Itoa(f.Domain)
		if key == full || key == strconv.Itoa(f.Variables) {
			return f, nil
		}
	}

	return Family{}, fmt.Errorf("%q: %w", name, ErrUnknownFamily)
}
