package engine

import (
	"strconv"
)

// Integer is an unsigned integer constant.
type Integer uint64

func (i Integer) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

// Vars returns nothing since an integer is ground.
func (i Integer) Vars() []Variable {
	return nil
}

// HasVariable always returns false.
func (i Integer) HasVariable(Variable) bool {
	return false
}

func (i Integer) appendVars(vs []Variable) []Variable {
	return vs
}
