package gostack

import "errors"

// ErrorOutofMemory pool cannot grow or reserve beyond its configured
// "capacity" setting.
var ErrorOutofMemory = errors.New("gostack.outofmemory")

// ErrorInvalidIndex accessor was given the sentinel index or an index
// outside the currently allocated range.
var ErrorInvalidIndex = errors.New("gostack.invalidindex")

// ErrorEmptyStack pop was attempted on an empty stack handle.
var ErrorEmptyStack = errors.New("gostack.emptystack")

// ErrorCorruption free-list accounting does not match node storage,
// returned by Validate.
var ErrorCorruption = errors.New("gostack.corruption")
