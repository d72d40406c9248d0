package parse

import (
	"errors"
	"fmt"
)

// ErrParse is the ancestor of every parse failure; errors.Is(err, ErrParse)
// holds for all of the category sentinels below.
var (
	ErrParse = errors.New("parse error")

	ErrRootKind       = fmt.Errorf("%w: root node kind does not match document", ErrParse)
	ErrUnmatchedClose = fmt.Errorf("%w: end of object or array without beginning", ErrParse)
	ErrCloseMismatch  = fmt.Errorf("%w: mismatched end and beginning of object or array", ErrParse)
	ErrNameNotString  = fmt.Errorf("%w: a name has to be a string", ErrParse)
	ErrUnknownToken   = fmt.Errorf("%w: unknown token", ErrParse)
	ErrChildTarget    = fmt.Errorf("%w: can only add elements to objects and arrays", ErrParse)
	ErrUnclosed       = fmt.Errorf("%w: input ends inside an unclosed object or array", ErrParse)
)
