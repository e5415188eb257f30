package ballistic

import "errors"

// ErrInvalidParameter indicates a launch parameter outside its valid range.
var ErrInvalidParameter = errors.New("ballistic: invalid parameter")
