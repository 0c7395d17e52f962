package roster

import "errors"

var ErrDateRangeTooLarge = errors.New("date range must not exceed one year")
