package kinms

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a configuration the pipeline cannot run with.
// Every validation failure wraps it, so callers test with errors.Is and
// read the message for the specific complaint.
var ErrInvalidConfig = errors.New("invalid model configuration")

func errConfigf(format string, args ...interface{}) error {
	args = append([]interface{}{ErrInvalidConfig}, args...)
	return fmt.Errorf("%w: "+format, args...)
}
