package commands

import (
	"errors"
	"fmt"

	"myfood/internal/pkg/errs"
)

// notFoundAs replaces a repository not-found error with the workflow kind.
// Any other error passes through untouched.
func notFoundAs(kind error, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return err
}
