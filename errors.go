package cutpool

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cutpool/pool"
)

var (
	// ErrPoolFull is returned when the pool cannot take another object.
	ErrPoolFull = errors.New("pool full")

	// ErrPoolClosed is returned for operations on a closed workspace.
	ErrPoolClosed = errors.New("pool closed")
)

// translateError maps subpackage errors onto the root sentinels. The
// original error stays reachable via errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pool.ErrPoolFull) {
		return fmt.Errorf("%w: %w", ErrPoolFull, err)
	}
	if errors.Is(err, pool.ErrPoolClosed) {
		return fmt.Errorf("%w: %w", ErrPoolClosed, err)
	}

	return err
}
