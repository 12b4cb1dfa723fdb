package catalog

import "errors"

// ErrConfiguration is returned (wrapped) whenever catalog or profile data
// violates an invariant. It is fatal for a planning run: the data must be
// fixed before retrying. Check with errors.Is.
var ErrConfiguration = errors.New("catalog: invalid configuration")
