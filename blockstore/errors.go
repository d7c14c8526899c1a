package blockstore

import "errors"

// ErrFormat indicates a file that is not a well-formed block matrix file:
// wrong magic or version, truncated header/index, or an index entry
// pointing outside the file.
var ErrFormat = errors.New("blockstore: malformed block matrix file")
