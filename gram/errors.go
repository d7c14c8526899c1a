// SPDX-License-Identifier: MIT

package gram

import "errors"

var (
	// ErrEmptyData indicates an input dataset with no points.
	ErrEmptyData = errors.New("gram: dataset must be non-empty")

	// ErrNilEvaluator indicates that a nil Evaluator was supplied.
	ErrNilEvaluator = errors.New("gram: evaluator is nil")
)
