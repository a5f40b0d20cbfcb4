// SPDX-License-Identifier: MIT

package instance

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported format name or file extension.
	ErrUnknownFormat = errors.New("instance: unknown format")

	// ErrInvalidInstance indicates an instance whose shape or entries are
	// inconsistent (ragged table, edge out of range, negative size).
	ErrInvalidInstance = errors.New("instance: invalid instance")
)
