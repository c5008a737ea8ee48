// SPDX-License-Identifier: MIT

package rowmul

import "errors"

var (
	// ErrSpawnFailed reports that a worker could not be started. The whole
	// computation is aborted; there is no partial result.
	ErrSpawnFailed = errors.New("rowmul: worker spawn failed")

	// ErrWorkerFailed reports that a worker terminated abnormally (panicked or
	// returned an error) before completing its row.
	ErrWorkerFailed = errors.New("rowmul: worker failed")
)
