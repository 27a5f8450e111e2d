// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	"fmt"

	"github.com/pkg/errors"
)

// SourceUnavailable is returned when a remote source can't be probed or opened:
// transport failure, non-2xx status, or a missing/invalid size declaration
type SourceUnavailable struct {
	Identifier string // Offending source identifier
	Err        error  // What went wrong
}

var _ error = (*SourceUnavailable)(nil) // ensure SourceUnavailable implements error

// Creates new SourceUnavailable error
func NewSourceUnavailable(identifier string, err error) *SourceUnavailable {
	return &SourceUnavailable{Identifier: identifier, Err: err}
}

func (this *SourceUnavailable) Error() string {
	return fmt.Sprintf("source unavailable: %s: %s", this.Identifier, this.Err)
}

func (this *SourceUnavailable) Unwrap() error {
	return this.Err
}

// Cause returns the underlying error, so errors.Cause walks through SourceUnavailable
func (this *SourceUnavailable) Cause() error {
	return this.Err
}

// Returns true if err is (or wraps) SourceUnavailable
func IsSourceUnavailable(err error) bool {
	var target *SourceUnavailable
	return errors.As(err, &target)
}
