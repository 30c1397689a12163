// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package chain

import (
	"errors"
	"fmt"
)

// Category tags a VerifyBlockFailedError by the field group its failing check
// belongs to. Categories are never converted into one another except the
// explicit consensus downcast ConsensusVerifier performs.
type Category string

const (
	CategoryHeader    Category = "header"
	CategoryBody      Category = "body"
	CategoryUncle     Category = "uncle"
	CategoryConsensus Category = "consensus"
)

// VerifyBlockFailedError is the one error shape every strategy produces when
// a candidate block is rejected. It is distinct from an opaque reader error:
// the former means "this block is invalid", the latter means "local state
// could not be read".
type VerifyBlockFailedError struct {
	Category Category
	Message  string
}

func (e *VerifyBlockFailedError) Error() string {
	return fmt.Sprintf("verify block failed (%s): %s", e.Category, e.Message)
}

// NewVerifyBlockFailedError builds a VerifyBlockFailedError, formatting
// Message the same way fmt.Sprintf does.
func NewVerifyBlockFailedError(category Category, format string, args ...interface{}) *VerifyBlockFailedError {
	return &VerifyBlockFailedError{Category: category, Message: fmt.Sprintf(format, args...)}
}

// AsVerifyBlockFailed reports whether err is, or wraps, a
// VerifyBlockFailedError, returning it when so.
func AsVerifyBlockFailed(err error) (*VerifyBlockFailedError, bool) {
	var vb *VerifyBlockFailedError
	ok := errors.As(err, &vb)
	return vb, ok
}

// ConsensusVerifyError marks an error returned by a consensus Strategy as a
// block-rejection rather than an opaque engine failure. ConsensusVerifier
// downcasts to this type before wrapping it as VerifyBlockFailedError with
// CategoryConsensus; any other error a Strategy returns is propagated
// unchanged, since it signals the engine itself misbehaved rather than the
// candidate being invalid.
type ConsensusVerifyError struct {
	Err error
}

func (e *ConsensusVerifyError) Error() string { return e.Err.Error() }
func (e *ConsensusVerifyError) Unwrap() error { return e.Err }
