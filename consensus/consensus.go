// Copyright 2017 The go-probeum Authors
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

// Package consensus collects the errors used by the
// concrete chain.Strategy implementations living in its subpackages.
package consensus

import "errors"

// Various error messages a Strategy may return. ConsensusVerifier only
// downcasts to *chain.ConsensusVerifyError for the VerifyBlockFailedError
// wrap; any other error propagates unchanged as an opaque engine failure.
var (
	ErrInvalidDifficulty = errors.New("consensus: non-positive difficulty")
	ErrInvalidSealData   = errors.New("consensus: malformed seal data")
	ErrInvalidPoW        = errors.New("consensus: invalid proof-of-work")
)
