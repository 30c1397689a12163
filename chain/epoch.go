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

// Package chain defines the read-only chain contract (ChainReader) and the
// consensus-parameter types (Epoch, BlockInfo, ChainStatus) the block
// verification core is built against. It knows nothing about storage engines
// or networking; it is the seam between them and the verifier.
package chain

import (
	"github.com/probeum/go-probeum/core/types"
)

// DefaultMaxUnclesPerBlock is the protocol's default uncle allowance per
// block. NewEpoch does not apply it; the allowance is always passed in.
const DefaultMaxUnclesPerBlock = 100

// Strategy is the consensus engine an epoch delegates header verification to.
// Concrete implementations live in the consensus package; the verifier core
// only ever calls through this interface.
type Strategy interface {
	// Verify checks header against the consensus rules of the strategy,
	// given a read-only view of the chain it extends.
	Verify(reader ChainReader, header *types.Header) error
}

// Epoch describes the consensus parameters active over the height range
// (StartBlockNumber, EndBlockNumber].
type Epoch struct {
	StartBlockNumber  uint64
	EndBlockNumber    uint64
	MaxUnclesPerBlock uint64
	BlockGasLimit     uint64
	strategy          Strategy
}

// NewEpoch builds an epoch window with the given consensus strategy.
func NewEpoch(start, end, maxUncles, gasLimit uint64, strategy Strategy) *Epoch {
	return &Epoch{
		StartBlockNumber:  start,
		EndBlockNumber:    end,
		MaxUnclesPerBlock: maxUncles,
		BlockGasLimit:     gasLimit,
		strategy:          strategy,
	}
}

// Strategy returns the consensus engine active for this epoch.
func (e *Epoch) Strategy() Strategy { return e.strategy }

// Contains reports whether number falls within (Start, End].
func (e *Epoch) Contains(number uint64) bool {
	return number > e.StartBlockNumber && number <= e.EndBlockNumber
}
