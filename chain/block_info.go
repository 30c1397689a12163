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
	"math/big"

	"github.com/probeum/go-probeum/common"
)

// AccumulatorInfo is a commitment over the sequence of block ids appended so
// far: root is the current Merkle Mountain Range root, FrozenSubtreeRoots are
// its completed-subtree roots, and NumLeaves/NumNodes count appended blocks
// and allocated nodes respectively.
type AccumulatorInfo struct {
	AccumulatorRoot    common.Hash
	FrozenSubtreeRoots []common.Hash
	NumLeaves          uint64
	NumNodes           uint64
}

// GetAccumulatorRoot returns the commitment root of the accumulator.
func (a *AccumulatorInfo) GetAccumulatorRoot() common.Hash { return a.AccumulatorRoot }

// BlockInfo pairs a block id with the chain-wide aggregates accumulated up to
// and including that block: total difficulty plus the transaction and block
// accumulator snapshots.
type BlockInfo struct {
	BlockId               common.Hash
	TotalDifficulty       *big.Int
	TxnAccumulatorInfo    AccumulatorInfo
	BlockAccumulatorInfo  AccumulatorInfo
}

// GetBlockAccumulatorInfo returns the block accumulator snapshot.
func (bi *BlockInfo) GetBlockAccumulatorInfo() *AccumulatorInfo { return &bi.BlockAccumulatorInfo }

// GetTxnAccumulatorInfo returns the transaction accumulator snapshot.
func (bi *BlockInfo) GetTxnAccumulatorInfo() *AccumulatorInfo { return &bi.TxnAccumulatorInfo }
