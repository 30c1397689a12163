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

package verifier

import (
	"fmt"

	"github.com/probeum/go-probeum/chain"
	"github.com/probeum/go-probeum/core/types"
)

// BasicVerifier enforces the structural, temporal, epoch and accumulator
// rules a single-parent chain block must satisfy against the current head.
// It does not touch consensus (PoW) at all.
type BasicVerifier struct{}

var _ BlockVerifier = BasicVerifier{}

func (BasicVerifier) VerifyHeader(reader chain.ChainReader, header *types.Header) error {
	status, err := reader.Status()
	if err != nil {
		return err
	}
	current := status.Head()
	currentID := current.Id()

	expectNumber := saturatingAddUint64(current.Number, 1)
	if expectNumber != header.Number {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid block: Unexpect block number, expect:%d, got: %d.", expectNumber, header.Number)
	}

	if currentID != header.ParentHash {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid block: Parent id mismatch, expect:%s, got: %s, number:%d.", currentID, header.ParentHash, header.Number)
	}

	if header.Time <= current.Time {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid block: block timestamp too old, parent time:%d, block time: %d, number:%d.", current.Time, header.Time, header.Number)
	}

	now := reader.TimeService().NowMillis()
	if header.Time > saturatingAddUint64(types.ALLOWED_FUTURE_BLOCKTIME, now) {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid block: block timestamp too new, now:%d, block time:%d", now, header.Time)
	}

	epoch, err := reader.Epoch()
	if err != nil {
		return err
	}
	if !(header.Number > epoch.StartBlockNumber && header.Number <= epoch.EndBlockNumber) {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "block number is %d, epoch start number is %d, epoch end number is %d", header.Number, epoch.StartBlockNumber, epoch.EndBlockNumber)
	}

	if header.GasUsed > epoch.BlockGasLimit {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "invalid block: gas_used should not greater than block_gas_limit")
	}

	currentBlockInfo, err := reader.GetBlockInfo(&currentID)
	if err != nil {
		return err
	}
	if currentBlockInfo == nil {
		return fmt.Errorf("can not find block info by head id: %s", currentID)
	}
	if currentBlockInfo.GetBlockAccumulatorInfo().GetAccumulatorRoot() != header.BlockAccumulatorRoot {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Block accumulator root miss match %s : %s", currentBlockInfo.GetBlockAccumulatorInfo().GetAccumulatorRoot(), header.BlockAccumulatorRoot)
	}

	chainType, err := reader.CheckChainType()
	if err != nil {
		return err
	}
	if !(chainType == types.ChainTypeSingle && len(header.ParentsHash) == 0) {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Single chain block is invalid: number %d parents_hash len %d", header.Number, len(header.ParentsHash))
	}

	return nil
}

func (BasicVerifier) VerifyUncles(reader chain.ChainReader, uncles []*types.Header, header *types.Header) error {
	return verifyUnclesDefault(reader, uncles, header, BasicVerifier{}.VerifyHeader)
}

// saturatingAddUint64 adds a and b, clamping to math.MaxUint64 on overflow
// instead of wrapping.
func saturatingAddUint64(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}
