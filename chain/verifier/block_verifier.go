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
	mapset "github.com/deckarep/golang-set"

	"github.com/probeum/go-probeum/chain"
	"github.com/probeum/go-probeum/core/types"
	"github.com/probeum/go-probeum/log"
)

// BlockVerifier is the contract every strategy variant implements. VerifyBlock
// composes the four checks in fixed order: blacklist, header, body hash,
// uncles. VerifyUncles has a shared default (verifyUnclesDefault) every
// strategy but None and Dag reuse unchanged.
type BlockVerifier interface {
	// VerifyHeader checks header against this strategy's rules, given a
	// read-only view of the chain it extends.
	VerifyHeader(reader chain.ChainReader, header *types.Header) error

	// VerifyUncles checks uncles admissibility against header and reader.
	VerifyUncles(reader chain.ChainReader, uncles []*types.Header, header *types.Header) error
}

// blacklisted is the AddressFilter VerifyBlock consults. Defaults to
// accepting everyone; set it with SetBlacklist for deployments that filter
// senders.
var blacklisted AddressFilter = noneBlacklist{}

// SetBlacklist installs the AddressFilter VerifyBlock consults for the
// blacklisted-sender check. Not safe to call concurrently with VerifyBlock.
func SetBlacklist(filter AddressFilter) {
	if filter == nil {
		filter = noneBlacklist{}
	}
	blacklisted = filter
}

// VerifyBlock runs the full strategy policy against block: blacklisted
// senders, header rules, body hash integrity, then uncle admissibility, in
// that fixed order, short-circuiting on the first failure. On success it
// returns a VerifiedBlock wrapping block unchanged.
func VerifyBlock(v BlockVerifier, reader chain.ChainReader, block *types.Block) (*VerifiedBlock, error) {
	header := block.Header()

	if err := verifyBlacklistedTxns(blacklisted, block); err != nil {
		return nil, err
	}
	if err := v.VerifyHeader(reader, header); err != nil {
		return nil, err
	}
	if err := VerifyBodyHash(block); err != nil {
		return nil, err
	}
	if err := v.VerifyUncles(reader, block.Uncles(), header); err != nil {
		return nil, err
	}
	return newVerifiedBlock(block), nil
}

// headerVerifyFunc checks a single header against chain state. Strategies
// pass their own VerifyHeader method value so verifyUnclesDefault reuses the
// enclosing strategy's header rules when recursing into a forked reader.
type headerVerifyFunc func(reader chain.ChainReader, header *types.Header) error

// verifyUnclesDefault is the uncle-admissibility algorithm shared by Basic,
// Consensus and Full. DAG and None override it.
func verifyUnclesDefault(reader chain.ChainReader, uncles []*types.Header, header *types.Header, verifyHeader headerVerifyFunc) error {
	epoch, err := reader.Epoch()
	if err != nil {
		return err
	}

	// epoch's last block's uncles must be empty. The message below names it
	// "first block of epoch" even though the predicate fires on the epoch's
	// LAST block; preserved as-is.
	if header.Number == epoch.EndBlockNumber {
		if len(uncles) != 0 {
			return chain.NewVerifyBlockFailedError(chain.CategoryUncle, "first block of epoch's uncles must be empty.")
		}
	}

	if len(uncles) == 0 {
		return nil
	}

	if uint64(len(uncles)) > epoch.MaxUnclesPerBlock {
		return chain.NewVerifyBlockFailedError(chain.CategoryUncle, "too many uncles %d in block %s", len(uncles), header.Id())
	}

	seen := mapset.NewSet()
	for _, uncle := range uncles {
		uncleID := uncle.Id()

		if seen.Contains(uncleID) {
			return chain.NewVerifyBlockFailedError(chain.CategoryUncle, "repeat uncle %s in current block %s", uncleID, header.Id())
		}

		if uncle.Number >= header.Number {
			return chain.NewVerifyBlockFailedError(chain.CategoryUncle, "uncle block number bigger than or equal to current block, uncle block number is %d, current block number is %d", uncle.Number, header.Number)
		}

		ok, err := canBeUncle(reader, uncle)
		if err != nil {
			return err
		}
		if !ok {
			return chain.NewVerifyBlockFailedError(chain.CategoryUncle, "invalid block: block %s can not be uncle.", uncleID)
		}

		log.Debug("verify_uncle", "number", header.Number, "hash", header.Id(), "uncle_number", uncle.Number, "uncle_hash", uncleID)

		// uncle's parent existing in current chain is checked in
		// canBeUncle, so this fork should succeed.
		uncleBranch, err := reader.Fork(uncle.ParentHash)
		if err != nil {
			return err
		}
		if err := verifyHeader(uncleBranch, uncle); err != nil {
			return err
		}

		seen.Add(uncleID)
	}
	return nil
}

func canBeUncle(reader chain.ChainReader, header *types.Header) (bool, error) {
	epoch, err := reader.Epoch()
	if err != nil {
		return false, err
	}
	if !(epoch.StartBlockNumber <= header.Number && header.Number < epoch.EndBlockNumber) {
		return false, nil
	}

	hasParent, err := reader.ExistBlock(header.ParentHash)
	if err != nil {
		return false, err
	}
	if !hasParent {
		return false, nil
	}

	onChain, err := reader.ExistBlock(header.Id())
	if err != nil {
		return false, err
	}
	if onChain {
		return false, nil
	}

	epochUncles, err := reader.EpochUncles()
	if err != nil {
		return false, err
	}
	if _, recorded := epochUncles[header.Id()]; recorded {
		return false, nil
	}

	current, err := reader.CurrentHeader()
	if err != nil {
		return false, err
	}
	return header.Number <= current.Number, nil
}
