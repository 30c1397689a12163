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
	"github.com/probeum/go-probeum/chain"
	"github.com/probeum/go-probeum/common"
	"github.com/probeum/go-probeum/core/types"
)

// AddressFilter decides whether an address is blacklisted from sending
// transactions at the given block height.
type AddressFilter interface {
	IsBlacklisted(addr common.Address, number uint64) bool
}

// StaticBlacklist is an AddressFilter over a fixed set of addresses that are
// blacklisted from a given height onward (0 meaning "from genesis").
type StaticBlacklist map[common.Address]uint64

func (b StaticBlacklist) IsBlacklisted(addr common.Address, number uint64) bool {
	from, ok := b[addr]
	return ok && number >= from
}

// noneBlacklist rejects nothing; used where no AddressFilter was configured.
type noneBlacklist struct{}

func (noneBlacklist) IsBlacklisted(common.Address, uint64) bool { return false }

// verifyBlacklistedTxns rejects block if any transaction's sender is
// blacklisted at block.Header().Number.
func verifyBlacklistedTxns(filter AddressFilter, block *types.Block) error {
	number := block.Header().Number
	for _, tx := range block.Transactions() {
		if filter.IsBlacklisted(tx.Sender(), number) {
			return chain.NewVerifyBlockFailedError(chain.CategoryBody, "sender %s is blacklisted at height %d", tx.Sender().Hex(), number)
		}
	}
	return nil
}
