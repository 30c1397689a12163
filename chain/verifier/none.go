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
	"github.com/probeum/go-probeum/core/types"
)

// NoneVerifier accepts everything. Reserved for test fixtures and bootstrap
// flows that need to insert blocks without a chain to check them against.
type NoneVerifier struct{}

var _ BlockVerifier = NoneVerifier{}

func (NoneVerifier) VerifyHeader(chain.ChainReader, *types.Header) error { return nil }

func (NoneVerifier) VerifyUncles(chain.ChainReader, []*types.Header, *types.Header) error {
	return nil
}

// VerifyBlockNone mirrors the Rust source's override of verify_block itself:
// NoneVerifier skips every check, including the body hash and blacklist
// checks VerifyBlock would otherwise run for every other variant.
func VerifyBlockNone(block *types.Block) *VerifiedBlock {
	return newVerifiedBlock(block)
}
