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

import "github.com/probeum/go-probeum/core/types"

// VerifiedBlock wraps a Block that has passed every check a strategy's
// VerifyBlock ran. There is no exported constructor: the only way to obtain
// one is to call VerifyBlock or VerifyBlockNone, so a VerifiedBlock value is
// itself proof the block was checked.
type VerifiedBlock struct {
	block *types.Block
}

func newVerifiedBlock(b *types.Block) *VerifiedBlock {
	return &VerifiedBlock{block: b}
}

// Block returns the verified block.
func (v *VerifiedBlock) Block() *types.Block { return v.block }
