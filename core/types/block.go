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

package types

import (
	"github.com/probeum/go-probeum/common"
)

// Block is a header paired with its body and, for single-parent chains, an
// optional list of uncle headers admissible under the current epoch.
type Block struct {
	header *Header
	body   *Body
	uncles []*Header
}

// NewBlock assembles a block from its parts. The header is copied so later
// mutation of the caller's header can't reach back into the block.
func NewBlock(header *Header, txs []*Transaction, uncles []*Header) *Block {
	b := &Block{
		header: CopyHeader(header),
		body:   &Body{Transactions: append(Transactions{}, txs...)},
	}
	if len(uncles) > 0 {
		b.uncles = make([]*Header, len(uncles))
		for i, u := range uncles {
			b.uncles[i] = CopyHeader(u)
		}
	}
	return b
}

func (b *Block) Header() *Header          { return CopyHeader(b.header) }
func (b *Block) Body() *Body              { return b.body }
func (b *Block) Transactions() Transactions { return b.body.Transactions }
func (b *Block) Uncles() []*Header        { return b.uncles }

// Id is the block's identifying hash, equal to its header's Id.
func (b *Block) Id() common.Hash { return b.header.Id() }
