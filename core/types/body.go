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
	"github.com/probeum/go-probeum/rlp"
)

// Body is the non-header content of a block: its ordered transactions.
type Body struct {
	Transactions Transactions
}

// Hash returns the content hash a header's BodyHash field must match.
func (b *Body) Hash() common.Hash {
	enc, err := rlp.EncodeToBytes(b.Transactions)
	if err != nil {
		panic("types: failed to encode body: " + err.Error())
	}
	return common.BytesToHash(hash(enc))
}
