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

// VerifyBodyHash recomputes hash(body) and fails if it differs from
// header.BodyHash. Requires no chain context.
func VerifyBodyHash(block *types.Block) error {
	bodyHash := block.Body().Hash()
	header := block.Header()
	if bodyHash != header.BodyHash {
		return chain.NewVerifyBlockFailedError(chain.CategoryBody, "verify block body hash mismatch, expect: %s, got: %s", header.BodyHash, bodyHash)
	}
	return nil
}
