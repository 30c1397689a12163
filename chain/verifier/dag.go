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

// DagVerifier validates multi-parent DAG-mode blocks: every declared parent
// must be known to the DAG block store, the selected parent (ParentHash)
// must be among the declared parents, and final header validation still
// delegates to ConsensusVerifier.
type DagVerifier struct{}

var _ BlockVerifier = DagVerifier{}

func (DagVerifier) VerifyHeader(reader chain.ChainReader, header *types.Header) error {
	parentsHash := header.ParentsHash
	dedup := dedupHashes(parentsHash)

	if len(dedup) == 0 || len(parentsHash) != len(dedup) {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid parents_hash in dag verifier %v for a dag block %d", parentsHash, header.Number)
	}

	if !containsHash(dedup, header.ParentHash) {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid block: parent %s might not exist.", header.ParentHash)
	}
	info, err := reader.GetBlockInfo(&header.ParentHash)
	if err != nil {
		return err
	}
	if info == nil {
		return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid block: parent %s might not exist.", header.ParentHash)
	}

	for _, parentHash := range dedup {
		has, err := reader.HasDagBlock(parentHash)
		if err != nil {
			return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "failed to get the block: %s's parent: %s from db, error: %v", header.Id(), parentHash, err)
		}
		if !has {
			return chain.NewVerifyBlockFailedError(chain.CategoryHeader, "Invalid block: parent %s might not exist.", parentHash)
		}
	}

	return (ConsensusVerifier{}).VerifyHeader(reader, header)
}

// VerifyUncles is a no-op: uncles are not meaningful once multiple parents
// are allowed. The original source carries disabled duplicate/existence
// checks for DAG uncles behind a commented-out block referencing an
// undefined header.is_dag(); that logic is intentionally never ported here.
// Mirror the disabled behavior; do not re-enable it speculatively.
func (DagVerifier) VerifyUncles(chain.ChainReader, []*types.Header, *types.Header) error {
	return nil
}

func dedupHashes(hashes []common.Hash) []common.Hash {
	seen := make(map[common.Hash]struct{}, len(hashes))
	out := make([]common.Hash, 0, len(hashes))
	for _, h := range hashes {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}

func containsHash(hashes []common.Hash, target common.Hash) bool {
	for _, h := range hashes {
		if h == target {
			return true
		}
	}
	return false
}
