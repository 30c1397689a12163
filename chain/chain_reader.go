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
	"github.com/probeum/go-probeum/common"
	"github.com/probeum/go-probeum/core/types"
)

// TimeService is the node's view of wall-clock time, abstracted so tests can
// supply a deterministic clock.
type TimeService interface {
	NowMillis() uint64
}

// ChainReader is the read-only view of local chain state the verifier is
// built against. Every method is fallible: a non-nil error means local state
// could not be read, which is distinct from the candidate block being
// invalid.
type ChainReader interface {
	// Status returns the current head header and its recorded BlockInfo.
	Status() (*ChainStatus, error)

	// CurrentHeader returns the current chain head header.
	CurrentHeader() (*types.Header, error)

	// Epoch returns the consensus epoch active for the current head.
	Epoch() (*Epoch, error)

	// EpochUncles returns the uncle ids already recorded for the current
	// epoch, keyed by uncle id. Only used for membership tests.
	EpochUncles() (map[common.Hash]struct{}, error)

	// ExistBlock reports whether hash is known to the local chain (main
	// chain or a retained side branch).
	ExistBlock(hash common.Hash) (bool, error)

	// HasDagBlock reports whether hash is known to the DAG block store.
	HasDagBlock(hash common.Hash) (bool, error)

	// GetBlockInfo looks up the BlockInfo for hash, or for the head when
	// hash is nil.
	GetBlockInfo(hash *common.Hash) (*BlockInfo, error)

	// Fork returns a read-only view of the chain as it stood when
	// parentHash was its head. Used to recursively verify uncles against
	// historical epoch state.
	Fork(parentHash common.Hash) (ChainReader, error)

	// CheckChainType reports whether the chain is still single-parent or
	// has switched to DAG mode.
	CheckChainType() (types.ChainType, error)

	// TimeService returns the node's clock.
	TimeService() TimeService
}
