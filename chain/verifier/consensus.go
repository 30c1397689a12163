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

// ConsensusVerifier delegates header validation to the active epoch's PoW
// strategy. A *chain.ConsensusVerifyError returned by the strategy is
// downcast and rewrapped as a VerifyBlockFailedError tagged Consensus; any
// other error (an opaque engine failure) propagates unchanged.
type ConsensusVerifier struct{}

var _ BlockVerifier = ConsensusVerifier{}

func (ConsensusVerifier) VerifyHeader(reader chain.ChainReader, header *types.Header) error {
	epoch, err := reader.Epoch()
	if err != nil {
		return err
	}
	if err := epoch.Strategy().Verify(reader, header); err != nil {
		if cve, ok := err.(*chain.ConsensusVerifyError); ok {
			return chain.NewVerifyBlockFailedError(chain.CategoryConsensus, "%s", cve.Error())
		}
		return err
	}
	return nil
}

func (ConsensusVerifier) VerifyUncles(reader chain.ChainReader, uncles []*types.Header, header *types.Header) error {
	return verifyUnclesDefault(reader, uncles, header, ConsensusVerifier{}.VerifyHeader)
}
