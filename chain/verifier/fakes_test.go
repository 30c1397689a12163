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

// fakeTimeService is a TimeService with a fixed clock.
type fakeTimeService struct{ now uint64 }

func (f fakeTimeService) NowMillis() uint64 { return f.now }

// acceptStrategy is a chain.Strategy that accepts everything.
type acceptStrategy struct{}

func (acceptStrategy) Verify(chain.ChainReader, *types.Header) error { return nil }

// rejectStrategy is a chain.Strategy that always fails with a
// ConsensusVerifyError, to exercise ConsensusVerifier's downcast.
type rejectStrategy struct{ err error }

func (r rejectStrategy) Verify(chain.ChainReader, *types.Header) error {
	return &chain.ConsensusVerifyError{Err: r.err}
}

// fakeReader is a minimal in-memory chain.ChainReader for tests. byHeader
// indexes every known header by id so Fork can rebuild a historical view.
type fakeReader struct {
	head         *types.Header
	headInfo     *chain.BlockInfo
	epoch        *chain.Epoch
	epochUncles  map[common.Hash]struct{}
	existBlocks  map[common.Hash]bool
	dagBlocks    map[common.Hash]bool
	blockInfos   map[common.Hash]*chain.BlockInfo
	byHeader     map[common.Hash]*types.Header
	chainType    types.ChainType
	time         fakeTimeService
}

func newFakeReader(head *types.Header, headInfo *chain.BlockInfo, epoch *chain.Epoch) *fakeReader {
	return &fakeReader{
		head:        head,
		headInfo:    headInfo,
		epoch:       epoch,
		epochUncles: map[common.Hash]struct{}{},
		existBlocks: map[common.Hash]bool{head.Id(): true},
		dagBlocks:   map[common.Hash]bool{},
		blockInfos:  map[common.Hash]*chain.BlockInfo{head.Id(): headInfo},
		byHeader:    map[common.Hash]*types.Header{head.Id(): head},
		chainType:   types.ChainTypeSingle,
		time:        fakeTimeService{now: head.Time},
	}
}

func (r *fakeReader) Status() (*chain.ChainStatus, error) {
	return &chain.ChainStatus{HeadHeader: r.head, HeadInfo: r.headInfo}, nil
}

func (r *fakeReader) CurrentHeader() (*types.Header, error) { return r.head, nil }

func (r *fakeReader) Epoch() (*chain.Epoch, error) { return r.epoch, nil }

func (r *fakeReader) EpochUncles() (map[common.Hash]struct{}, error) { return r.epochUncles, nil }

func (r *fakeReader) ExistBlock(hash common.Hash) (bool, error) { return r.existBlocks[hash], nil }

func (r *fakeReader) HasDagBlock(hash common.Hash) (bool, error) { return r.dagBlocks[hash], nil }

func (r *fakeReader) GetBlockInfo(hash *common.Hash) (*chain.BlockInfo, error) {
	if hash == nil {
		return r.headInfo, nil
	}
	return r.blockInfos[*hash], nil
}

func (r *fakeReader) Fork(parentHash common.Hash) (chain.ChainReader, error) {
	parent, ok := r.byHeader[parentHash]
	if !ok {
		parent = &types.Header{}
	}
	forked := *r
	forked.head = parent
	forked.headInfo = r.blockInfos[parentHash]
	return &forked, nil
}

func (r *fakeReader) CheckChainType() (types.ChainType, error) { return r.chainType, nil }

func (r *fakeReader) TimeService() chain.TimeService { return r.time }

func (r *fakeReader) addAncestor(h *types.Header, info *chain.BlockInfo) {
	r.existBlocks[h.Id()] = true
	r.blockInfos[h.Id()] = info
	r.byHeader[h.Id()] = h
}
