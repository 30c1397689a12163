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

import "github.com/probeum/go-probeum/core/types"

// ChainStatus snapshots a chain's current head and the aggregates recorded
// for it.
type ChainStatus struct {
	HeadHeader *types.Header
	HeadInfo   *BlockInfo
}

// Head returns the current chain head header.
func (s *ChainStatus) Head() *types.Header { return s.HeadHeader }

// Info returns the BlockInfo recorded for the head.
func (s *ChainStatus) Info() *BlockInfo { return s.HeadInfo }

// StartupInfo records the chain branch(es) known at node startup: the main
// chain head plus any other branch heads retained for reorg purposes.
type StartupInfo struct {
	Main   types.Header
	Branches []types.Header
}

// GetMain returns the startup main-chain head.
func (s *StartupInfo) GetMain() *types.Header { return &s.Main }
