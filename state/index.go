// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/record"
)

// IDList - load an id list, empty if absent
func (s *State) IDList(key []byte) (record.IDList, error) {
	buffer := s.store.Get(key)
	if nil == buffer {
		return nil, nil
	}
	list, err := record.IDListFromBytes(buffer)
	if nil != err {
		return nil, corrupt("id list", key, err)
	}
	return list, nil
}

// store a list, removing the key once the list is empty
func (s *State) putIDList(key []byte, list record.IDList) {
	if 0 == len(list) {
		s.store.Delete(key)
		return
	}
	s.store.Put(key, list.Pack())
}

func (s *State) addToList(key []byte, id uint64) error {
	list, err := s.IDList(key)
	if nil != err {
		return err
	}
	if list.Contains(id) {
		return nil
	}
	s.putIDList(key, list.Add(id))
	return nil
}

func (s *State) removeFromList(key []byte, id uint64) error {
	list, err := s.IDList(key)
	if nil != err {
		return err
	}
	if !list.Contains(id) {
		return nil
	}
	s.putIDList(key, list.Remove(id))
	return nil
}

// UserProjects - ids of the projects an address takes part in
func (s *State) UserProjects(owner address.Address) (record.IDList, error) {
	return s.IDList(keyspace.UserProjectsKey(owner))
}

// AddUserProject - append a project to an address's list
func (s *State) AddUserProject(owner address.Address, id uint64) error {
	return s.addToList(keyspace.UserProjectsKey(owner), id)
}

// StatusProjects - ids of the projects currently in a status
func (s *State) StatusProjects(status record.ProjectStatus) (record.IDList, error) {
	return s.IDList(keyspace.StatusIndexKey(uint8(status)))
}

// AddStatusProject - index a new project under its status
func (s *State) AddStatusProject(status record.ProjectStatus, id uint64) error {
	return s.addToList(keyspace.StatusIndexKey(uint8(status)), id)
}

// SetProjectStatus - change status, re-index and store the project
func (s *State) SetProjectStatus(p *record.Project, status record.ProjectStatus) error {
	old := p.Status
	if old != status {
		err := s.removeFromList(keyspace.StatusIndexKey(uint8(old)), p.ID)
		if nil != err {
			return err
		}
		err = s.addToList(keyspace.StatusIndexKey(uint8(status)), p.ID)
		if nil != err {
			return err
		}
	}
	p.Status = status
	s.PutProject(p)
	return nil
}
