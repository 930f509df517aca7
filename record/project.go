// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
)

// Project - a posted job
//
// Freelancer is nil until a freelancer is assigned; on the wire it is
// the empty address
type Project struct {
	ID          uint64           `json:"id"`
	Client      address.Address  `json:"client"`
	Freelancer  *address.Address `json:"freelancer"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Budget      uint64           `json:"budget"`
	Deadline    uint64           `json:"deadline"`
	Status      ProjectStatus    `json:"status"`
	CreatedAt   uint64           `json:"createdAt"`
	Category    string           `json:"category"`
	Skills      []string         `json:"skills"`
}

// HasFreelancer - true once a freelancer is assigned
func (p *Project) HasFreelancer() bool {
	return nil != p.Freelancer && !p.Freelancer.IsEmpty()
}

// IsFreelancer - true if a is the assigned freelancer
func (p *Project) IsFreelancer(a address.Address) bool {
	return p.HasFreelancer() && *p.Freelancer == a
}

// IsParticipant - client or assigned freelancer
func (p *Project) IsParticipant(a address.Address) bool {
	return p.Client == a || p.IsFreelancer(a)
}

// Append - encode the project
func (p *Project) Append(buffer codec.Packed) codec.Packed {
	freelancer := address.Empty
	if nil != p.Freelancer {
		freelancer = *p.Freelancer
	}
	buffer = buffer.AppendUint64(p.ID)
	buffer = buffer.AppendString(p.Client.String())
	buffer = buffer.AppendString(freelancer.String())
	buffer = buffer.AppendString(p.Title)
	buffer = buffer.AppendString(p.Description)
	buffer = buffer.AppendUint64(p.Budget)
	buffer = buffer.AppendUint64(p.Deadline)
	buffer = buffer.AppendUint8(uint8(p.Status))
	buffer = buffer.AppendUint64(p.CreatedAt)
	buffer = buffer.AppendString(p.Category)
	buffer = buffer.AppendStrings(p.Skills)
	return buffer
}

// Pack - standalone encoding
func (p *Project) Pack() codec.Packed {
	return p.Append(nil)
}

// UnpackProject - read and validate a project
func UnpackProject(u *codec.Unpacker) (*Project, error) {
	var err error
	p := &Project{}

	if p.ID, err = u.Uint64("Project.id"); nil != err {
		return nil, err
	}
	client, err := u.String("Project.client")
	if nil != err {
		return nil, err
	}
	if "" == client {
		return nil, fault.Malformed("Project.client", "empty")
	}
	p.Client = address.Address(client)

	freelancer, err := u.String("Project.freelancer")
	if nil != err {
		return nil, err
	}
	if "" != freelancer {
		f := address.Address(freelancer)
		p.Freelancer = &f
	}

	if p.Title, err = u.String("Project.title"); nil != err {
		return nil, err
	}
	if p.Description, err = u.String("Project.description"); nil != err {
		return nil, err
	}
	if p.Budget, err = u.Uint64("Project.budget"); nil != err {
		return nil, err
	}
	if p.Deadline, err = u.Uint64("Project.deadline"); nil != err {
		return nil, err
	}
	status, err := u.Uint8("Project.status")
	if nil != err {
		return nil, err
	}
	p.Status = ProjectStatus(status)
	if !p.Status.Valid() {
		return nil, fault.Malformed("Project.status", "invalid")
	}
	if p.CreatedAt, err = u.Uint64("Project.createdAt"); nil != err {
		return nil, err
	}
	if p.Category, err = u.String("Project.category"); nil != err {
		return nil, err
	}
	if p.Skills, err = u.Strings("Project.skills"); nil != err {
		return nil, err
	}

	switch p.Status {
	case ProjectOpen:
		if p.HasFreelancer() {
			return nil, fault.Malformed("Project.freelancer", "set on open project")
		}
	case ProjectInProgress, ProjectCompleted, ProjectDisputed:
		if !p.HasFreelancer() {
			return nil, fault.Malformed("Project.freelancer", "missing")
		}
	}
	return p, nil
}

// ProjectFromBytes - decode a complete stored project
func ProjectFromBytes(buffer []byte) (*Project, error) {
	u := codec.NewUnpacker(buffer)
	p, err := UnpackProject(u)
	if nil != err {
		return nil, err
	}
	if err := u.Done("Project"); nil != err {
		return nil, err
	}
	return p, nil
}

// PackProjects - count prefixed list of projects
func PackProjects(projects []*Project) codec.Packed {
	buffer := codec.Packed{}.AppendUint32(uint32(len(projects)))
	for _, p := range projects {
		buffer = p.Append(buffer)
	}
	return buffer
}

// ProjectsFromBytes - decode a complete list of projects
func ProjectsFromBytes(buffer []byte) ([]*Project, error) {
	u := codec.NewUnpacker(buffer)
	count, err := u.Count("Projects.count", minimumProjectSize)
	if nil != err {
		return nil, err
	}
	projects := make([]*Project, 0, count)
	for i := 0; i < count; i += 1 {
		p, err := UnpackProject(u)
		if nil != err {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := u.Done("Projects"); nil != err {
		return nil, err
	}
	return projects, nil
}

// four u64, five empty strings, skills count and status
const minimumProjectSize = codec.Uint64Size*4 + codec.Uint32Size*6 + codec.Uint8Size
