// Copyright 2025 Saleslens Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/saleslens/saleslens/core"
)

// sectionNameSer serializes a SectionName as a varint.
type sectionNameSer struct{}

var _ mus.Serializer[core.SectionName] = sectionNameSer{}

func (sectionNameSer) Marshal(s core.SectionName, bs []byte) int {
	return varint.Int.Marshal(int(s), bs)
}

func (sectionNameSer) Unmarshal(bs []byte) (core.SectionName, int, error) {
	v, n, err := varint.Int.Unmarshal(bs)
	return core.SectionName(v), n, err
}

func (sectionNameSer) Size(s core.SectionName) int {
	return varint.Int.Size(int(s))
}

func (sectionNameSer) Skip(bs []byte) (int, error) {
	return varint.Int.Skip(bs)
}

var (
	vectorSer     = ord.NewSliceSer[float32](varint.Float32)
	embeddingsSer = ord.NewMapSer[core.SectionName, []float32](sectionNameSer{}, vectorSer)
)

// profileSer serializes a CompanyProfile. Fields are written in declaration
// order; FetchedAt is stored as microseconds since the Unix epoch.
type profileSer struct{}

var _ mus.Serializer[core.CompanyProfile] = profileSer{}

func (profileSer) Marshal(p core.CompanyProfile, bs []byte) (n int) {
	n = ord.String.Marshal(p.URL, bs)
	n += ord.String.Marshal(p.RawContent, bs[n:])
	n += ord.String.Marshal(p.PressContent, bs[n:])
	n += embeddingsSer.Marshal(p.SectionEmbeddings, bs[n:])
	n += vectorSer.Marshal(p.CombinedEmbedding, bs[n:])
	n += varint.Int64.Marshal(p.FetchedAt.UnixMicro(), bs[n:])
	return n
}

func (profileSer) Unmarshal(bs []byte) (p core.CompanyProfile, n int, err error) {
	var c int
	p.URL, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	p.RawContent, c, err = ord.String.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	p.PressContent, c, err = ord.String.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	p.SectionEmbeddings, c, err = embeddingsSer.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	p.CombinedEmbedding, c, err = vectorSer.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	var micros int64
	micros, c, err = varint.Int64.Unmarshal(bs[n:])
	n += c
	if err != nil {
		return
	}
	p.FetchedAt = time.UnixMicro(micros).UTC()
	return
}

func (profileSer) Size(p core.CompanyProfile) (size int) {
	size = ord.String.Size(p.URL)
	size += ord.String.Size(p.RawContent)
	size += ord.String.Size(p.PressContent)
	size += embeddingsSer.Size(p.SectionEmbeddings)
	size += vectorSer.Size(p.CombinedEmbedding)
	size += varint.Int64.Size(p.FetchedAt.UnixMicro())
	return size
}

func (profileSer) Skip(bs []byte) (n int, err error) {
	var c int
	for i := 0; i < 3; i++ {
		c, err = ord.String.Skip(bs[n:])
		n += c
		if err != nil {
			return
		}
	}
	c, err = embeddingsSer.Skip(bs[n:])
	n += c
	if err != nil {
		return
	}
	c, err = vectorSer.Skip(bs[n:])
	n += c
	if err != nil {
		return
	}
	c, err = varint.Int64.Skip(bs[n:])
	n += c
	return
}

var companyProfileSer = profileSer{}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalProfile serializes a CompanyProfile to bytes.
func MarshalProfile(profile *core.CompanyProfile) []byte {
	buf := make([]byte, companyProfileSer.Size(*profile))
	companyProfileSer.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a CompanyProfile from bytes.
func UnmarshalProfile(data []byte) (*core.CompanyProfile, error) {
	profile, _, err := companyProfileSer.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &profile, nil
}
