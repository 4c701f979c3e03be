// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ribbon"
)

// UploadKind says how much of a mesh must be sent to the GPU.
type UploadKind int

const (
	// UploadNone means the GPU buffers are already current.
	UploadNone UploadKind = iota
	// UploadAppend means only the data past the previous counts is new.
	UploadAppend
	// UploadFull means both buffers must be rewritten from offset 0.
	UploadFull
)

// String returns the string representation of UploadKind.
func (k UploadKind) String() string {
	switch k {
	case UploadNone:
		return "None"
	case UploadAppend:
		return "Append"
	case UploadFull:
		return "Full"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Upload is the work for one frame. VertexData and IndexData alias the
// Uploader's staging buffers and are valid until the next Prepare.
type Upload struct {
	Kind UploadKind

	// VertexOffset and IndexOffset are byte offsets into the GPU buffers.
	VertexOffset uint64
	IndexOffset  uint64

	VertexData []byte
	IndexData  []byte

	// IndexCount is the number of indices to draw this frame.
	IndexCount uint32
}

// Uploader decides per frame whether the mesh changed since the previous
// upload. Within one Mesh.Generation the buffers only grow, so growth is sent
// as a delta and anything else as a full upload.
//
// An Uploader follows a single mesh source, such as one Generator or one
// Board.
//
// The zero value is ready to use.
type Uploader struct {
	vertices   int
	indices    int
	generation uint64
	valid      bool

	vertexStaging []byte
	indexStaging  []byte
}

// Invalidate forces the next Prepare to produce a full upload.
func (u *Uploader) Invalidate() {
	u.valid = false
}

// Prepare computes the upload for m and records m's counts as uploaded.
func (u *Uploader) Prepare(m ribbon.Mesh) Upload {
	nv, ni := len(m.Vertices), len(m.Indices)
	up := Upload{IndexCount: uint32(ni)} //nolint:gosec // index count fits uint32
	current := u.valid && m.Generation == u.generation

	switch {
	case current && nv == u.vertices && ni == u.indices:
		up.Kind = UploadNone
		return up
	case current && nv >= u.vertices && ni >= u.indices:
		up.Kind = UploadAppend
		up.VertexOffset = uint64(u.vertices) * VertexStride //nolint:gosec // non-negative
		up.IndexOffset = uint64(u.indices) * IndexStride    //nolint:gosec // non-negative
		u.vertexStaging = EncodeVertices(u.vertexStaging, m.Vertices[u.vertices:])
		u.indexStaging = EncodeIndices(u.indexStaging, m.Indices[u.indices:])
	default:
		up.Kind = UploadFull
		u.vertexStaging = EncodeVertices(u.vertexStaging, m.Vertices)
		u.indexStaging = EncodeIndices(u.indexStaging, m.Indices)
	}

	up.VertexData = u.vertexStaging
	up.IndexData = u.indexStaging
	u.vertices, u.indices, u.generation, u.valid = nv, ni, m.Generation, true

	ribbon.Logger().Debug("render: mesh upload",
		slog.String("kind", up.Kind.String()),
		slog.Int("vertexBytes", len(up.VertexData)),
		slog.Int("indexBytes", len(up.IndexData)))
	return up
}
