package geometry

import (
	"cogentcore.org/core/math32"

	"viz-tiles/internal/material"
	"viz-tiles/internal/paint"
)

// PointsOptions describes how a point cloud is drawn. A zero Color or Size and a nil
// SizeAttenuation are filled with the defaults, so a partial literal behaves like
// DefaultPointsOptions with those fields changed.
type PointsOptions struct {
	Color           paint.Color `yaml:"color"`
	Size            float32     `yaml:"size"`
	SizeAttenuation *bool       `yaml:"sizeAttenuation"`
}

// DefaultPointsOptions returns white points of size 1 with size attenuation on.
func DefaultPointsOptions() PointsOptions {
	return PointsOptions{Color: paint.White, Size: 1, SizeAttenuation: material.Bool(true)}
}

// PointCloud is an unconnected set of vertices with its points material.
type PointCloud struct {
	Positions []math32.Vector3
	Material  *material.Material
}

// Points builds a point cloud with one vertex per input point, in input order. The input
// slice is copied.
func Points(vertices []math32.Vector3, opts PointsOptions) *PointCloud {
	if opts.Color == (paint.Color{}) {
		opts.Color = paint.White
	}
	if opts.Size == 0 {
		opts.Size = 1
	}
	if opts.SizeAttenuation == nil {
		opts.SizeAttenuation = material.Bool(true)
	}
	pos := make([]math32.Vector3, len(vertices))
	copy(pos, vertices)
	return &PointCloud{
		Positions: pos,
		Material: material.One(material.Spec{
			Type: material.Points.String(),
			Options: material.Options{
				Color:           opts.Color.Ptr(),
				Size:            material.Float(opts.Size),
				SizeAttenuation: material.Bool(*opts.SizeAttenuation),
			},
		}, nil, nil),
	}
}

// BoundingBox returns the bounds of the cloud's positions.
func (pc *PointCloud) BoundingBox() math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoints(pc.Positions)
	return b
}
