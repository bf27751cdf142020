// Package models defines data structures for figure scripts and plotted series.
package models

import "github.com/ukaji3/mathplot-go/pkg/mathplot/geom"

// Series represents one sampled function curve.
type Series struct {
	// Name is the series name (function name in scripts, f1, f2, ... otherwise).
	Name string `json:"name" yaml:"name"`
	// Domain is the x-interval the function was sampled over.
	Domain geom.Interval `json:"domain" yaml:"domain"`
	// Points holds the samples in increasing x order.
	// Y is NaN or infinite where the function is undefined.
	Points []geom.Point `json:"points" yaml:"points"`
}
