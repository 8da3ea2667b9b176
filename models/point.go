// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"math"
)

// pointJSON uses a pointer so that undefined values travel as null.
type pointJSON struct {
	X     float64      `json:"x"`
	Y     *float64     `json:"y"`
	Solve *SolveRecord `json:"solve,omitempty"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	out := pointJSON{X: p.X, Solve: p.Solve}
	if p.Defined() {
		y := p.Y
		out.Y = &y
	}
	return json.Marshal(out)
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var in pointJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	p.X = in.X
	p.Solve = in.Solve
	if in.Y == nil {
		p.Y = math.NaN()
	} else {
		p.Y = *in.Y
	}
	return nil
}
