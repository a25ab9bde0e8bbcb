// Package gui holds the hand-written layout props handler for 2-D controls.
// Unlike the generated handlers it applies values to the control directly
// instead of returning updates.
package gui

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is a GUI size: a pixel value ("12px") or a percentage of the
// parent ("100%").
type Length string

// FullSize is the default width and height of a control.
const FullSize Length = "100%"

func Pixels(n float64) Length { return Length(strconv.FormatFloat(n, 'f', -1, 64) + "px") }
func Percent(p float64) Length { return Length(strconv.FormatFloat(p, 'f', -1, 64) + "%") }

// IsPercentage reports whether l is relative to the parent size.
func (l Length) IsPercentage() bool { return strings.HasSuffix(string(l), "%") }

// Value returns the numeric part of l.
func (l Length) Value() (float64, error) {
	s := strings.TrimSuffix(strings.TrimSuffix(string(l), "px"), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse length %q: %w", string(l), err)
	}
	return v, nil
}

// Alignment positions a control inside its parent.
type Alignment int

const (
	HorizontalAlignmentLeft   Alignment = 0
	HorizontalAlignmentRight  Alignment = 1
	HorizontalAlignmentCenter Alignment = 2

	VerticalAlignmentTop    Alignment = 0
	VerticalAlignmentBottom Alignment = 1
	VerticalAlignmentCenter Alignment = 2
)

// Control is the subset of a GUI control's layout state the handler manages.
type Control struct {
	Name string

	PaddingLeft   Length
	PaddingRight  Length
	PaddingTop    Length
	PaddingBottom Length
	Width         Length
	Height        Length

	HorizontalAlignment Alignment
	VerticalAlignment   Alignment

	ScaleX float64
	ScaleY float64
}

// NewControl returns a control with the engine defaults: centered, full
// size, unscaled.
func NewControl(name string) *Control {
	return &Control{
		Name:                name,
		Width:               FullSize,
		Height:              FullSize,
		HorizontalAlignment: HorizontalAlignmentCenter,
		VerticalAlignment:   VerticalAlignmentCenter,
		ScaleX:              1,
		ScaleY:              1,
	}
}
