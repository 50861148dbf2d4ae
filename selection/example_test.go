// Package selection_test provides runnable examples for the straight-line
// selection variant. Each example runs via "go test -run Example".
package selection_test

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/livewire/selection"
)

// ExamplePointToPoint walks a triangle selection through its whole
// lifecycle: commit three corners, close the cycle, then relocate one.
func ExamplePointToPoint() {
	// 1) Bind the model to an 8×8 canvas.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	m := selection.NewPointToPoint()
	if err := m.SetImage(img); err != nil {
		fmt.Println("bind failed:", err)
		return
	}

	// 2) Commit three corners; the first merely starts the selection.
	for _, p := range []image.Point{{1, 1}, {6, 1}, {3, 6}} {
		if err := m.AddPoint(p); err != nil {
			fmt.Println("add failed:", err)
			return
		}
	}
	fmt.Println("state:", m.State(), "segments:", len(m.Selection()))

	// 3) Close the cycle back to the start.
	if err := m.Finish(); err != nil {
		fmt.Println("finish failed:", err)
		return
	}
	segs := m.Selection()
	fmt.Println("state:", m.State(), "segments:", len(segs))
	fmt.Println("closure:", segs[len(segs)-1].End())

	// 4) Drag the second anchor; only its two adjacent segments change.
	if err := m.MovePoint(1, image.Pt(7, 2)); err != nil {
		fmt.Println("move failed:", err)
		return
	}
	fmt.Println("moved anchor:", m.Selection()[1].Start())
	// Output:
	// state: Selecting segments: 2
	// state: Selected segments: 3
	// closure: (1,1)
	// moved anchor: (7,2)
}
