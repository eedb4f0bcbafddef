package baseline

import (
	"fmt"

	"github.com/cocosip/go-jfif/jpeg/common"
)

// Component identifies one of the three color components of a frame
type Component int

const (
	// ComponentY is the luminance component
	ComponentY Component = iota
	// ComponentCb is the blue-difference chroma component
	ComponentCb
	// ComponentCr is the red-difference chroma component
	ComponentCr
)

// numComponents is the component count of every frame this encoder writes
const numComponents = 3

// scanOrder is the order in which components are interleaved within a block position
var scanOrder = [numComponents]Component{ComponentY, ComponentCb, ComponentCr}

// Class returns the table class used by the component
func (c Component) Class() common.ChannelClass {
	if c == ComponentY {
		return common.Luma
	}
	return common.Chroma
}

// ID returns the component identifier written in SOF0 and SOS
func (c Component) ID() byte {
	return byte(c) + 1
}

// String returns the component name
func (c Component) String() string {
	switch c {
	case ComponentY:
		return "Y"
	case ComponentCb:
		return "Cb"
	case ComponentCr:
		return "Cr"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// DCPredictor turns DC coefficients into differences from the previous block of
// the same component. The zero value is ready to use.
type DCPredictor struct {
	previous [numComponents]int32
}

// Next returns dc minus the previous DC value of c and records dc
func (p *DCPredictor) Next(c Component, dc int32) int32 {
	diff := dc - p.previous[c]
	p.previous[c] = dc
	return diff
}
