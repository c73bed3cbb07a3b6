package render

import (
	"image/color"

	"github.com/stretchr/testify/mock"
)

// mockSink is a polygonSink for testing purposes.
type mockSink struct {
	mock.Mock
}

func (m *mockSink) AddPolygon(xp, yp []float32, clr color.RGBA) {
	m.Called(xp, yp, clr)
}

func (m *mockSink) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	m.Called(xp, yp, fillClr, strokeClr, strokeWidth)
}
