package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func abs(x float32) float32 {
	return math32.Abs(x)
}

func sin(x float32) float32 {
	return math32.Sin(x)
}

func cos(x float32) float32 {
	return math32.Cos(x)
}

func floor(x float32) float32 {
	return math32.Floor(x)
}

func radian(angle float32) float32 {
	return mgl32.DegToRad(angle)
}

func max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func mix(a, b, factor float32) float32 {
	return a*(1-factor) + factor*b
}
