package main

import (
	"github.com/Carmen-Shannon/oxy-freecam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Scroll zoom limits and step, in degrees.
const (
	minFovDeg  = 10
	maxFovDeg  = 90
	zoomDegPer = 2
)

// resumer is the part of engine.Engine the pause gate needs.
type resumer interface {
	Paused() bool
	Resume()
}

// pauseGate returns the down callback shared by keys and mouse buttons. While the engine is
// paused every down is dropped except resumeKey, which clears stale input and resumes.
func pauseGate(eng resumer, in input.Input, resumeKey uint32) func(keyCode uint32) {
	return func(keyCode uint32) {
		if eng.Paused() {
			if keyCode == resumeKey {
				in.Reset()
				eng.Resume()
			}
			return
		}
		in.HandleKeyDown(keyCode)
	}
}

// zoomFov narrows the field of view on scroll up and widens it on scroll down.
// fov is in radians.
func zoomFov(fov, delta float32) float32 {
	deg := mgl32.RadToDeg(fov) - delta*zoomDegPer
	return mgl32.DegToRad(mgl32.Clamp(deg, minFovDeg, maxFovDeg))
}
