// Package gui is the raylib window surface: an 800x600 resizable window at
// 60 FPS that draws the phase portrait of one pendulum.
package gui
