package gui

import rl "github.com/gen2brain/raylib-go/raylib"

var (
	colorBG  = rl.NewColor(20, 26, 31, 255)
	colorInk = rl.NewColor(232, 226, 216, 255)
	colorDim = rl.NewColor(140, 150, 158, 255)
)
