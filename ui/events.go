package ui

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func (ctx *DrawContext) installCallbacks() {
	ctx.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	ctx.win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}

		switch key {
		case glfw.KeyQ, glfw.KeyEscape:
			ctx.QueueCommand(DRAW_QUIT)
		case glfw.Key1:
			if action == glfw.Press {
				ctx.QueueCommand(DRAW_TOGGLE_WIREFRAME)
			}
		case glfw.KeyO:
			if action == glfw.Press {
				ctx.QueueCommand(DRAW_TOGGLE_ORBITS)
			}
		case glfw.KeySpace:
			if action == glfw.Press {
				ctx.QueueCommand(DRAW_TOGGLE_PAUSE)
			}
		case glfw.KeyW:
			ctx.cam.QueueCommand(cameraCommandMove{Y: 1})
		case glfw.KeyS:
			ctx.cam.QueueCommand(cameraCommandMove{Y: -1})
		case glfw.KeyA:
			ctx.cam.QueueCommand(cameraCommandMove{X: -1})
		case glfw.KeyD:
			ctx.cam.QueueCommand(cameraCommandMove{X: 1})
		case glfw.KeyR:
			if action == glfw.Press {
				ctx.cam.QueueCommand(cameraCommandReset{})
			}
		case glfw.KeyP:
			panic("User requested panic")
		default:
			if action == glfw.Press {
				log.Printf(`key press: %v`, key)
			}
		}
	})

	var lastX, lastY float64
	first := true
	ctx.win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if first {
			lastX, lastY = x, y
			first = false
			return
		}
		ctx.cam.QueueCommand(cameraCommandTurn{X: x - lastX, Y: y - lastY})
		lastX, lastY = x, y
	})

	ctx.win.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		ctx.cam.QueueCommand(cameraCommandMove{Y: yoff * 10})
	})

	ctx.win.SetCloseCallback(func(w *glfw.Window) {
		ctx.QueueCommand(DRAW_QUIT)
	})
}
