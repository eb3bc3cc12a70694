/*
Package gui provides an immediate-mode GUI library inspired by Dear ImGui,
designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. There is no widget tree to manage and no
callbacks: widget calls draw into a DrawList and return what happened
(clicked, changed, hovered) right away.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	adapter := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input := adapter.Update(dt)

	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 720}, dt)
	    ctx.Window("Settings", &open, gui.DefaultWidth(280))(func() {
	        ctx.Grid("rows", gui.Columns(2), gui.Striped(true))(func() {
	            ctx.Label("Volume")
	            ctx.SliderFloat("", &volume, 0, 1)
	            ctx.EndRow()
	        })
	    })
	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    adapter.EndFrame()
	    window.SwapBuffers()
	}

# Containers

Containers take options and return a function that runs their contents:

	ctx.VStack(gui.Gap(8))(func() { ... })
	ctx.HStack()(func() { ... })
	ctx.Grid("id", gui.Columns(2), gui.GridSpacing(40, 4))(func() { ... })
	ctx.Scope(gui.Disabled(true), gui.Opacity(0.5))(func() { ... })
	ctx.Window("Title", &open, gui.Resizable(true, false))(func() { ... })

A Scope changes how its contents behave: Disabled widgets ignore input but
still report hover, Invisible ones keep their space but draw nothing, and
Opacity multiplies the alpha of everything drawn inside.

# Draw order

The frame is rendered as the background list, then each window back to
front, then the foreground list holding popups and tooltips.

# Item responses

Every widget records an ItemResponse. LastItem, IsItemHovered and
ItemTooltip refer to the widget drawn just before:

	ctx.ProgressBar(p, gui.WithShowPercentage())
	ctx.ItemTooltip("Loading assets")

# Keyboard

	Enter            Commit a DragFloat being edited
	Escape           Cancel editing, close the open popup
	Backspace        Delete the last typed character
	Mouse Wheel      Step a hovered slider
*/
package gui
