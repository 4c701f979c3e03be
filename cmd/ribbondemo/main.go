// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ribbondemo draws two simultaneous pointer gestures with the ribbon
// mesh generator and writes a CPU preview to a PNG file.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/ribbon"
	"github.com/gogpu/ribbon/internal/preview"
	"github.com/gogpu/ribbon/render"
)

const supersample = 2

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "ribbon.png", "output file")
		stroke   = flag.Float64("stroke", 12, "ribbon width")
		caps     = flag.Bool("caps", true, "round end caps")
		segments = flag.Int("segments", 8, "triangles per end cap")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ribbon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	board := ribbon.NewBoard(
		ribbon.WithWidth(*stroke*supersample),
		ribbon.WithCapEnds(*caps),
		ribbon.WithCapSegments(*segments),
	)
	simulate(board, float64(*width*supersample), float64(*height*supersample), *stroke*supersample)

	mesh := board.Mesh()
	up := (&render.Uploader{}).Prepare(mesh)
	log.Printf("Mesh: %d vertices, %d triangles, %d vertex bytes, %d index bytes",
		len(mesh.Vertices), mesh.TriangleCount(), len(up.VertexData), len(up.IndexData))

	large := preview.NewCanvas(*width*supersample, *height*supersample, color.White)
	preview.Render(large, mesh, color.Black)
	out := image.NewRGBA(image.Rect(0, 0, *width, *height))
	preview.Downsample(out, large)

	if err := savePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)\n", *output, *width, *height)
}

// simulate feeds two interleaved pointers: a sine wave with constant width
// and a spiral whose width follows a synthetic pressure curve.
func simulate(b *ribbon.Board, w, h, stroke float64) {
	const steps = 240
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps

		wave := ribbon.Pt(w*0.05+w*0.9*t, h*0.25+h*0.12*math.Sin(t*4*math.Pi))

		angle := t * 5 * math.Pi
		radius := math.Min(w, h) * (0.05 + 0.25*t)
		force := 0.5 + 0.5*math.Sin(t*3*math.Pi)
		spiral := ribbon.PtW(w*0.5+radius*math.Cos(angle), h*0.65+radius*math.Sin(angle),
			ribbon.PressureWidth(force, stroke, stroke*0.4))

		if i == 0 {
			_ = b.Down(1, wave)
			_ = b.Down(2, spiral)
			continue
		}
		if err := b.Move(1, wave); err != nil {
			log.Printf("pointer 1: %v", err)
		}
		if err := b.Move(2, spiral); err != nil {
			log.Printf("pointer 2: %v", err)
		}
	}
	b.Up(1)
	b.Up(2)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
