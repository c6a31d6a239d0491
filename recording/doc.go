// Package recording captures what primitives paint as typed commands.
//
// A Recorder implements vecedit.Canvas. Painting primitives into it stores
// one command per canvas call, with paths and images copied into a
// ResourcePool and referenced by typed handles (PathRef, ImageRef). The
// finished Recording is immutable and can be replayed into any other
// canvas, such as a raster.Canvas, any number of times.
//
// Commands are plain structs so tests and tools can inspect exactly what a
// primitive asked the sink to do:
//
//	r := recording.Record(rect, circle)
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//	r.Playback(dst)
package recording
