// Package editor ties rasters, effects, selections and operations together
// into editing sessions.
//
// An Editor is configured once with effects and operations and then opens
// any number of independent sessions. Each Session owns its base raster,
// control state, selection and zoom; the registered effects and operations
// are shared. The Editor tracks open sessions so the host can shut down when
// the last one closes.
//
// A Session is not safe for concurrent use. The host feeds it one input
// event at a time.
package editor
