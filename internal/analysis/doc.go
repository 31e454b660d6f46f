// Package analysis characterizes how a layout run settled. A [Recorder]
// samples per-node radial distance every frame; [MotionSpectrum] turns a
// trace into a power spectrum so a run that froze while still ringing
// shows up as a dominant non-DC peak, while a cleanly converged run is
// spectrally flat.
package analysis
