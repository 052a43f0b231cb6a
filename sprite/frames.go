package sprite

// mod is the Euclidean remainder, always in [0, n) for n > 0.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// CycleFrame moves the current frame index by delta, wrapping in both
// directions.
func (g *Grid) CycleFrame(delta int) {
	g.current = mod(g.current+delta, len(g.frames))
}

// AddFrame inserts a blank frame at the current index, in front of the frame
// being edited. The index is unchanged, so the new frame becomes current.
func (g *Grid) AddFrame() {
	frame := blankFrame(g.Size())
	g.frames = append(g.frames[:g.current], append([]Frame{frame}, g.frames[g.current:]...)...)
	g.clampCursor()
}

// DuplicateFrame inserts a copy of the current frame right after it and
// makes the copy current.
func (g *Grid) DuplicateFrame() {
	frame := g.frames[g.current].clone()
	at := g.current + 1
	g.frames = append(g.frames[:at], append([]Frame{frame}, g.frames[at:]...)...)
	g.current = at
	g.clampCursor()
}

// DeleteFrame removes the current frame. The last remaining frame is never
// removed. If the deleted frame was the last one the index wraps to 0.
func (g *Grid) DeleteFrame() {
	if len(g.frames) <= 1 {
		return
	}
	g.frames = append(g.frames[:g.current], g.frames[g.current+1:]...)
	g.current = mod(g.current, len(g.frames))
	g.clampCursor()
}
