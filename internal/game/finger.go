package game

// Finger is the visual charge accumulator for one bound key. Its length only
// feeds rendering; weapon accounting lives on the Hand.
type Finger struct {
	Key    string
	Degree float64
	Length float64
}

func newFinger(key string, index int, bus *InputBus) *Finger {
	f := &Finger{
		Key:    key,
		Degree: float64(index) * FingerSpreadDeg,
		Length: FingerRestLength,
	}
	bus.OnKeyEvent(f.onKey)
	return f
}

func (f *Finger) onKey(key string) {
	if key != f.Key {
		return
	}
	f.Length = min(f.Length+FingerGrowth, FingerMaxLength)
}

func (f *Finger) relax(bus *InputBus) {
	if bus.IsHeld(f.Key) {
		return
	}
	f.Length = max(f.Length-FingerGrowth, FingerRestLength)
}

func (f *Finger) draw(s Surface, x, y float64) {
	dx, dy := PosFrom(f.Length, f.Degree)
	s.Line(x, y, x+dx, y+dy)
}
