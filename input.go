package nkdemo

// Key represents a keyboard key the demo reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyCount
)

var keyNames = [KeyCount]string{"none", "up", "down", "left", "right", "escape"}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// KeyState reports whether a key is currently held down.
// Windows implement it by polling; tests use KeySet.
type KeyState interface {
	KeyDown(k Key) bool
}

// KeySet is a KeyState backed by a fixed set of held keys.
type KeySet [KeyCount]bool

// KeyDown implements KeyState.
func (s KeySet) KeyDown(k Key) bool {
	if k <= KeyNone || k >= KeyCount {
		return false
	}
	return s[k]
}

// Press returns a KeySet with the given keys held.
func Press(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		if k > KeyNone && k < KeyCount {
			s[k] = true
		}
	}
	return s
}
