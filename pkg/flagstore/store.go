// Package flagstore persists small boolean flags between runs.
//
// Persistence is best-effort: reads never fail (a missing or unreadable
// store reports the flag as unset) and callers may ignore write errors.
// The intro banner uses it to remember whether it has been shown.
//
// # Usage
//
//	store, err := flagstore.NewFileStore("")  // ~/.config/repocards/state.json
//	if err != nil {
//	    store = flagstore.Null{}
//	}
//	if seen, _ := store.Get(flagstore.IntroSeen); !seen {
//	    showIntro()
//	    _ = store.Set(flagstore.IntroSeen, true)
//	}
package flagstore

// IntroSeen records that the intro banner has been shown.
const IntroSeen = "intro_seen"

// Store reads and writes named boolean flags.
type Store interface {
	// Get returns the flag value and whether it was found.
	Get(key string) (value bool, ok bool)
	Set(key string, value bool) error
	Delete(key string) error
}

// Null is a Store that never remembers anything.
type Null struct{}

func (Null) Get(string) (bool, bool) { return false, false }
func (Null) Set(string, bool) error  { return nil }
func (Null) Delete(string) error     { return nil }

var _ Store = Null{}
