// Package theme holds the process-wide light/dark state and its palette.
package theme

import (
	"taskdeck/internal/store"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Context is the single theme value passed down from the app root. Consumers
// receive it explicitly; using a Context that was never constructed is a
// wiring bug and fails fast.
type Context struct {
	st  *store.Store
	cur Theme
}

// Load reads the persisted theme (default light) and returns the root
// Context. A nil store gives a session-only Context.
func Load(st *store.Store) *Context {
	c := &Context{st: st, cur: Light}
	if st != nil {
		c.cur = normalize(store.Read(st, store.KeyTheme, string(Light)))
	}
	return c
}

// Theme returns the current theme.
func (c *Context) Theme() Theme {
	c.mustInit()
	return c.cur
}

// Toggle flips light<->dark, persists the result, and returns it.
func (c *Context) Toggle() Theme {
	c.mustInit()
	if c.cur == Dark {
		c.cur = Light
	} else {
		c.cur = Dark
	}
	if c.st != nil {
		store.Set(c.st, store.KeyTheme, string(c.cur))
	}
	return c.cur
}

// Set forces a specific theme and persists it.
func (c *Context) Set(t Theme) {
	c.mustInit()
	c.cur = normalize(string(t))
	if c.st != nil {
		store.Set(c.st, store.KeyTheme, string(c.cur))
	}
}

func (c *Context) mustInit() {
	if c == nil {
		panic("theme: Context accessed before initialization; construct it with theme.Load at the app root")
	}
}

func normalize(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

// Parse maps user input to a Theme.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}
