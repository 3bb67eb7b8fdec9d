package runtime

// Environment is the single flat name-to-value mapping used during one
// evaluation session: last write wins, no nested scopes, no shadowing.
// Construct one per run and drop it when the run ends; it is never
// process-global.
type Environment struct {
	vars map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Set binds or rebinds a name. Declarations and assignments share this
// path: assignment to an unbound name creates it.
func (e *Environment) Set(name string, value Value) {
	e.vars[name] = value
}

// Get looks a name up; the second result reports whether it was bound.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Len reports how many names are bound.
func (e *Environment) Len() int {
	return len(e.vars)
}

// Reset clears every binding so a session can be reused safely.
func (e *Environment) Reset() {
	e.vars = make(map[string]Value)
}
