package evaluator

import "sort"

// Binding is one name/value pair of a scope snapshot
type Binding struct {
	Name  string
	Value Value
}

// Scope maps variable names to values
type Scope struct {
	values map[string]Value
}

// NewScope creates an empty scope
func NewScope() *Scope {
	return &Scope{values: make(map[string]Value)}
}

// Lookup returns the value bound to name
func (s *Scope) Lookup(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Declare binds name only if it is not bound yet
func (s *Scope) Declare(name string, v Value) bool {
	if _, exists := s.values[name]; exists {
		return false
	}
	s.values[name] = v
	return true
}

// Assign overwrites an existing binding
func (s *Scope) Assign(name string, v Value) bool {
	if _, exists := s.values[name]; !exists {
		return false
	}
	s.values[name] = v
	return true
}

// Set binds name unconditionally
func (s *Scope) Set(name string, v Value) {
	s.values[name] = v
}

// Len returns the number of bindings
func (s *Scope) Len() int {
	return len(s.values)
}

// Bindings returns all bindings sorted by name
func (s *Scope) Bindings() []Binding {
	bindings := make([]Binding, 0, len(s.values))
	for name, v := range s.values {
		bindings = append(bindings, Binding{Name: name, Value: v})
	}
	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].Name < bindings[j].Name
	})
	return bindings
}
