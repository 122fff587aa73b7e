package client

// Param is one named path or query parameter value. Parameters are kept as
// ordered pairs rather than a map so that duplicate names keep a
// deterministic first-wins resolution and query ordering is preserved.
type Param struct {
	Name  string
	Value string
}

// lookupParam returns the value of the first parameter with the given name.
func lookupParam(params []Param, name string) (string, bool) {
	for _, p := range params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
