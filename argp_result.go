package argp

// Invocation is one use of a parameter and the values it captured.
type Invocation struct {
	Name   string   `json:"name"` // canonical name, whichever alias was typed
	Values []string `json:"values"`
}

// Result is the outcome of a successful parse. Parameters are listed in the
// order they were closed: those filled up during the scan first, then those
// still open at the end of input, outermost first.
type Result struct {
	Arguments  []string     `json:"arguments"`
	Parameters []Invocation `json:"parameters"`
}

func newResult() *Result {
	return &Result{Arguments: []string{}, Parameters: []Invocation{}}
}

func (r *Result) add(f *frame) {
	r.Parameters = append(r.Parameters, Invocation{Name: f.param.name, Values: f.captured})
}

// Lookup returns the values of the first invocation of the named parameter.
func (r *Result) Lookup(name string) ([]string, bool) {
	for _, inv := range r.Parameters {
		if inv.Name == name {
			return inv.Values, true
		}
	}
	return nil, false
}

// All returns the values of every invocation of the named parameter, in
// result order.
func (r *Result) All(name string) [][]string {
	var all [][]string
	for _, inv := range r.Parameters {
		if inv.Name == name {
			all = append(all, inv.Values)
		}
	}
	return all
}
