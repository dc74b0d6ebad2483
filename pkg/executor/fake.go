package executor

import (
	"context"
	"strings"
)

// Call records one invocation seen by a Fake.
type Call struct {
	Name string
	Args []string
}

// Response scripts the result a Fake returns when the rendered command line
// contains Match.
type Response struct {
	Match  string
	Result Result
	Err    error
}

// Fake is a scripted Executor for tests. Each Run is matched against the
// scripted responses in order; the first Response whose Match substring
// appears in the command line is returned. Unmatched commands return an empty
// Result.
type Fake struct {
	Responses []Response
	Calls     []Call
}

// Run records the call and returns the first matching scripted response.
func (f *Fake) Run(_ context.Context, name string, args ...string) (Result, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})

	line := name + " " + strings.Join(args, " ")
	for _, resp := range f.Responses {
		if strings.Contains(line, resp.Match) {
			return resp.Result, resp.Err
		}
	}
	return Result{}, nil
}
