// Package argp splits command lines into positional arguments and named
// parameter invocations, checking how many values each one receives.
//
// A Parser is configured once with the number of positional arguments it
// accepts, a prefix marking parameter tokens ("-" by default) and an ordered
// list of parameters, each with a canonical name, aliases and an Arity:
//
//	p, err := argp.NewParser("demo",
//		argp.WithArity(argp.Exactly(1)),
//		argp.WithParams(argp.NewParam("--param").
//			SetAlias("-O").
//			SetArity(argp.MustRange(1, 5)).
//			MustBuild()),
//	)
//	result, err := p.Parse([]string{"input.txt", "-O", "a", "b"})
//	// result.Arguments:  ["input.txt"]
//	// result.Parameters: [{--param [a b]}]
//
// Parameters may interrupt each other: a new parameter token opens a
// parameter without closing the current one, and values go to the most
// recently opened parameter that still has room. Counts are validated once
// the input ends. Parse returns typed errors; ParseOrExit prints them the
// way a command-line program would and exits.
package argp
