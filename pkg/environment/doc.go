// Package environment names the deployment environments the lint tool and
// its logger distinguish, and carries the active one through a context.
//
//	env, err := environment.Parse(os.Getenv("OCPI_LINT_ENV"))
//	ctx = environment.WithContext(ctx, env)
//
// Environment implements encoding.TextUnmarshaler, so it can be used
// directly as a field type in env-tagged config structs.
package environment
