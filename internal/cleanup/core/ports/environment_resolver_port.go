package ports

import "context"

// Resolution is the outcome of resolving a project's environments.
// Available=false means the capability is not offered; Reason says why.
type Resolution struct {
	EnvIDs    []string
	Available bool
	Reason    string
}

func Resolved(envIDs []string) Resolution {
	return Resolution{EnvIDs: envIDs, Available: true}
}

func Unavailable(reason string) Resolution {
	return Resolution{Reason: reason}
}

type EnvironmentResolverPort interface {
	// Resolve returns an error only when resolution was attempted and failed.
	Resolve(ctx context.Context, projectID string) (Resolution, error)
}
