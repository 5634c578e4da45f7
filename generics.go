package osascript

import "context"

// Execute runs s with an empty object as $params and returns the result as T.
func Execute[T any](ctx context.Context, s *JavaScript) (T, error) {
	var out T
	if err := s.Execute(ctx, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ExecuteWithParams runs s with params bound to $params and returns the
// result as T.
func ExecuteWithParams[T any](ctx context.Context, s *JavaScript, params any) (T, error) {
	var out T
	if err := s.ExecuteWithParams(ctx, params, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
