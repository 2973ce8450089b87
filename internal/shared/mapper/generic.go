// Package mapper converts lists at layer boundaries: gorm rows into domain
// aggregates, and aggregates into response DTOs.
package mapper

// MapSlice applies fn to every item. The result is never nil, so an empty
// listing encodes as [] rather than null.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapRows is MapSlice for row slices filled by Find; fn receives a pointer
// into rows instead of a copy of each model.
func MapRows[T any, R any](rows []T, fn func(*T) R) []R {
	out := make([]R, 0, len(rows))
	for i := range rows {
		out = append(out, fn(&rows[i]))
	}
	return out
}

// MapSliceErr stops at the first failing item and returns its error.
func MapSliceErr[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	for _, item := range items {
		r, err := fn(item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
