package utils

// NewNullString returns a pointer to s, or nil when s is empty. Useful for
// optional text columns that should be NULL when not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
