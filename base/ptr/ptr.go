package ptr

// String returns a pointer to value
func String(value string) *string {
	return &value
}

// Int returns a pointer to value
func Int(value int) *int {
	return &value
}
