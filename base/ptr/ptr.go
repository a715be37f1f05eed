package ptr

// String returns a pointer to value
func String(value string) *string {
	return &value
}

// Int32 returns a pointer to value
func Int32(value int32) *int32 {
	return &value
}

// Int64 returns a pointer to value
func Int64(value int64) *int64 {
	return &value
}

// Bool returns a pointer to value
func Bool(value bool) *bool {
	return &value
}
