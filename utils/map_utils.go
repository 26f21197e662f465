package utils

// GetString extracts a string value from a decoded JSON object. The second
// result is false when the key is missing or holds a non-string value.
func GetString(data map[string]interface{}, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}
