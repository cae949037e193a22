package enum

// validateMin ensures got ≥ MinLength. On failure it returns sentinel wrapped
// as "<method>: got <got>: <sentinel>".
//
// Complexity: O(1).
func validateMin(method string, sentinel error, got int) error {
	if got < MinLength {
		return enumErrorf(method, sentinel, "got %d", got)
	}

	return nil
}
