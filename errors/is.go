package errors

// IsCredentials checks if an error indicates that AWS credentials could not
// be resolved.
func IsCredentials(err error) bool {
	return HasKind(err, KindCredentials)
}

// IsValidation checks if an error indicates a request rejected by parameter
// validation before it was sent.
func IsValidation(err error) bool {
	return HasKind(err, KindValidation)
}

// IsHTTPDispatch checks if an error indicates a transport failure, timeout or
// cancellation.
func IsHTTPDispatch(err error) bool {
	return HasKind(err, KindHTTPDispatch)
}

// IsService checks if an error came from a remote service call, whatever its
// kind.
func IsService(err error) bool {
	return KindOf(err).IsService()
}

// IsLocal checks if an error indicates a local I/O or parse failure.
func IsLocal(err error) bool {
	switch KindOf(err) {
	case KindIO, KindParse:
		return true
	default:
		return false
	}
}
