package errors

// FromIO wraps a local I/O failure unchanged as KindIO. The kind of the I/O
// failure is not inspected; use errors.Is on the result, for example with
// fs.ErrNotExist, when the caller cares.
func FromIO(err error) *Error {
	if err == nil {
		return nil
	}
	return newWrapped(KindIO, err)
}

// FromJSON wraps a JSON encoding or decoding failure unchanged as KindParse.
func FromJSON(err error) *Error {
	if err == nil {
		return nil
	}
	return newWrapped(KindParse, err)
}
