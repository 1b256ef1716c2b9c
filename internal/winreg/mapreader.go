package winreg

// MapReader serves values from an in-memory table. It backs tests and dry
// runs on platforms without a registry.
type MapReader struct {
	// Values maps `path\name` to the stored entries.
	Values map[string][]string

	// Errors maps `path\name` to an injected read error, checked before
	// Values.
	Errors map[string]error
}

// ReadMultiString looks the value up in the table. Absent entries return
// ErrNotFound.
func (m MapReader) ReadMultiString(_ RootKey, path, name string) ([]string, error) {
	key := path + `\` + name
	if err, ok := m.Errors[key]; ok {
		return nil, err
	}
	vals, ok := m.Values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return vals, nil
}
