package ndc

// Apply maps convert over values, producing a parallel slice of equal
// length and order. Each element is converted independently; there is no
// state carried between records and no I/O. Values the converter does not
// recognize come back unchanged per the codec contract.
func Apply(values []string, convert func(string) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = convert(v)
	}
	return out
}
