package dbclient

// normalizeValue converts one driver-native value into the
// engine-agnostic set: nil, bool, int64, float64, or string. Probes run
// in a fixed order — integers before floats so whole numbers never grow
// a fractional part, numerics before bool and text so "0"/"1" columns
// keep their declared type. Byte slices are the text probe: drivers
// hand text-protocol columns back as []byte. A value no probe accepts
// (dates, arrays, composites) becomes nil — an accepted information
// loss at this boundary.
func normalizeValue(v any) any {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case int64:
		return x
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case float64:
		return x
	case float32:
		return float64(x)
	case bool:
		return x
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return nil
	}
}
