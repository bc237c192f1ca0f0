package prototype

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cloneable lets a type take over its own duplication instead of the default
// JSON round trip. Implementations must return a copy that shares no mutable
// state with the receiver.
type Cloneable[T any] interface {
	Clone() T
}

// Clone deep copies src. If src implements Cloneable it duplicates itself;
// everything else round-trips through JSON, so unexported fields and
// non-serializable values (channels, funcs) are not carried over.
func Clone[T any](src T) (T, error) {
	if cloneable, ok := any(src).(Cloneable[T]); ok {
		return cloneable.Clone(), nil
	}
	var tgt T
	data, err := json.Marshal(src)
	if err != nil {
		return tgt, err
	}
	if err := json.Unmarshal(data, &tgt); err != nil {
		var zero T
		return zero, err
	}
	return tgt, nil
}
