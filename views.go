package optics

// Sequence views. Head and Tail insert when set; Concat appends.
var (
	Head    = core.Head()
	Tail    = core.Tail()
	Each    = core.Each()
	Concat  = core.Concat()
	Reverse = core.Reverse()
	SetAdd  = core.SetAdd()
)

// FirstItem tests for and removes the first element equal to key.
func FirstItem(key any) View { return core.FirstItem(key) }

// Item counts, tests for and removes every element equal to key.
func Item(key any) View { return core.Item(key) }

// Filter focuses the elements matching pred. Get counts them.
func Filter(pred Predicate) View { return core.Filter(pred) }

// Reject focuses the elements not matching pred.
func Reject(pred Predicate) View { return core.Reject(pred) }

// Slice focuses elements in [start, end). Negative bounds count from the end.
func Slice(start, end int) View { return core.Slice(start, end) }

// SliceFrom focuses elements from start onwards.
func SliceFrom(start int) View { return core.SliceFrom(start) }

// SetKey tests for and removes key in a set or associative container.
func SetKey(key any) View { return core.SetKey(key) }

// MapKey focuses the entry under key in an associative container.
func MapKey(key any) View { return core.MapKey(key) }

// Invoke reads the result of calling method on the value.
func Invoke(method string, args ...any) View { return core.Invoke(method, args...) }
