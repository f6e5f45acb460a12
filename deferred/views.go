package deferred

// Sequence and container views in deferred mode.
var (
	Head    = core.Head()
	Tail    = core.Tail()
	Each    = core.Each()
	Concat  = core.Concat()
	Reverse = core.Reverse()
	SetAdd  = core.SetAdd()
)

// FirstItem focuses the first element equal to key.
func FirstItem(key any) View { return core.FirstItem(key) }

// Item focuses every element equal to key; get counts them.
func Item(key any) View { return core.Item(key) }

// Filter focuses the elements pred accepts.
func Filter(pred Predicate) View { return core.Filter(pred) }

// Reject focuses the elements pred refuses.
func Reject(pred Predicate) View { return core.Reject(pred) }

// Slice focuses the range [start, end) of a sequence.
func Slice(start, end int) View { return core.Slice(start, end) }

// SliceFrom focuses a sequence from start to its end.
func SliceFrom(start int) View { return core.SliceFrom(start) }

// SetKey focuses membership of key in a set container.
func SetKey(key any) View { return core.SetKey(key) }

// MapKey focuses the entry under key in an associative container.
func MapKey(key any) View { return core.MapKey(key) }

// Invoke focuses the result of calling method with args on the value.
func Invoke(method string, args ...any) View { return core.Invoke(method, args...) }
