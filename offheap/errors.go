package offheap

type mapError string

var _ error = mapError("")

func (err mapError) Error() string {
	return string(err)
}

const (
	ErrZeroCapacity = mapError("capacity is mandatory")
	ErrZeroValue    = mapError("value must be at least 1 byte")
	ErrFull         = mapError("table is full")
	ErrTooLarge     = mapError("layout does not fit the key type")
)
