package out

import "context"

// RecordStore persists independent JSON documents under distinct keys. Get
// reports a missing key through the bool, not an error; callers decide what
// a missing record means.
type RecordStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
