package registry

import "github.com/seedfarm-org/seedfarm-go-base/types"

// Key space tags. Every record class gets its own leading byte so that
// prefix iteration over one class never crosses into another.
var (
	tagSeed = byte(0x01)
)

func makeSeedKey(tag byte, body []byte) []byte {
	key := make([]byte, 0, 1+len(body))
	key = append(key, tag)
	return append(key, body...)
}

func seedKey(id types.SeedID) []byte {
	return makeSeedKey(tagSeed, []byte(id))
}
