package kvstore

import (
	"context"

	"github.com/pkg/errors"
)

// ErrValueTooLarge — значение не влезает в потолок бекенда.
var ErrValueTooLarge = errors.New("kvstore: value exceeds max size")

// Store — строковый key/value с жёстким потолком размера одной записи.
// Поверх него собраны кэш свечей (чанкование) и курсор краулера.
type Store interface {
	// Get возвращает значение и признак наличия ключа.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// MaxValueSize — потолок в байтах для одного значения.
	MaxValueSize() int
}
