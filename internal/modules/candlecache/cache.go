package candlecache

import (
	"context"
	"fmt"
	"time"

	"accum_scanner/internal/models"
	"accum_scanner/internal/modules/kvstore"

	"github.com/bytedance/sonic"
)

// Cache хранит map[символ]CandleSeries в key/value сторе, у которого
// одно значение ограничено по размеру. Сериализованный payload режется
// на чанки <= chunkSize, чанки пишутся под свежим поколением, и только
// потом поколение публикуется мета-ключом. Читатель, гонящийся с
// писателем, продолжает видеть предыдущее целое поколение — рваных
// чтений нет, пока писатель один.
//
// Семантика только full-replace: частичных обновлений нет.
type Cache struct {
	store     kvstore.Store
	base      string
	chunkSize int
	now       func() time.Time
}

type meta struct {
	Gen   int64 `json:"gen"`
	Count int   `json:"count"`
}

func New(store kvstore.Store, base string, chunkSize int) (*Cache, error) {
	if chunkSize <= 0 || chunkSize > store.MaxValueSize() {
		return nil, fmt.Errorf("chunk size %d out of (0, %d]", chunkSize, store.MaxValueSize())
	}
	return &Cache{
		store:     store,
		base:      base,
		chunkSize: chunkSize,
		now:       time.Now,
	}, nil
}

func (c *Cache) metaKey() string { return c.base + ":meta" }

func (c *Cache) chunkKey(gen int64, i int) string {
	return fmt.Sprintf("%s:%d:%d", c.base, gen, i)
}

// Put полностью заменяет содержимое кэша.
func (c *Cache) Put(ctx context.Context, series map[string]models.CandleSeries) error {
	payload, err := sonic.Marshal(series)
	if err != nil {
		return fmt.Errorf("marshal candle map: %w", err)
	}

	prev, havePrev, err := c.readMeta(ctx)
	if err != nil {
		return err
	}

	gen := c.now().UnixNano()
	if havePrev && gen <= prev.Gen {
		gen = prev.Gen + 1
	}

	chunks := split(payload, c.chunkSize)
	for i, chunk := range chunks {
		if err := c.store.Set(ctx, c.chunkKey(gen, i), chunk); err != nil {
			return fmt.Errorf("write chunk %d: %w", i, err)
		}
	}

	m, err := sonic.Marshal(meta{Gen: gen, Count: len(chunks)})
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	// публикация нового поколения; до этой записи читатели видят старое
	if err := c.store.Set(ctx, c.metaKey(), m); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}

	if havePrev {
		for i := 0; i < prev.Count; i++ {
			if err := c.store.Delete(ctx, c.chunkKey(prev.Gen, i)); err != nil {
				return fmt.Errorf("drop stale chunk %d: %w", i, err)
			}
		}
	}
	return nil
}

// Get возвращает содержимое кэша; отсутствие меты — пустая мапа, не ошибка.
func (c *Cache) Get(ctx context.Context) (map[string]models.CandleSeries, error) {
	m, ok, err := c.readMeta(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]models.CandleSeries{}, nil
	}

	payload := make([]byte, 0, m.Count*c.chunkSize)
	for i := 0; i < m.Count; i++ {
		chunk, ok, err := c.store.Get(ctx, c.chunkKey(m.Gen, i))
		if err != nil {
			return nil, fmt.Errorf("read chunk %d: %w", i, err)
		}
		if !ok {
			return nil, fmt.Errorf("chunk %d of generation %d is missing", i, m.Gen)
		}
		payload = append(payload, chunk...)
	}

	var series map[string]models.CandleSeries
	if err := sonic.Unmarshal(payload, &series); err != nil {
		return nil, fmt.Errorf("unmarshal candle map: %w", err)
	}
	return series, nil
}

// Drop удаляет кэш целиком: чанки текущего поколения и мету.
func (c *Cache) Drop(ctx context.Context) error {
	m, ok, err := c.readMeta(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for i := 0; i < m.Count; i++ {
		if err := c.store.Delete(ctx, c.chunkKey(m.Gen, i)); err != nil {
			return fmt.Errorf("drop chunk %d: %w", i, err)
		}
	}
	return c.store.Delete(ctx, c.metaKey())
}

func (c *Cache) readMeta(ctx context.Context) (meta, bool, error) {
	raw, ok, err := c.store.Get(ctx, c.metaKey())
	if err != nil {
		return meta{}, false, fmt.Errorf("read meta: %w", err)
	}
	if !ok {
		return meta{}, false, nil
	}
	var m meta
	if err := sonic.Unmarshal(raw, &m); err != nil {
		return meta{}, false, fmt.Errorf("unmarshal meta: %w", err)
	}
	return m, true, nil
}

// split режет payload на чанки по size байт; последний короче.
func split(payload []byte, size int) [][]byte {
	n := (len(payload) + size - 1) / size
	if n == 0 {
		n = 1 // пустой payload — один пустой чанк, чтобы Count был честным
	}
	chunks := make([][]byte, 0, n)
	for off := 0; off < len(payload); off += size {
		end := off + size
		if end > len(payload) {
			end = len(payload)
		}
		chunks = append(chunks, payload[off:end])
	}
	if len(chunks) == 0 {
		chunks = append(chunks, []byte{})
	}
	return chunks
}
