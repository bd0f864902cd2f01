package service

import (
	"context"
	"fmt"
	"strconv"

	"accum_scanner/internal/modules/kvstore"
)

const cursorKey = "listings:cursor"

// Cursor — durable номер страницы краулера листингов. Единственное
// состояние, переживающее перезапуск по бюджету времени. Внутри одного
// прогона не убывает; сбрасывается только явным Reset.
type Cursor struct {
	store kvstore.Store
}

func NewCursor(store kvstore.Store) *Cursor {
	return &Cursor{store: store}
}

// Get возвращает сохранённую страницу; отсутствие ключа — страница 1.
func (c *Cursor) Get(ctx context.Context) (int, error) {
	raw, ok, err := c.store.Get(ctx, cursorKey)
	if err != nil {
		return 0, fmt.Errorf("read cursor: %w", err)
	}
	if !ok {
		return 1, nil
	}
	page, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("parse cursor %q: %w", raw, err)
	}
	return page, nil
}

func (c *Cursor) Set(ctx context.Context, page int) error {
	if err := c.store.Set(ctx, cursorKey, []byte(strconv.Itoa(page))); err != nil {
		return fmt.Errorf("write cursor: %w", err)
	}
	return nil
}

// Reset удаляет курсор; следующий Get вернёт 1.
func (c *Cursor) Reset(ctx context.Context) error {
	if err := c.store.Delete(ctx, cursorKey); err != nil {
		return fmt.Errorf("reset cursor: %w", err)
	}
	return nil
}
