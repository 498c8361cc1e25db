package geocode

import (
	"sync"

	"github.com/adnan/news_geo_api/internal/news"
)

// Cache — потокобезопасный кэш результатов геокодирования.
// Живёт ровно столько, сколько процесс: записи не вытесняются и не
// сохраняются на диск. Ключ — имя места в том виде, в каком его извлёк
// экстрактор (с учётом регистра).
type Cache struct {
	mu      sync.RWMutex
	entries map[string]news.Place
}

// NewCache создаёт пустой кэш.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]news.Place)}
}

// Get возвращает закэшированное место по имени.
func (c *Cache) Get(name string) (news.Place, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	place, ok := c.entries[name]
	return place, ok
}

// Put сохраняет разрешённое место под исходным именем.
func (c *Cache) Put(name string, place news.Place) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[name] = place
}

// Len возвращает число закэшированных имён.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
