package codec

import (
	"fmt"
	"sync"
)

// codecRegistry 编解码后端注册中心
type codecRegistry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

var registry = &codecRegistry{
	codecs: make(map[string]Codec),
}

// Register 注册编解码后端，名称重复或为空时返回错误
func Register(c Codec) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	name := c.Name()
	if name == "" {
		return fmt.Errorf("codec name cannot be empty")
	}
	if _, exists := registry.codecs[name]; exists {
		return fmt.Errorf("codec %s already registered", name)
	}

	registry.codecs[name] = c
	return nil
}

// Get 按名称获取后端
func Get(name string) (Codec, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	c, exists := registry.codecs[name]
	if !exists {
		return nil, fmt.Errorf("codec %s not found", name)
	}
	return c, nil
}

// MustGet 按名称获取后端，不存在时 panic
func MustGet(name string) Codec {
	c, err := Get(name)
	if err != nil {
		panic(err)
	}
	return c
}

// List 列出已注册的后端名称
func List() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.codecs))
	for name := range registry.codecs {
		names = append(names, name)
	}
	return names
}
