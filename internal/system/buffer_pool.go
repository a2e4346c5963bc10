package system

import (
	"image"
	"sync"
)

// FramePool переиспользует кадры *image.RGBA одного размера, чтобы не
// нагружать GC при рендеринге тысяч кадров.
type FramePool struct {
	mu    sync.RWMutex
	pools map[image.Rectangle]*sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{pools: make(map[image.Rectangle]*sync.Pool)}
}

var globalPool = NewFramePool()

// GetImage берет кадр из общего пула. Содержимое кадра не очищается.
func GetImage(rect image.Rectangle) *image.RGBA {
	return globalPool.Get(rect)
}

// PutImage возвращает кадр в общий пул.
func PutImage(img *image.RGBA) {
	globalPool.Put(img)
}

func (p *FramePool) Get(rect image.Rectangle) *image.RGBA {
	return p.pool(rect).Get().(*image.RGBA)
}

func (p *FramePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	p.mu.RLock()
	pool, ok := p.pools[img.Rect]
	p.mu.RUnlock()
	if ok {
		pool.Put(img)
	}
}

func (p *FramePool) pool(rect image.Rectangle) *sync.Pool {
	p.mu.RLock()
	pool, ok := p.pools[rect]
	p.mu.RUnlock()
	if ok {
		return pool
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// Double check
	if pool, ok = p.pools[rect]; ok {
		return pool
	}
	pool = &sync.Pool{
		New: func() any {
			return image.NewRGBA(rect)
		},
	}
	p.pools[rect] = pool
	return pool
}
