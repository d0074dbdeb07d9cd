package token_bucket

import (
	"sync"
	"time"
)

// Limiter отвечает на единственный вопрос: пропускаем запрос или нет.
type Limiter interface {
	Allow() bool
}

// TokenBucket - классический token bucket: ведро на capacity токенов,
// пополняемое со скоростью refillRate токенов в секунду. Пополнение
// ленивое, при каждом Allow, поэтому фонового тикера нет.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(time.Now())

	if b.tokens == 0 {
		return false
	}
	b.tokens--
	return true
}

// refill начисляет только целые токены; lastRefill сдвигается лишь когда
// что-то начислено, иначе медленные скорости никогда не накопили бы токен.
func (b *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	earned := int(elapsed * b.refillRate)
	if earned == 0 {
		return
	}

	b.tokens += earned
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}
