package cartstore

import (
	"sync"
	"time"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/cart"
)

// 放置セッションを溜め込まないよう、このアクセス回数ごとに全体を掃除する
const sweepEvery = 256

// ブラウザセッション単位のカート置き場（メモリのみ、DB保存なし）。
// カートの寿命はセッションcookieと同じ。TTLを過ぎたものは同じキーが
// 触られたときと、sweepEveryアクセスごとの全体掃除で捨てる。
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]*entry
	ttl   time.Duration
	now   func() time.Time
	ops   int
}

type entry struct {
	cart      *cart.Cart
	touchedAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get はセッションのカートのコピーを返す。無ければ空のカートを作る。
// 共有ポインタは外に出さない。返ったカートはロック外で読んでよい。
func (s *MemoryStore) Get(sessionID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maybeSweep()

	e, ok := s.carts[sessionID]
	if !ok || s.now().Sub(e.touchedAt) > s.ttl {
		e = &entry{cart: cart.New()}
		s.carts[sessionID] = e
	}
	e.touchedAt = s.now()

	return e.cart.Clone()
}

// Mutate はロックを持ったままカートを書き換える。
// ハンドラから同じセッションに同時アクセスされてもレースしない。
func (s *MemoryStore) Mutate(sessionID string, fn func(c *cart.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maybeSweep()

	e, ok := s.carts[sessionID]
	if !ok || s.now().Sub(e.touchedAt) > s.ttl {
		e = &entry{cart: cart.New()}
		s.carts[sessionID] = e
	}
	e.touchedAt = s.now()

	fn(e.cart)
}

// Delete はセッションのカートを捨てる（チェックアウト後など）。
func (s *MemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// TTL切れの全セッションを落とす。ロックを持った状態で呼ぶ。
// 一度きりの訪問者のカートもここで回収される。
func (s *MemoryStore) maybeSweep() {
	s.ops++
	if s.ops < sweepEvery {
		return
	}
	s.ops = 0

	deadline := s.now().Add(-s.ttl)
	for id, e := range s.carts {
		if e.touchedAt.Before(deadline) {
			delete(s.carts, id)
		}
	}
}
