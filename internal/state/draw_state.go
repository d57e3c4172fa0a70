// Package state 全应用共享的开奖视图状态（单实例，由 main 创建后注入各组件）
package state

import (
	"fmt"
	"sync"

	"LottoBoard/internal/currency"
	"LottoBoard/internal/model"
)

// FieldFunc 字段订阅回调，参数为字段当前原始值（未加载时为空串）
type FieldFunc func(value string)

// CurrencyFunc 币种订阅回调
type CurrencyFunc func(c currency.Currency)

type gameState struct {
	fetched bool
	fields  model.GameFields
	subs    map[model.Field]map[uint64]FieldFunc
}

// DrawState 保存两个游戏最新的归一化字段、所选币种和每个游戏的 fetched 标记。
//
// 写入由 mu 串行化；通知在 mu 之外派发，但由 notifyMu 串行化，保证订阅者按提交顺序
// 收到变更，且 Subscribe 的“先推当前值、再推后续写入”不会与并发提交交错。
// 回调内不能再调用 Subscribe/Commit/SetCurrency（会死锁），可以调用读方法和取消订阅。
type DrawState struct {
	notifyMu sync.Mutex
	mu       sync.RWMutex

	currency     currency.Currency
	currencySubs map[uint64]CurrencyFunc
	games        map[model.Game]*gameState
	nextID       uint64
}

// New 创建状态实例，initial 为启动时选中的币种
func New(initial currency.Currency) *DrawState {
	s := &DrawState{
		currency:     initial,
		currencySubs: make(map[uint64]CurrencyFunc),
		games:        make(map[model.Game]*gameState, len(model.Games)),
	}
	for _, g := range model.Games {
		s.games[g] = &gameState{
			fields: model.GameFields{Game: g},
			subs:   make(map[model.Field]map[uint64]FieldFunc),
		}
	}
	return s
}

// Fetched 该游戏是否已成功拉取过（进程生命周期内只会 false -> true）
func (s *DrawState) Fetched(game model.Game) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gs, ok := s.games[game]
	return ok && gs.fetched
}

// Game 返回该游戏字段的快照
func (s *DrawState) Game(game model.Game) (model.GameFields, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gs, ok := s.games[game]
	if !ok {
		return model.GameFields{Game: game}, false
	}
	return gs.fields.Clone(), gs.fetched
}

// Value 单字段原始值
func (s *DrawState) Value(game model.Game, field model.Field) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gs, ok := s.games[game]
	if !ok {
		return currency.NotLoaded
	}
	return gs.fields.Value(field)
}

// Currency 当前选中的币种
func (s *DrawState) Currency() currency.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// SetCurrency 由设置页直接写入；值的合法性由调用方保证
func (s *DrawState) SetCurrency(c currency.Currency) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.currency = c
	subs := make([]CurrencyFunc, 0, len(s.currencySubs))
	for _, fn := range s.currencySubs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}

// Commit 一次性写入某个游戏的全部字段，最后置 fetched=true。
// 字段不完整时直接返回错误，不做任何修改。
func (s *DrawState) Commit(fields *model.GameFields) error {
	if fields == nil {
		return fmt.Errorf("commit: nil fields")
	}
	if len(fields.Numbers) != model.WinningNumberCount {
		return fmt.Errorf("commit %s: expected %d numbers, got %d", fields.Game, model.WinningNumberCount, len(fields.Numbers))
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	gs, ok := s.games[fields.Game]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("commit: %w: %q", model.ErrUnknownGame, fields.Game)
	}
	gs.fields = fields.Clone()
	gs.fetched = true

	type delivery struct {
		fn    FieldFunc
		value string
	}
	var pending []delivery
	for _, f := range fields.Game.Fields() {
		value := gs.fields.Value(f)
		for _, fn := range gs.subs[f] {
			pending = append(pending, delivery{fn: fn, value: value})
		}
	}
	s.mu.Unlock()

	for _, d := range pending {
		d.fn(d.value)
	}
	return nil
}

// Subscribe 订阅某个字段：立即以当前值回调一次，之后每次写入该字段再回调。
// 返回的函数用于取消订阅，可重复调用。
func (s *DrawState) Subscribe(game model.Game, field model.Field, fn FieldFunc) (func(), error) {
	if fn == nil {
		return nil, fmt.Errorf("subscribe: nil callback")
	}
	if !game.HasField(field) {
		return nil, fmt.Errorf("subscribe: %s has no field %q", game, field)
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	gs, ok := s.games[game]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("subscribe: %w: %q", model.ErrUnknownGame, game)
	}
	s.nextID++
	id := s.nextID
	if gs.subs[field] == nil {
		gs.subs[field] = make(map[uint64]FieldFunc)
	}
	gs.subs[field][id] = fn
	current := gs.fields.Value(field)
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(gs.subs[field], id)
	}, nil
}

// SubscribeCurrency 订阅币种变化，语义同 Subscribe
func (s *DrawState) SubscribeCurrency(fn CurrencyFunc) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.currencySubs[id] = fn
	current := s.currency
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.currencySubs, id)
	}
}
