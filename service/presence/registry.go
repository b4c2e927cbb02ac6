//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package presence

import (
	"sort"
	"sync"

	"github.com/gofrs/uuid"
)

// Handle ユーザーの接続への参照
//
// Registryは比較演算子でHandleの同一性を判定するので、比較可能な型(ポインタなど)で実装すること
type Handle interface {
	// Key 接続を識別する文字列
	Key() string
	// Send イベントを接続に書き込みます
	//
	// 書き込みはブロックせず、送信できなかった場合はエラーを返します
	Send(eventType string, body interface{}) error
}

// Registry オンラインユーザーと接続の対応表
type Registry interface {
	// Register userIDにhを登録します
	//
	// 既に登録されている場合は上書きします。上書きされた古い接続は閉じません。
	// uuid.Nilは登録されません。
	Register(userID uuid.UUID, h Handle)
	// Deregister userIDの登録を削除します
	//
	// 現在登録されている接続がhと一致する場合のみ削除し、trueを返します。
	Deregister(userID uuid.UUID, h Handle) bool
	// Lookup userIDに登録されている接続を返します
	Lookup(userID uuid.UUID) (Handle, bool)
	// Snapshot 登録されている全てのuserIDを返します
	Snapshot() []uuid.UUID
	// Len 登録されているユーザー数を返します
	Len() int
}

type memoryRegistry struct {
	entries map[uuid.UUID]Handle
	mu      sync.RWMutex
}

// NewRegistry インメモリのRegistryを生成します
func NewRegistry() Registry {
	return &memoryRegistry{
		entries: map[uuid.UUID]Handle{},
	}
}

func (r *memoryRegistry) Register(userID uuid.UUID, h Handle) {
	if userID == uuid.Nil || h == nil {
		return
	}
	r.mu.Lock()
	r.entries[userID] = h
	r.mu.Unlock()
}

func (r *memoryRegistry) Deregister(userID uuid.UUID, h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.entries[userID]
	if !ok || cur != h {
		return false
	}
	delete(r.entries, userID)
	return true
}

func (r *memoryRegistry) Lookup(userID uuid.UUID) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.entries[userID]
	return h, ok
}

func (r *memoryRegistry) Snapshot() []uuid.UUID {
	r.mu.RLock()
	ids := make([]uuid.UUID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

func (r *memoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
