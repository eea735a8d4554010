package repository

import "context"

// プロフィールごとに持つキー
const (
	KeyCart        = "cart"
	KeyCurrentUser = "currentUser"
)

// Storage はプロフィール単位の key-value ストレージです（ブラウザのlocalStorage相当）。
// 無いキーは ErrNotFound。書き込みは最後に書いた方が勝ち。
type Storage interface {
	GetItem(ctx context.Context, profileID string, key string) (string, error)
	SetItem(ctx context.Context, profileID string, key string, value string) error
	// 無いキーの削除はエラーにしない
	RemoveItem(ctx context.Context, profileID string, key string) error
	Ping(ctx context.Context) error
}
