//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/utils/optional"
)

// CreateUserArgs ユーザー作成引数
type CreateUserArgs struct {
	Email      string
	FullName   string
	Password   string
	Bio        string
	ProfilePic string
}

// UpdateUserArgs ユーザー情報更新引数
type UpdateUserArgs struct {
	FullName   optional.Of[string]
	Bio        optional.Of[string]
	ProfilePic optional.Of[string]
	LastOnline optional.Of[time.Time]
}

// UsersQuery GetUsers用クエリ
type UsersQuery struct {
	Exclude optional.Of[uuid.UUID]
}

// NotID 指定したユーザーを除外します
func (q UsersQuery) NotID(id uuid.UUID) UsersQuery {
	q.Exclude = optional.From(id)
	return q
}

// UserRepository ユーザーリポジトリ
type UserRepository interface {
	// CreateUser ユーザーを作成します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 既にEmailが同じユーザーが存在する場合、ErrAlreadyExistsを返します。
	// DBによるエラーを返すことがあります。
	CreateUser(args CreateUserArgs) (*model.User, error)
	// GetUser 指定したIDのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUser(id uuid.UUID) (*model.User, error)
	// GetUserByEmail 指定したメールアドレスのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUserByEmail(email string) (*model.User, error)
	// GetUsers 指定した条件を満たすユーザーを作成日時の昇順で取得します
	//
	// 成功した場合、ユーザーの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetUsers(query UsersQuery) ([]*model.User, error)
	// UpdateUser 指定したユーザーの情報を変更します
	//
	// 成功した場合、nilを返します。
	// 存在しないユーザーを指定した場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateUser(id uuid.UUID, args UpdateUserArgs) error
}
