package repository

import (
	"context"
	"fmt"
	"time"

	"festival-lineup/internal/model"
	apperrors "festival-lineup/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	usersIndexKey = "users:index"
	usersEmailKey = "users:email"
	usersSeqKey   = "users:seq"
)

// 報名 (使用Lua腳本確保原子性)
// 1. HSETNX 佔用 email，已存在則視為重複報名
// 2. 檢查必填欄位
// 3. 寫入 hash 並排入索引
// KEYS: user hash, email index hash, index zset, sequence counter
// ARGV: id, email, field1, value1, ...
var registerUserScript = redis.NewScript(`
	local user_key = KEYS[1]
	local email_key = KEYS[2]
	local index_key = KEYS[3]
	local seq_key = KEYS[4]

	local user_id = ARGV[1]
	local email = ARGV[2]

	for i = 3, #ARGV, 2 do
		if string.match(ARGV[i + 1], '%S') == nil then
			return -2
		end
	end

	if redis.call('HSETNX', email_key, email, user_id) == 0 then
		return -1
	end

	local seq = redis.call('INCR', seq_key)
	redis.call('HSET', user_key, unpack(ARGV, 3))
	redis.call('ZADD', index_key, seq, user_id)

	return 1
`)

type RedisUserRepository struct {
	client *redis.Client
}

func NewRedisUserRepository(client *redis.Client) UserRepository {
	return &RedisUserRepository{
		client: client,
	}
}

func (r *RedisUserRepository) getUserKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func (r *RedisUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	stamp := now.Format(time.RFC3339Nano)

	code, err := registerUserScript.Run(ctx, r.client,
		[]string{r.getUserKey(id), usersEmailKey, usersIndexKey, usersSeqKey},
		id, user.Email,
		"name", user.Name,
		"email", user.Email,
		"mobile", user.Mobile,
		"createdAt", stamp,
		"updatedAt", stamp,
	).Int()
	if err != nil {
		return nil, err
	}

	switch code {
	case luaOK:
		return &model.User{
			ID:        id,
			Name:      user.Name,
			Email:     user.Email,
			Mobile:    user.Mobile,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	case luaDuplicate:
		return nil, apperrors.ErrEmailAlreadyRegistered
	case luaBlankField:
		return nil, fmt.Errorf("%w: blank field", apperrors.ErrInvalidInput)
	default:
		return nil, fmt.Errorf("unexpected register result %d", code)
	}
}

func (r *RedisUserRepository) List(ctx context.Context) ([]*model.User, error) {
	ids, err := r.client.ZRange(ctx, usersIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.getUserKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, fields["createdAt"])
		updatedAt, _ := time.Parse(time.RFC3339Nano, fields["updatedAt"])
		users = append(users, &model.User{
			ID:        ids[i],
			Name:      fields["name"],
			Email:     fields["email"],
			Mobile:    fields["mobile"],
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
	}
	return users, nil
}
