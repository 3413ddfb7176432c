package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"festival-lineup/internal/model"
	apperrors "festival-lineup/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	eventsIndexKey = "events:index"
	eventsSeqKey   = "events:seq"
)

// Lua status codes shared by the create scripts.
const (
	luaOK         = 1
	luaDuplicate  = -1
	luaBlankField = -2
)

// 建立活動 (使用Lua腳本確保原子性)
// KEYS: event hash, index zset, sequence counter
// ARGV: id, field1, value1, field2, value2, ...
var createEventScript = redis.NewScript(`
	local event_key = KEYS[1]
	local index_key = KEYS[2]
	local seq_key = KEYS[3]

	-- 1. 必填欄位不可為空白
	for i = 2, #ARGV, 2 do
		if string.match(ARGV[i + 1], '%S') == nil then
			return -2
		end
	end

	-- 2. 寫入 hash 並以遞增序號排入索引
	local seq = redis.call('INCR', seq_key)
	redis.call('HSET', event_key, unpack(ARGV, 2))
	redis.call('ZADD', index_key, seq, ARGV[1])

	return 1
`)

// 更新活動：不存在時回傳 nil，否則回傳更新後的 HGETALL 結果
var updateEventScript = redis.NewScript(`
	local event_key = KEYS[1]

	if redis.call('EXISTS', event_key) == 0 then
		return nil
	end

	for i = 1, #ARGV, 2 do
		if ARGV[i] ~= 'updatedAt' and string.match(ARGV[i + 1], '%S') == nil then
			return redis.error_reply('blank field ' .. ARGV[i])
		end
	end

	redis.call('HSET', event_key, unpack(ARGV))
	return redis.call('HGETALL', event_key)
`)

var deleteEventScript = redis.NewScript(`
	local deleted = redis.call('DEL', KEYS[1])
	redis.call('ZREM', KEYS[2], ARGV[1])
	return deleted
`)

type RedisEventRepository struct {
	client *redis.Client
}

func NewRedisEventRepository(client *redis.Client) EventRepository {
	return &RedisEventRepository{
		client: client,
	}
}

// 活動 hash key
func (r *RedisEventRepository) getEventKey(id string) string {
	return fmt.Sprintf("event:%s", id)
}

func (r *RedisEventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	args := []interface{}{id,
		"name", event.Name,
		"genre", event.Genre,
		"image", event.Image,
		"description", event.Description,
		"websiteUrl", event.WebsiteURL,
		"createdAt", now,
		"updatedAt", now,
	}

	code, err := createEventScript.Run(ctx, r.client,
		[]string{r.getEventKey(id), eventsIndexKey, eventsSeqKey}, args...).Int()
	if err != nil {
		return nil, err
	}
	if code == luaBlankField {
		return nil, fmt.Errorf("%w: blank field", apperrors.ErrInvalidInput)
	}

	return r.FindByID(ctx, id)
}

func (r *RedisEventRepository) List(ctx context.Context) ([]*model.Event, error) {
	ids, err := r.client.ZRange(ctx, eventsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.getEventKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		// 索引與 hash 之間的短暫不一致：略過已刪除的項目
		if len(fields) == 0 {
			continue
		}
		event, err := eventFromHash(ids[i], fields)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *RedisEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrEventNotFound
	}

	fields, err := r.client.HGetAll(ctx, r.getEventKey(id)).Result()
	if err != nil {
		return nil, err
	}

	// 檢查 key 是否存在
	if len(fields) == 0 {
		return nil, apperrors.ErrEventNotFound
	}

	return eventFromHash(id, fields)
}

func (r *RedisEventRepository) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrEventNotFound
	}

	fields := params.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args := make([]interface{}, 0, len(fields)*2+2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	args = append(args, "updatedAt", time.Now().UTC().Format(time.RFC3339Nano))

	result, err := updateEventScript.Run(ctx, r.client, []string{r.getEventKey(id)}, args...).Slice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrEventNotFound
		}
		var redisErr redis.Error
		if errors.As(err, &redisErr) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, redisErr.Error())
		}
		return nil, err
	}

	hash, err := pairsToMap(result)
	if err != nil {
		return nil, err
	}
	return eventFromHash(id, hash)
}

func (r *RedisEventRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrEventNotFound
	}

	deleted, err := deleteEventScript.Run(ctx, r.client,
		[]string{r.getEventKey(id), eventsIndexKey}, id).Int()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func eventFromHash(id string, fields map[string]string) (*model.Event, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields["createdAt"])
	if err != nil {
		return nil, fmt.Errorf("invalid createdAt for event %s: %v", id, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updatedAt"])
	if err != nil {
		return nil, fmt.Errorf("invalid updatedAt for event %s: %v", id, err)
	}

	return &model.Event{
		ID:          id,
		Name:        fields["name"],
		Genre:       fields["genre"],
		Image:       fields["image"],
		Description: fields["description"],
		WebsiteURL:  fields["websiteUrl"],
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// pairsToMap converts a flat HGETALL reply returned from a script into a map.
func pairsToMap(reply []interface{}) (map[string]string, error) {
	if len(reply)%2 != 0 {
		return nil, errors.New("unexpected result")
	}
	m := make(map[string]string, len(reply)/2)
	for i := 0; i < len(reply); i += 2 {
		k, ok1 := reply[i].(string)
		v, ok2 := reply[i+1].(string)
		if !ok1 || !ok2 {
			return nil, errors.New("unexpected result")
		}
		m[k] = v
	}
	return m, nil
}
