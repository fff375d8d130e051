package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "flow_session:"

// FlowSessionRepository keeps wizard hints in Redis so sessions survive
// process restarts and are shared across handler instances.
type FlowSessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFlowSessionRepository(rdb *redis.Client, ttl time.Duration) contract.FlowSessionRepository {
	return &FlowSessionRepository{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *FlowSessionRepository) Save(ctx context.Context, session *store.FlowSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+session.Email, data, r.ttl).Err()
}

func (r *FlowSessionRepository) Get(ctx context.Context, email string) (*store.FlowSession, bool, error) {
	data, err := r.rdb.Get(ctx, keyPrefix+email).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var session store.FlowSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false, err
	}
	return &session, true, nil
}

func (r *FlowSessionRepository) Delete(ctx context.Context, email string) error {
	return r.rdb.Del(ctx, keyPrefix+email).Err()
}
