package memory

import (
	"context"
	"time"

	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type FlowSessionRepository struct {
	cache *cache.Cache
}

func NewFlowSessionRepository(ttl time.Duration) contract.FlowSessionRepository {
	// Expired sessions are purged every 10 minutes; a user who walks away
	// simply restarts the wizard at job-status.
	c := cache.New(ttl, 10*time.Minute)
	return &FlowSessionRepository{
		cache: c,
	}
}

// Save stores a copy of the session, and Get hands back a copy of the
// stored one. Callers mutate the session they hold between Get and Save, so
// sharing the cached pointer with them would let two in-flight requests
// write the same struct; copying gives this store the same isolation the
// redis one gets from serialization.
func (r *FlowSessionRepository) Save(_ context.Context, session *store.FlowSession) error {
	stored := *session
	r.cache.Set(session.Email, &stored, cache.DefaultExpiration)
	return nil
}

func (r *FlowSessionRepository) Get(_ context.Context, email string) (*store.FlowSession, bool, error) {
	if x, found := r.cache.Get(email); found {
		session := *x.(*store.FlowSession)
		return &session, true, nil
	}
	return nil, false, nil
}

func (r *FlowSessionRepository) Delete(_ context.Context, email string) error {
	r.cache.Delete(email)
	return nil
}
