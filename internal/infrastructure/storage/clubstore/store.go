// Package clubstore holds the single source of truth for all club data: one
// aggregate document, loaded once at startup and rewritten whole after every
// successful mutation.
package clubstore

import (
	"context"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/crickethub/club-api/internal/domain/club"
	"github.com/crickethub/club-api/internal/infrastructure/storage/kv"
	"github.com/crickethub/club-api/internal/platform/logging"
)

// DefaultKey is the namespaced key the document is stored under. It matches
// the key the first-generation client used, so existing documents load as-is.
const DefaultKey = "cricket_data_v2"

// Store guards the in-memory document with a single-writer discipline: reads
// take snapshots under a shared lock, mutations run one at a time and persist
// before the writer lock is released. The naive load/mutate/save pattern is a
// lost-update hazard without this.
type Store struct {
	kv     kv.Store
	key    string
	logger *logging.Logger
	now    func() time.Time

	mu  sync.RWMutex
	doc club.Document
}

// Open loads the persisted document, or seeds and persists the built-in
// default when none exists. A document that is present but fails to decode is
// discarded in favor of seed data: a corrupt blob must not stop the club from
// booting. The corrupt value stays in storage until the next mutation
// overwrites it.
func Open(ctx context.Context, store kv.Store, key string, logger *logging.Logger) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = logging.Default()
	}

	s := &Store{
		kv:     store,
		key:    key,
		logger: logger,
		now:    time.Now,
	}

	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, crerr.Wrap(err, "load club document")
	}

	if !found {
		s.doc = club.Seed(s.now())
		if err := s.persist(ctx, s.doc); err != nil {
			return nil, crerr.Wrap(err, "persist seed document")
		}
		logger.InfoContext(ctx, "club document seeded", "key", key)
		return s, nil
	}

	var doc club.Document
	if err := sonic.Unmarshal([]byte(raw), &doc); err != nil {
		logger.WarnContext(ctx, "persisted club document is malformed, falling back to seed data",
			"key", key,
			"error", err,
		)
		s.doc = club.Seed(s.now())
		return s, nil
	}

	s.doc = doc
	return s, nil
}

// Snapshot returns a value-independent copy of the current document.
func (s *Store) Snapshot(_ context.Context) club.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.doc.Clone()
}

// Update applies fn to a working copy of the document and persists the result
// before the writer lock is released. When fn returns an error nothing is
// changed and nothing is saved.
func (s *Store) Update(ctx context.Context, fn func(doc *club.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.doc.Clone()
	if err := fn(&work); err != nil {
		return err
	}

	if err := s.persist(ctx, work); err != nil {
		return crerr.Wrap(err, "persist club document")
	}
	s.doc = work

	return nil
}

// Replace swaps the whole document, persisting the new value. Used by bulk
// import.
func (s *Store) Replace(ctx context.Context, doc club.Document) error {
	return s.Update(ctx, func(current *club.Document) error {
		*current = doc.Clone()
		return nil
	})
}

func (s *Store) persist(ctx context.Context, doc club.Document) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(doc); err != nil {
		return crerr.Wrap(err, "encode club document")
	}

	return s.kv.Set(ctx, s.key, buf.String())
}
