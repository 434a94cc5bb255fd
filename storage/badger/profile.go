// Copyright 2025 Saleslens Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/saleslens/saleslens/core"
	"github.com/saleslens/saleslens/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend     *Backend
	ownsBackend bool
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a repository on an existing backend.
// The caller remains responsible for closing the backend.
func NewProfileRepository(backend *Backend) *ProfileRepository {
	return &ProfileRepository{backend: backend}
}

// NewRepository opens a BadgerDB database at filePath and returns a profile
// repository that owns it. Closing the repository closes the database.
func NewRepository(filePath string) (storage.ProfileRepository, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return &ProfileRepository{backend: backend, ownsBackend: true}, nil
}

// Close closes the underlying database if this repository owns it.
func (r *ProfileRepository) Close() error {
	if r.ownsBackend {
		return r.backend.Close()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// FindSimilar delegates to the backend.
func (r *ProfileRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*storage.ProfileMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// PutProfile stores a profile, replacing any existing profile for the same URL.
func (r *ProfileRepository) PutProfile(ctx context.Context, profile *core.CompanyProfile) error {
	if err := core.ValidateProfile(profile); err != nil {
		return err
	}

	id := core.IDFromContent(profile.URL)
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(id)

		// Drop the old fetch-time index entry on overwrite
		old, err := readProfile(tx, key)
		if err != nil {
			return err
		}
		if old != nil && !old.FetchedAt.Equal(profile.FetchedAt) {
			if err := tx.Delete(makeProfileDateKey(old.FetchedAt, id)); err != nil {
				return err
			}
		}

		if err := tx.Set(key, storage.MarshalProfile(profile)); err != nil {
			return err
		}
		if err := tx.Set(makeProfileDateKey(profile.FetchedAt, id), storage.MarshalID(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetProfile retrieves the cached profile for a URL.
func (r *ProfileRepository) GetProfile(ctx context.Context, url string) (*core.CompanyProfile, error) {
	var result *core.CompanyProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(core.IDFromContent(url))
		var err error
		result, err = readProfile(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// DeleteProfile removes the cached profile for a URL.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, url string) error {
	id := core.IDFromContent(url)
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProfileKey(id)

		profile, err := readProfile(tx, key)
		if err != nil {
			return err
		}
		if profile == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(makeProfileDateKey(profile.FetchedAt, id)); err != nil {
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListProfiles retrieves all cached profiles, oldest fetch first.
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]*core.CompanyProfile, error) {
	return r.listByFetchTime(func(fetchedAt time.Time) bool { return false })
}

// ListProfilesFetchedBefore retrieves profiles fetched strictly before the
// cutoff, oldest fetch first.
func (r *ProfileRepository) ListProfilesFetchedBefore(ctx context.Context, cutoff time.Time) ([]*core.CompanyProfile, error) {
	return r.listByFetchTime(func(fetchedAt time.Time) bool {
		return !fetchedAt.Before(cutoff)
	})
}

// listByFetchTime walks the fetch-time index in ascending order until stop
// returns true for a profile's fetch time.
func (r *ProfileRepository) listByFetchTime(stop func(time.Time) bool) ([]*core.CompanyProfile, error) {
	var results []*core.CompanyProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		prefix := []byte(profileDatePrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			profile, err := readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if profile == nil {
				continue
			}
			if stop(profile.FetchedAt) {
				break
			}
			results = append(results, profile)
		}
		return nil
	}, false)
	return results, err
}

// readProfile reads a profile record from the transaction.
// Returns nil without error when the key is absent.
func readProfile(tx *badger.Txn, key []byte) (*core.CompanyProfile, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var profile *core.CompanyProfile
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		profile, unmarshalErr = storage.UnmarshalProfile(val)
		return unmarshalErr
	})
	return profile, err
}
