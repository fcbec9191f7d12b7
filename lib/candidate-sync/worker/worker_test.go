package syncworker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ats-sync-backend/models"
	dbmodels "ats-sync-backend/models/db"
)

type fakeStore struct {
	list []dbmodels.Application
}

func (f *fakeStore) Create(rec dbmodels.Application) (string, error)         { return rec.ID, nil }
func (f *fakeStore) CreateFile(rec dbmodels.ApplicationFile) (string, error) { return rec.ID, nil }
func (f *fakeStore) GetByID(id string) (*dbmodels.Application, error)        { return nil, nil }
func (f *fakeStore) Update(id string, updMap map[string]interface{}) error   { return nil }
func (f *fakeStore) SetSyncState(id string, status models.SyncStatus, step models.SyncStep) error {
	return nil
}
func (f *fakeStore) SetSyncStep(id string, step models.SyncStep) error     { return nil }
func (f *fakeStore) AppendSyncLog(id string, line string) error            { return nil }
func (f *fakeStore) SetJobSynced(jobID string) error                       { return nil }
func (f *fakeStore) SetFileSynced(fileID string) error                     { return nil }
func (f *fakeStore) SetRemoteID(id string, remoteID int) error             { return nil }
func (f *fakeStore) ListForSync(limit int) ([]dbmodels.Application, error) { return f.list, nil }
func (f *fakeStore) Delete(id string) error                                { return nil }

type fakeSyncer struct {
	synced []string
}

func (f *fakeSyncer) Sync(ctx context.Context, applicationID string) {
	f.synced = append(f.synced, applicationID)
}

type fakeLease struct {
	held     map[string]bool
	released []string
}

func (f *fakeLease) Acquire(ctx context.Context, applicationID string) (bool, error) {
	if f.held[applicationID] {
		return false, nil
	}
	f.held[applicationID] = true
	return true, nil
}

func (f *fakeLease) Release(ctx context.Context, applicationID string) error {
	f.released = append(f.released, applicationID)
	delete(f.held, applicationID)
	return nil
}

func newRec(id string) dbmodels.Application {
	rec := dbmodels.Application{SyncStatus: models.SyncStatusPending}
	rec.ID = id
	return rec
}

func TestWorkerHandle(t *testing.T) {
	t.Run(`отклики обрабатываются по одному под арендой`, func(t *testing.T) {
		store := &fakeStore{list: []dbmodels.Application{newRec("app-1"), newRec("app-2")}}
		syncer := &fakeSyncer{}
		lease := &fakeLease{held: map[string]bool{}}
		i := impl{store: store, syncer: syncer, lease: lease}

		i.handle(context.TODO())

		require.Equal(t, []string{"app-1", "app-2"}, syncer.synced)
		require.Equal(t, []string{"app-1", "app-2"}, lease.released)
		require.Empty(t, lease.held)
	})

	t.Run(`занятая аренда пропускает отклик, остальные обрабатываются`, func(t *testing.T) {
		store := &fakeStore{list: []dbmodels.Application{newRec("app-1"), newRec("app-2")}}
		syncer := &fakeSyncer{}
		lease := &fakeLease{held: map[string]bool{"app-1": true}}
		i := impl{store: store, syncer: syncer, lease: lease}

		i.handle(context.TODO())

		require.Equal(t, []string{"app-2"}, syncer.synced)
		require.Equal(t, []string{"app-2"}, lease.released)
	})

	t.Run(`завершённый контекст останавливает проход`, func(t *testing.T) {
		store := &fakeStore{list: []dbmodels.Application{newRec("app-1")}}
		syncer := &fakeSyncer{}
		lease := &fakeLease{held: map[string]bool{}}
		i := impl{store: store, syncer: syncer, lease: lease}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		i.handle(ctx)

		require.Empty(t, syncer.synced)
	})
}
