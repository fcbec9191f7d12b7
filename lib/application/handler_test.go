package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ats-sync-backend/models"
	applicantapimodels "ats-sync-backend/models/api/applicant"
	dbmodels "ats-sync-backend/models/db"
)

type fakeStore struct {
	created *dbmodels.Application
	files   []dbmodels.ApplicationFile
	rec     *dbmodels.Application
}

func (f *fakeStore) Create(rec dbmodels.Application) (string, error) {
	f.created = &rec
	return "app-1", nil
}

func (f *fakeStore) CreateFile(rec dbmodels.ApplicationFile) (string, error) {
	f.files = append(f.files, rec)
	return "file-1", nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Application, error) { return f.rec, nil }

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeStore) SetSyncState(id string, status models.SyncStatus, step models.SyncStep) error {
	return nil
}
func (f *fakeStore) SetSyncStep(id string, step models.SyncStep) error     { return nil }
func (f *fakeStore) AppendSyncLog(id string, line string) error            { return nil }
func (f *fakeStore) SetJobSynced(jobID string) error                       { return nil }
func (f *fakeStore) SetFileSynced(fileID string) error                     { return nil }
func (f *fakeStore) SetRemoteID(id string, remoteID int) error             { return nil }
func (f *fakeStore) ListForSync(limit int) ([]dbmodels.Application, error) { return nil, nil }
func (f *fakeStore) Delete(id string) error                                { return nil }

type fakeFiles struct {
	stored map[string][]byte
}

func (f *fakeFiles) Store(ctx context.Context, applicationID, fileName, contentType string, file []byte) (string, error) {
	key := applicationID + "/" + fileName
	f.stored[key] = file
	return key, nil
}

func (f *fakeFiles) GetFile(ctx context.Context, key string) ([]byte, error) { return f.stored[key], nil }
func (f *fakeFiles) MakeBucket(ctx context.Context) error                    { return nil }

func TestCreateFromSubmission(t *testing.T) {
	t.Run(`отклик создаётся со статусом ожидания синхронизации`, func(t *testing.T) {
		store := &fakeStore{}
		i := impl{store: store, files: &fakeFiles{stored: map[string][]byte{}}}
		data := applicantapimodels.SubmissionData{
			FirstName:      "Иван",
			LastName:       "Петров",
			Email:          "ivan@mail.ru",
			PrivacyConsent: true,
			Jobs: []applicantapimodels.SubmissionJob{
				{Title: "Go разработчик", LocalJobID: "42", RemoteJobID: 142},
			},
		}
		id, err := i.CreateFromSubmission(data, "10.0.0.1")
		require.Nil(t, err)
		require.Equal(t, "app-1", id)
		require.Equal(t, models.SyncStatusPending, store.created.SyncStatus)
		require.Equal(t, "10.0.0.1", store.created.IP)
		require.NotNil(t, store.created.PrivacyConsentAt)
		require.Len(t, store.created.Jobs, 1)
		require.Equal(t, 142, store.created.Jobs[0].RemoteJobID)
	})

	t.Run(`без согласия отметка времени не ставится`, func(t *testing.T) {
		store := &fakeStore{}
		i := impl{store: store, files: &fakeFiles{stored: map[string][]byte{}}}
		_, err := i.CreateFromSubmission(applicantapimodels.SubmissionData{Email: "i@mail.ru"}, "")
		require.Nil(t, err)
		require.Nil(t, store.created.PrivacyConsentAt)
	})
}

func TestAttachFile(t *testing.T) {
	t.Run(`файл кладётся в хранилище, ключ сохраняется в записи`, func(t *testing.T) {
		rec := &dbmodels.Application{}
		rec.ID = "app-1"
		store := &fakeStore{rec: rec}
		files := &fakeFiles{stored: map[string][]byte{}}
		i := impl{store: store, files: files}

		err := i.AttachFile(context.TODO(), "app-1", dbmodels.FileSlotResume, "cv.pdf", "application/pdf", []byte("pdf"))
		require.Nil(t, err)
		require.Len(t, store.files, 1)
		require.Equal(t, "app-1/cv.pdf", store.files[0].Path)
		require.Equal(t, dbmodels.FileSlotResume, store.files[0].Slot)
		require.Equal(t, []byte("pdf"), files.stored["app-1/cv.pdf"])
	})

	t.Run(`файл к несуществующему отклику отклоняется`, func(t *testing.T) {
		store := &fakeStore{}
		i := impl{store: store, files: &fakeFiles{stored: map[string][]byte{}}}
		err := i.AttachFile(context.TODO(), "missing", dbmodels.FileSlotResume, "cv.pdf", "", nil)
		require.NotNil(t, err)
	})
}
