package dbmodels

import (
	"time"

	"ats-sync-backend/models"
)

// Application — локально сохранённый отклик на вакансию.
// sync_status/sync_step/sync_log после создания пишет только оркестратор.
type Application struct {
	BaseModel
	NamePrefix string `gorm:"type:varchar(50)"`
	FirstName  string `gorm:"type:varchar(255)"`
	MiddleName string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	NameSuffix string `gorm:"type:varchar(50)"`
	Email      string `gorm:"type:varchar(255);index"`
	Phone      string `gorm:"type:varchar(255)"`
	Address1   string `gorm:"type:varchar(255)"`
	Address2   string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(255)"`
	State      string `gorm:"type:varchar(255)"`
	Zip        string `gorm:"type:varchar(50)"`
	CountryID  int
	Message    string
	IP         string `gorm:"type:varchar(50)"`

	PrivacyConsent   bool
	PrivacyConsentAt *time.Time

	Categories      StringList `gorm:"type:text"`
	BusinessSectors StringList `gorm:"type:text"`
	Specialties     StringList `gorm:"type:text"`
	PrimarySkills   StringList `gorm:"type:text"`
	SecondarySkills StringList `gorm:"type:text"`

	SyncStatus models.SyncStatus `gorm:"index;default:-1"`
	SyncStep   models.SyncStep   `gorm:"type:varchar(100)"`
	SyncLog    string

	// идентификатор кандидата в ATS после первого успешного создания
	RemoteID int

	Jobs  []ApplicationJob  `gorm:"foreignKey:ApplicationID"`
	Files []ApplicationFile `gorm:"foreignKey:ApplicationID"`
}

// ApplicationJob — вакансия, на которую подан отклик.
type ApplicationJob struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Title         string `gorm:"type:varchar(255)"`
	LocalJobID    string `gorm:"type:varchar(36)"`
	RemoteJobID   int
	Synced        bool
}

// ApplicationFile — загруженный файл отклика в файловом хранилище.
type ApplicationFile struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Slot          string `gorm:"type:varchar(50)"` // resume, letter и тд
	Name          string `gorm:"type:varchar(255)"`
	Path          string `gorm:"type:varchar(500)"` // ключ объекта в s3
	ContentType   string `gorm:"type:varchar(100)"`
	Synced        bool
}

const (
	FileSlotResume = "resume"
	FileSlotLetter = "letter"
)

// GetFile возвращает файл по логическому слоту.
func (a Application) GetFile(slot string) *ApplicationFile {
	for idx := range a.Files {
		if a.Files[idx].Slot == slot {
			return &a.Files[idx]
		}
	}
	return nil
}

func (a Application) FullName() string {
	return JoinNonEmpty(" ", a.FirstName, a.MiddleName, a.LastName)
}
