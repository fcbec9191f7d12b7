package models

type SyncSettingCode string

const (
	CheckForExistingSetting  SyncSettingCode = "check-for-existing"  // искать существующего кандидата перед созданием
	ProcessResumesSetting    SyncSettingCode = "process-resumes"     // отправлять резюме на разбор в ATS
	MarkApplicationAsSetting SyncSettingCode = "mark-application-as" // статус кандидата в ATS после синхронизации
	DeleteLocalOnSyncSetting SyncSettingCode = "delete-local-on-sync"
	FallbackJobIDSetting     SyncSettingCode = "fallback-job-id"    // вакансия по умолчанию, если отклик без вакансий
	DefaultCountryIDSetting  SyncSettingCode = "default-country-id" // страна адреса по умолчанию, ноль недопустим в ATS
	SiteNameSetting          SyncSettingCode = "site-name"          // источник кандидата (source)
)

const (
	// DefaultCandidateStatus — статус нового кандидата, если настройка не задана.
	DefaultCandidateStatus = "New Lead"
)
