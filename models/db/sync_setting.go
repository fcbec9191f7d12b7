package dbmodels

import (
	"ats-sync-backend/models"
)

type SyncSetting struct {
	BaseModel
	Name  string                 `gorm:"type:varchar(255)"`
	Code  models.SyncSettingCode `gorm:"type:varchar(255);uniqueIndex"`
	Value string                 `gorm:"type:varchar(500)"`
}

var DefaultCheckForExistingSetting = SyncSetting{
	Name:  "поиск существующего кандидата перед созданием",
	Code:  models.CheckForExistingSetting,
	Value: "true",
}

var DefaultProcessResumesSetting = SyncSetting{
	Name:  "отправлять резюме на разбор в ATS",
	Code:  models.ProcessResumesSetting,
	Value: "true",
}

var DefaultMarkApplicationAsSetting = SyncSetting{
	Name:  "статус кандидата в ATS после синхронизации",
	Code:  models.MarkApplicationAsSetting,
	Value: models.DefaultCandidateStatus,
}

var DefaultDeleteLocalOnSyncSetting = SyncSetting{
	Name:  "удалять локальный отклик после успешной синхронизации",
	Code:  models.DeleteLocalOnSyncSetting,
	Value: "false",
}

var DefaultFallbackJobIDSetting = SyncSetting{
	Name:  "вакансия по умолчанию для откликов без вакансии",
	Code:  models.FallbackJobIDSetting,
	Value: "",
}

var DefaultDefaultCountryIDSetting = SyncSetting{
	Name:  "страна адреса по умолчанию",
	Code:  models.DefaultCountryIDSetting,
	Value: "1",
}

var DefaultSiteNameSetting = SyncSetting{
	Name:  "название сайта-источника кандидата",
	Code:  models.SiteNameSetting,
	Value: "",
}

var DefaultSettingsMap = map[models.SyncSettingCode]SyncSetting{
	models.CheckForExistingSetting:  DefaultCheckForExistingSetting,
	models.ProcessResumesSetting:    DefaultProcessResumesSetting,
	models.MarkApplicationAsSetting: DefaultMarkApplicationAsSetting,
	models.DeleteLocalOnSyncSetting: DefaultDeleteLocalOnSyncSetting,
	models.FallbackJobIDSetting:     DefaultFallbackJobIDSetting,
	models.DefaultCountryIDSetting:  DefaultDefaultCountryIDSetting,
	models.SiteNameSetting:          DefaultSiteNameSetting,
}
