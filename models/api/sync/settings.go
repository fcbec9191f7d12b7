package syncapimodels

import (
	"ats-sync-backend/models"
	dbmodels "ats-sync-backend/models/db"
)

type SyncSettingView struct {
	Code  models.SyncSettingCode `json:"code"`
	Name  string                 `json:"name"`
	Value string                 `json:"value"`
}

func ConvertSetting(rec dbmodels.SyncSetting) SyncSettingView {
	return SyncSettingView{
		Code:  rec.Code,
		Name:  rec.Name,
		Value: rec.Value,
	}
}

type UpdateSyncSettingValue struct {
	Value string `json:"value"`
}

func (u UpdateSyncSettingValue) Validate() error {
	return nil
}
