package candidatesync

import (
	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"
)

// CanSync проверяет, достаточно ли данных для синхронизации отклика:
// фамилия и email из разобранного резюме, либо имя/фамилия и email из формы.
func CanSync(resume *atsapimodels.Resume, app dbmodels.Application) bool {
	if resume.HasSurnameAndEmail() {
		return true
	}
	hasName := app.FirstName != "" || app.LastName != ""
	return hasName && app.Email != ""
}
