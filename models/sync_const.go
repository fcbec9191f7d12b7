package models

// SyncStatus — персистентный статус синхронизации отклика с ATS.
// Значения хранятся в БД, повторный запуск читает последний сохранённый статус.
type SyncStatus int

const (
	SyncStatusPending             SyncStatus = -1
	SyncStatusSynced              SyncStatus = 1
	SyncStatusIncomplete          SyncStatus = 2
	SyncStatusFailed              SyncStatus = 3
	SyncStatusInsufficientData    SyncStatus = 5
	SyncStatusRemoteRecordPrivate SyncStatus = 6
)

func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusSynced ||
		s == SyncStatusInsufficientData ||
		s == SyncStatusRemoteRecordPrivate
}

// SyncStep — закрытый набор контрольных точек пайплайна.
// Шаг фиксируется перед выполнением стадии; при ошибке остаётся на последней
// выполнявшейся стадии для диагностики, очищается при успешном завершении.
type SyncStep string

const (
	SyncStepNone             SyncStep = ""
	SyncStepGetResume        SyncStep = "get-resume"
	SyncStepCheckCanSync     SyncStep = "check-can-sync"
	SyncStepExistingStart    SyncStep = "existing-start"
	SyncStepExistingFetch    SyncStep = "existing-fetch"
	SyncStepExistingUpdate   SyncStep = "existing-update"
	SyncStepExistingSave     SyncStep = "existing-candidate-save"
	SyncStepExistingComplete SyncStep = "existing-candidate-complete"
	SyncStepCreatingStart    SyncStep = "creating-start"
	SyncStepCreatingObject   SyncStep = "creating-candidate-object"
	SyncStepCreatingSave     SyncStep = "creating-candidate-save"
	SyncStepCreatingComplete SyncStep = "creating-candidate-complete"
	SyncStepEducation        SyncStep = "creating-candidate-education"
	SyncStepWorkHistory      SyncStep = "creating-candidate-work-history"
	SyncStepCategories       SyncStep = "creating-candidate-categories"
	SyncStepPrimarySkills    SyncStep = "creating-candidate-primary_skills"
	SyncStepSecondarySkills  SyncStep = "creating-candidate-secondary_skills"
	SyncStepSpecialties      SyncStep = "creating-candidate-specialties"
	SyncStepBusinessSectors  SyncStep = "creating-candidate-business_sectors"
	SyncStepSaveMessage      SyncStep = "save-message"
	SyncStepSaveFiles        SyncStep = "save-files"
	SyncStepSaveJobs         SyncStep = "save-jobs"
	SyncStepCustomActions    SyncStep = "do-custom-actions"
)
