package candidatesync

import (
	"context"
	"fmt"

	"ats-sync-backend/config"
	"ats-sync-backend/db"
	applicationstore "ats-sync-backend/lib/application/store"
	"ats-sync-backend/lib/ats"
	atsclient "ats-sync-backend/lib/ats/client"
	syncdiag "ats-sync-backend/lib/candidate-sync/diag"
	filestorage "ats-sync-backend/lib/file-storage"
	syncsettingsstore "ats-sync-backend/lib/settings/store"
	"ats-sync-backend/lib/smtp"
	"ats-sync-backend/lib/utils/helpers"
	"ats-sync-backend/models"
	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Sync прогоняет отклик через пайплайн синхронизации с ATS.
	// Ошибок не возвращает, итог наблюдается через sync_status/sync_step/sync_log.
	Sync(ctx context.Context, applicationID string)
}

var Instance Provider

func NewHandler() {
	store := applicationstore.NewInstance(db.DB)
	Instance = &impl{
		store:         store,
		settingsStore: syncsettingsstore.NewInstance(db.DB),
		service:       atsclient.Instance,
		files:         filestorage.Instance,
		notifier:      smtp.Instance,
		sink:          syncdiag.NewInstance(store),
		senderEmail:   config.Conf.Smtp.User,
		operatorEmail: config.Conf.Ats.OperatorEmail,
	}
}

type impl struct {
	store         applicationstore.Provider
	settingsStore syncsettingsstore.Provider
	service       ats.CandidateService
	files         filestorage.Provider
	notifier      smtp.Provider
	sink          syncdiag.Provider
	senderEmail   string
	operatorEmail string
}

type syncSettings struct {
	CheckForExisting  bool
	ProcessResumes    bool
	MarkApplicationAs string
	DeleteLocalOnSync bool
	FallbackJobID     int
	DefaultCountryID  int
	SiteName          string
}

func (i *impl) getLogger(applicationID string) *log.Entry {
	return log.
		WithField("integration", "ATS").
		WithField("application_id", applicationID)
}

func (i *impl) Sync(ctx context.Context, applicationID string) {
	logger := i.getLogger(applicationID)
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения отклика")
		return
	}
	if rec == nil {
		logger.Error("отклик не найден")
		return
	}
	if rec.SyncStatus.IsTerminal() {
		logger.Debug("отклик уже в терминальном статусе")
		return
	}
	settings, err := i.loadSettings()
	if err != nil {
		logger.WithError(err).Error("ошибка чтения настроек синхронизации")
		return
	}

	p := &pipeline{
		impl:     i,
		rec:      rec,
		settings: settings,
		logger:   logger,
	}
	// единая точка обработки ошибок пайплайна: статус Failed,
	// шаг остаётся на последней стадии для диагностики
	if err = p.execute(ctx); err != nil {
		p.fail(err)
	}
}

func (i *impl) loadSettings() (syncSettings, error) {
	settings := syncSettings{}
	var err error
	read := func(code models.SyncSettingCode) string {
		if err != nil {
			return ""
		}
		var value string
		value, err = i.settingsStore.GetValueByCode(code)
		return value
	}
	settings.CheckForExisting = helpers.SettingAsBool(read(models.CheckForExistingSetting))
	settings.ProcessResumes = helpers.SettingAsBool(read(models.ProcessResumesSetting))
	settings.MarkApplicationAs = read(models.MarkApplicationAsSetting)
	settings.DeleteLocalOnSync = helpers.SettingAsBool(read(models.DeleteLocalOnSyncSetting))
	settings.FallbackJobID = helpers.SettingAsInt(read(models.FallbackJobIDSetting))
	settings.DefaultCountryID = helpers.SettingAsInt(read(models.DefaultCountryIDSetting))
	settings.SiteName = read(models.SiteNameSetting)
	if err != nil {
		return syncSettings{}, err
	}
	return settings, nil
}

type pipeline struct {
	*impl
	rec      *dbmodels.Application
	settings syncSettings
	logger   *log.Entry

	step      models.SyncStep
	partial   models.SyncStep // первая некритично упавшая стадия
	resume    *atsapimodels.Resume
	candidate atsapimodels.Candidate
	finished  bool
}

func (p *pipeline) execute(ctx context.Context) error {
	if err := p.getResume(ctx); err != nil {
		return err
	}

	if err := p.checkCanSync(); err != nil || p.finished {
		return err
	}

	if err := p.resolveCandidate(ctx); err != nil || p.finished {
		return err
	}

	p.attach(models.SyncStepEducation, func() error { return p.service.AttachEducation(ctx, p.candidate) })
	p.attach(models.SyncStepWorkHistory, func() error { return p.service.AttachWorkHistory(ctx, p.candidate) })
	p.attach(models.SyncStepCategories, func() error { return p.service.AttachCategories(ctx, p.candidate) })
	p.attach(models.SyncStepPrimarySkills, func() error { return p.service.AttachPrimarySkills(ctx, p.candidate) })
	p.attach(models.SyncStepSecondarySkills, func() error { return p.service.AttachSecondarySkills(ctx, p.candidate) })
	p.attach(models.SyncStepSpecialties, func() error { return p.service.AttachSpecialties(ctx, p.candidate) })
	p.attach(models.SyncStepBusinessSectors, func() error { return p.service.AttachBusinessSectors(ctx, p.candidate) })

	if p.rec.Message != "" {
		p.attach(models.SyncStepSaveMessage, func() error {
			return p.service.AttachNote(ctx, p.candidate.ID, p.rec.Message)
		})
	}

	p.saveFiles(ctx)
	p.saveJobs(ctx)

	if err := p.stepTo(models.SyncStepCustomActions); err != nil {
		return err
	}
	runPostSyncHooks(ctx, *p.rec, p.candidate)

	return p.finish()
}

func (p *pipeline) getResume(ctx context.Context) error {
	if err := p.stepTo(models.SyncStepGetResume); err != nil {
		return err
	}
	if !p.settings.ProcessResumes {
		return nil
	}
	file := p.rec.GetFile(dbmodels.FileSlotResume)
	if file == nil {
		return nil
	}
	data, err := p.files.GetFile(ctx, file.Path)
	if err != nil {
		return errors.Wrap(err, "не удалось получить файл резюме из хранилища")
	}
	resume, err := p.service.ParseResume(ctx, file.Name, data)
	if err != nil {
		return errors.Wrap(err, "ошибка разбора резюме в ATS")
	}
	p.resume = resume
	return nil
}

func (p *pipeline) checkCanSync() error {
	if err := p.stepTo(models.SyncStepCheckCanSync); err != nil {
		return err
	}
	if CanSync(p.resume, *p.rec) {
		return nil
	}
	p.sink.Log(p.rec.ID, log.InfoLevel, "SYNC-SKIP", "недостаточно данных для синхронизации, нужны фамилия и email")
	p.finished = true
	return p.store.SetSyncState(p.rec.ID, models.SyncStatusInsufficientData, models.SyncStepNone)
}

// resolveCandidate ищет существующего кандидата и ведёт по пути обновления
// либо создания нового.
func (p *pipeline) resolveCandidate(ctx context.Context) error {
	existingID := 0
	if p.settings.CheckForExisting {
		email, lastName := p.dedupKey()
		found, err := p.service.FindCandidate(ctx, email, lastName)
		if err != nil {
			return errors.Wrap(err, "ошибка поиска существующего кандидата")
		}
		if found.Private {
			p.sink.Log(p.rec.ID, log.WarnLevel, "SYNC-PRIVATE",
				"кандидат найден, но запись в ATS закрыта, требуется ручное вмешательство")
			p.notifyOperator()
			p.finished = true
			return p.store.SetSyncState(p.rec.ID, models.SyncStatusRemoteRecordPrivate, models.SyncStepNone)
		}
		if found.Found {
			existingID = found.CandidateID
		}
	}
	if existingID != 0 {
		return p.updateExisting(ctx, existingID)
	}
	return p.createNew(ctx)
}

func (p *pipeline) dedupKey() (email, lastName string) {
	email = p.rec.Email
	lastName = p.rec.LastName
	if email == "" && p.resume != nil {
		email = p.resume.Candidate.Email
	}
	if lastName == "" && p.resume != nil {
		lastName = p.resume.Candidate.LastName
	}
	return email, lastName
}

func (p *pipeline) builderSettings() BuilderSettings {
	return BuilderSettings{
		SiteName:         p.settings.SiteName,
		CandidateStatus:  p.settings.MarkApplicationAs,
		DefaultCountryID: p.settings.DefaultCountryID,
	}
}

func (p *pipeline) updateExisting(ctx context.Context, existingID int) error {
	if err := p.stepTo(models.SyncStepExistingStart); err != nil {
		return err
	}

	if err := p.stepTo(models.SyncStepExistingFetch); err != nil {
		return err
	}
	fetched, err := p.service.FetchCandidate(ctx, existingID)
	if err != nil {
		return errors.Wrapf(err, "ошибка получения кандидата %v из ATS", existingID)
	}
	if fetched == nil {
		return errors.Errorf("кандидат %v не найден в ATS", existingID)
	}

	if err = p.stepTo(models.SyncStepExistingUpdate); err != nil {
		return err
	}
	p.candidate = UpdateCandidate(*fetched, *p.rec, p.resume, p.builderSettings())

	if err = p.stepTo(models.SyncStepExistingSave); err != nil {
		return err
	}
	saved, err := p.service.SaveCandidate(ctx, p.candidate)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения кандидата в ATS")
	}
	if !saved.Changed {
		// ATS не подтвердил сохранение, но и не вернул ошибку —
		// ситуация уже залогирована на его стороне, путь обновления продолжаем
		p.sink.Log(p.rec.ID, log.WarnLevel, "SYNC-SAVE-RECOVERABLE",
			"ATS не подтвердил сохранение кандидата, продолжаем с прежним идентификатором")
		p.candidate.ID = existingID
	} else {
		p.candidate.ID = saved.CandidateID
	}

	if err = p.stepTo(models.SyncStepExistingComplete); err != nil {
		return err
	}
	return p.store.SetRemoteID(p.rec.ID, p.candidate.ID)
}

func (p *pipeline) createNew(ctx context.Context) error {
	if err := p.stepTo(models.SyncStepCreatingStart); err != nil {
		return err
	}

	if err := p.stepTo(models.SyncStepCreatingObject); err != nil {
		return err
	}
	p.candidate = CreateCandidate(p.resume, *p.rec, p.builderSettings())

	if err := p.stepTo(models.SyncStepCreatingSave); err != nil {
		return err
	}
	saved, err := p.service.SaveCandidate(ctx, p.candidate)
	if err != nil {
		return errors.Wrap(err, "ошибка создания кандидата в ATS")
	}
	if saved.CandidateID == 0 {
		return errors.New("ATS не вернул идентификатор созданного кандидата")
	}
	p.candidate.ID = saved.CandidateID

	if err = p.stepTo(models.SyncStepCreatingComplete); err != nil {
		return err
	}
	return p.store.SetRemoteID(p.rec.ID, p.candidate.ID)
}

// attach выполняет некритичную стадию: ошибка логируется,
// пайплайн продолжается дальше.
func (p *pipeline) attach(step models.SyncStep, call func() error) {
	if p.partialFailedCheckpoint(step) {
		return
	}
	if err := call(); err != nil {
		p.markPartial(step, err)
	}
}

func (p *pipeline) partialFailedCheckpoint(step models.SyncStep) bool {
	if err := p.stepTo(step); err != nil {
		p.markPartial(step, err)
		return true
	}
	return false
}

func (p *pipeline) markPartial(step models.SyncStep, cause error) {
	if p.partial == models.SyncStepNone {
		p.partial = step
	}
	p.sink.Log(p.rec.ID, log.ErrorLevel, "SYNC-PARTIAL",
		fmt.Sprintf("стадия %v завершилась с ошибкой: %v", step, cause))
}

func (p *pipeline) saveFiles(ctx context.Context) {
	if p.partialFailedCheckpoint(models.SyncStepSaveFiles) {
		return
	}
	for _, file := range p.rec.Files {
		if file.Synced {
			continue
		}
		data, err := p.files.GetFile(ctx, file.Path)
		if err != nil {
			p.markPartial(models.SyncStepSaveFiles, errors.Wrapf(err, "файл %v", file.Name))
			continue
		}
		ok, err := p.service.UploadFile(ctx, p.candidate.ID, file.Name, data)
		if err != nil {
			p.markPartial(models.SyncStepSaveFiles, errors.Wrapf(err, "файл %v", file.Name))
			continue
		}
		if !ok {
			p.markPartial(models.SyncStepSaveFiles, errors.Errorf("ATS отклонил файл %v", file.Name))
			continue
		}
		if err = p.store.SetFileSynced(file.ID); err != nil {
			p.logger.WithError(err).Error("не удалось отметить файл синхронизированным")
		}
	}
}

func (p *pipeline) saveJobs(ctx context.Context) {
	if p.partialFailedCheckpoint(models.SyncStepSaveJobs) {
		return
	}
	hasJobs := false
	for _, job := range p.rec.Jobs {
		if job.RemoteJobID == 0 {
			continue
		}
		hasJobs = true
		if job.Synced {
			continue
		}
		ok, err := p.service.SubmitToJob(ctx, p.candidate.ID, job.RemoteJobID, p.rec.Message)
		if err != nil {
			p.markPartial(models.SyncStepSaveJobs, errors.Wrapf(err, "вакансия %v", job.RemoteJobID))
			continue
		}
		if !ok {
			p.markPartial(models.SyncStepSaveJobs, errors.Errorf("ATS отклонил отклик на вакансию %v", job.RemoteJobID))
			continue
		}
		if err = p.store.SetJobSynced(job.ID); err != nil {
			p.logger.WithError(err).Error("не удалось отметить вакансию синхронизированной")
		}
	}
	// отклик без вакансий уходит в вакансию по умолчанию
	if !hasJobs && p.settings.FallbackJobID != 0 {
		ok, err := p.service.SubmitToJob(ctx, p.candidate.ID, p.settings.FallbackJobID, p.rec.Message)
		if err != nil {
			p.markPartial(models.SyncStepSaveJobs, errors.Wrapf(err, "вакансия по умолчанию %v", p.settings.FallbackJobID))
			return
		}
		if !ok {
			p.markPartial(models.SyncStepSaveJobs, errors.Errorf("ATS отклонил отклик на вакансию по умолчанию %v", p.settings.FallbackJobID))
		}
	}
}

func (p *pipeline) finish() error {
	if p.partial != models.SyncStepNone {
		p.sink.Log(p.rec.ID, log.WarnLevel, "SYNC-INCOMPLETE",
			fmt.Sprintf("синхронизация завершена частично, первая упавшая стадия: %v", p.partial))
		return p.store.SetSyncState(p.rec.ID, models.SyncStatusIncomplete, p.partial)
	}
	if err := p.store.SetSyncState(p.rec.ID, models.SyncStatusSynced, models.SyncStepNone); err != nil {
		return err
	}
	p.sink.Log(p.rec.ID, log.InfoLevel, "SYNC-DONE",
		fmt.Sprintf("отклик синхронизирован, кандидат %v", p.candidate.ID))
	if p.settings.DeleteLocalOnSync {
		if err := p.store.Delete(p.rec.ID); err != nil {
			p.logger.WithError(err).Error("не удалось удалить локальный отклик после синхронизации")
		} else {
			p.logger.Info("локальный отклик удалён после успешной синхронизации")
		}
	}
	return nil
}

// fail фиксирует критичную ошибку: статус Failed, шаг замораживается
// на последней выполнявшейся стадии.
func (p *pipeline) fail(cause error) {
	p.sink.Log(p.rec.ID, log.ErrorLevel, "SYNC-FAILED",
		fmt.Sprintf("шаг %v: %v", p.step, cause))
	err := p.store.Update(p.rec.ID, map[string]interface{}{
		"sync_status": models.SyncStatusFailed,
	})
	if err != nil {
		p.logger.WithError(err).Error("не удалось сохранить статус Failed")
	}
}

func (p *pipeline) stepTo(step models.SyncStep) error {
	p.step = step
	if err := p.store.SetSyncStep(p.rec.ID, step); err != nil {
		return errors.Wrapf(err, "не удалось сохранить контрольную точку %v", step)
	}
	p.logger.WithField("sync_step", step).Debug("стадия синхронизации")
	return nil
}

func (p *pipeline) notifyOperator() {
	if p.operatorEmail == "" {
		return
	}
	message := fmt.Sprintf(
		"Отклик %v (%v) совпал с закрытой записью кандидата в ATS.\nСинхронизация остановлена, требуется ручная обработка.",
		p.rec.ID, p.rec.FullName())
	err := p.notifier.SendEMail(p.senderEmail, p.operatorEmail, message, "Закрытая запись кандидата в ATS")
	if err != nil {
		p.logger.WithError(err).Error("не удалось отправить уведомление оператору")
	}
}
