package candidatesync

import (
	"context"

	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"
)

// PreSaveHook правит поля кандидата перед объединением списков категоризации,
// тоесть видит состояние до union-слияния.
type PreSaveHook func(c *atsapimodels.Candidate, app dbmodels.Application)

// PostSyncHook выполняется на шаге do-custom-actions, состояние пайплайна не меняет.
type PostSyncHook func(ctx context.Context, app dbmodels.Application, c atsapimodels.Candidate)

var (
	preSaveHooks  []PreSaveHook
	postSyncHooks []PostSyncHook
)

// RegisterPreSaveHook добавляет хук в конец списка, порядок регистрации — порядок вызова.
func RegisterPreSaveHook(hook PreSaveHook) {
	preSaveHooks = append(preSaveHooks, hook)
}

func RegisterPostSyncHook(hook PostSyncHook) {
	postSyncHooks = append(postSyncHooks, hook)
}

func runPreSaveHooks(c *atsapimodels.Candidate, app dbmodels.Application) {
	for _, hook := range preSaveHooks {
		hook(c, app)
	}
}

func runPostSyncHooks(ctx context.Context, app dbmodels.Application, c atsapimodels.Candidate) {
	for _, hook := range postSyncHooks {
		hook(ctx, app, c)
	}
}
