package candidatesync

import (
	"testing"

	"github.com/stretchr/testify/require"

	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"
)

func TestCanSync(t *testing.T) {
	t.Run(`резюме с фамилией и email достаточно`, func(t *testing.T) {
		resume := &atsapimodels.Resume{Candidate: atsapimodels.Candidate{LastName: "Петров", Email: "p@mail.ru"}}
		require.True(t, CanSync(resume, dbmodels.Application{}))
	})

	t.Run(`форма с именем и email достаточна без резюме`, func(t *testing.T) {
		app := dbmodels.Application{FirstName: "Иван", Email: "i@mail.ru"}
		require.True(t, CanSync(nil, app))

		app = dbmodels.Application{LastName: "Петров", Email: "p@mail.ru"}
		require.True(t, CanSync(nil, app))
	})

	t.Run(`без email синхронизация невозможна`, func(t *testing.T) {
		app := dbmodels.Application{FirstName: "Иван", LastName: "Петров"}
		require.False(t, CanSync(nil, app))
	})

	t.Run(`email без имени недостаточен`, func(t *testing.T) {
		app := dbmodels.Application{Email: "i@mail.ru"}
		require.False(t, CanSync(nil, app))
	})

	t.Run(`неполное резюме не проходит само по себе`, func(t *testing.T) {
		resume := &atsapimodels.Resume{Candidate: atsapimodels.Candidate{LastName: "Петров"}}
		require.False(t, CanSync(resume, dbmodels.Application{}))
	})
}
