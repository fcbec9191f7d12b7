package candidatesync

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ats-sync-backend/models"
	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"
)

func TestCreateCandidate(t *testing.T) {
	t.Run(`резюме служит заготовкой, данные формы поверх`, func(t *testing.T) {
		resume := &atsapimodels.Resume{
			Candidate: atsapimodels.Candidate{
				FirstName:   "Иван",
				LastName:    "Петров",
				Email:       "resume@mail.ru",
				Description: "разработчик",
			},
			Education: []atsapimodels.Education{{School: "МГУ"}},
			SkillList: []string{"Go", "SQL"},
		}
		app := dbmodels.Application{Email: "form@mail.ru", Phone: "79001234567"}
		c := CreateCandidate(resume, app, BuilderSettings{SiteName: "jobs.example.com", DefaultCountryID: 1})
		require.Equal(t, "form@mail.ru", c.Email)
		require.Equal(t, "resume@mail.ru", c.Email2)
		require.Equal(t, "разработчик", c.Description)
		require.Equal(t, []atsapimodels.Education{{School: "МГУ"}}, c.Education)
		require.Equal(t, []string{"Go", "SQL"}, c.PrimarySkills)
	})

	t.Run(`скаляры разбора резюме очищаются`, func(t *testing.T) {
		resume := &atsapimodels.Resume{
			Candidate: atsapimodels.Candidate{
				Salary:        "100 000 руб",
				DayRate:       "5000",
				DateAvailable: "завтра",
			},
		}
		c := CreateCandidate(resume, dbmodels.Application{}, BuilderSettings{})
		require.Equal(t, "", c.Salary)
		require.Equal(t, "", c.DayRate)
		require.Equal(t, "", c.DateAvailable)
	})

	t.Run(`статус из настроек, иначе по умолчанию`, func(t *testing.T) {
		c := CreateCandidate(nil, dbmodels.Application{}, BuilderSettings{CandidateStatus: "Interviewing"})
		require.Equal(t, "Interviewing", c.Status)

		c = CreateCandidate(nil, dbmodels.Application{}, BuilderSettings{})
		require.Equal(t, models.DefaultCandidateStatus, c.Status)
	})

	t.Run(`источник обрезается по лимиту`, func(t *testing.T) {
		c := CreateCandidate(nil, dbmodels.Application{}, BuilderSettings{SiteName: strings.Repeat("s", 300)})
		require.Len(t, c.Source, 200)
	})

	t.Run(`списки без значений становятся пустыми, не null`, func(t *testing.T) {
		c := CreateCandidate(nil, dbmodels.Application{}, BuilderSettings{})
		require.NotNil(t, c.Categories)
		require.NotNil(t, c.BusinessSectors)
		require.NotNil(t, c.Specialties)
		require.NotNil(t, c.PrimarySkills)
		require.NotNil(t, c.SecondarySkills)
	})

	t.Run(`хуки выполняются по порядку регистрации до объединения списков`, func(t *testing.T) {
		saved := preSaveHooks
		defer func() { preSaveHooks = saved }()
		preSaveHooks = nil

		order := []string{}
		RegisterPreSaveHook(func(c *atsapimodels.Candidate, app dbmodels.Application) {
			order = append(order, "first")
			require.Empty(t, c.Categories)
		})
		RegisterPreSaveHook(func(c *atsapimodels.Candidate, app dbmodels.Application) {
			order = append(order, "second")
		})

		app := dbmodels.Application{Categories: dbmodels.StringList{"IT"}}
		c := CreateCandidate(nil, app, BuilderSettings{})
		require.Equal(t, []string{"first", "second"}, order)
		require.Equal(t, []string{"IT"}, c.Categories)
	})
}

func TestUpdateCandidate(t *testing.T) {
	t.Run(`статус и источник существующего кандидата не трогаются`, func(t *testing.T) {
		existing := atsapimodels.Candidate{Status: "Placed", Source: "referral"}
		c := UpdateCandidate(existing, dbmodels.Application{}, nil, BuilderSettings{
			SiteName:        "jobs.example.com",
			CandidateStatus: "New Lead",
		})
		require.Equal(t, "Placed", c.Status)
		require.Equal(t, "referral", c.Source)
	})

	t.Run(`описание берётся из резюме только если пустое`, func(t *testing.T) {
		resume := &atsapimodels.Resume{Candidate: atsapimodels.Candidate{Description: "из резюме"}}

		c := UpdateCandidate(atsapimodels.Candidate{}, dbmodels.Application{}, resume, BuilderSettings{})
		require.Equal(t, "из резюме", c.Description)

		c = UpdateCandidate(atsapimodels.Candidate{Description: "своё"}, dbmodels.Application{}, resume, BuilderSettings{})
		require.Equal(t, "своё", c.Description)
	})

	t.Run(`контакты ведут историю, списки накапливаются`, func(t *testing.T) {
		existing := atsapimodels.Candidate{
			Email:         "old@mail.ru",
			Categories:    []string{"IT"},
			PrimarySkills: []string{"Go"},
		}
		app := dbmodels.Application{
			Email:         "new@mail.ru",
			Categories:    dbmodels.StringList{"IT"},
			PrimarySkills: dbmodels.StringList{"SQL"},
		}
		c := UpdateCandidate(existing, app, nil, BuilderSettings{})
		require.Equal(t, "new@mail.ru", c.Email)
		require.Equal(t, "old@mail.ru", c.Email2)
		require.Equal(t, []string{"IT", "IT"}, c.Categories)
		require.Equal(t, []string{"Go", "SQL"}, c.PrimarySkills)
		require.Equal(t, "", c.Category)
	})
}
