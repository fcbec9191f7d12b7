package candidatesync

import (
	"ats-sync-backend/lib/utils/helpers"
	"ats-sync-backend/models"
	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"
)

const sourceLimit = 200

// BuilderSettings — настройки, влияющие на сборку кандидата.
type BuilderSettings struct {
	SiteName         string
	CandidateStatus  string
	DefaultCountryID int
}

// CreateCandidate собирает нового кандидата: заготовка из разобранного
// резюме (если есть), поверх — данные формы.
func CreateCandidate(resume *atsapimodels.Resume, app dbmodels.Application, settings BuilderSettings) atsapimodels.Candidate {
	c := atsapimodels.Candidate{}
	if resume != nil {
		c = resume.Candidate
		if len(resume.Education) > 0 {
			c.Education = resume.Education
		}
		if len(resume.WorkHistory) > 0 {
			c.WorkHistory = resume.WorkHistory
		}
		if len(resume.SkillList) > 0 && len(c.PrimarySkills) == 0 {
			c.PrimarySkills = resume.SkillList
		}
	}
	c.EnsureLists()

	MergeName(&c, app)
	MergeEmail(&c, app.Email)
	MergePhone(&c, app.Phone)
	MergeAddress(&c, app, settings.DefaultCountryID)
	MergeComments(&c, app)

	// разбор резюме заполняет эти скаляры в формате, который схема
	// кандидата не принимает
	c.Salary = ""
	c.DayRate = ""
	c.DateAvailable = ""

	c.Source = helpers.Truncate(settings.SiteName, sourceLimit)
	c.Status = settings.CandidateStatus
	if c.Status == "" {
		c.Status = models.DefaultCandidateStatus
	}

	runPreSaveHooks(&c, app)
	MergeAttributeLists(&c, app, true)
	return c
}

// UpdateCandidate накладывает данные отклика на ранее полученного из ATS
// кандидата. Статус и источник не трогает, описание берёт из резюме только
// если у кандидата его ещё нет.
func UpdateCandidate(existing atsapimodels.Candidate, app dbmodels.Application, resume *atsapimodels.Resume, settings BuilderSettings) atsapimodels.Candidate {
	c := existing
	c.EnsureLists()

	MergeName(&c, app)
	MergeEmail(&c, app.Email)
	MergePhone(&c, app.Phone)
	MergeAddress(&c, app, settings.DefaultCountryID)
	MergeComments(&c, app)

	if c.Description == "" && resume != nil {
		c.Description = resume.Candidate.Description
	}

	runPreSaveHooks(&c, app)
	MergeAttributeLists(&c, app, false)
	return c
}
