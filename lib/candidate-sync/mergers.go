package candidatesync

import (
	"fmt"

	"ats-sync-backend/lib/utils/helpers"
	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"
)

// Лимиты полей адреса в ATS, превышение отклоняется сервисом.
const (
	addressLineLimit = 40
	cityLimit        = 40
	stateLimit       = 30
	zipLimit         = 15
	countryNameLimit = 99
)

// MergeName переносит заполненные части имени из отклика
// и пересчитывает отображаемое имя.
func MergeName(c *atsapimodels.Candidate, app dbmodels.Application) {
	if app.NamePrefix != "" {
		c.NamePrefix = app.NamePrefix
	}
	if app.FirstName != "" {
		c.FirstName = app.FirstName
	}
	if app.MiddleName != "" {
		c.MiddleName = app.MiddleName
	}
	if app.LastName != "" {
		c.LastName = app.LastName
	}
	if app.NameSuffix != "" {
		c.NameSuffix = app.NameSuffix
	}
	c.Name = dbmodels.JoinNonEmpty(" ", c.FirstName, c.MiddleName, c.LastName)
}

// MergeEmail ведёт историю из трёх контактов.
// Совпадение с primary ничего не меняет, совпадение с secondary меняет их
// местами, новое значение сдвигает цепочку вниз (secondary -> tertiary).
func MergeEmail(c *atsapimodels.Candidate, email string) {
	if email == "" {
		return
	}
	switch email {
	case c.Email:
		return
	case c.Email2:
		c.Email2 = c.Email
		c.Email = email
	default:
		c.Email3 = c.Email2
		c.Email2 = c.Email
		c.Email = email
	}
}

// MergePhone — то же правило трёх слотов, сравнение по цифрам,
// сохраняется исходное форматирование.
func MergePhone(c *atsapimodels.Candidate, phone string) {
	if phone == "" {
		return
	}
	digits := helpers.DigitsOnly(phone)
	switch {
	case digits == helpers.DigitsOnly(c.Phone) && c.Phone != "":
		return
	case digits == helpers.DigitsOnly(c.Phone2) && c.Phone2 != "":
		c.Phone2 = c.Phone
		c.Phone = phone
	default:
		c.Phone3 = c.Phone2
		c.Phone2 = c.Phone
		c.Phone = phone
	}
}

// MergeAddress переносит адрес из отклика. Существующий основной адрес
// опускается во второй, прежний второй теряется. Оба адреса обязаны нести
// ненулевую страну, нулевой идентификатор страны ATS отклоняет.
func MergeAddress(c *atsapimodels.Candidate, app dbmodels.Application, defaultCountryID int) {
	if hasAddressData(app) {
		if !c.Address.IsEmpty() {
			c.SecondaryAddress = c.Address
		}
		c.Address = atsapimodels.Address{
			Address1:  helpers.Truncate(app.Address1, addressLineLimit),
			Address2:  helpers.Truncate(app.Address2, addressLineLimit),
			City:      helpers.Truncate(app.City, cityLimit),
			State:     helpers.Truncate(app.State, stateLimit),
			Zip:       helpers.Truncate(app.Zip, zipLimit),
			CountryID: app.CountryID,
		}
	}
	if c.Address.CountryID == 0 {
		c.Address.CountryID = defaultCountryID
	}
	if !c.SecondaryAddress.IsEmpty() && c.SecondaryAddress.CountryID == 0 {
		c.SecondaryAddress.CountryID = defaultCountryID
	}
	c.Address.CountryName = helpers.Truncate(c.Address.CountryName, countryNameLimit)
	c.SecondaryAddress.CountryName = helpers.Truncate(c.SecondaryAddress.CountryName, countryNameLimit)
}

func hasAddressData(app dbmodels.Application) bool {
	return app.Address1 != "" || app.Address2 != "" || app.City != "" ||
		app.State != "" || app.Zip != "" || app.CountryID != 0
}

// MergeComments дописывает в комментарии кандидата блок с сообщением
// из формы и блоки по каждой вакансии отклика. Существующий текст не теряется.
func MergeComments(c *atsapimodels.Candidate, app dbmodels.Application) {
	if app.Message != "" {
		c.Comments = appendBlock(c.Comments, fmt.Sprintf("Сообщение кандидата:\n%s", app.Message))
	}
	for _, job := range app.Jobs {
		c.Comments = appendBlock(c.Comments, fmt.Sprintf("Отклик на вакансию %q (ид в ATS %v)", job.Title, job.RemoteJobID))
	}
}

func appendBlock(existing, block string) string {
	if existing == "" {
		return block
	}
	return existing + "\n\n" + block
}

// MergeAttributeLists объединяет списки категоризации без удаления дублей,
// повторная синхронизация накапливает значения (поведение исходной системы).
// При создании кандидата первая категория поднимается в одиночное поле.
func MergeAttributeLists(c *atsapimodels.Candidate, app dbmodels.Application, creating bool) {
	c.Categories = append(c.Categories, app.Categories...)
	c.BusinessSectors = append(c.BusinessSectors, app.BusinessSectors...)
	c.Specialties = append(c.Specialties, app.Specialties...)
	c.PrimarySkills = append(c.PrimarySkills, app.PrimarySkills...)
	c.SecondarySkills = append(c.SecondarySkills, app.SecondarySkills...)
	if creating && c.Category == "" && len(c.Categories) > 0 {
		c.Category = c.Categories[0]
	}
}
