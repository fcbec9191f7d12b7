package candidatesync

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	atsapimodels "ats-sync-backend/models/api/ats"
	dbmodels "ats-sync-backend/models/db"
)

func TestMergeEmail(t *testing.T) {
	t.Run(`новый email сдвигает цепочку вниз`, func(t *testing.T) {
		c := atsapimodels.Candidate{Email: "a@mail.ru", Email2: "b@mail.ru"}
		MergeEmail(&c, "c@mail.ru")
		require.Equal(t, "c@mail.ru", c.Email)
		require.Equal(t, "a@mail.ru", c.Email2)
		require.Equal(t, "b@mail.ru", c.Email3)
	})

	t.Run(`совпадение с primary ничего не меняет`, func(t *testing.T) {
		c := atsapimodels.Candidate{Email: "a@mail.ru", Email2: "b@mail.ru", Email3: "c@mail.ru"}
		MergeEmail(&c, "a@mail.ru")
		require.Equal(t, "a@mail.ru", c.Email)
		require.Equal(t, "b@mail.ru", c.Email2)
		require.Equal(t, "c@mail.ru", c.Email3)
	})

	t.Run(`возврат на прежний email меняет слоты местами, история не теряется`, func(t *testing.T) {
		c := atsapimodels.Candidate{Email: "a@mail.ru"}
		MergeEmail(&c, "b@mail.ru")
		MergeEmail(&c, "a@mail.ru")
		require.Equal(t, "a@mail.ru", c.Email)
		require.Equal(t, "b@mail.ru", c.Email2)
	})

	t.Run(`пустой email игнорируется`, func(t *testing.T) {
		c := atsapimodels.Candidate{Email: "a@mail.ru"}
		MergeEmail(&c, "")
		require.Equal(t, "a@mail.ru", c.Email)
		require.Equal(t, "", c.Email2)
	})
}

func TestMergePhone(t *testing.T) {
	t.Run(`сравнение по цифрам, форматирование не плодит дублей`, func(t *testing.T) {
		c := atsapimodels.Candidate{Phone: "+7 (900) 123-45-67"}
		MergePhone(&c, "79001234567")
		require.Equal(t, "+7 (900) 123-45-67", c.Phone)
		require.Equal(t, "", c.Phone2)
	})

	t.Run(`совпадение со вторым слотом поднимает его в первый`, func(t *testing.T) {
		c := atsapimodels.Candidate{Phone: "111", Phone2: "+7 (900) 123-45-67"}
		MergePhone(&c, "7-900-123-45-67")
		require.Equal(t, "7-900-123-45-67", c.Phone)
		require.Equal(t, "111", c.Phone2)
	})

	t.Run(`новый телефон сдвигает цепочку вниз`, func(t *testing.T) {
		c := atsapimodels.Candidate{Phone: "111", Phone2: "222"}
		MergePhone(&c, "333")
		require.Equal(t, "333", c.Phone)
		require.Equal(t, "111", c.Phone2)
		require.Equal(t, "222", c.Phone3)
	})
}

func TestMergeAddress(t *testing.T) {
	t.Run(`прежний основной адрес опускается во второй`, func(t *testing.T) {
		c := atsapimodels.Candidate{Address: atsapimodels.Address{City: "Москва", CountryID: 1}}
		app := dbmodels.Application{City: "Казань", CountryID: 1}
		MergeAddress(&c, app, 1)
		require.Equal(t, "Казань", c.Address.City)
		require.Equal(t, "Москва", c.SecondaryAddress.City)
	})

	t.Run(`нулевая страна заменяется страной по умолчанию`, func(t *testing.T) {
		c := atsapimodels.Candidate{Address: atsapimodels.Address{City: "Москва"}}
		app := dbmodels.Application{City: "Казань"}
		MergeAddress(&c, app, 3)
		require.Equal(t, 3, c.Address.CountryID)
		require.Equal(t, 3, c.SecondaryAddress.CountryID)
	})

	t.Run(`без адреса в отклике существующий адрес не трогается`, func(t *testing.T) {
		c := atsapimodels.Candidate{Address: atsapimodels.Address{City: "Москва", CountryID: 1}}
		MergeAddress(&c, dbmodels.Application{}, 3)
		require.Equal(t, "Москва", c.Address.City)
		require.Equal(t, 1, c.Address.CountryID)
		require.True(t, c.SecondaryAddress.IsEmpty())
	})

	t.Run(`поля адреса обрезаются по лимитам схемы`, func(t *testing.T) {
		app := dbmodels.Application{
			Address1: strings.Repeat("a", 60),
			City:     strings.Repeat("b", 60),
			State:    strings.Repeat("c", 60),
			Zip:      strings.Repeat("1", 60),
		}
		c := atsapimodels.Candidate{}
		MergeAddress(&c, app, 1)
		require.Len(t, c.Address.Address1, 40)
		require.Len(t, c.Address.City, 40)
		require.Len(t, c.Address.State, 30)
		require.Len(t, c.Address.Zip, 15)
	})
}

func TestMergeComments(t *testing.T) {
	t.Run(`существующий текст не теряется`, func(t *testing.T) {
		c := atsapimodels.Candidate{Comments: "старый комментарий"}
		app := dbmodels.Application{
			Message: "хочу к вам",
			Jobs:    []dbmodels.ApplicationJob{{Title: "Go разработчик", RemoteJobID: 42}},
		}
		MergeComments(&c, app)
		require.Contains(t, c.Comments, "старый комментарий")
		require.Contains(t, c.Comments, "хочу к вам")
		require.Contains(t, c.Comments, "Go разработчик")
		require.Contains(t, c.Comments, "42")
	})

	t.Run(`без сообщения и вакансий комментарии не меняются`, func(t *testing.T) {
		c := atsapimodels.Candidate{Comments: "старый комментарий"}
		MergeComments(&c, dbmodels.Application{})
		require.Equal(t, "старый комментарий", c.Comments)
	})
}

func TestMergeAttributeLists(t *testing.T) {
	t.Run(`списки объединяются без удаления дублей`, func(t *testing.T) {
		c := atsapimodels.Candidate{Categories: []string{"IT"}, PrimarySkills: []string{"Go"}}
		app := dbmodels.Application{
			Categories:    dbmodels.StringList{"IT", "Finance"},
			PrimarySkills: dbmodels.StringList{"Go"},
		}
		MergeAttributeLists(&c, app, false)
		require.Equal(t, []string{"IT", "IT", "Finance"}, c.Categories)
		require.Equal(t, []string{"Go", "Go"}, c.PrimarySkills)
	})

	t.Run(`первая категория поднимается в одиночное поле только при создании`, func(t *testing.T) {
		c := atsapimodels.Candidate{}
		app := dbmodels.Application{Categories: dbmodels.StringList{"IT", "Finance"}}
		MergeAttributeLists(&c, app, true)
		require.Equal(t, "IT", c.Category)

		c2 := atsapimodels.Candidate{}
		MergeAttributeLists(&c2, app, false)
		require.Equal(t, "", c2.Category)
	})

	t.Run(`заполненное одиночное поле категории не перетирается`, func(t *testing.T) {
		c := atsapimodels.Candidate{Category: "Finance"}
		app := dbmodels.Application{Categories: dbmodels.StringList{"IT"}}
		MergeAttributeLists(&c, app, true)
		require.Equal(t, "Finance", c.Category)
	})
}

func TestMergeName(t *testing.T) {
	t.Run(`заполненные части имени перетирают прежние, пустые нет`, func(t *testing.T) {
		c := atsapimodels.Candidate{FirstName: "Иван", LastName: "Петров", MiddleName: "Сергеевич"}
		app := dbmodels.Application{LastName: "Сидоров"}
		MergeName(&c, app)
		require.Equal(t, "Иван", c.FirstName)
		require.Equal(t, "Сидоров", c.LastName)
		require.Equal(t, "Иван Сергеевич Сидоров", c.Name)
	})
}
