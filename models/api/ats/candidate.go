package atsapimodels

// Candidate — представление кандидата в ATS.
type Candidate struct {
	ID         int    `json:"id,omitempty"`
	NamePrefix string `json:"namePrefix,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	NameSuffix string `json:"nameSuffix,omitempty"`
	Name       string `json:"name,omitempty"`

	// до трёх поколений контактов, primary/secondary/tertiary
	Email  string `json:"email,omitempty"`
	Email2 string `json:"email2,omitempty"`
	Email3 string `json:"email3,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Phone2 string `json:"phone2,omitempty"`
	Phone3 string `json:"phone3,omitempty"`

	Address          Address `json:"address,omitempty"`
	SecondaryAddress Address `json:"secondaryAddress,omitempty"`

	Comments    string `json:"comments,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Source      string `json:"source,omitempty"`
	Category    string `json:"category,omitempty"`

	Categories      []string `json:"categories"`
	BusinessSectors []string `json:"businessSectors"`
	Specialties     []string `json:"specialties"`
	PrimarySkills   []string `json:"primarySkills"`
	SecondarySkills []string `json:"secondarySkills"`

	Education   []Education   `json:"education,omitempty"`
	WorkHistory []WorkHistory `json:"workHistory,omitempty"`

	// скалярные поля, которые разбор резюме заполняет некорректно
	// для схемы кандидата; перед сохранением очищаются
	Salary        string `json:"salary,omitempty"`
	DayRate       string `json:"dayRate,omitempty"`
	DateAvailable string `json:"dateAvailable,omitempty"`

	IsPrivate bool `json:"isPrivate,omitempty"`
}

type Address struct {
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	CountryID   int    `json:"countryID,omitempty"`
	CountryName string `json:"countryName,omitempty"`
}

func (a Address) IsEmpty() bool {
	return a.Address1 == "" && a.Address2 == "" && a.City == "" &&
		a.State == "" && a.Zip == "" && a.CountryID == 0
}

type Education struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Major     string `json:"major,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type WorkHistory struct {
	CompanyName string `json:"companyName,omitempty"`
	Title       string `json:"title,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Comments    string `json:"comments,omitempty"`
}

// EnsureLists приводит отсутствующие списки к пустым,
// ATS не принимает null вместо списка.
func (c *Candidate) EnsureLists() {
	if c.Categories == nil {
		c.Categories = []string{}
	}
	if c.BusinessSectors == nil {
		c.BusinessSectors = []string{}
	}
	if c.Specialties == nil {
		c.Specialties = []string{}
	}
	if c.PrimarySkills == nil {
		c.PrimarySkills = []string{}
	}
	if c.SecondarySkills == nil {
		c.SecondarySkills = []string{}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.WorkHistory == nil {
		c.WorkHistory = []WorkHistory{}
	}
}
