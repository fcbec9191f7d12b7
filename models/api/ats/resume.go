package atsapimodels

// Resume — результат разбора файла резюме сервисом ATS.
// Кандидат внутри уже близок к схеме ATS и служит заготовкой при создании.
type Resume struct {
	Candidate   Candidate     `json:"candidate"`
	Education   []Education   `json:"candidateEducation,omitempty"`
	WorkHistory []WorkHistory `json:"candidateWorkHistory,omitempty"`
	SkillList   []string      `json:"skillList,omitempty"`
}

func (r *Resume) HasSurnameAndEmail() bool {
	return r != nil && r.Candidate.LastName != "" && r.Candidate.Email != ""
}
