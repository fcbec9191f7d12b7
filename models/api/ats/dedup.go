package atsapimodels

// DedupResult — итог поиска существующего кандидата по email и фамилии.
type DedupResult struct {
	Found       bool `json:"found"`
	Private     bool `json:"private"` // запись закрыта в ATS, нужно ручное вмешательство
	CandidateID int  `json:"candidateId"`
}

// SaveResult — итог сохранения кандидата. Нулевой ID без ошибки означает
// обработанную на стороне ATS ситуацию, для пути обновления она не фатальна.
type SaveResult struct {
	CandidateID int  `json:"candidateId"`
	Changed     bool `json:"changed"`
}

type SearchResponse struct {
	Total int `json:"total"`
	Items []struct {
		ID        int  `json:"id"`
		IsPrivate bool `json:"isPrivate"`
	} `json:"items"`
}

type SaveResponse struct {
	ChangedEntityID int    `json:"changedEntityId"`
	ChangeType      string `json:"changeType"`
}

type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    int    `json:"errorCode"`
}
