package atsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"ats-sync-backend/lib/ats"
	atsapimodels "ats-sync-backend/models/api/ats"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance ats.CandidateService

func NewProvider(host, clientID, clientSecret, apiUser, apiPassword string) {
	Instance = &impl{
		host:         host,
		clientID:     clientID,
		clientSecret: clientSecret,
		apiUser:      apiUser,
		apiPassword:  apiPassword,
	}
}

type impl struct {
	host         string
	clientID     string
	clientSecret string
	apiUser      string
	apiPassword  string

	tokenMu sync.Mutex
	token   atsapimodels.TokenData
}

const (
	tokenPath           = "/oauth/token"
	resumeParsePath     = "/resume/parseToCandidate"
	candidateSearchPath = "/search/Candidate"
	candidateGetPath    = "/entity/Candidate/%v"
	candidateSavePath   = "/entity/Candidate"
	candidatePutPath    = "/entity/Candidate/%v"
	attachListPath      = "/entity/Candidate/%v/%v"
	notePath            = "/entity/Candidate/%v/notes"
	filePath            = "/file/Candidate/%v"
	jobSubmissionPath   = "/entity/JobSubmission"
)

func (i *impl) getLogger(uri string) *log.Entry {
	return log.
		WithField("integration", "ATS").
		WithField("external_request", uri)
}

func (i *impl) ParseResume(ctx context.Context, fileName string, file []byte) (*atsapimodels.Resume, error) {
	uri := i.host + resumeParsePath
	logger := i.getLogger(uri).
		WithField("file_name", fileName)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса на разбор резюме")
	}
	if _, err = part.Write(file); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса на разбор резюме")
	}
	if err = writer.Close(); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса на разбор резюме")
	}

	r, _ := http.NewRequestWithContext(ctx, "POST", uri, &buf)
	r.Header.Add("Content-Type", writer.FormDataContentType())
	resp := atsapimodels.Resume{}
	err = i.sendRequest(ctx, logger, r, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *impl) FindCandidate(ctx context.Context, email, lastName string) (atsapimodels.DedupResult, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("lastName", lastName)
	uri := i.host + candidateSearchPath + "?" + query.Encode()
	logger := i.getLogger(uri)

	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	r.Header.Add("Content-Type", "application/json")
	resp := atsapimodels.SearchResponse{}
	err := i.sendRequest(ctx, logger, r, &resp)
	if err != nil {
		return atsapimodels.DedupResult{}, err
	}
	if resp.Total == 0 || len(resp.Items) == 0 {
		return atsapimodels.DedupResult{}, nil
	}
	item := resp.Items[0]
	return atsapimodels.DedupResult{
		Found:       true,
		Private:     item.IsPrivate,
		CandidateID: item.ID,
	}, nil
}

func (i *impl) FetchCandidate(ctx context.Context, id int) (*atsapimodels.Candidate, error) {
	uri := i.host + fmt.Sprintf(candidateGetPath, id)
	logger := i.getLogger(uri).
		WithField("candidate_id", id)

	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	r.Header.Add("Content-Type", "application/json")
	resp := atsapimodels.Candidate{}
	err := i.sendRequest(ctx, logger, r, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *impl) SaveCandidate(ctx context.Context, candidate atsapimodels.Candidate) (atsapimodels.SaveResult, error) {
	method := "PUT"
	uri := i.host + candidateSavePath
	if candidate.ID != 0 {
		method = "POST"
		uri = i.host + fmt.Sprintf(candidatePutPath, candidate.ID)
	}
	body, err := json.Marshal(candidate)
	if err != nil {
		return atsapimodels.SaveResult{}, errors.Wrap(err, "ошибка сериализации кандидата")
	}
	logger := i.getLogger(uri).
		WithField("request_body", string(body))

	r, _ := http.NewRequestWithContext(ctx, method, uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	resp := atsapimodels.SaveResponse{}
	err = i.sendRequest(ctx, logger, r, &resp)
	if err != nil {
		return atsapimodels.SaveResult{}, err
	}
	return atsapimodels.SaveResult{
		CandidateID: resp.ChangedEntityID,
		Changed:     resp.ChangedEntityID != 0,
	}, nil
}

func (i *impl) AttachEducation(ctx context.Context, candidate atsapimodels.Candidate) error {
	return i.attachList(ctx, candidate.ID, "education", candidate.Education)
}

func (i *impl) AttachWorkHistory(ctx context.Context, candidate atsapimodels.Candidate) error {
	return i.attachList(ctx, candidate.ID, "workHistory", candidate.WorkHistory)
}

func (i *impl) AttachCategories(ctx context.Context, candidate atsapimodels.Candidate) error {
	return i.attachList(ctx, candidate.ID, "categories", candidate.Categories)
}

func (i *impl) AttachPrimarySkills(ctx context.Context, candidate atsapimodels.Candidate) error {
	return i.attachList(ctx, candidate.ID, "primarySkills", candidate.PrimarySkills)
}

func (i *impl) AttachSecondarySkills(ctx context.Context, candidate atsapimodels.Candidate) error {
	return i.attachList(ctx, candidate.ID, "secondarySkills", candidate.SecondarySkills)
}

func (i *impl) AttachSpecialties(ctx context.Context, candidate atsapimodels.Candidate) error {
	return i.attachList(ctx, candidate.ID, "specialties", candidate.Specialties)
}

func (i *impl) AttachBusinessSectors(ctx context.Context, candidate atsapimodels.Candidate) error {
	return i.attachList(ctx, candidate.ID, "businessSectors", candidate.BusinessSectors)
}

func (i *impl) attachList(ctx context.Context, candidateID int, entity string, payload interface{}) error {
	uri := i.host + fmt.Sprintf(attachListPath, candidateID, entity)
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "ошибка сериализации %v", entity)
	}
	logger := i.getLogger(uri).
		WithField("candidate_id", candidateID).
		WithField("request_body", string(body))

	r, _ := http.NewRequestWithContext(ctx, "PUT", uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(ctx, logger, r, nil)
}

func (i *impl) AttachNote(ctx context.Context, candidateID int, text string) error {
	uri := i.host + fmt.Sprintf(notePath, candidateID)
	body, err := json.Marshal(map[string]string{"comments": text})
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации заметки")
	}
	logger := i.getLogger(uri).
		WithField("candidate_id", candidateID)

	r, _ := http.NewRequestWithContext(ctx, "PUT", uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	return i.sendRequest(ctx, logger, r, nil)
}

func (i *impl) UploadFile(ctx context.Context, candidateID int, fileName string, file []byte) (bool, error) {
	uri := i.host + fmt.Sprintf(filePath, candidateID)
	logger := i.getLogger(uri).
		WithField("candidate_id", candidateID).
		WithField("file_name", fileName)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return false, errors.Wrap(err, "ошибка формирования запроса на загрузку файла")
	}
	if _, err = part.Write(file); err != nil {
		return false, errors.Wrap(err, "ошибка формирования запроса на загрузку файла")
	}
	if err = writer.Close(); err != nil {
		return false, errors.Wrap(err, "ошибка формирования запроса на загрузку файла")
	}

	r, _ := http.NewRequestWithContext(ctx, "PUT", uri, &buf)
	r.Header.Add("Content-Type", writer.FormDataContentType())
	err = i.sendRequest(ctx, logger, r, nil)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (i *impl) SubmitToJob(ctx context.Context, candidateID, remoteJobID int, comment string) (bool, error) {
	uri := i.host + jobSubmissionPath
	body, err := json.Marshal(map[string]interface{}{
		"candidateID": candidateID,
		"jobOrderID":  remoteJobID,
		"status":      "New Lead",
		"comments":    comment,
	})
	if err != nil {
		return false, errors.Wrap(err, "ошибка сериализации отклика на вакансию")
	}
	logger := i.getLogger(uri).
		WithField("candidate_id", candidateID).
		WithField("remote_job_id", remoteJobID).
		WithField("request_body", string(body))

	r, _ := http.NewRequestWithContext(ctx, "PUT", uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	err = i.sendRequest(ctx, logger, r, nil)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (i *impl) sendRequest(ctx context.Context, logger *log.Entry, r *http.Request, resp interface{}) error {
	accessToken, err := i.getToken(ctx)
	if err != nil {
		return err
	}
	r.Header.Add("User-Agent", "AtsSync/1.0")
	r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", accessToken))
	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в ATS")
		return errors.Wrap(err, "ошибка отправки запроса в ATS")
	}
	defer response.Body.Close()
	responseBody, _ := io.ReadAll(response.Body)
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil {
			err = json.Unmarshal(responseBody, resp)
			if err != nil {
				return errors.Wrap(err, "ошибка сериализации ответа")
			}
		}
		return nil
	}

	errorResp := atsapimodels.ErrorResponse{}
	logger = logger.WithField("response_body", string(responseBody))
	if jsonErr := json.Unmarshal(responseBody, &errorResp); jsonErr != nil {
		logger.WithError(jsonErr).Error("ошибка сериализации ответа")
	}
	logger.Error("ошибка отправки запроса в ATS")
	if errorResp.ErrorMessage != "" {
		return errors.Errorf("ошибка ATS (%v): %v", response.StatusCode, errorResp.ErrorMessage)
	}
	return errors.Errorf("ошибка ATS (%v)", response.StatusCode)
}

func (i *impl) getToken(ctx context.Context) (string, error) {
	i.tokenMu.Lock()
	defer i.tokenMu.Unlock()
	if i.token.AccessToken != "" && time.Now().Before(i.token.ExpiresAt) {
		return i.token.AccessToken, nil
	}

	uri := i.host + tokenPath
	data := url.Values{}
	data.Set("client_id", i.clientID)
	data.Set("client_secret", i.clientSecret)
	data.Set("username", i.apiUser)
	data.Set("password", i.apiPassword)
	data.Set("grant_type", "password")

	r, _ := http.NewRequestWithContext(ctx, "POST", uri, strings.NewReader(data.Encode()))
	r.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения токена ATS")
	}
	defer response.Body.Close()
	responseBody, _ := io.ReadAll(response.Body)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", errors.Errorf("ошибка получения токена ATS (%v)", response.StatusCode)
	}
	token := atsapimodels.ResponseToken{}
	if err = json.Unmarshal(responseBody, &token); err != nil {
		return "", errors.Wrap(err, "ошибка сериализации токена ATS")
	}
	i.token = atsapimodels.TokenData{
		ResponseToken: token,
		ExpiresAt:     time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}
	return i.token.AccessToken, nil
}
