package ats

import (
	"context"

	atsapimodels "ats-sync-backend/models/api/ats"
)

// CandidateService — контракт удалённого сервиса ATS, используемый пайплайном.
type CandidateService interface {
	ParseResume(ctx context.Context, fileName string, file []byte) (*atsapimodels.Resume, error)
	FindCandidate(ctx context.Context, email, lastName string) (atsapimodels.DedupResult, error)
	FetchCandidate(ctx context.Context, id int) (*atsapimodels.Candidate, error)
	SaveCandidate(ctx context.Context, candidate atsapimodels.Candidate) (atsapimodels.SaveResult, error)

	AttachEducation(ctx context.Context, candidate atsapimodels.Candidate) error
	AttachWorkHistory(ctx context.Context, candidate atsapimodels.Candidate) error
	AttachCategories(ctx context.Context, candidate atsapimodels.Candidate) error
	AttachPrimarySkills(ctx context.Context, candidate atsapimodels.Candidate) error
	AttachSecondarySkills(ctx context.Context, candidate atsapimodels.Candidate) error
	AttachSpecialties(ctx context.Context, candidate atsapimodels.Candidate) error
	AttachBusinessSectors(ctx context.Context, candidate atsapimodels.Candidate) error

	AttachNote(ctx context.Context, candidateID int, text string) error
	UploadFile(ctx context.Context, candidateID int, fileName string, file []byte) (ok bool, err error)
	SubmitToJob(ctx context.Context, candidateID, remoteJobID int, comment string) (ok bool, err error)
}
