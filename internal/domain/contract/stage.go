package contract

import (
	"strconv"
	"strings"

	vo "github.com/contracthub-inc/contracthub/internal/domain/contract/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/id"
)

// Stage is one milestone of a contract. Its id never changes; order is its
// current zero-based position and is renumbered after every removal.
type Stage struct {
	id          string
	order       int
	title       string
	date        string
	description string
	status      vo.StageStatus
	files       []uint
}

// StageInput carries already sanitized stage fields.
type StageInput struct {
	Title       string
	Date        string
	Description string
	Status      string
}

// StagePatch holds the fields of a partial update; nil means "leave as is".
type StagePatch struct {
	Title       *string
	Date        *string
	Description *string
	Status      *string
}

func (p StagePatch) IsEmpty() bool {
	return p.Title == nil && p.Date == nil && p.Description == nil && p.Status == nil
}

func ReconstructStage(stageID string, order int, title, date, description string, status vo.StageStatus, files []uint) *Stage {
	if files == nil {
		files = []uint{}
	}
	return &Stage{
		id:          stageID,
		order:       order,
		title:       title,
		date:        date,
		description: description,
		status:      status,
		files:       files,
	}
}

func (s *Stage) ID() string {
	return s.id
}

func (s *Stage) Order() int {
	return s.order
}

func (s *Stage) Title() string {
	return s.title
}

func (s *Stage) Date() string {
	return s.date
}

func (s *Stage) Description() string {
	return s.description
}

func (s *Stage) Status() vo.StageStatus {
	return s.status
}

func (s *Stage) Files() []uint {
	out := make([]uint, len(s.files))
	copy(out, s.files)
	return out
}

func (s *Stage) HasFile(assetID uint) bool {
	for _, f := range s.files {
		if f == assetID {
			return true
		}
	}
	return false
}

func (s *Stage) apply(p StagePatch) {
	if p.Title != nil {
		s.title = *p.Title
	}
	if p.Date != nil {
		s.date = *p.Date
	}
	if p.Description != nil {
		s.description = *p.Description
	}
	if p.Status != nil {
		s.status = vo.ParseStageStatus(*p.Status)
	}
}

// StageRef addresses a stage either by its stable ID or by its position.
type StageRef struct {
	ID    string
	Index int
}

func (r StageRef) ByID() bool {
	return r.ID != ""
}

func (r StageRef) String() string {
	if r.ByID() {
		return r.ID
	}
	return strconv.Itoa(r.Index)
}

// ParseStageRef accepts a decimal index ("0", "3") or a stage ID ("stg_...").
func ParseStageRef(raw string) (StageRef, error) {
	raw = strings.TrimSpace(raw)
	if id.HasPrefix(raw, id.PrefixStage) {
		return StageRef{ID: raw}, nil
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return StageRef{}, errors.NewValidationError("invalid stage reference", raw)
	}
	return StageRef{Index: idx}, nil
}
