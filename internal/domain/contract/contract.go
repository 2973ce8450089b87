package contract

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "github.com/contracthub-inc/contracthub/internal/domain/contract/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/biztime"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/utils/setutil"
)

const maxTitleLength = 255

// StageIDGenerator mints stable stage identifiers.
type StageIDGenerator func() (string, error)

// Contract is an agreement with one client together with its ordered stages.
// version is the value read from storage and is compared on every write.
type Contract struct {
	id             uint
	contractNumber string
	title          string
	description    string
	clientID       uint
	startDate      string
	endDate        string
	value          string
	progress       int
	status         vo.ContractStatus
	stages         []*Stage
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// Fields are the administrator-editable attributes of a contract.
type Fields struct {
	ContractNumber string
	Title          string
	Description    string
	ClientID       uint
	StartDate      string
	EndDate        string
	Value          string
	Progress       int
	Status         string
}

func NewContract(f Fields) (*Contract, error) {
	if err := validateFields(f); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	c := &Contract{
		stages:    []*Stage{},
		createdAt: now,
		updatedAt: now,
	}
	c.assign(f)
	return c, nil
}

func ReconstructContract(
	id uint,
	f Fields,
	stages []*Stage,
	version int,
	createdAt, updatedAt time.Time,
) *Contract {
	if stages == nil {
		stages = []*Stage{}
	}
	c := &Contract{
		id:        id,
		stages:    stages,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	c.assign(f)
	c.renumber()
	return c
}

func validateFields(f Fields) error {
	if f.Title == "" {
		return errors.NewValidationError("contract title is required")
	}
	if utf8.RuneCountInString(f.Title) > maxTitleLength {
		return errors.NewValidationError(fmt.Sprintf("contract title exceeds %d characters", maxTitleLength))
	}
	if f.ClientID == 0 {
		return errors.NewValidationError("contract client is required")
	}
	return nil
}

func (c *Contract) assign(f Fields) {
	c.contractNumber = f.ContractNumber
	c.title = f.Title
	c.description = f.Description
	c.clientID = f.ClientID
	c.startDate = f.StartDate
	c.endDate = f.EndDate
	c.value = f.Value
	c.progress = ClampProgress(f.Progress)
	c.status = vo.ParseContractStatus(f.Status)
}

// ClampProgress bounds a progress percentage to [0,100].
func ClampProgress(p int) int {
	return min(100, max(0, p))
}

func (c *Contract) ID() uint                  { return c.id }
func (c *Contract) ContractNumber() string    { return c.contractNumber }
func (c *Contract) Title() string             { return c.title }
func (c *Contract) Description() string       { return c.description }
func (c *Contract) ClientID() uint            { return c.clientID }
func (c *Contract) StartDate() string         { return c.startDate }
func (c *Contract) EndDate() string           { return c.endDate }
func (c *Contract) Value() string             { return c.value }
func (c *Contract) Progress() int             { return c.progress }
func (c *Contract) Status() vo.ContractStatus { return c.status }
func (c *Contract) Version() int              { return c.version }
func (c *Contract) CreatedAt() time.Time      { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time      { return c.updatedAt }

// Fields returns the editable attributes, used to build a partial update.
func (c *Contract) Fields() Fields {
	return Fields{
		ContractNumber: c.contractNumber,
		Title:          c.title,
		Description:    c.description,
		ClientID:       c.clientID,
		StartDate:      c.startDate,
		EndDate:        c.endDate,
		Value:          c.value,
		Progress:       c.progress,
		Status:         c.status.String(),
	}
}

func (c *Contract) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contract ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetVersion records the version stored by the repository after a write.
func (c *Contract) SetVersion(version int) {
	c.version = version
}

// Update replaces the editable attributes; progress is clamped and an
// unknown status is coerced rather than stored.
func (c *Contract) Update(f Fields) error {
	if err := validateFields(f); err != nil {
		return err
	}
	c.assign(f)
	c.touch()
	return nil
}

func (c *Contract) touch() {
	c.updatedAt = biztime.NowUTC()
}

// Stages returns the stages in order.
func (c *Contract) Stages() []*Stage {
	out := make([]*Stage, len(c.stages))
	copy(out, c.stages)
	return out
}

// AllFiles lists every asset owned by any stage.
func (c *Contract) AllFiles() []uint {
	files := setutil.NewUintSet()
	for _, s := range c.stages {
		files.AddAll(s.files)
	}
	return files.ToSlice()
}

func (c *Contract) resolve(ref StageRef) (int, error) {
	if ref.ByID() {
		for i, s := range c.stages {
			if s.id == ref.ID {
				return i, nil
			}
		}
		return -1, errors.NewNotFoundError("stage not found", ref.ID)
	}
	if ref.Index < 0 || ref.Index >= len(c.stages) {
		return -1, errors.NewNotFoundError("stage not found", fmt.Sprintf("index %d out of range", ref.Index))
	}
	return ref.Index, nil
}

// Stage resolves a reference to a stage.
func (c *Contract) Stage(ref StageRef) (*Stage, error) {
	i, err := c.resolve(ref)
	if err != nil {
		return nil, err
	}
	return c.stages[i], nil
}

// AppendStage adds a stage at the end with no files and returns its index.
func (c *Contract) AppendStage(in StageInput, gen StageIDGenerator) (int, *Stage, error) {
	if in.Title == "" {
		return -1, nil, errors.NewValidationError("stage title is required")
	}
	stageID, err := gen()
	if err != nil {
		return -1, nil, fmt.Errorf("failed to generate stage ID: %w", err)
	}

	s := &Stage{
		id:          stageID,
		order:       len(c.stages),
		title:       in.Title,
		date:        in.Date,
		description: in.Description,
		status:      vo.ParseStageStatus(in.Status),
		files:       []uint{},
	}
	c.stages = append(c.stages, s)
	c.touch()

	return len(c.stages) - 1, s, nil
}

// UpdateStage merges the provided fields. Files are never touched.
func (c *Contract) UpdateStage(ref StageRef, patch StagePatch) (*Stage, error) {
	i, err := c.resolve(ref)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, errors.NewValidationError("stage title cannot be empty")
	}
	c.stages[i].apply(patch)
	c.touch()
	return c.stages[i], nil
}

// RemoveStage drops a stage and renumbers the remaining ones. The removed
// stage is returned so its files can be released from the asset store.
func (c *Contract) RemoveStage(ref StageRef) (*Stage, error) {
	i, err := c.resolve(ref)
	if err != nil {
		return nil, err
	}
	removed := c.stages[i]
	c.stages = append(c.stages[:i:i], c.stages[i+1:]...)
	c.renumber()
	c.touch()
	return removed, nil
}

// AddFileToStage attaches an asset; attaching it twice is a no-op that
// reports added=false.
func (c *Contract) AddFileToStage(ref StageRef, assetID uint) (bool, error) {
	if assetID == 0 {
		return false, errors.NewValidationError("file reference is required")
	}
	i, err := c.resolve(ref)
	if err != nil {
		return false, err
	}
	s := c.stages[i]
	if s.HasFile(assetID) {
		return false, nil
	}
	s.files = append(s.files, assetID)
	c.touch()
	return true, nil
}

// RemoveFileFromStage detaches the file at fileIndex and returns its asset ID.
func (c *Contract) RemoveFileFromStage(ref StageRef, fileIndex int) (uint, error) {
	i, err := c.resolve(ref)
	if err != nil {
		return 0, err
	}
	s := c.stages[i]
	if fileIndex < 0 || fileIndex >= len(s.files) {
		return 0, errors.NewNotFoundError("file not found", fmt.Sprintf("index %d out of range", fileIndex))
	}
	assetID := s.files[fileIndex]
	s.files = append(s.files[:fileIndex:fileIndex], s.files[fileIndex+1:]...)
	c.touch()
	return assetID, nil
}

func (c *Contract) renumber() {
	for i, s := range c.stages {
		s.order = i
	}
}
