package valueobjects

type ContractStatus string

const (
	ContractInProgress ContractStatus = "in_progress"
	ContractCompleted  ContractStatus = "completed"
	ContractCancelled  ContractStatus = "cancelled"
)

var validContractStatuses = map[ContractStatus]bool{
	ContractInProgress: true,
	ContractCompleted:  true,
	ContractCancelled:  true,
}

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) IsValid() bool {
	return validContractStatuses[s]
}

// ParseContractStatus coerces unknown values to in_progress.
func ParseContractStatus(s string) ContractStatus {
	cs := ContractStatus(s)
	if !cs.IsValid() {
		return ContractInProgress
	}
	return cs
}

type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
)

var validStageStatuses = map[StageStatus]bool{
	StagePending:    true,
	StageInProgress: true,
	StageCompleted:  true,
}

func (s StageStatus) String() string {
	return string(s)
}

func (s StageStatus) IsValid() bool {
	return validStageStatuses[s]
}

// ParseStageStatus coerces unknown values to pending.
func ParseStageStatus(s string) StageStatus {
	ss := StageStatus(s)
	if !ss.IsValid() {
		return StagePending
	}
	return ss
}
