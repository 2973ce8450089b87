package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	cvo "github.com/contracthub-inc/contracthub/internal/domain/contract/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/biztime"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

const (
	activityLimit    = 10
	activityWindow   = 90 * 24 * time.Hour
	fallbackActivity = 5
)

const (
	ActivityContractCreated = "contract_created"
	ActivityContractUpdated = "contract_updated"
	ActivityStagesProgress  = "stages_progress"
	ActivityFileUploaded    = "file_uploaded"
	ActivityProgressUpdated = "progress_updated"
	ActivityContractStatus  = "contract_status"
)

var contractStatusLabels = map[cvo.ContractStatus]string{
	cvo.ContractInProgress: "در حال انجام",
	cvo.ContractCompleted:  "انجام شده",
	cvo.ContractCancelled:  "لغو شده",
}

type GetActivitiesQuery struct {
	Identity authorization.Identity
}

// GetActivitiesUseCase derives a recent-activity feed from the caller's
// contracts, their stages and the files attached to them.
type GetActivitiesUseCase struct {
	contractRepo contract.ContractRepository
	assets       AssetReader
	authorizer   Authorizer
	logger       logger.Interface
	now          func() time.Time
}

func NewGetActivitiesUseCase(
	contractRepo contract.ContractRepository,
	assets AssetReader,
	authorizer Authorizer,
	logger logger.Interface,
) *GetActivitiesUseCase {
	return &GetActivitiesUseCase{
		contractRepo: contractRepo,
		assets:       assets,
		authorizer:   authorizer,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *GetActivitiesUseCase) Execute(ctx context.Context, query GetActivitiesQuery) ([]dto.ActivityDTO, error) {
	clientID := query.Identity.UserID
	if err := uc.authorizer.Authorize(ctx, query.Identity, authorization.ActionRead, authorization.Resource{
		Type:    authorization.ResourceContract,
		OwnerID: clientID,
	}); err != nil {
		return nil, err
	}

	contracts, err := uc.contractRepo.List(ctx, contract.ContractFilter{ClientID: &clientID})
	if err != nil {
		uc.logger.Errorw("failed to list contracts for activities", "user_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	now := uc.now()
	since := now.Add(-activityWindow)

	var feed []dto.ActivityDTO
	add := func(kind, icon, title string, at time.Time) {
		if at.Before(since) {
			return
		}
		feed = append(feed, dto.ActivityDTO{Type: kind, Icon: icon, Title: title, Time: at})
	}

	for _, c := range contracts {
		modified := !c.UpdatedAt().Equal(c.CreatedAt())

		add(ActivityContractCreated, "success", fmt.Sprintf("قرارداد «%s» ایجاد شد", c.Title()), c.CreatedAt())
		if modified {
			add(ActivityContractUpdated, "info", fmt.Sprintf("قرارداد «%s» به‌روزرسانی شد", c.Title()), c.UpdatedAt())
		}

		stages := c.Stages()
		completed, inProgress := 0, 0
		for _, s := range stages {
			switch s.Status() {
			case cvo.StageCompleted:
				completed++
			case cvo.StageInProgress:
				inProgress++
			}
		}
		if completed > 0 || inProgress > 0 {
			icon := "info"
			if completed == len(stages) {
				icon = "success"
			}
			add(ActivityStagesProgress, icon,
				fmt.Sprintf("قرارداد «%s»: %s از %s مرحله تکمیل شده",
					c.Title(), biztime.PersianNumber(int64(completed)), biztime.PersianNumber(int64(len(stages)))),
				c.UpdatedAt())
		}

		for _, s := range stages {
			for _, assetID := range s.Files() {
				a, err := uc.assets.GetByID(ctx, assetID)
				if err != nil {
					uc.logger.Debugw("skipping missing stage file in activities", "asset_id", assetID, "error", err)
					continue
				}
				add(ActivityFileUploaded, "info",
					fmt.Sprintf("فایل به مرحله «%s» قرارداد «%s» اضافه شد", s.Title(), c.Title()),
					a.CreatedAt())
			}
		}

		if modified && c.Progress() > 0 {
			add(ActivityProgressUpdated, "info",
				fmt.Sprintf("پیشرفت قرارداد «%s» به %s٪ به‌روزرسانی شد", c.Title(), biztime.PersianNumber(int64(c.Progress()))),
				c.UpdatedAt())
		}

		if label, ok := contractStatusLabels[c.Status()]; ok && modified {
			icon := "info"
			switch c.Status() {
			case cvo.ContractCompleted:
				icon = "success"
			case cvo.ContractCancelled:
				icon = "warning"
			}
			add(ActivityContractStatus, icon, fmt.Sprintf("وضعیت قرارداد «%s» به «%s» تغییر کرد", c.Title(), label), c.UpdatedAt())
		}
	}

	// quiet accounts still see their latest contracts
	if len(feed) == 0 && len(contracts) > 0 {
		recent := make([]*contract.Contract, len(contracts))
		copy(recent, contracts)
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].CreatedAt().After(recent[j].CreatedAt())
		})
		for _, c := range recent[:min(fallbackActivity, len(recent))] {
			feed = append(feed, dto.ActivityDTO{
				Type:  ActivityContractCreated,
				Icon:  "success",
				Title: fmt.Sprintf("قرارداد «%s»", c.Title()),
				Time:  c.CreatedAt(),
			})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Time.After(feed[j].Time)
	})
	if len(feed) > activityLimit {
		feed = feed[:activityLimit]
	}
	for i := range feed {
		feed[i].TimeAgo = biztime.TimeAgo(feed[i].Time, now)
	}

	if feed == nil {
		feed = []dto.ActivityDTO{}
	}
	return feed, nil
}
