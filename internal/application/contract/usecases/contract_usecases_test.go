package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	cvo "github.com/contracthub-inc/contracthub/internal/domain/contract/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

const clientID = uint(7)

func seedContract(t *testing.T, repo *memoryContractRepository, stageTitles ...string) *contract.Contract {
	t.Helper()
	c, err := contract.NewContract(contract.Fields{Title: "قرارداد طراحی", ClientID: clientID, Value: "1000"})
	require.NoError(t, err)
	n := 0
	for _, title := range stageTitles {
		_, _, err := c.AppendStage(contract.StageInput{Title: title}, func() (string, error) {
			n++
			return fmt.Sprintf("stg_seed%d", n), nil
		})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

// concurrentAppend makes the first write lose the version check against a
// writer that appended a stage in between.
func concurrentAppend(repo *memoryContractRepository) func(c *contract.Contract) {
	fired := false
	return func(c *contract.Contract) {
		if fired {
			return
		}
		fired = true
		stored := repo.stored(c.ID())
		_, _, _ = stored.AppendStage(contract.StageInput{Title: "concurrent"}, func() (string, error) { return "stg_other", nil })
		stored.SetVersion(stored.Version() + 1)
	}
}

func TestAppendStageUseCase(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "base")
	uc := NewAppendStageUseCase(repo, newTestAuthorizer(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), AppendStageCommand{
		Identity:    adminIdentity(),
		ContractID:  c.ID(),
		Title:       " <i>فاز ۲</i> ",
		Description: "line 1\nline 2",
		Status:      "unknown",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Index)
	stages := repo.stored(c.ID()).Stages()
	require.Len(t, stages, 2)
	assert.Equal(t, "فاز ۲", stages[1].Title())
	assert.Equal(t, "line 1\nline 2", stages[1].Description())
	assert.Equal(t, cvo.StagePending, stages[1].Status())
	assert.Empty(t, stages[1].Files())
	assert.Equal(t, result.StageID, stages[1].ID())
}

func TestAppendStageUseCase_RetriesAfterConcurrentWrite(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "base")
	repo.BeforeUpdate = concurrentAppend(repo)
	uc := NewAppendStageUseCase(repo, newTestAuthorizer(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), AppendStageCommand{Identity: adminIdentity(), ContractID: c.ID(), Title: "mine"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Index)
	stages := repo.stored(c.ID()).Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, "concurrent", stages[1].Title())
	assert.Equal(t, "mine", stages[2].Title())
}

func TestAppendStageUseCase_Rejections(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo)
	uc := NewAppendStageUseCase(repo, newTestAuthorizer(), logger.NewNopLogger())
	ctx := context.Background()

	_, err := uc.Execute(ctx, AppendStageCommand{Identity: adminIdentity(), ContractID: 999, Title: "x"})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, AppendStageCommand{Identity: adminIdentity(), ContractID: c.ID(), Title: "<b></b>"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, AppendStageCommand{Identity: clientIdentity(clientID), ContractID: c.ID(), Title: "x"})
	assert.True(t, errors.IsForbiddenError(err))

	assert.Empty(t, repo.stored(c.ID()).Stages())
}

func TestUpdateStageUseCase_ConcurrentWritePolicy(t *testing.T) {
	title := "renamed"

	tests := []struct {
		name      string
		ref       contract.StageRef
		wantError bool
	}{
		{"by index fails with conflict", contract.StageRef{Index: 0}, true},
		{"by stable id is retried", contract.StageRef{ID: "stg_seed1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryContractRepository()
			c := seedContract(t, repo, "a")
			repo.BeforeUpdate = concurrentAppend(repo)
			uc := NewUpdateStageUseCase(repo, newTestAuthorizer(), logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), UpdateStageCommand{
				Identity:   adminIdentity(),
				ContractID: c.ID(),
				Ref:        tt.ref,
				Title:      &title,
			})

			stored := repo.stored(c.ID()).Stages()
			if tt.wantError {
				assert.True(t, errors.IsConflictError(err))
				assert.Equal(t, "a", stored[0].Title())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "renamed", stored[0].Title())
			assert.Len(t, stored, 2)
		})
	}
}

func TestUpdateStageUseCase_MergesOnlyProvidedFields(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "a")
	uc := NewUpdateStageUseCase(repo, newTestAuthorizer(), logger.NewNopLogger())
	ctx := context.Background()

	status := "completed"
	got, err := uc.Execute(ctx, UpdateStageCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 0}, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, "completed", got.Status)

	_, err = uc.Execute(ctx, UpdateStageCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 0}})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, UpdateStageCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 3}, Status: &status})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteStageUseCase_ReleasesFilesBestEffort(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "first", "second")
	stored := repo.stored(c.ID())
	for _, f := range []uint{11, 12} {
		_, err := stored.AddFileToStage(contract.StageRef{Index: 0}, f)
		require.NoError(t, err)
	}
	assets := &mockAssetStore{
		DeleteFunc: func(ctx context.Context, assetID uint) error {
			if assetID == 11 {
				return errors.NewUpstreamError("object store unavailable")
			}
			return nil
		},
	}
	uc := NewDeleteStageUseCase(repo, assets, newTestAuthorizer(), logger.NewNopLogger())

	err := uc.Execute(context.Background(), DeleteStageCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 0}})

	require.NoError(t, err)
	assert.Equal(t, []uint{11, 12}, assets.deleted)
	stages := repo.stored(c.ID()).Stages()
	require.Len(t, stages, 1)
	assert.Equal(t, "second", stages[0].Title())
	assert.Equal(t, 0, stages[0].Order())

	err = uc.Execute(context.Background(), DeleteStageCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 1}})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddStageFileUseCase(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "a")
	uc := NewAddStageFileUseCase(repo, &mockAssetStore{}, newTestAuthorizer(), logger.NewNopLogger())
	ctx := context.Background()
	cmd := AddStageFileCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 0}, AssetID: 5}

	added, err := uc.Execute(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, repo.updates)

	added, err = uc.Execute(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, []uint{5}, repo.stored(c.ID()).Stages()[0].Files())

	missing := &mockAssetStore{
		ResolveFunc: func(ctx context.Context, assetID uint) (*asset.View, error) {
			return nil, errors.NewNotFoundError("asset not found")
		},
	}
	_, err = NewAddStageFileUseCase(repo, missing, newTestAuthorizer(), logger.NewNopLogger()).Execute(ctx, cmd)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRemoveStageFileUseCase(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "a")
	stored := repo.stored(c.ID())
	for _, f := range []uint{1, 2, 3} {
		_, err := stored.AddFileToStage(contract.StageRef{Index: 0}, f)
		require.NoError(t, err)
	}
	assets := &mockAssetStore{}
	uc := NewRemoveStageFileUseCase(repo, assets, newTestAuthorizer(), logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, RemoveStageFileCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 0}, FileIndex: 1}))
	assert.Equal(t, []uint{2}, assets.deleted)
	assert.Equal(t, []uint{1, 3}, repo.stored(c.ID()).Stages()[0].Files())

	err := uc.Execute(ctx, RemoveStageFileCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 0}, FileIndex: 5})
	assert.True(t, errors.IsNotFoundError(err))

	err = uc.Execute(ctx, RemoveStageFileCommand{Identity: adminIdentity(), ContractID: c.ID(), Ref: contract.StageRef{Index: 2}, FileIndex: 0})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUploadStageFileUseCase(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "a")
	var upload asset.Upload
	assets := &mockAssetStore{
		StoreFunc: func(ctx context.Context, u asset.Upload) (*asset.Asset, error) {
			upload = u
			a, err := asset.NewAsset(u.Folder+"/x.pdf", u.FileName, u.ContentType, u.Size, u.UploadedBy)
			if err != nil {
				return nil, err
			}
			return a, a.SetID(40)
		},
	}
	uc := NewUploadStageFileUseCase(repo, assets, newTestAuthorizer(), logger.NewNopLogger())

	view, err := uc.Execute(context.Background(), UploadStageFileCommand{
		Identity:    adminIdentity(),
		ContractID:  c.ID(),
		Ref:         contract.StageRef{ID: "stg_seed1"},
		FileName:    "x.pdf",
		ContentType: "application/pdf",
		Size:        10,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(40), view.ID)
	assert.Equal(t, fmt.Sprintf("contracts/%d", c.ID()), upload.Folder)
	assert.Equal(t, []uint{40}, repo.stored(c.ID()).Stages()[0].Files())

	_, err = uc.Execute(context.Background(), UploadStageFileCommand{
		Identity:   adminIdentity(),
		ContractID: c.ID(),
		Ref:        contract.StageRef{Index: 4},
		FileName:   "x.pdf",
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestContractAdminLifecycle(t *testing.T) {
	repo := newMemoryContractRepository()
	auth := newTestAuthorizer()
	assets := &mockAssetStore{}
	ctx := context.Background()

	created, err := NewCreateContractUseCase(repo, auth, logger.NewNopLogger()).Execute(ctx, CreateContractCommand{
		Identity: adminIdentity(),
		ContractInput: ContractInput{
			Title:    "قرارداد",
			ClientID: clientID,
			Progress: 140,
			Status:   "paused",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, created.Progress)
	assert.Equal(t, "in_progress", created.Status)

	updated, err := NewUpdateContractUseCase(repo, auth, logger.NewNopLogger()).Execute(ctx, UpdateContractCommand{
		Identity:   adminIdentity(),
		ContractID: created.ID,
		ContractInput: ContractInput{
			Title:    "قرارداد نهایی",
			ClientID: clientID,
			Progress: 50,
			Status:   "completed",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "قرارداد نهایی", updated.Title)
	assert.Equal(t, "completed", updated.Status)

	stored := repo.stored(created.ID)
	_, _, err = stored.AppendStage(contract.StageInput{Title: "s"}, func() (string, error) { return "stg_s", nil })
	require.NoError(t, err)
	_, err = stored.AddFileToStage(contract.StageRef{Index: 0}, 90)
	require.NoError(t, err)

	_, err = NewCreateContractUseCase(repo, auth, logger.NewNopLogger()).Execute(ctx, CreateContractCommand{
		Identity:      clientIdentity(clientID),
		ContractInput: ContractInput{Title: "x", ClientID: clientID},
	})
	assert.True(t, errors.IsForbiddenError(err))

	del := NewDeleteContractUseCase(repo, assets, auth, logger.NewNopLogger())
	require.NoError(t, del.Execute(ctx, DeleteContractCommand{Identity: adminIdentity(), ContractID: created.ID}))
	assert.Equal(t, []uint{90}, assets.deleted)
	assert.True(t, errors.IsNotFoundError(del.Execute(ctx, DeleteContractCommand{Identity: adminIdentity(), ContractID: created.ID})))
}

func TestGetContractUseCase_OwnershipIsChecked(t *testing.T) {
	repo := newMemoryContractRepository()
	c := seedContract(t, repo, "a")
	uc := NewGetContractUseCase(repo, &mockAssetStore{}, newTestAuthorizer(), logger.NewNopLogger())
	ctx := context.Background()

	got, err := uc.Execute(ctx, GetContractQuery{Identity: clientIdentity(clientID), ContractID: c.ID()})
	require.NoError(t, err)
	require.Len(t, got.Stages, 1)
	assert.NotNil(t, got.Stages[0].Files)

	_, err = uc.Execute(ctx, GetContractQuery{Identity: clientIdentity(99), ContractID: c.ID()})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = uc.Execute(ctx, GetContractQuery{Identity: adminIdentity(), ContractID: c.ID()})
	assert.NoError(t, err)
}

func TestListContractsUseCase_ScopesByRole(t *testing.T) {
	repo := newMemoryContractRepository()
	seedContract(t, repo)
	other, err := contract.NewContract(contract.Fields{Title: "other", ClientID: 8})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), other))
	uc := NewListContractsUseCase(repo, newTestAuthorizer(), logger.NewNopLogger())

	mine, err := uc.Execute(context.Background(), ListContractsQuery{Identity: clientIdentity(clientID)})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, clientID, mine[0].ClientID)

	all, err := uc.Execute(context.Background(), ListContractsQuery{Identity: adminIdentity()})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetDashboardUseCase(t *testing.T) {
	repo := newMemoryContractRepository()
	for _, f := range []contract.Fields{
		{Title: "a", ClientID: clientID, Value: "۱۲۰,۰۰۰,۰۰۰ ریال", Status: "completed"},
		{Title: "b", ClientID: clientID, Value: "5,000 تومان", Status: "in_progress"},
		{Title: "c", ClientID: clientID, Value: "توافقی", Status: "cancelled"},
		{Title: "d", ClientID: 8, Value: "999"},
	} {
		c, err := contract.NewContract(f)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), c))
	}

	var seen ticket.TicketFilter
	tickets := &mockTicketLister{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			seen = filter
			return []*ticket.Ticket{{}, {}}, nil
		},
	}
	uc := NewGetDashboardUseCase(repo, tickets, newTestAuthorizer(), logger.NewNopLogger())

	stats, err := uc.Execute(context.Background(), GetDashboardQuery{Identity: clientIdentity(clientID)})

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 2, stats.OpenTickets)
	assert.Equal(t, "120005000", stats.TotalValue)
	// answered and in-progress tickets are not counted as open
	require.NotNil(t, seen.Status)
	assert.Equal(t, "open", seen.Status.String())
	assert.Equal(t, clientID, *seen.OwnerID)
}

func TestGetActivitiesUseCase(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryContractRepository()

	put := func(c *contract.Contract) {
		repo.nextID = c.ID()
		repo.contracts[c.ID()] = c
	}

	// created long ago, edited five minutes ago, one completed stage with a file
	put(contract.ReconstructContract(1,
		contract.Fields{Title: "الف", ClientID: clientID, Progress: 40, Status: "completed"},
		[]*contract.Stage{
			contract.ReconstructStage("stg_a", 0, "طراحی", "", "", cvo.StageCompleted, []uint{70}),
			contract.ReconstructStage("stg_b", 1, "اجرا", "", "", cvo.StagePending, nil),
		},
		3, now.AddDate(-1, 0, 0), now.Add(-5*time.Minute)))

	assets := &mockAssetReader{
		GetByIDFunc: func(ctx context.Context, assetID uint) (*asset.Asset, error) {
			return asset.ReconstructAsset(assetID, "k", "f.pdf", "application/pdf", 1, 1, now.Add(-2*time.Hour)), nil
		},
	}
	uc := NewGetActivitiesUseCase(repo, assets, newTestAuthorizer(), logger.NewNopLogger())
	uc.now = func() time.Time { return now }

	feed, err := uc.Execute(context.Background(), GetActivitiesQuery{Identity: clientIdentity(clientID)})
	require.NoError(t, err)

	types := make([]string, 0, len(feed))
	for _, a := range feed {
		types = append(types, a.Type)
	}
	assert.NotContains(t, types, ActivityContractCreated)
	assert.Contains(t, types, ActivityContractUpdated)
	assert.Contains(t, types, ActivityStagesProgress)
	assert.Contains(t, types, ActivityProgressUpdated)
	assert.Contains(t, types, ActivityContractStatus)
	assert.Equal(t, ActivityFileUploaded, feed[len(feed)-1].Type)
	assert.Equal(t, "۲ ساعت پیش", feed[len(feed)-1].TimeAgo)
	assert.Equal(t, "۵ دقیقه پیش", feed[0].TimeAgo)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Time.After(feed[i-1].Time))
	}
}

func TestGetActivitiesUseCase_FallbackAndLimit(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("old untouched contracts still show", func(t *testing.T) {
		repo := newMemoryContractRepository()
		old := now.AddDate(-1, 0, 0)
		repo.nextID = 1
		repo.contracts[1] = contract.ReconstructContract(1, contract.Fields{Title: "قدیمی", ClientID: clientID}, nil, 1, old, old)
		uc := NewGetActivitiesUseCase(repo, &mockAssetReader{}, newTestAuthorizer(), logger.NewNopLogger())
		uc.now = func() time.Time { return now }

		feed, err := uc.Execute(context.Background(), GetActivitiesQuery{Identity: clientIdentity(clientID)})

		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, ActivityContractCreated, feed[0].Type)
	})

	t.Run("at most ten entries", func(t *testing.T) {
		repo := newMemoryContractRepository()
		for i := uint(1); i <= 8; i++ {
			at := now.Add(-time.Duration(i) * time.Hour)
			repo.nextID = i
			repo.contracts[i] = contract.ReconstructContract(i,
				contract.Fields{Title: fmt.Sprint(i), ClientID: clientID, Progress: 10},
				nil, 1, at.Add(-time.Hour), at)
		}
		uc := NewGetActivitiesUseCase(repo, &mockAssetReader{}, newTestAuthorizer(), logger.NewNopLogger())
		uc.now = func() time.Time { return now }

		feed, err := uc.Execute(context.Background(), GetActivitiesQuery{Identity: clientIdentity(clientID)})

		require.NoError(t, err)
		assert.Len(t, feed, activityLimit)
	})

	t.Run("no contracts", func(t *testing.T) {
		uc := NewGetActivitiesUseCase(newMemoryContractRepository(), &mockAssetReader{}, newTestAuthorizer(), logger.NewNopLogger())

		feed, err := uc.Execute(context.Background(), GetActivitiesQuery{Identity: clientIdentity(clientID)})

		require.NoError(t, err)
		assert.NotNil(t, feed)
		assert.Empty(t, feed)
	})
}
