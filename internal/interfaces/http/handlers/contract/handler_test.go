package contract

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contracthub-inc/contracthub/internal/application/contract/dto"
	"github.com/contracthub-inc/contracthub/internal/application/contract/usecases"
	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/contract"
	"github.com/contracthub-inc/contracthub/internal/interfaces/http/handlers/testutil"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListContractsUC struct {
	query  usecases.ListContractsQuery
	result []dto.ContractListItemDTO
	err    error
}

func (m *mockListContractsUC) Execute(_ context.Context, q usecases.ListContractsQuery) ([]dto.ContractListItemDTO, error) {
	m.query = q
	return m.result, m.err
}

type mockGetContractUC struct {
	result *dto.ContractDTO
	err    error
}

func (m *mockGetContractUC) Execute(_ context.Context, _ usecases.GetContractQuery) (*dto.ContractDTO, error) {
	return m.result, m.err
}

type mockCreateContractUC struct {
	called bool
	cmd    usecases.CreateContractCommand
}

func (m *mockCreateContractUC) Execute(_ context.Context, cmd usecases.CreateContractCommand) (*dto.ContractListItemDTO, error) {
	m.called = true
	m.cmd = cmd
	return &dto.ContractListItemDTO{ID: 1, Title: cmd.Title, ClientID: cmd.ClientID}, nil
}

type mockAppendStageUC struct {
	cmd usecases.AppendStageCommand
}

func (m *mockAppendStageUC) Execute(_ context.Context, cmd usecases.AppendStageCommand) (*dto.StageMutationResult, error) {
	m.cmd = cmd
	return &dto.StageMutationResult{ContractID: cmd.ContractID, Index: 2, StageID: "stg_new"}, nil
}

type mockUpdateStageUC struct {
	called bool
	cmd    usecases.UpdateStageCommand
}

func (m *mockUpdateStageUC) Execute(_ context.Context, cmd usecases.UpdateStageCommand) (*dto.StageDTO, error) {
	m.called = true
	m.cmd = cmd
	return &dto.StageDTO{ID: "stg_abc"}, nil
}

type mockUploadStageFileUC struct {
	cmd  usecases.UploadStageFileCommand
	body []byte
}

func (m *mockUploadStageFileUC) Execute(_ context.Context, cmd usecases.UploadStageFileCommand) (*asset.View, error) {
	m.cmd = cmd
	m.body, _ = io.ReadAll(cmd.Body)
	return &asset.View{ID: 9, Name: cmd.FileName, MimeType: cmd.ContentType}, nil
}

type mockRemoveStageFileUC struct {
	cmd usecases.RemoveStageFileCommand
	err error
}

func (m *mockRemoveStageFileUC) Execute(_ context.Context, cmd usecases.RemoveStageFileCommand) error {
	m.cmd = cmd
	return m.err
}

// =====================================================================
// Tests
// =====================================================================

func newTestHandler(ucs UseCases) *Handler {
	return NewHandler(ucs, 1<<20, logger.NewNopLogger())
}

func TestListContracts_PassesCaller(t *testing.T) {
	uc := &mockListContractsUC{result: []dto.ContractListItemDTO{{ID: 4, Title: "طراحی"}}}
	h := newTestHandler(UseCases{ListContracts: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/panel/contracts", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleOrganization)

	h.ListContracts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), uc.query.Identity.UserID)
	assert.Equal(t, authorization.RoleOrganization, uc.query.Identity.Role)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "طراحی")
}

func TestGetContract_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		err      error
		wantCode int
		wantType string
	}{
		{"invalid id", "abc", nil, http.StatusBadRequest, "validation_error"},
		{"not found", "3", errors.NewNotFoundError("contract not found"), http.StatusNotFound, "not_found"},
		{"forbidden", "3", errors.NewForbiddenError("not your contract"), http.StatusForbidden, "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(UseCases{GetContract: &mockGetContractUC{err: tt.err}})
			c, w := testutil.NewTestContext(http.MethodGet, "/panel/contracts/"+tt.id, nil)
			testutil.SetAuthContext(c, 7, authorization.RoleOrganization)
			testutil.SetURLParam(c, "id", tt.id)

			h.GetContract(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantType, resp.Error.Type)
		})
	}
}

func TestCreateContract(t *testing.T) {
	t.Run("missing title is rejected before the use case", func(t *testing.T) {
		uc := &mockCreateContractUC{}
		h := newTestHandler(UseCases{CreateContract: uc})
		c, w := testutil.NewTestContext(http.MethodPost, "/admin/contracts", map[string]any{"client_id": 7})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

		h.CreateContract(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, uc.called)
	})

	t.Run("created", func(t *testing.T) {
		uc := &mockCreateContractUC{}
		h := newTestHandler(UseCases{CreateContract: uc})
		c, w := testutil.NewTestContext(http.MethodPost, "/admin/contracts", map[string]any{
			"title":     "قرارداد",
			"client_id": 7,
			"value":     "1000",
			"progress":  30,
		})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

		h.CreateContract(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(7), uc.cmd.ClientID)
		assert.Equal(t, 30, uc.cmd.Progress)
		assert.Equal(t, uint(1), uc.cmd.Identity.UserID)
	})
}

func TestAppendStage(t *testing.T) {
	uc := &mockAppendStageUC{}
	h := newTestHandler(UseCases{AppendStage: uc})
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/contracts/5/stages", map[string]any{
		"title":  "فاز ۳",
		"status": "in_progress",
	})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "5")

	h.AppendStage(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(5), uc.cmd.ContractID)
	assert.Equal(t, "فاز ۳", uc.cmd.Title)
	assert.Contains(t, w.Body.String(), `"index":2`)
}

func TestStagePatches(t *testing.T) {
	t.Run("status by stable id", func(t *testing.T) {
		uc := &mockUpdateStageUC{}
		h := newTestHandler(UseCases{UpdateStage: uc})
		c, w := testutil.NewTestContext(http.MethodPatch, "/admin/contracts/5/stages/stg_abc/status", map[string]any{"status": "completed"})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetURLParam(c, "stage", "stg_abc")

		h.UpdateStageStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, contract.StageRef{ID: "stg_abc"}, uc.cmd.Ref)
		require.NotNil(t, uc.cmd.Status)
		assert.Equal(t, "completed", *uc.cmd.Status)
		assert.Nil(t, uc.cmd.Title)
		assert.Nil(t, uc.cmd.Description)
	})

	t.Run("title by index", func(t *testing.T) {
		uc := &mockUpdateStageUC{}
		h := newTestHandler(UseCases{UpdateStage: uc})
		c, w := testutil.NewTestContext(http.MethodPatch, "/admin/contracts/5/stages/2/title", map[string]any{"title": "نهایی"})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetURLParam(c, "stage", "2")

		h.UpdateStageTitle(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, contract.StageRef{Index: 2}, uc.cmd.Ref)
		require.NotNil(t, uc.cmd.Title)
		assert.Nil(t, uc.cmd.Status)
	})

	t.Run("partial update keeps absent fields nil", func(t *testing.T) {
		uc := &mockUpdateStageUC{}
		h := newTestHandler(UseCases{UpdateStage: uc})
		c, w := testutil.NewTestContext(http.MethodPatch, "/admin/contracts/5/stages/0", map[string]any{"description": "جزئیات"})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetURLParam(c, "stage", "0")

		h.UpdateStage(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, uc.cmd.Description)
		assert.Nil(t, uc.cmd.Title)
		assert.Nil(t, uc.cmd.Date)
	})

	t.Run("malformed stage reference", func(t *testing.T) {
		uc := &mockUpdateStageUC{}
		h := newTestHandler(UseCases{UpdateStage: uc})
		c, w := testutil.NewTestContext(http.MethodPatch, "/admin/contracts/5/stages/first", map[string]any{"title": "x"})
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetURLParam(c, "stage", "first")

		h.UpdateStage(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, uc.called)
	})
}

func TestRemoveStageFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		err      error
		wantCode int
	}{
		{"removed", "1", nil, http.StatusOK},
		{"negative index", "-1", nil, http.StatusBadRequest},
		{"stale index", "0", errors.NewConflictError("contract changed, reload and retry"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockRemoveStageFileUC{err: tt.err}
			h := newTestHandler(UseCases{RemoveStageFile: uc})
			c, w := testutil.NewTestContext(http.MethodDelete, "/admin/contracts/5/stages/0/files/"+tt.file, nil)
			testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
			testutil.SetURLParam(c, "id", "5")
			testutil.SetURLParam(c, "stage", "0")
			testutil.SetURLParam(c, "file", tt.file)

			h.RemoveStageFile(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestUploadStageFile(t *testing.T) {
	t.Run("streams the file to the use case", func(t *testing.T) {
		uc := &mockUploadStageFileUC{}
		h := newTestHandler(UseCases{UploadStageFile: uc})
		c, w := testutil.NewUploadContext(http.MethodPost, "/admin/contracts/5/stages/0/files", "file", "plan.pdf", "application/pdf", []byte("%PDF-1.4"))
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetURLParam(c, "stage", "0")

		h.UploadStageFile(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "plan.pdf", uc.cmd.FileName)
		assert.Equal(t, "application/pdf", uc.cmd.ContentType)
		assert.Equal(t, int64(8), uc.cmd.Size)
		assert.Equal(t, "%PDF-1.4", string(uc.body))
	})

	t.Run("content type is sniffed when missing", func(t *testing.T) {
		uc := &mockUploadStageFileUC{}
		h := newTestHandler(UseCases{UploadStageFile: uc})
		c, w := testutil.NewUploadContext(http.MethodPost, "/admin/contracts/5/stages/0/files", "file", "notes.txt", "", []byte("hello"))
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetURLParam(c, "stage", "0")

		h.UploadStageFile(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", uc.cmd.ContentType)
		assert.Equal(t, "hello", string(uc.body))
	})

	t.Run("missing file field", func(t *testing.T) {
		h := newTestHandler(UseCases{UploadStageFile: &mockUploadStageFileUC{}})
		c, w := testutil.NewUploadContext(http.MethodPost, "/admin/contracts/5/stages/0/files", "other", "a.pdf", "application/pdf", []byte("x"))
		testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
		testutil.SetURLParam(c, "id", "5")
		testutil.SetURLParam(c, "stage", "0")

		h.UploadStageFile(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
