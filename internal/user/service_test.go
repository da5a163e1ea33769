package user

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/upload"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")
	zipBytes = []byte("PK\x03\x04\x14\x00\x00\x00\x08\x00")
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User, attach func(u *User) error) error {
	return m.Called(ctx, u, attach).Error(0)
}

func (m *MockRepository) List(ctx context.Context, tenantID string) ([]User, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, tenantID string, id int) (*User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, tenantID string, id int) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func storedFiles(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	var files []string
	err := afero.Walk(fs, "/srv/uploads", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		require.NoError(t, err)
	}
	return files
}

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo Repository) (*service, afero.Fs) {
	fs := afero.NewMemMapFs()
	storage := upload.NewStorage(fs, "/srv/uploads", "https://files.example.com/uploads/", 1<<20)
	s := NewService(repo, storage, time.UTC).(*service)
	s.now = func() time.Time { return fixedNow }
	return s, fs
}

func validRequest() CreateUserRequest {
	return CreateUserRequest{
		Name: " Asha Rao ", MobileNo: "9800000001", EmailID: "Asha@Example.com",
		Gender: "F", Location: "Pune", DOB: "1995-08-14", Wing: "",
	}
}

// insertAs simulates the insert assigning id and then running attach
// inside the transaction.
func insertAs(id int) func(mock.Arguments) {
	return func(args mock.Arguments) {
		u := args.Get(1).(*User)
		u.ID = id
		if err := args.Get(2).(func(*User) error)(u); err != nil {
			panic(err)
		}
	}
}

func TestService_Create_PromotesImages(t *testing.T) {
	repo := new(MockRepository)
	s, fs := newTestService(repo)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(insertAs(101)).Return(nil)

	u, err := s.Create(context.Background(), "T1", validRequest(), Images{
		Profile: fileHeader(t, ProfileImageField, "me.png", pngBytes),
		Aadhar:  fileHeader(t, AadharImageField, "id.pdf", pdfBytes),
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", u.Name)
	assert.Equal(t, "asha@example.com", u.EmailID)
	assert.Nil(t, u.Wing)
	assert.Equal(t, api.NewDate(1995, 8, 14), u.DOB)
	assert.Equal(t, fixedNow, u.CreatedDate)

	require.NotNil(t, u.ProfileImagePath)
	require.NotNil(t, u.AadharImagePath)
	assert.Equal(t, "https://files.example.com/uploads/T1/users/101/profile.png", *u.ProfileImagePath)
	assert.Equal(t, "https://files.example.com/uploads/T1/users/101/aadhar.pdf", *u.AadharImagePath)
	assert.ElementsMatch(t, []string{
		"/srv/uploads/T1/users/101/profile.png",
		"/srv/uploads/T1/users/101/aadhar.pdf",
	}, storedFiles(t, fs))
}

func TestService_Create_CommitFailureRemovesImages(t *testing.T) {
	repo := new(MockRepository)
	s, fs := newTestService(repo)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(insertAs(101)).Return(errors.New("commit failed"))

	_, err := s.Create(context.Background(), "T1", validRequest(), Images{
		Profile: fileHeader(t, ProfileImageField, "me.png", pngBytes),
	})

	assert.EqualError(t, err, "commit failed")
	assert.Empty(t, storedFiles(t, fs))
}

func TestService_Create_RejectsUnsupportedFile(t *testing.T) {
	repo := new(MockRepository)
	s, fs := newTestService(repo)

	_, err := s.Create(context.Background(), "T1", validRequest(), Images{
		Aadhar: fileHeader(t, AadharImageField, "id.zip", zipBytes),
	})

	assert.ErrorIs(t, err, api.ErrValidation)
	assert.Contains(t, err.Error(), "unsupported file type")
	assert.Empty(t, storedFiles(t, fs))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_InvalidDOB(t *testing.T) {
	repo := new(MockRepository)
	s, _ := newTestService(repo)

	req := validRequest()
	req.DOB = "14/08/1995"
	_, err := s.Create(context.Background(), "T1", req, Images{})

	assert.ErrorIs(t, err, errInvalidDOB)
}

func TestService_Update_ExplicitFalseAndEmpty(t *testing.T) {
	repo := new(MockRepository)
	s, _ := newTestService(repo)

	wing := "B"
	repo.On("GetByID", mock.Anything, "T1", 101).
		Return(&User{ID: 101, TenantID: "T1", Name: "Asha", Wing: &wing, IsTrainer: true, EmailID: "asha@example.com"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return !u.IsTrainer && u.Wing == nil && u.Name == "Asha" && u.UpdatedDate != nil
	})).Return(nil)

	no, empty := false, ""
	u, err := s.Update(context.Background(), "T1", 101, UserPatch{IsTrainer: &no, Wing: &empty})

	require.NoError(t, err)
	assert.False(t, u.IsTrainer)
	repo.AssertExpectations(t)
}

func TestService_Update_Idempotent(t *testing.T) {
	repo := new(MockRepository)
	s, _ := newTestService(repo)

	stored := User{ID: 101, TenantID: "T1", Name: "Asha", Location: "Pune"}
	repo.On("GetByID", mock.Anything, "T1", 101).Return(func() *User { u := stored; return &u }(), nil).Once()
	repo.On("GetByID", mock.Anything, "T1", 101).Return(func() *User { u := stored; return &u }(), nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	loc := "Mumbai"
	patch := UserPatch{Location: &loc}
	first, err := s.Update(context.Background(), "T1", 101, patch)
	require.NoError(t, err)
	second, err := s.Update(context.Background(), "T1", 101, patch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Delete_RemovesFolder(t *testing.T) {
	repo := new(MockRepository)
	s, fs := newTestService(repo)
	require.NoError(t, afero.WriteFile(fs, "/srv/uploads/T1/users/101/profile.png", pngBytes, 0o644))
	repo.On("Delete", mock.Anything, "T1", 101).Return(nil)

	require.NoError(t, s.Delete(context.Background(), "T1", 101))
	assert.Empty(t, storedFiles(t, fs))
}

func TestService_Delete_NotFoundKeepsFiles(t *testing.T) {
	repo := new(MockRepository)
	s, fs := newTestService(repo)
	require.NoError(t, afero.WriteFile(fs, "/srv/uploads/T1/users/101/profile.png", pngBytes, 0o644))
	repo.On("Delete", mock.Anything, "T1", 101).Return(ErrUserNotFound)

	assert.ErrorIs(t, s.Delete(context.Background(), "T1", 101), api.ErrNotFound)
	assert.Len(t, storedFiles(t, fs), 1)
}
