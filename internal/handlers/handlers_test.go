package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"usermgmt-backend/internal/auth"
	"usermgmt-backend/internal/models"
	"usermgmt-backend/internal/storage"
)

// fakeStore is an in-memory storage.Store for handler tests.
type fakeStore struct {
	authUsers map[string]*models.AuthUser
	users     map[int]*models.User
	profiles  map[int]*models.UserProfile
	roles     []models.Role
	roleNames map[int]string
	companies map[int]bool

	// companyUsers backs ListUsers/CountUsers, keyed by company id.
	companyUsers map[int][]models.UserProfile

	listedCompany int
	createdInput  *models.CreateUserInput
	createdBy     *int
	createErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		authUsers:    map[string]*models.AuthUser{},
		users:        map[int]*models.User{},
		profiles:     map[int]*models.UserProfile{},
		roleNames:    map[int]string{},
		companies:    map[int]bool{},
		companyUsers: map[int][]models.UserProfile{},
	}
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.AuthUser, error) {
	user, ok := f.authUsers[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeStore) GetUserProfile(_ context.Context, id int) (*models.UserProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return profile, nil
}

func (f *fakeStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.authUsers[email]
	return ok, nil
}

func (f *fakeStore) CreateUser(_ context.Context, input models.CreateUserInput, _ string, createdBy *int) (*models.UserProfile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdInput = &input
	f.createdBy = createdBy
	return &models.UserProfile{
		ID:          100,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		CompanyID:   input.CompanyID,
		RoleID:      input.RoleID,
		CreatedBy:   createdBy,
		IsActive:    true,
		CreatedAt:   time.Now(),
		CompanyName: "TechCorp",
		RoleName:    f.roleNames[input.RoleID],
	}, nil
}

func (f *fakeStore) ListUsers(_ context.Context, companyID, limit, offset int) ([]models.UserProfile, error) {
	f.listedCompany = companyID
	all := f.companyUsers[companyID]
	if offset >= len(all) {
		return []models.UserProfile{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeStore) CountUsers(_ context.Context, companyID int) (int, error) {
	return len(f.companyUsers[companyID]), nil
}

func (f *fakeStore) ListRoles(_ context.Context) ([]models.Role, error) {
	return f.roles, nil
}

func (f *fakeStore) GetRoleName(_ context.Context, id int) (string, error) {
	name, ok := f.roleNames[id]
	if !ok {
		return "", storage.ErrRoleNotFound
	}
	return name, nil
}

func (f *fakeStore) RoleExists(_ context.Context, id int) (bool, error) {
	_, ok := f.roleNames[id]
	return ok, nil
}

func (f *fakeStore) CompanyExists(_ context.Context, id int) (bool, error) {
	return f.companies[id], nil
}

// newTestServer wires the fake store through the real router and middleware,
// seeded with one active CA admin (admin@techcorp.com / password123).
func newTestServer(t *testing.T) (http.Handler, *fakeStore, *auth.TokenManager) {
	t.Helper()

	store := newFakeStore()
	store.roleNames = map[int]string{1: "CA", 2: "SM"}
	store.roles = []models.Role{
		{ID: 1, Name: "CA", Description: "Company Admin", Permissions: json.RawMessage(`{}`)},
		{ID: 2, Name: "SM", Description: "Sales Manager", Permissions: json.RawMessage(`{}`)},
	}
	store.companies = map[int]bool{1: true}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{
		ID:           1,
		Email:        "admin@techcorp.com",
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		CompanyID:    1,
		RoleID:       1,
		IsActive:     true,
	}
	store.users[1] = &admin
	store.authUsers[admin.Email] = &models.AuthUser{User: admin, CompanyName: "TechCorp", RoleName: "CA"}
	store.profiles[1] = &models.UserProfile{
		ID: 1, Email: admin.Email, FirstName: "Admin", LastName: "User",
		CompanyID: 1, RoleID: 1, IsActive: true,
		CompanyName: "TechCorp", RoleName: "CA",
	}

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	r := chi.NewRouter()
	New(store, tokens).RegisterRoutes(r)
	return r, store, tokens
}

func adminToken(t *testing.T, tokens *auth.TokenManager) string {
	t.Helper()
	tok, err := tokens.Issue(1, 1, 1, "admin@techcorp.com")
	require.NoError(t, err)
	return tok
}

func doJSON(handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func parseEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func dataMap(t *testing.T, resp models.Response) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object: %#v", resp.Data)
	return data
}
