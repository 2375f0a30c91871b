package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Mazium/TicketEase/internal/entities"
	"github.com/Mazium/TicketEase/internal/identity"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(repo *repoMock, registrar *registrarMock, notif *notifierMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, registrar, notif,
		staticGenerator{credential: "otp-secret-123"}, time.Second)
}

func TestCreateManagerValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &registrarMock{}, &notifierMock{})

	_, err := uc.CreateManager(context.Background(), entities.ProvisioningRequest{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetManagersByEmail", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateManager", mock.Anything, mock.Anything)
}

func TestCreateManagerDuplicateEmailConflict(t *testing.T) {
	repo := &repoMock{}
	registrar := &registrarMock{}
	uc := newTestUsecase(repo, registrar, &notifierMock{})

	repo.On("GetManagersByEmail", mock.Anything, "a@co.com").
		Return([]entities.Manager{{ID: "m1", Email: "a@co.com"}}, nil)

	_, err := uc.CreateManager(context.Background(), entities.ProvisioningRequest{
		Email:       "a@co.com",
		CompanyName: "Acme",
	})
	require.ErrorIs(t, err, entities.ErrManagerExists)
	repo.AssertNotCalled(t, "CreateManager", mock.Anything, mock.Anything)
	registrar.AssertNotCalled(t, "RegisterManagerIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateManagerIdentityRejectionCompensates(t *testing.T) {
	repo := &repoMock{}
	registrar := &registrarMock{}
	notif := &notifierMock{}
	uc := newTestUsecase(repo, registrar, notif)

	created := &entities.Manager{ID: "m1", Email: "a@co.com", CompanyName: "Acme", IsActive: true}
	repo.On("GetManagersByEmail", mock.Anything, "a@co.com").Return([]entities.Manager{}, nil)
	repo.On("CreateManager", mock.Anything, mock.Anything).Return(created, nil)
	repo.On("DeleteManager", mock.Anything, "m1").Return(nil)
	registrar.On("RegisterManagerIdentity", mock.Anything, "m1", "a@co.com", "otp-secret-123").
		Return(identity.Result{Succeeded: false, Message: "password policy rejected"}, nil)

	_, err := uc.CreateManager(context.Background(), entities.ProvisioningRequest{
		Email:       "a@co.com",
		CompanyName: "Acme",
	})
	require.ErrorIs(t, err, entities.ErrIdentityRegistration)
	require.Contains(t, err.Error(), "password policy rejected")

	repo.AssertCalled(t, "DeleteManager", mock.Anything, "m1")
	notif.AssertNotCalled(t, "SendHTMLEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateManagerIdentityTransportErrorCompensates(t *testing.T) {
	repo := &repoMock{}
	registrar := &registrarMock{}
	uc := newTestUsecase(repo, registrar, &notifierMock{})

	created := &entities.Manager{ID: "m1", Email: "a@co.com", CompanyName: "Acme"}
	repo.On("GetManagersByEmail", mock.Anything, "a@co.com").Return([]entities.Manager{}, nil)
	repo.On("CreateManager", mock.Anything, mock.Anything).Return(created, nil)
	repo.On("DeleteManager", mock.Anything, "m1").Return(nil)
	registrar.On("RegisterManagerIdentity", mock.Anything, "m1", "a@co.com", "otp-secret-123").
		Return(identity.Result{}, errors.New("connection refused"))

	_, err := uc.CreateManager(context.Background(), entities.ProvisioningRequest{
		Email:       "a@co.com",
		CompanyName: "Acme",
	})
	require.ErrorIs(t, err, entities.ErrIdentityRegistration)
	repo.AssertCalled(t, "DeleteManager", mock.Anything, "m1")
}

func TestCreateManagerNotificationFailureIsPartialSuccess(t *testing.T) {
	repo := &repoMock{}
	registrar := &registrarMock{}
	notif := &notifierMock{}
	uc := newTestUsecase(repo, registrar, notif)

	created := &entities.Manager{ID: "m1", Email: "a@co.com", CompanyName: "Acme", IsActive: true}
	repo.On("GetManagersByEmail", mock.Anything, "a@co.com").Return([]entities.Manager{}, nil)
	repo.On("CreateManager", mock.Anything, mock.Anything).Return(created, nil)
	registrar.On("RegisterManagerIdentity", mock.Anything, "m1", "a@co.com", "otp-secret-123").
		Return(identity.Result{Succeeded: true}, nil)
	notif.On("SendHTMLEmail", mock.Anything, "a@co.com", mock.Anything, mock.Anything).
		Return(errors.New("smtp timeout"))

	res, err := uc.CreateManager(context.Background(), entities.ProvisioningRequest{
		Email:       "a@co.com",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	require.Equal(t, created, res.Manager)
	require.Contains(t, res.Warning, "welcome email could not be delivered")

	repo.AssertNotCalled(t, "DeleteManager", mock.Anything, mock.Anything)
}

func TestCreateManagerHappyPath(t *testing.T) {
	repo := &repoMock{}
	registrar := &registrarMock{}
	notif := &notifierMock{}
	uc := newTestUsecase(repo, registrar, notif)

	created := &entities.Manager{ID: "m1", Email: "a@co.com", CompanyName: "Acme", IsActive: true}
	repo.On("GetManagersByEmail", mock.Anything, "a@co.com").Return([]entities.Manager{}, nil)
	repo.On("CreateManager", mock.Anything, mock.MatchedBy(func(m entities.Manager) bool {
		return m.ID != "" && m.Email == "a@co.com" && m.CompanyName == "Acme" && m.IsActive
	})).Return(created, nil)
	registrar.On("RegisterManagerIdentity", mock.Anything, "m1", "a@co.com", "otp-secret-123").
		Return(identity.Result{Succeeded: true}, nil)
	notif.On("SendHTMLEmail", mock.Anything, "a@co.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		// the welcome mail is the one place the credential leaves the workflow
		return strings.Contains(body, "otp-secret-123") && strings.Contains(body, "Acme")
	})).Return(nil)

	res, err := uc.CreateManager(context.Background(), entities.ProvisioningRequest{
		Email:              "a@co.com",
		CompanyName:        "Acme",
		CompanyDescription: "ticketing",
	})
	require.NoError(t, err)
	require.Empty(t, res.Warning)
	require.Equal(t, created, res.Manager)

	repo.AssertNotCalled(t, "DeleteManager", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	registrar.AssertExpectations(t)
	notif.AssertExpectations(t)
}

func TestProvisionedManagerPaginatesAlphabetically(t *testing.T) {
	repo := &repoMock{}
	registrar := &registrarMock{}
	notif := &notifierMock{}
	uc := newTestUsecase(repo, registrar, notif)

	created := &entities.Manager{ID: "m1", Email: "a@co.com", CompanyName: "Acme", IsActive: true}
	repo.On("GetManagersByEmail", mock.Anything, "a@co.com").Return([]entities.Manager{}, nil)
	repo.On("CreateManager", mock.Anything, mock.Anything).Return(created, nil)
	registrar.On("RegisterManagerIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(identity.Result{Succeeded: true}, nil)
	notif.On("SendHTMLEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := uc.CreateManager(context.Background(), entities.ProvisioningRequest{
		Email:       "a@co.com",
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	repo.On("GetAllManagers", mock.Anything).Return([]entities.Manager{
		{ID: "m2", Email: "ops@zenith.io", CompanyName: "Zenith"},
		{ID: "m3", Email: "hi@beta.io", CompanyName: "Beta"},
		*res.Manager,
		{ID: "m4", Email: "info@aardvark.io", CompanyName: "Aardvark"},
	}, nil)

	page, err := uc.ListManagers(context.Background(), 10, 1)
	require.NoError(t, err)
	require.Len(t, page.Data, 4)
	require.Equal(t, "Aardvark", page.Data[0].CompanyName)
	require.Equal(t, "Acme", page.Data[1].CompanyName)
	require.Equal(t, "m1", page.Data[1].ID)
	require.Equal(t, "Beta", page.Data[2].CompanyName)
	require.Equal(t, "Zenith", page.Data[3].CompanyName)
}
