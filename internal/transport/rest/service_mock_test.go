package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/internal/service/intake"
	"github.com/akinloluwami/formdrop/internal/service/registry"
	"github.com/akinloluwami/formdrop/internal/service/submission"
)

var _ intakeService = &intakeServiceMock{}

type intakeServiceMock struct {
	IntakeFunc func(ctx context.Context, in intake.IntakeInput) (*intake.Receipt, error)

	calls struct {
		Intake []struct {
			Ctx context.Context
			In  intake.IntakeInput
		}
	}
	lockIntake sync.RWMutex
}

func (mock *intakeServiceMock) Intake(ctx context.Context, in intake.IntakeInput) (*intake.Receipt, error) {
	if mock.IntakeFunc == nil {
		panic("intakeServiceMock.IntakeFunc: method is nil but intakeService.Intake was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  intake.IntakeInput
	}{Ctx: ctx, In: in}
	mock.lockIntake.Lock()
	mock.calls.Intake = append(mock.calls.Intake, callInfo)
	mock.lockIntake.Unlock()
	return mock.IntakeFunc(ctx, in)
}

func (mock *intakeServiceMock) IntakeCalls() []struct {
	Ctx context.Context
	In  intake.IntakeInput
} {
	mock.lockIntake.RLock()
	calls := mock.calls.Intake
	mock.lockIntake.RUnlock()
	return calls
}

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyFunc func(ctx context.Context, token string) (*domain.Recipient, error)

	calls struct {
		Verify []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *tokenVerifierMock) Verify(ctx context.Context, token string) (*domain.Recipient, error) {
	if mock.VerifyFunc == nil {
		panic("tokenVerifierMock.VerifyFunc: method is nil but tokenVerifier.Verify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, token)
}

func (mock *tokenVerifierMock) VerifyCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

var _ registryService = &registryServiceMock{}

type registryServiceMock struct {
	CreateFormFunc            func(ctx context.Context, input registry.CreateFormInput) (*domain.Form, error)
	GetFormFunc               func(ctx context.Context, formID uuid.UUID) (*domain.Form, error)
	ListFormsFunc             func(ctx context.Context) ([]domain.Form, error)
	SetEmailEnabledFunc       func(ctx context.Context, formID uuid.UUID, enabled bool) (*domain.Form, error)
	SetAllowedOriginsFunc     func(ctx context.Context, formID uuid.UUID, origins []string) (*domain.Form, error)
	DeleteFormFunc            func(ctx context.Context, formID uuid.UUID) error
	AddRecipientFunc          func(ctx context.Context, input registry.AddRecipientInput) (*domain.Recipient, error)
	RemoveRecipientFunc       func(ctx context.Context, recipientID uuid.UUID) error
	SetRecipientEnabledFunc   func(ctx context.Context, recipientID uuid.UUID, enabled bool) (*domain.Recipient, error)
	ListRecipientsFunc        func(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error)
	ConnectIntegrationFunc    func(ctx context.Context, input registry.ConnectIntegrationInput) (registry.IntegrationView, error)
	SetIntegrationEnabledFunc func(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (registry.IntegrationView, error)
	DisconnectIntegrationFunc func(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error
	ListIntegrationsFunc      func(ctx context.Context, formID uuid.UUID) ([]registry.IntegrationView, error)

	calls struct {
		CreateForm []struct {
			Ctx   context.Context
			Input registry.CreateFormInput
		}
		GetForm []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		ListForms []struct {
			Ctx context.Context
		}
		SetEmailEnabled []struct {
			Ctx     context.Context
			FormID  uuid.UUID
			Enabled bool
		}
		SetAllowedOrigins []struct {
			Ctx     context.Context
			FormID  uuid.UUID
			Origins []string
		}
		DeleteForm []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		AddRecipient []struct {
			Ctx   context.Context
			Input registry.AddRecipientInput
		}
		RemoveRecipient []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
		}
		SetRecipientEnabled []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
			Enabled     bool
		}
		ListRecipients []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		ConnectIntegration []struct {
			Ctx   context.Context
			Input registry.ConnectIntegrationInput
		}
		SetIntegrationEnabled []struct {
			Ctx     context.Context
			FormID  uuid.UUID
			Kind    domain.ChannelKind
			Enabled bool
		}
		DisconnectIntegration []struct {
			Ctx    context.Context
			FormID uuid.UUID
			Kind   domain.ChannelKind
		}
		ListIntegrations []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
	}
	lockCreateForm            sync.RWMutex
	lockGetForm               sync.RWMutex
	lockListForms             sync.RWMutex
	lockSetEmailEnabled       sync.RWMutex
	lockSetAllowedOrigins     sync.RWMutex
	lockDeleteForm            sync.RWMutex
	lockAddRecipient          sync.RWMutex
	lockRemoveRecipient       sync.RWMutex
	lockSetRecipientEnabled   sync.RWMutex
	lockListRecipients        sync.RWMutex
	lockConnectIntegration    sync.RWMutex
	lockSetIntegrationEnabled sync.RWMutex
	lockDisconnectIntegration sync.RWMutex
	lockListIntegrations      sync.RWMutex
}

func (mock *registryServiceMock) CreateForm(ctx context.Context, input registry.CreateFormInput) (*domain.Form, error) {
	if mock.CreateFormFunc == nil {
		panic("registryServiceMock.CreateFormFunc: method is nil but registryService.CreateForm was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input registry.CreateFormInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateForm.Lock()
	mock.calls.CreateForm = append(mock.calls.CreateForm, callInfo)
	mock.lockCreateForm.Unlock()
	return mock.CreateFormFunc(ctx, input)
}

func (mock *registryServiceMock) CreateFormCalls() []struct {
	Ctx   context.Context
	Input registry.CreateFormInput
} {
	mock.lockCreateForm.RLock()
	calls := mock.calls.CreateForm
	mock.lockCreateForm.RUnlock()
	return calls
}

func (mock *registryServiceMock) GetForm(ctx context.Context, formID uuid.UUID) (*domain.Form, error) {
	if mock.GetFormFunc == nil {
		panic("registryServiceMock.GetFormFunc: method is nil but registryService.GetForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockGetForm.Lock()
	mock.calls.GetForm = append(mock.calls.GetForm, callInfo)
	mock.lockGetForm.Unlock()
	return mock.GetFormFunc(ctx, formID)
}

func (mock *registryServiceMock) GetFormCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockGetForm.RLock()
	calls := mock.calls.GetForm
	mock.lockGetForm.RUnlock()
	return calls
}

func (mock *registryServiceMock) ListForms(ctx context.Context) ([]domain.Form, error) {
	if mock.ListFormsFunc == nil {
		panic("registryServiceMock.ListFormsFunc: method is nil but registryService.ListForms was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListForms.Lock()
	mock.calls.ListForms = append(mock.calls.ListForms, callInfo)
	mock.lockListForms.Unlock()
	return mock.ListFormsFunc(ctx)
}

func (mock *registryServiceMock) ListFormsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListForms.RLock()
	calls := mock.calls.ListForms
	mock.lockListForms.RUnlock()
	return calls
}

func (mock *registryServiceMock) SetEmailEnabled(ctx context.Context, formID uuid.UUID, enabled bool) (*domain.Form, error) {
	if mock.SetEmailEnabledFunc == nil {
		panic("registryServiceMock.SetEmailEnabledFunc: method is nil but registryService.SetEmailEnabled was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FormID  uuid.UUID
		Enabled bool
	}{Ctx: ctx, FormID: formID, Enabled: enabled}
	mock.lockSetEmailEnabled.Lock()
	mock.calls.SetEmailEnabled = append(mock.calls.SetEmailEnabled, callInfo)
	mock.lockSetEmailEnabled.Unlock()
	return mock.SetEmailEnabledFunc(ctx, formID, enabled)
}

func (mock *registryServiceMock) SetEmailEnabledCalls() []struct {
	Ctx     context.Context
	FormID  uuid.UUID
	Enabled bool
} {
	mock.lockSetEmailEnabled.RLock()
	calls := mock.calls.SetEmailEnabled
	mock.lockSetEmailEnabled.RUnlock()
	return calls
}

func (mock *registryServiceMock) SetAllowedOrigins(ctx context.Context, formID uuid.UUID, origins []string) (*domain.Form, error) {
	if mock.SetAllowedOriginsFunc == nil {
		panic("registryServiceMock.SetAllowedOriginsFunc: method is nil but registryService.SetAllowedOrigins was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FormID  uuid.UUID
		Origins []string
	}{Ctx: ctx, FormID: formID, Origins: origins}
	mock.lockSetAllowedOrigins.Lock()
	mock.calls.SetAllowedOrigins = append(mock.calls.SetAllowedOrigins, callInfo)
	mock.lockSetAllowedOrigins.Unlock()
	return mock.SetAllowedOriginsFunc(ctx, formID, origins)
}

func (mock *registryServiceMock) SetAllowedOriginsCalls() []struct {
	Ctx     context.Context
	FormID  uuid.UUID
	Origins []string
} {
	mock.lockSetAllowedOrigins.RLock()
	calls := mock.calls.SetAllowedOrigins
	mock.lockSetAllowedOrigins.RUnlock()
	return calls
}

func (mock *registryServiceMock) DeleteForm(ctx context.Context, formID uuid.UUID) error {
	if mock.DeleteFormFunc == nil {
		panic("registryServiceMock.DeleteFormFunc: method is nil but registryService.DeleteForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockDeleteForm.Lock()
	mock.calls.DeleteForm = append(mock.calls.DeleteForm, callInfo)
	mock.lockDeleteForm.Unlock()
	return mock.DeleteFormFunc(ctx, formID)
}

func (mock *registryServiceMock) DeleteFormCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockDeleteForm.RLock()
	calls := mock.calls.DeleteForm
	mock.lockDeleteForm.RUnlock()
	return calls
}

func (mock *registryServiceMock) AddRecipient(ctx context.Context, input registry.AddRecipientInput) (*domain.Recipient, error) {
	if mock.AddRecipientFunc == nil {
		panic("registryServiceMock.AddRecipientFunc: method is nil but registryService.AddRecipient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input registry.AddRecipientInput
	}{Ctx: ctx, Input: input}
	mock.lockAddRecipient.Lock()
	mock.calls.AddRecipient = append(mock.calls.AddRecipient, callInfo)
	mock.lockAddRecipient.Unlock()
	return mock.AddRecipientFunc(ctx, input)
}

func (mock *registryServiceMock) AddRecipientCalls() []struct {
	Ctx   context.Context
	Input registry.AddRecipientInput
} {
	mock.lockAddRecipient.RLock()
	calls := mock.calls.AddRecipient
	mock.lockAddRecipient.RUnlock()
	return calls
}

func (mock *registryServiceMock) RemoveRecipient(ctx context.Context, recipientID uuid.UUID) error {
	if mock.RemoveRecipientFunc == nil {
		panic("registryServiceMock.RemoveRecipientFunc: method is nil but registryService.RemoveRecipient was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
	}{Ctx: ctx, RecipientID: recipientID}
	mock.lockRemoveRecipient.Lock()
	mock.calls.RemoveRecipient = append(mock.calls.RemoveRecipient, callInfo)
	mock.lockRemoveRecipient.Unlock()
	return mock.RemoveRecipientFunc(ctx, recipientID)
}

func (mock *registryServiceMock) RemoveRecipientCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
} {
	mock.lockRemoveRecipient.RLock()
	calls := mock.calls.RemoveRecipient
	mock.lockRemoveRecipient.RUnlock()
	return calls
}

func (mock *registryServiceMock) SetRecipientEnabled(ctx context.Context, recipientID uuid.UUID, enabled bool) (*domain.Recipient, error) {
	if mock.SetRecipientEnabledFunc == nil {
		panic("registryServiceMock.SetRecipientEnabledFunc: method is nil but registryService.SetRecipientEnabled was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		Enabled     bool
	}{Ctx: ctx, RecipientID: recipientID, Enabled: enabled}
	mock.lockSetRecipientEnabled.Lock()
	mock.calls.SetRecipientEnabled = append(mock.calls.SetRecipientEnabled, callInfo)
	mock.lockSetRecipientEnabled.Unlock()
	return mock.SetRecipientEnabledFunc(ctx, recipientID, enabled)
}

func (mock *registryServiceMock) SetRecipientEnabledCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
	Enabled     bool
} {
	mock.lockSetRecipientEnabled.RLock()
	calls := mock.calls.SetRecipientEnabled
	mock.lockSetRecipientEnabled.RUnlock()
	return calls
}

func (mock *registryServiceMock) ListRecipients(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error) {
	if mock.ListRecipientsFunc == nil {
		panic("registryServiceMock.ListRecipientsFunc: method is nil but registryService.ListRecipients was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockListRecipients.Lock()
	mock.calls.ListRecipients = append(mock.calls.ListRecipients, callInfo)
	mock.lockListRecipients.Unlock()
	return mock.ListRecipientsFunc(ctx, formID)
}

func (mock *registryServiceMock) ListRecipientsCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockListRecipients.RLock()
	calls := mock.calls.ListRecipients
	mock.lockListRecipients.RUnlock()
	return calls
}

func (mock *registryServiceMock) ConnectIntegration(ctx context.Context, input registry.ConnectIntegrationInput) (registry.IntegrationView, error) {
	if mock.ConnectIntegrationFunc == nil {
		panic("registryServiceMock.ConnectIntegrationFunc: method is nil but registryService.ConnectIntegration was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input registry.ConnectIntegrationInput
	}{Ctx: ctx, Input: input}
	mock.lockConnectIntegration.Lock()
	mock.calls.ConnectIntegration = append(mock.calls.ConnectIntegration, callInfo)
	mock.lockConnectIntegration.Unlock()
	return mock.ConnectIntegrationFunc(ctx, input)
}

func (mock *registryServiceMock) ConnectIntegrationCalls() []struct {
	Ctx   context.Context
	Input registry.ConnectIntegrationInput
} {
	mock.lockConnectIntegration.RLock()
	calls := mock.calls.ConnectIntegration
	mock.lockConnectIntegration.RUnlock()
	return calls
}

func (mock *registryServiceMock) SetIntegrationEnabled(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (registry.IntegrationView, error) {
	if mock.SetIntegrationEnabledFunc == nil {
		panic("registryServiceMock.SetIntegrationEnabledFunc: method is nil but registryService.SetIntegrationEnabled was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FormID  uuid.UUID
		Kind    domain.ChannelKind
		Enabled bool
	}{Ctx: ctx, FormID: formID, Kind: kind, Enabled: enabled}
	mock.lockSetIntegrationEnabled.Lock()
	mock.calls.SetIntegrationEnabled = append(mock.calls.SetIntegrationEnabled, callInfo)
	mock.lockSetIntegrationEnabled.Unlock()
	return mock.SetIntegrationEnabledFunc(ctx, formID, kind, enabled)
}

func (mock *registryServiceMock) SetIntegrationEnabledCalls() []struct {
	Ctx     context.Context
	FormID  uuid.UUID
	Kind    domain.ChannelKind
	Enabled bool
} {
	mock.lockSetIntegrationEnabled.RLock()
	calls := mock.calls.SetIntegrationEnabled
	mock.lockSetIntegrationEnabled.RUnlock()
	return calls
}

func (mock *registryServiceMock) DisconnectIntegration(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error {
	if mock.DisconnectIntegrationFunc == nil {
		panic("registryServiceMock.DisconnectIntegrationFunc: method is nil but registryService.DisconnectIntegration was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		Kind   domain.ChannelKind
	}{Ctx: ctx, FormID: formID, Kind: kind}
	mock.lockDisconnectIntegration.Lock()
	mock.calls.DisconnectIntegration = append(mock.calls.DisconnectIntegration, callInfo)
	mock.lockDisconnectIntegration.Unlock()
	return mock.DisconnectIntegrationFunc(ctx, formID, kind)
}

func (mock *registryServiceMock) DisconnectIntegrationCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	Kind   domain.ChannelKind
} {
	mock.lockDisconnectIntegration.RLock()
	calls := mock.calls.DisconnectIntegration
	mock.lockDisconnectIntegration.RUnlock()
	return calls
}

func (mock *registryServiceMock) ListIntegrations(ctx context.Context, formID uuid.UUID) ([]registry.IntegrationView, error) {
	if mock.ListIntegrationsFunc == nil {
		panic("registryServiceMock.ListIntegrationsFunc: method is nil but registryService.ListIntegrations was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockListIntegrations.Lock()
	mock.calls.ListIntegrations = append(mock.calls.ListIntegrations, callInfo)
	mock.lockListIntegrations.Unlock()
	return mock.ListIntegrationsFunc(ctx, formID)
}

func (mock *registryServiceMock) ListIntegrationsCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockListIntegrations.RLock()
	calls := mock.calls.ListIntegrations
	mock.lockListIntegrations.RUnlock()
	return calls
}

var _ verificationSender = &verificationSenderMock{}

type verificationSenderMock struct {
	SendVerificationFunc func(ctx context.Context, recipientID uuid.UUID) error

	calls struct {
		SendVerification []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
		}
	}
	lockSendVerification sync.RWMutex
}

func (mock *verificationSenderMock) SendVerification(ctx context.Context, recipientID uuid.UUID) error {
	if mock.SendVerificationFunc == nil {
		panic("verificationSenderMock.SendVerificationFunc: method is nil but verificationSender.SendVerification was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
	}{Ctx: ctx, RecipientID: recipientID}
	mock.lockSendVerification.Lock()
	mock.calls.SendVerification = append(mock.calls.SendVerification, callInfo)
	mock.lockSendVerification.Unlock()
	return mock.SendVerificationFunc(ctx, recipientID)
}

func (mock *verificationSenderMock) SendVerificationCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
} {
	mock.lockSendVerification.RLock()
	calls := mock.calls.SendVerification
	mock.lockSendVerification.RUnlock()
	return calls
}

var _ submissionService = &submissionServiceMock{}

type submissionServiceMock struct {
	ListFunc   func(ctx context.Context, in submission.ListInput) ([]domain.Submission, error)
	GetFunc    func(ctx context.Context, formID uuid.UUID, id uuid.UUID) (*submission.Detail, error)
	DeleteFunc func(ctx context.Context, formID uuid.UUID, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
			In  submission.ListInput
		}
		Get []struct {
			Ctx    context.Context
			FormID uuid.UUID
			ID     uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			FormID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *submissionServiceMock) List(ctx context.Context, in submission.ListInput) ([]domain.Submission, error) {
	if mock.ListFunc == nil {
		panic("submissionServiceMock.ListFunc: method is nil but submissionService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  submission.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *submissionServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  submission.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Get(ctx context.Context, formID uuid.UUID, id uuid.UUID) (*submission.Detail, error) {
	if mock.GetFunc == nil {
		panic("submissionServiceMock.GetFunc: method is nil but submissionService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, FormID: formID, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, formID, id)
}

func (mock *submissionServiceMock) GetCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Delete(ctx context.Context, formID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("submissionServiceMock.DeleteFunc: method is nil but submissionService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, FormID: formID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, formID, id)
}

func (mock *submissionServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ usageService = &usageServiceMock{}

type usageServiceMock struct {
	UsageFunc func(ctx context.Context, userID uuid.UUID, period string) (domain.Usage, error)

	calls struct {
		Usage []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Period string
		}
	}
	lockUsage sync.RWMutex
}

func (mock *usageServiceMock) Usage(ctx context.Context, userID uuid.UUID, period string) (domain.Usage, error) {
	if mock.UsageFunc == nil {
		panic("usageServiceMock.UsageFunc: method is nil but usageService.Usage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Period string
	}{Ctx: ctx, UserID: userID, Period: period}
	mock.lockUsage.Lock()
	mock.calls.Usage = append(mock.calls.Usage, callInfo)
	mock.lockUsage.Unlock()
	return mock.UsageFunc(ctx, userID, period)
}

func (mock *usageServiceMock) UsageCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Period string
} {
	mock.lockUsage.RLock()
	calls := mock.calls.Usage
	mock.lockUsage.RUnlock()
	return calls
}
