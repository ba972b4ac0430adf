package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
)

var _ formRepo = &formRepoMock{}

type formRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	GetOwnedFunc          func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Form, error)
	ListByOwnerFunc       func(ctx context.Context, ownerID uuid.UUID) ([]domain.Form, error)
	CreateFunc            func(ctx context.Context, f *domain.Form) (*domain.Form, error)
	SetEmailEnabledFunc   func(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Form, error)
	SetAllowedOriginsFunc func(ctx context.Context, id uuid.UUID, origins []string) (*domain.Form, error)
	SoftDeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetOwned []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			F   *domain.Form
		}
		SetEmailEnabled []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Enabled bool
		}
		SetAllowedOrigins []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Origins []string
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID           sync.RWMutex
	lockGetOwned          sync.RWMutex
	lockListByOwner       sync.RWMutex
	lockCreate            sync.RWMutex
	lockSetEmailEnabled   sync.RWMutex
	lockSetAllowedOrigins sync.RWMutex
	lockSoftDelete        sync.RWMutex
}

func (mock *formRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	if mock.GetByIDFunc == nil {
		panic("formRepoMock.GetByIDFunc: method is nil but formRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *formRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *formRepoMock) GetOwned(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Form, error) {
	if mock.GetOwnedFunc == nil {
		panic("formRepoMock.GetOwnedFunc: method is nil but formRepo.GetOwned was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetOwned.Lock()
	mock.calls.GetOwned = append(mock.calls.GetOwned, callInfo)
	mock.lockGetOwned.Unlock()
	return mock.GetOwnedFunc(ctx, ownerID, id)
}

func (mock *formRepoMock) GetOwnedCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetOwned.RLock()
	calls := mock.calls.GetOwned
	mock.lockGetOwned.RUnlock()
	return calls
}

func (mock *formRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Form, error) {
	if mock.ListByOwnerFunc == nil {
		panic("formRepoMock.ListByOwnerFunc: method is nil but formRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *formRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *formRepoMock) Create(ctx context.Context, f *domain.Form) (*domain.Form, error) {
	if mock.CreateFunc == nil {
		panic("formRepoMock.CreateFunc: method is nil but formRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Form
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *formRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Form
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *formRepoMock) SetEmailEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Form, error) {
	if mock.SetEmailEnabledFunc == nil {
		panic("formRepoMock.SetEmailEnabledFunc: method is nil but formRepo.SetEmailEnabled was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Enabled bool
	}{Ctx: ctx, ID: id, Enabled: enabled}
	mock.lockSetEmailEnabled.Lock()
	mock.calls.SetEmailEnabled = append(mock.calls.SetEmailEnabled, callInfo)
	mock.lockSetEmailEnabled.Unlock()
	return mock.SetEmailEnabledFunc(ctx, id, enabled)
}

func (mock *formRepoMock) SetEmailEnabledCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Enabled bool
} {
	mock.lockSetEmailEnabled.RLock()
	calls := mock.calls.SetEmailEnabled
	mock.lockSetEmailEnabled.RUnlock()
	return calls
}

func (mock *formRepoMock) SetAllowedOrigins(ctx context.Context, id uuid.UUID, origins []string) (*domain.Form, error) {
	if mock.SetAllowedOriginsFunc == nil {
		panic("formRepoMock.SetAllowedOriginsFunc: method is nil but formRepo.SetAllowedOrigins was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Origins []string
	}{Ctx: ctx, ID: id, Origins: origins}
	mock.lockSetAllowedOrigins.Lock()
	mock.calls.SetAllowedOrigins = append(mock.calls.SetAllowedOrigins, callInfo)
	mock.lockSetAllowedOrigins.Unlock()
	return mock.SetAllowedOriginsFunc(ctx, id, origins)
}

func (mock *formRepoMock) SetAllowedOriginsCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Origins []string
} {
	mock.lockSetAllowedOrigins.RLock()
	calls := mock.calls.SetAllowedOrigins
	mock.lockSetAllowedOrigins.RUnlock()
	return calls
}

func (mock *formRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("formRepoMock.SoftDeleteFunc: method is nil but formRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *formRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

var _ recipientRepo = &recipientRepoMock{}

type recipientRepoMock struct {
	CreateFunc          func(ctx context.Context, formID uuid.UUID, email string) (*domain.Recipient, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Recipient, error)
	ListByFormFunc      func(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error)
	ListDeliverableFunc func(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error)
	SetEnabledFunc      func(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Recipient, error)
	SoftDeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			FormID uuid.UUID
			Email  string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByForm []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		ListDeliverable []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		SetEnabled []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Enabled bool
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListByForm      sync.RWMutex
	lockListDeliverable sync.RWMutex
	lockSetEnabled      sync.RWMutex
	lockSoftDelete      sync.RWMutex
}

func (mock *recipientRepoMock) Create(ctx context.Context, formID uuid.UUID, email string) (*domain.Recipient, error) {
	if mock.CreateFunc == nil {
		panic("recipientRepoMock.CreateFunc: method is nil but recipientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		Email  string
	}{Ctx: ctx, FormID: formID, Email: email}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, formID, email)
}

func (mock *recipientRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	Email  string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recipientRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipient, error) {
	if mock.GetByIDFunc == nil {
		panic("recipientRepoMock.GetByIDFunc: method is nil but recipientRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recipientRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recipientRepoMock) ListByForm(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error) {
	if mock.ListByFormFunc == nil {
		panic("recipientRepoMock.ListByFormFunc: method is nil but recipientRepo.ListByForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockListByForm.Lock()
	mock.calls.ListByForm = append(mock.calls.ListByForm, callInfo)
	mock.lockListByForm.Unlock()
	return mock.ListByFormFunc(ctx, formID)
}

func (mock *recipientRepoMock) ListByFormCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockListByForm.RLock()
	calls := mock.calls.ListByForm
	mock.lockListByForm.RUnlock()
	return calls
}

func (mock *recipientRepoMock) ListDeliverable(ctx context.Context, formID uuid.UUID) ([]domain.Recipient, error) {
	if mock.ListDeliverableFunc == nil {
		panic("recipientRepoMock.ListDeliverableFunc: method is nil but recipientRepo.ListDeliverable was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockListDeliverable.Lock()
	mock.calls.ListDeliverable = append(mock.calls.ListDeliverable, callInfo)
	mock.lockListDeliverable.Unlock()
	return mock.ListDeliverableFunc(ctx, formID)
}

func (mock *recipientRepoMock) ListDeliverableCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockListDeliverable.RLock()
	calls := mock.calls.ListDeliverable
	mock.lockListDeliverable.RUnlock()
	return calls
}

func (mock *recipientRepoMock) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.Recipient, error) {
	if mock.SetEnabledFunc == nil {
		panic("recipientRepoMock.SetEnabledFunc: method is nil but recipientRepo.SetEnabled was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Enabled bool
	}{Ctx: ctx, ID: id, Enabled: enabled}
	mock.lockSetEnabled.Lock()
	mock.calls.SetEnabled = append(mock.calls.SetEnabled, callInfo)
	mock.lockSetEnabled.Unlock()
	return mock.SetEnabledFunc(ctx, id, enabled)
}

func (mock *recipientRepoMock) SetEnabledCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Enabled bool
} {
	mock.lockSetEnabled.RLock()
	calls := mock.calls.SetEnabled
	mock.lockSetEnabled.RUnlock()
	return calls
}

func (mock *recipientRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("recipientRepoMock.SoftDeleteFunc: method is nil but recipientRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *recipientRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

var _ integrationRepo = &integrationRepoMock{}

type integrationRepoMock struct {
	ConnectFunc    func(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, sealed []byte) (*domain.ChannelIntegration, error)
	GetFunc        func(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) (*domain.ChannelIntegration, error)
	ListByFormFunc func(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error)
	ListActiveFunc func(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error)
	SetEnabledFunc func(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (*domain.ChannelIntegration, error)
	DisconnectFunc func(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error

	calls struct {
		Connect []struct {
			Ctx    context.Context
			FormID uuid.UUID
			Kind   domain.ChannelKind
			Sealed []byte
		}
		Get []struct {
			Ctx    context.Context
			FormID uuid.UUID
			Kind   domain.ChannelKind
		}
		ListByForm []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		ListActive []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		SetEnabled []struct {
			Ctx     context.Context
			FormID  uuid.UUID
			Kind    domain.ChannelKind
			Enabled bool
		}
		Disconnect []struct {
			Ctx    context.Context
			FormID uuid.UUID
			Kind   domain.ChannelKind
		}
	}
	lockConnect    sync.RWMutex
	lockGet        sync.RWMutex
	lockListByForm sync.RWMutex
	lockListActive sync.RWMutex
	lockSetEnabled sync.RWMutex
	lockDisconnect sync.RWMutex
}

func (mock *integrationRepoMock) Connect(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, sealed []byte) (*domain.ChannelIntegration, error) {
	if mock.ConnectFunc == nil {
		panic("integrationRepoMock.ConnectFunc: method is nil but integrationRepo.Connect was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		Kind   domain.ChannelKind
		Sealed []byte
	}{Ctx: ctx, FormID: formID, Kind: kind, Sealed: sealed}
	mock.lockConnect.Lock()
	mock.calls.Connect = append(mock.calls.Connect, callInfo)
	mock.lockConnect.Unlock()
	return mock.ConnectFunc(ctx, formID, kind, sealed)
}

func (mock *integrationRepoMock) ConnectCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	Kind   domain.ChannelKind
	Sealed []byte
} {
	mock.lockConnect.RLock()
	calls := mock.calls.Connect
	mock.lockConnect.RUnlock()
	return calls
}

func (mock *integrationRepoMock) Get(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) (*domain.ChannelIntegration, error) {
	if mock.GetFunc == nil {
		panic("integrationRepoMock.GetFunc: method is nil but integrationRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		Kind   domain.ChannelKind
	}{Ctx: ctx, FormID: formID, Kind: kind}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, formID, kind)
}

func (mock *integrationRepoMock) GetCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	Kind   domain.ChannelKind
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *integrationRepoMock) ListByForm(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error) {
	if mock.ListByFormFunc == nil {
		panic("integrationRepoMock.ListByFormFunc: method is nil but integrationRepo.ListByForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockListByForm.Lock()
	mock.calls.ListByForm = append(mock.calls.ListByForm, callInfo)
	mock.lockListByForm.Unlock()
	return mock.ListByFormFunc(ctx, formID)
}

func (mock *integrationRepoMock) ListByFormCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockListByForm.RLock()
	calls := mock.calls.ListByForm
	mock.lockListByForm.RUnlock()
	return calls
}

func (mock *integrationRepoMock) ListActive(ctx context.Context, formID uuid.UUID) ([]domain.ChannelIntegration, error) {
	if mock.ListActiveFunc == nil {
		panic("integrationRepoMock.ListActiveFunc: method is nil but integrationRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, formID)
}

func (mock *integrationRepoMock) ListActiveCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *integrationRepoMock) SetEnabled(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind, enabled bool) (*domain.ChannelIntegration, error) {
	if mock.SetEnabledFunc == nil {
		panic("integrationRepoMock.SetEnabledFunc: method is nil but integrationRepo.SetEnabled was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FormID  uuid.UUID
		Kind    domain.ChannelKind
		Enabled bool
	}{Ctx: ctx, FormID: formID, Kind: kind, Enabled: enabled}
	mock.lockSetEnabled.Lock()
	mock.calls.SetEnabled = append(mock.calls.SetEnabled, callInfo)
	mock.lockSetEnabled.Unlock()
	return mock.SetEnabledFunc(ctx, formID, kind, enabled)
}

func (mock *integrationRepoMock) SetEnabledCalls() []struct {
	Ctx     context.Context
	FormID  uuid.UUID
	Kind    domain.ChannelKind
	Enabled bool
} {
	mock.lockSetEnabled.RLock()
	calls := mock.calls.SetEnabled
	mock.lockSetEnabled.RUnlock()
	return calls
}

func (mock *integrationRepoMock) Disconnect(ctx context.Context, formID uuid.UUID, kind domain.ChannelKind) error {
	if mock.DisconnectFunc == nil {
		panic("integrationRepoMock.DisconnectFunc: method is nil but integrationRepo.Disconnect was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		Kind   domain.ChannelKind
	}{Ctx: ctx, FormID: formID, Kind: kind}
	mock.lockDisconnect.Lock()
	mock.calls.Disconnect = append(mock.calls.Disconnect, callInfo)
	mock.lockDisconnect.Unlock()
	return mock.DisconnectFunc(ctx, formID, kind)
}

func (mock *integrationRepoMock) DisconnectCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	Kind   domain.ChannelKind
} {
	mock.lockDisconnect.RLock()
	calls := mock.calls.Disconnect
	mock.lockDisconnect.RUnlock()
	return calls
}
