package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/akinloluwami/formdrop/internal/adapter/notify"
	"github.com/akinloluwami/formdrop/internal/domain"
)

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendFunc func(ctx context.Context, msg notify.Message) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg notify.Message
		}
	}
	lockSend sync.RWMutex
}

func (mock *mailerMock) Send(ctx context.Context, msg notify.Message) error {
	if mock.SendFunc == nil {
		panic("mailerMock.SendFunc: method is nil but mailer.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg notify.Message
	}{Ctx: ctx, Msg: msg}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *mailerMock) SendCalls() []struct {
	Ctx context.Context
	Msg notify.Message
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

var _ webhookPoster = &webhookPosterMock{}

type webhookPosterMock struct {
	PostFunc func(ctx context.Context, service string, url string, payload any) error

	calls struct {
		Post []struct {
			Ctx     context.Context
			Service string
			URL     string
			Payload any
		}
	}
	lockPost sync.RWMutex
}

func (mock *webhookPosterMock) Post(ctx context.Context, service string, url string, payload any) error {
	if mock.PostFunc == nil {
		panic("webhookPosterMock.PostFunc: method is nil but webhookPoster.Post was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Service string
		URL     string
		Payload any
	}{Ctx: ctx, Service: service, URL: url, Payload: payload}
	mock.lockPost.Lock()
	mock.calls.Post = append(mock.calls.Post, callInfo)
	mock.lockPost.Unlock()
	return mock.PostFunc(ctx, service, url, payload)
}

func (mock *webhookPosterMock) PostCalls() []struct {
	Ctx     context.Context
	Service string
	URL     string
	Payload any
} {
	mock.lockPost.RLock()
	calls := mock.calls.Post
	mock.lockPost.RUnlock()
	return calls
}

var _ sheetsAppender = &sheetsAppenderMock{}

type sheetsAppenderMock struct {
	AppendRecordFunc func(ctx context.Context, tok notify.SheetsToken, spreadsheetID string, sheetName string, cols []notify.SheetColumn) error

	calls struct {
		AppendRecord []struct {
			Ctx           context.Context
			Tok           notify.SheetsToken
			SpreadsheetID string
			SheetName     string
			Cols          []notify.SheetColumn
		}
	}
	lockAppendRecord sync.RWMutex
}

func (mock *sheetsAppenderMock) AppendRecord(ctx context.Context, tok notify.SheetsToken, spreadsheetID string, sheetName string, cols []notify.SheetColumn) error {
	if mock.AppendRecordFunc == nil {
		panic("sheetsAppenderMock.AppendRecordFunc: method is nil but sheetsAppender.AppendRecord was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Tok           notify.SheetsToken
		SpreadsheetID string
		SheetName     string
		Cols          []notify.SheetColumn
	}{Ctx: ctx, Tok: tok, SpreadsheetID: spreadsheetID, SheetName: sheetName, Cols: cols}
	mock.lockAppendRecord.Lock()
	mock.calls.AppendRecord = append(mock.calls.AppendRecord, callInfo)
	mock.lockAppendRecord.Unlock()
	return mock.AppendRecordFunc(ctx, tok, spreadsheetID, sheetName, cols)
}

func (mock *sheetsAppenderMock) AppendRecordCalls() []struct {
	Ctx           context.Context
	Tok           notify.SheetsToken
	SpreadsheetID string
	SheetName     string
	Cols          []notify.SheetColumn
} {
	mock.lockAppendRecord.RLock()
	calls := mock.calls.AppendRecord
	mock.lockAppendRecord.RUnlock()
	return calls
}

var _ recordCreator = &recordCreatorMock{}

type recordCreatorMock struct {
	CreateRecordFunc func(ctx context.Context, apiKey string, baseID string, table string, fields map[string]any) error

	calls struct {
		CreateRecord []struct {
			Ctx    context.Context
			ApiKey string
			BaseID string
			Table  string
			Fields map[string]any
		}
	}
	lockCreateRecord sync.RWMutex
}

func (mock *recordCreatorMock) CreateRecord(ctx context.Context, apiKey string, baseID string, table string, fields map[string]any) error {
	if mock.CreateRecordFunc == nil {
		panic("recordCreatorMock.CreateRecordFunc: method is nil but recordCreator.CreateRecord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ApiKey string
		BaseID string
		Table  string
		Fields map[string]any
	}{Ctx: ctx, ApiKey: apiKey, BaseID: baseID, Table: table, Fields: fields}
	mock.lockCreateRecord.Lock()
	mock.calls.CreateRecord = append(mock.calls.CreateRecord, callInfo)
	mock.lockCreateRecord.Unlock()
	return mock.CreateRecordFunc(ctx, apiKey, baseID, table, fields)
}

func (mock *recordCreatorMock) CreateRecordCalls() []struct {
	Ctx    context.Context
	ApiKey string
	BaseID string
	Table  string
	Fields map[string]any
} {
	mock.lockCreateRecord.RLock()
	calls := mock.calls.CreateRecord
	mock.lockCreateRecord.RUnlock()
	return calls
}

var _ claimer = &claimerMock{}

type claimerMock struct {
	ClaimFunc   func(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseFunc func(ctx context.Context, key string) error

	calls struct {
		Claim []struct {
			Ctx context.Context
			Key string
			Ttl time.Duration
		}
		Release []struct {
			Ctx context.Context
			Key string
		}
	}
	lockClaim   sync.RWMutex
	lockRelease sync.RWMutex
}

func (mock *claimerMock) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if mock.ClaimFunc == nil {
		panic("claimerMock.ClaimFunc: method is nil but claimer.Claim was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Ttl time.Duration
	}{Ctx: ctx, Key: key, Ttl: ttl}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx, key, ttl)
}

func (mock *claimerMock) ClaimCalls() []struct {
	Ctx context.Context
	Key string
	Ttl time.Duration
} {
	mock.lockClaim.RLock()
	calls := mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}

func (mock *claimerMock) Release(ctx context.Context, key string) error {
	if mock.ReleaseFunc == nil {
		panic("claimerMock.ReleaseFunc: method is nil but claimer.Release was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, key)
}

func (mock *claimerMock) ReleaseCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

var _ deliveryRepo = &deliveryRepoMock{}

type deliveryRepoMock struct {
	CreateBatchFunc func(ctx context.Context, deliveries []domain.Delivery) error

	calls struct {
		CreateBatch []struct {
			Ctx        context.Context
			Deliveries []domain.Delivery
		}
	}
	lockCreateBatch sync.RWMutex
}

func (mock *deliveryRepoMock) CreateBatch(ctx context.Context, deliveries []domain.Delivery) error {
	if mock.CreateBatchFunc == nil {
		panic("deliveryRepoMock.CreateBatchFunc: method is nil but deliveryRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Deliveries []domain.Delivery
	}{Ctx: ctx, Deliveries: deliveries}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, deliveries)
}

func (mock *deliveryRepoMock) CreateBatchCalls() []struct {
	Ctx        context.Context
	Deliveries []domain.Delivery
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}
