package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"addressbook/config"
	"addressbook/internal/delivery/api/router"
	"addressbook/internal/delivery/api/router/handler"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/errors"
	mockUsecase "addressbook/internal/mocks/usecase"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Data T `json:"data"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockPersonUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	personUC := mockUsecase.NewMockPersonUsecase(t)

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			PersonHandler: handler.NewPersonHandler(handler.PersonHandlerParams{
				PersonUC: personUC,
				Logger:   logger,
			}),
		},
	})

	return e, personUC
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func birthDate() time.Time {
	return time.Date(1990, time.April, 1, 0, 0, 0, 0, time.UTC)
}

func TestServer_CreatePerson(t *testing.T) {
	for _, prefix := range []string{"", router.APIV1Prefix} {
		t.Run("prefix "+prefix, func(t *testing.T) {
			e, personUC := newTestEcho(t)

			personUC.EXPECT().
				CreatePerson(mock.Anything, mock.MatchedBy(func(in *usecase.CreatePersonInput) bool {
					return in.Name == "Ana" && in.BirthDate.Equal(birthDate())
				})).
				Return(&entity.Person{ID: 7, Name: "Ana", BirthDate: birthDate()}, nil).
				Once()

			rec := serve(e, http.MethodPost, prefix+"/people", `{"id": 99, "name": "Ana", "birth_date": "1990-04-01", "addresses": [{"street": "x"}]}`)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, prefix+"/people/7", rec.Header().Get(echo.HeaderLocation))
			assert.Contains(t, rec.Body.String(), `"primary_address":null`)

			body := decode[envelope[handler.PersonResponse]](t, rec)
			assert.Equal(t, int64(7), body.Data.ID)
			assert.Equal(t, "1990-04-01", body.Data.BirthDate)
			assert.NotNil(t, body.Data.Addresses)
			assert.Empty(t, body.Data.Addresses)
		})
	}
}

func TestServer_CreatePersonValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "empty name and malformed date",
			body:   `{"name": "", "birth_date": "01/04/1990"}`,
			fields: []string{"name", "birth_date"},
		},
		{
			name:   "blank name",
			body:   `{"name": "   ", "birth_date": "1990-01-01"}`,
			fields: []string{"name"},
		},
		{
			name:   "tab only name",
			body:   `{"name": "\t", "birth_date": "1990-01-01"}`,
			fields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEcho(t)

			rec := serve(e, http.MethodPost, "/people", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[errorEnvelope](t, rec)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
			assert.Len(t, body.Error.Details, len(tt.fields))
			for _, field := range tt.fields {
				assert.Contains(t, body.Error.Details, field)
			}
		})
	}
}

func TestServer_MalformedBody(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodPost, "/people", `{"name": `)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode[errorEnvelope](t, rec).Error.Code)
}

func TestServer_UpdatePerson(t *testing.T) {
	e, personUC := newTestEcho(t)

	home := &entity.Address{ID: 3, Street: "Main", PostalCode: "12345-678", Number: 10, City: "Springfield"}
	updated := &entity.Person{
		ID:             4,
		Name:           "Bea",
		BirthDate:      birthDate(),
		Addresses:      []*entity.Address{home},
		PrimaryAddress: home,
	}

	personUC.EXPECT().
		UpdatePerson(mock.Anything, int64(4), mock.MatchedBy(func(in *usecase.UpdatePersonInput) bool {
			return in.Name == "Bea"
		})).
		Return(updated, nil).
		Once()

	rec := serve(e, http.MethodPut, "/people/4", `{"name": "Bea", "birth_date": "1990-04-01"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[envelope[handler.PersonResponse]](t, rec)
	require.Len(t, body.Data.Addresses, 1)
	require.NotNil(t, body.Data.PrimaryAddress)
	assert.Equal(t, int64(3), body.Data.PrimaryAddress.ID)
	assert.Equal(t, "12345-678", body.Data.PrimaryAddress.PostalCode)
}

func TestServer_PersonNotFound(t *testing.T) {
	e, personUC := newTestEcho(t)

	personUC.EXPECT().
		GetPerson(mock.Anything, int64(5)).
		Return(nil, domainerrors.ErrPersonNotFound.WrapMessage("person 5")).
		Once()

	rec := serve(e, http.MethodGet, "/people/5", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PERSON_NOT_FOUND", decode[errorEnvelope](t, rec).Error.Code)
}

func TestServer_InvalidIDs(t *testing.T) {
	e, _ := newTestEcho(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/people/abc"},
		{http.MethodDelete, "/people/0"},
		{http.MethodGet, "/people/abc/addresses"},
		{http.MethodGet, "/people/1/addresses/xyz"},
		{http.MethodPut, "/people/1/primary-address/-2"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_ID", decode[errorEnvelope](t, rec).Error.Code)
		})
	}
}

func TestServer_DeletePerson(t *testing.T) {
	e, personUC := newTestEcho(t)

	personUC.EXPECT().DeletePerson(mock.Anything, int64(3)).Return(nil).Once()

	rec := serve(e, http.MethodDelete, "/people/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServer_AddAddress(t *testing.T) {
	e, personUC := newTestEcho(t)

	personUC.EXPECT().
		AddAddress(mock.Anything, int64(1), &usecase.AddressInput{
			Street:     "Main",
			PostalCode: "12345-678",
			Number:     10,
			City:       "Springfield",
		}).
		Return(&entity.Address{ID: 10, Street: "Main", PostalCode: "12345-678", Number: 10, City: "Springfield"}, nil).
		Once()

	rec := serve(e, http.MethodPost, "/people/1/addresses", `{"id": 5, "street": "Main", "postal_code": "12345-678", "number": 10, "city": "Springfield"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/people/1/addresses/10", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, int64(10), decode[envelope[handler.AddressResponse]](t, rec).Data.ID)
}

func TestServer_AddressValidation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		fields map[string]string
	}{
		{
			name:   "empty fields",
			method: http.MethodPut,
			target: "/people/1/addresses/2",
			body:   `{"street": "", "postal_code": "12345678", "number": 0, "city": ""}`,
			fields: map[string]string{
				"street":      "is required",
				"postal_code": "must match NNNNN-NNN",
				"number":      "is required",
				"city":        "is required",
			},
		},
		{
			name:   "blank street and city",
			method: http.MethodPost,
			target: "/people/1/addresses",
			body:   `{"street": "  ", "postal_code": "12345-678", "number": 10, "city": "\t\n"}`,
			fields: map[string]string{
				"street": "must not be blank",
				"city":   "must not be blank",
			},
		},
		{
			name:   "number beyond column range",
			method: http.MethodPost,
			target: "/people/1/addresses",
			body:   `{"street": "Main", "postal_code": "12345-678", "number": 2147483648, "city": "Springfield"}`,
			fields: map[string]string{
				"number": "must be at most 2147483647",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEcho(t)

			rec := serve(e, tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[errorEnvelope](t, rec)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
			assert.Equal(t, tt.fields, body.Error.Details)
		})
	}
}

func TestServer_AddressErrors(t *testing.T) {
	e, personUC := newTestEcho(t)

	personUC.EXPECT().
		RemoveAddress(mock.Anything, int64(1), int64(2)).
		Return(domainerrors.ErrAddressNotOwned.WrapMessage("address 2 does not belong to person 1")).
		Once()
	personUC.EXPECT().
		GetAddress(mock.Anything, int64(1), int64(9)).
		Return(nil, domainerrors.ErrAddressNotFound.WrapMessage("address 9")).
		Once()

	rec := serve(e, http.MethodDelete, "/people/1/addresses/2", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_OWNED", decode[errorEnvelope](t, rec).Error.Code)

	rec = serve(e, http.MethodGet, "/people/1/addresses/9", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", decode[errorEnvelope](t, rec).Error.Code)
}

func TestServer_SetPrimaryAddress(t *testing.T) {
	e, personUC := newTestEcho(t)

	personUC.EXPECT().
		SetPrimaryAddress(mock.Anything, int64(1), int64(2)).
		Return(&entity.Address{ID: 2, Street: "Side", PostalCode: "00000-000", Number: 1, City: "Shelbyville"}, nil).
		Once()

	rec := serve(e, http.MethodPut, "/api/v1/people/1/primary-address/2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Side", decode[envelope[handler.AddressResponse]](t, rec).Data.Street)
}

func TestServer_ListAddresses(t *testing.T) {
	e, personUC := newTestEcho(t)

	personUC.EXPECT().
		ListAddresses(mock.Anything, int64(1)).
		Return([]*entity.Address{{ID: 1}, {ID: 2}}, nil).
		Once()

	rec := serve(e, http.MethodGet, "/people/1/addresses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[envelope[[]handler.AddressResponse]](t, rec)
	require.Len(t, body.Data, 2)
	assert.Equal(t, int64(2), body.Data[1].ID)
}

func TestServer_UnhandledErrorIsHidden(t *testing.T) {
	e, personUC := newTestEcho(t)

	personUC.EXPECT().ListPeople(mock.Anything).Return(nil, errors.New("connection refused on 10.0.0.1")).Once()

	rec := serve(e, http.MethodGet, "/people", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode[errorEnvelope](t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}

func TestServer_UnknownRoute(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/nowhere", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode[errorEnvelope](t, rec).Error.Code)
}

func TestServer_HealthAndRequestID(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-abc-123", rec.Header().Get(echo.HeaderXRequestID))

	body := decode[envelope[map[string]string]](t, rec)
	assert.Equal(t, "ok", body.Data["status"])
	assert.Equal(t, "req-abc-123", body.Meta.RequestID)
}
