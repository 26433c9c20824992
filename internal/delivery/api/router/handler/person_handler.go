package handler

import (
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"time"

	"addressbook/internal/delivery/api/response"
	"addressbook/internal/delivery/api/validator"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var (
	errInvalidPersonID  = errors.New("invalid person ID")
	errInvalidAddressID = errors.New("invalid address ID")
)

// PersonHandlerParams holds dependencies for PersonHandler, injected by Fx.
type PersonHandlerParams struct {
	fx.In

	PersonUC usecase.PersonUsecase
	Logger   *slog.Logger
}

// PersonHandler holds dependencies for person and address handlers
type PersonHandler struct {
	personUC usecase.PersonUsecase
	logger   *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler
func NewPersonHandler(params PersonHandlerParams) *PersonHandler {
	return &PersonHandler{
		personUC: params.PersonUC,
		logger:   params.Logger,
	}
}

// ListPeople handles listing every person
func (h *PersonHandler) ListPeople(c echo.Context) error {
	people, err := h.personUC.ListPeople(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPersonResponses(people))
}

// CreatePerson handles person creation
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	var req PersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	birthDate, err := validatePerson(c, &req)
	if err != nil {
		return validationFailed(c, err)
	}

	person, err := h.personUC.CreatePerson(c.Request().Context(), &usecase.CreatePersonInput{
		Name:      req.Name,
		BirthDate: birthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, locationOf(c, person.ID), newPersonResponse(person))
}

// GetPerson handles retrieving one person
func (h *PersonHandler) GetPerson(c echo.Context) error {
	personID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid person ID")
	}

	person, err := h.personUC.GetPerson(c.Request().Context(), personID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPersonResponse(person))
}

// UpdatePerson handles overwriting a person's name and birth date
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	personID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid person ID")
	}

	var req PersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	birthDate, err := validatePerson(c, &req)
	if err != nil {
		return validationFailed(c, err)
	}

	person, err := h.personUC.UpdatePerson(c.Request().Context(), personID, &usecase.UpdatePersonInput{
		Name:      req.Name,
		BirthDate: birthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPersonResponse(person))
}

// DeletePerson handles removing a person and its addresses
func (h *PersonHandler) DeletePerson(c echo.Context) error {
	personID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid person ID")
	}

	if err := h.personUC.DeletePerson(c.Request().Context(), personID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListAddresses handles listing a person's addresses
func (h *PersonHandler) ListAddresses(c echo.Context) error {
	personID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid person ID")
	}

	addresses, err := h.personUC.ListAddresses(c.Request().Context(), personID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponses(addresses))
}

// AddAddress handles adding a new address to a person
func (h *PersonHandler) AddAddress(c echo.Context) error {
	personID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid person ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	address, err := h.personUC.AddAddress(c.Request().Context(), personID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, locationOf(c, address.ID), newAddressResponse(address))
}

// GetAddress handles retrieving one of a person's addresses
func (h *PersonHandler) GetAddress(c echo.Context) error {
	personID, addressID, err := parseAddressPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	address, err := h.personUC.GetAddress(c.Request().Context(), personID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

// UpdateAddress handles overwriting the fields of a person's address
func (h *PersonHandler) UpdateAddress(c echo.Context) error {
	personID, addressID, err := parseAddressPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	address, err := h.personUC.UpdateAddress(c.Request().Context(), personID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

// RemoveAddress handles deleting a person's address
func (h *PersonHandler) RemoveAddress(c echo.Context) error {
	personID, addressID, err := parseAddressPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.personUC.RemoveAddress(c.Request().Context(), personID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// SetPrimaryAddress handles designating a person's primary address
func (h *PersonHandler) SetPrimaryAddress(c echo.Context) error {
	personID, addressID, err := parseAddressPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	address, err := h.personUC.SetPrimaryAddress(c.Request().Context(), personID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

func (req *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Street:     req.Street,
		PostalCode: req.PostalCode,
		Number:     req.Number,
		City:       req.City,
	}
}

// validatePerson runs the tag rules and returns the parsed birth date.
func validatePerson(c echo.Context, req *PersonRequest) (time.Time, error) {
	if err := c.Validate(req); err != nil {
		return time.Time{}, err
	}

	return time.Parse(birthDateLayout, req.BirthDate)
}

func validationFailed(c echo.Context, err error) error {
	details := any(err.Error())
	if fields := validator.FieldErrors(err); fields != nil {
		details = fields
	}

	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		details,
	)
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}

	return id, nil
}

func parseAddressPath(c echo.Context) (int64, int64, error) {
	personID, err := parseID(c, "id")
	if err != nil {
		return 0, 0, errInvalidPersonID
	}

	addressID, err := parseID(c, "addressId")
	if err != nil {
		return 0, 0, errInvalidAddressID
	}

	return personID, addressID, nil
}

// locationOf builds the URI of a resource created under the request path.
func locationOf(c echo.Context, id int64) string {
	return path.Join(c.Request().URL.Path, strconv.FormatInt(id, 10))
}
