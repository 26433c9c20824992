// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"go.uber.org/fx"
)

// personService implements the PersonUsecase interface.
type personService struct {
	txManager   repository.TransactionManager
	personRepo  repository.PersonRepository
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// PersonServiceParams holds dependencies for PersonService, injected by Fx.
type PersonServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PersonRepo  repository.PersonRepository
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(params PersonServiceParams) usecase.PersonUsecase {
	return &personService{
		txManager:   params.TxManager,
		personRepo:  params.PersonRepo,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *personService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPeople returns every stored person.
func (srv *personService) ListPeople(ctx context.Context) ([]*entity.Person, error) {
	people, err := srv.personRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	return people, nil
}

// CreatePerson stores a new person with no addresses.
func (srv *personService) CreatePerson(ctx context.Context, input *usecase.CreatePersonInput) (*entity.Person, error) {
	person := &entity.Person{
		Name:      input.Name,
		BirthDate: input.BirthDate,
	}

	if err := srv.personRepo.Create(ctx, person); err != nil {
		srv.log(ctx).Error("Failed to create person", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create person")
	}

	srv.log(ctx).Info("Person created", slog.Int64("personID", person.ID))

	return person, nil
}

// UpdatePerson overwrites name and birth date. Addresses and the primary stay as they are.
func (srv *personService) UpdatePerson(ctx context.Context, personID int64, input *usecase.UpdatePersonInput) (*entity.Person, error) {
	var updated *entity.Person

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.PersonRepo()

		person, err := findPerson(ctx, personRepo, personID)
		if err != nil {
			return err
		}

		person.Name = input.Name
		person.BirthDate = input.BirthDate

		if err := personRepo.Update(ctx, person); err != nil {
			return errors.Wrap(err, "failed to update person")
		}
		updated = person

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update person transaction")
	}

	srv.log(ctx).Info("Person updated", slog.Int64("personID", personID))

	return updated, nil
}

// DeletePerson removes a person together with all of its addresses.
func (srv *personService) DeletePerson(ctx context.Context, personID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PersonRepo().Delete(ctx, personID); err != nil {
			return translatePersonError(err, personID)
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute delete person transaction")
	}

	srv.log(ctx).Info("Person deleted", slog.Int64("personID", personID))

	return nil
}

// GetPerson returns one person with its addresses.
func (srv *personService) GetPerson(ctx context.Context, personID int64) (*entity.Person, error) {
	return findPerson(ctx, srv.personRepo, personID)
}

// ListAddresses returns a copy of the person's address collection.
func (srv *personService) ListAddresses(ctx context.Context, personID int64) ([]*entity.Address, error) {
	person, err := findPerson(ctx, srv.personRepo, personID)
	if err != nil {
		return nil, err
	}

	return person.AddressesView(), nil
}

// AddAddress appends a brand-new address. The first address of a person becomes its primary.
func (srv *personService) AddAddress(ctx context.Context, personID int64, input *usecase.AddressInput) (*entity.Address, error) {
	address := newAddressFromInput(input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.PersonRepo()

		person, err := findPerson(ctx, personRepo, personID)
		if err != nil {
			return err
		}

		becamePrimary := person.AddAddress(address)

		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		if becamePrimary {
			if err := personRepo.Update(ctx, person); err != nil {
				return errors.Wrap(err, "failed to persist primary address")
			}
		}

		srv.checkPrimaryInvariant(ctx, person)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add address transaction")
	}

	srv.log(ctx).Info("Address added", slog.Int64("personID", personID), slog.Int64("addressID", address.ID))

	return address, nil
}

// RemoveAddress deletes an owned address and re-elects the primary.
// Whenever addresses remain, the first remaining one ends up primary,
// including when the removed address was not the primary.
func (srv *personService) RemoveAddress(ctx context.Context, personID, addressID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.PersonRepo()
		addressRepo := repoFactory.AddressRepo()

		person, err := findPerson(ctx, personRepo, personID)
		if err != nil {
			return err
		}

		address, err := findOwnedAddress(ctx, addressRepo, person, addressID)
		if err != nil {
			return err
		}

		person.RemoveAddress(address)

		// The primary reference must move off the address before its row goes.
		if err := personRepo.Update(ctx, person); err != nil {
			return errors.Wrap(err, "failed to persist primary address")
		}

		if err := addressRepo.Delete(ctx, address.ID); err != nil {
			return translateAddressError(err, address.ID)
		}

		srv.checkPrimaryInvariant(ctx, person)

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute remove address transaction")
	}

	srv.log(ctx).Info("Address removed", slog.Int64("personID", personID), slog.Int64("addressID", addressID))

	return nil
}

// SetPrimaryAddress designates one of the person's addresses as primary.
func (srv *personService) SetPrimaryAddress(ctx context.Context, personID, addressID int64) (*entity.Address, error) {
	var primary *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.PersonRepo()

		person, err := findPerson(ctx, personRepo, personID)
		if err != nil {
			return err
		}

		address, ok := person.SetPrimaryAddress(addressID)
		if !ok {
			return domainerrors.ErrAddressNotFound.WrapMessage(fmt.Sprintf("address %d is not an address of person %d", addressID, personID))
		}

		if err := personRepo.Update(ctx, person); err != nil {
			return errors.Wrap(err, "failed to persist primary address")
		}
		primary = address

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute set primary address transaction")
	}

	srv.log(ctx).Info("Primary address changed", slog.Int64("personID", personID), slog.Int64("addressID", addressID))

	return primary, nil
}

// UpdateAddress overwrites every field of an owned address except its ID.
func (srv *personService) UpdateAddress(ctx context.Context, personID, addressID int64, input *usecase.AddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		person, err := findPerson(ctx, repoFactory.PersonRepo(), personID)
		if err != nil {
			return err
		}

		address, err := findOwnedAddress(ctx, addressRepo, person, addressID)
		if err != nil {
			return err
		}

		address.CopyFieldsFrom(newAddressFromInput(input))

		if err := addressRepo.Update(ctx, address); err != nil {
			return translateAddressError(err, addressID)
		}
		updated = address

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update address transaction")
	}

	srv.log(ctx).Info("Address updated", slog.Int64("personID", personID), slog.Int64("addressID", addressID))

	return updated, nil
}

// GetAddress returns one owned address of a person.
func (srv *personService) GetAddress(ctx context.Context, personID, addressID int64) (*entity.Address, error) {
	person, err := findPerson(ctx, srv.personRepo, personID)
	if err != nil {
		return nil, err
	}

	return findOwnedAddress(ctx, srv.addressRepo, person, addressID)
}

func (srv *personService) checkPrimaryInvariant(ctx context.Context, person *entity.Person) {
	if err := person.CheckPrimaryInvariant(); err != nil {
		srv.log(ctx).Error("Primary address invariant broken", slog.Int64("personID", person.ID), slog.Any("error", err))
	}
}

// findPerson loads a person and maps a missing row to the domain error.
func findPerson(ctx context.Context, personRepo repository.PersonRepository, personID int64) (*entity.Person, error) {
	person, err := personRepo.FindByID(ctx, personID)
	if err != nil {
		return nil, translatePersonError(err, personID)
	}

	return person, nil
}

// findOwnedAddress returns the member of person's collection carrying addressID.
// An address that exists but belongs to someone else yields ErrAddressNotOwned.
func findOwnedAddress(
	ctx context.Context,
	addressRepo repository.AddressRepository,
	person *entity.Person,
	addressID int64,
) (*entity.Address, error) {
	if address, ok := person.FindAddress(addressID); ok {
		return address, nil
	}

	exists, err := addressRepo.ExistsByID(ctx, addressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up address")
	}
	if !exists {
		return nil, domainerrors.ErrAddressNotFound.WrapMessage(fmt.Sprintf("address %d", addressID))
	}

	return nil, domainerrors.ErrAddressNotOwned.WrapMessage(fmt.Sprintf("address %d does not belong to person %d", addressID, person.ID))
}

func translatePersonError(err error, personID int64) error {
	if errors.Is(err, repository.ErrPersonNotFound) {
		return domainerrors.ErrPersonNotFound.WrapMessage(fmt.Sprintf("person %d", personID))
	}

	return errors.Wrap(err, "failed to access person")
}

func translateAddressError(err error, addressID int64) error {
	if errors.Is(err, repository.ErrAddressNotFound) {
		return domainerrors.ErrAddressNotFound.WrapMessage(fmt.Sprintf("address %d", addressID))
	}

	return errors.Wrap(err, "failed to access address")
}

func newAddressFromInput(input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		Street:     input.Street,
		PostalCode: input.PostalCode,
		Number:     input.Number,
		City:       input.City,
	}
}
