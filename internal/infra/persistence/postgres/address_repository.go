package postgres

import (
	"context"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/model"
	"addressbook/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	q *query.Query
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	addressM, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.ID.Eq(id)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(addressM), nil
}

// FindByPerson retrieves every address of a person ordered by ID.
func (repo *addressRepository) FindByPerson(ctx context.Context, personID int64) ([]*entity.Address, error) {
	addressModels, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.PersonID.Eq(personID)).
		Order(repo.q.AddressModel.ID.Asc()).
		Find()

	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by person")
	}

	return toAddressDomainList(addressModels), nil
}

// Create persists a new address for a person.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.ID = 0

	if err := repo.q.AddressModel.WithContext(ctx).Create(addressM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPersonNotFound.WrapMessage("invalid person reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("missing required address information")
		}
		if isCheckConstraintViolation(err) || isNumericOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("address number or postal code rejected by the store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update overwrites the descriptive fields of an existing address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	a := repo.q.AddressModel

	result, err := a.WithContext(ctx).
		Where(a.ID.Eq(address.ID)).
		Select(a.Street, a.PostalCode, a.Number, a.City, a.UpdatedAt).
		Updates(addressM)

	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("missing required address information")
		}
		if isCheckConstraintViolation(err) || isNumericOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("address number or postal code rejected by the store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(ctx context.Context, id int64) error {
	result, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.ID.Eq(id)).
		Delete()

	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ExistsByID reports whether an address row exists.
func (repo *addressRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	count, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.ID.Eq(id)).
		Count()

	if err != nil {
		return false, errors.Wrap(err, "failed to check address existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		PersonID:   data.PersonID,
		Street:     data.Street,
		PostalCode: data.PostalCode,
		Number:     data.Number,
		City:       data.City,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toAddressDomainList(data []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(data))
	for _, addressM := range data {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		PersonID:   data.PersonID,
		Street:     data.Street,
		PostalCode: data.PostalCode,
		Number:     data.Number,
		City:       data.City,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
