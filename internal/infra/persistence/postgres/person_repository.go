// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/model"
	"addressbook/internal/infra/persistence/postgres/query"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// personRepository implements the domain.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{
		db: db,
		q:  query.Use(db),
	}
}

// FindAll retrieves every person ordered by ID, with addresses loaded in one batch.
func (repo *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	q := repo.q.ReadDB()

	personModels, err := q.PersonModel.WithContext(ctx).
		Order(q.PersonModel.ID.Asc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	if len(personModels) == 0 {
		return []*entity.Person{}, nil
	}

	personIDs := make([]int64, 0, len(personModels))
	for _, personM := range personModels {
		personIDs = append(personIDs, personM.ID)
	}

	addressModels, err := q.AddressModel.WithContext(ctx).
		Where(q.AddressModel.PersonID.In(personIDs...)).
		Order(q.AddressModel.ID.Asc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses of people")
	}

	byPerson := make(map[int64][]*model.AddressModel, len(personModels))
	for _, addressM := range addressModels {
		byPerson[addressM.PersonID] = append(byPerson[addressM.PersonID], addressM)
	}

	people := make([]*entity.Person, 0, len(personModels))
	for _, personM := range personModels {
		person, repaired := toPersonDomain(personM, byPerson[personM.ID])
		if repaired {
			repo.warnPrimaryRepaired(ctx, personM, person)
		}
		people = append(people, person)
	}

	return people, nil
}

// FindByID retrieves a person with its addresses.
func (repo *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	personM, err := repo.q.PersonModel.WithContext(ctx).
		Where(repo.q.PersonModel.ID.Eq(id)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by ID")
	}

	addressModels, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.PersonID.Eq(id)).
		Order(repo.q.AddressModel.ID.Asc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses of person")
	}

	person, repaired := toPersonDomain(personM, addressModels)
	if repaired {
		repo.warnPrimaryRepaired(ctx, personM, person)

		if err := repo.persistPrimary(ctx, person); err != nil {
			return nil, err
		}
	}

	return person, nil
}

// persistPrimary writes the resolved primary reference back to the person row.
func (repo *personRepository) persistPrimary(ctx context.Context, person *entity.Person) error {
	p := repo.q.PersonModel

	if _, err := p.WithContext(ctx).
		Where(p.ID.Eq(person.ID)).
		UpdateColumn(p.PrimaryAddressID, primaryAddressID(person)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to repair primary address reference")
	}

	return nil
}

func (repo *personRepository) warnPrimaryRepaired(ctx context.Context, stored *model.PersonModel, person *entity.Person) {
	var storedID any = "NULL"
	if stored.PrimaryAddressID != nil {
		storedID = *stored.PrimaryAddressID
	}

	var resolvedID any = "NULL"
	if id := primaryAddressID(person); id != nil {
		resolvedID = *id
	}

	repo.db.Logger.Warn(ctx, "person %d primary address reference %v did not match its addresses, resolved to %v",
		person.ID, storedID, resolvedID)
}

// Create persists the person row only.
func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)
	personM.ID = 0
	personM.PrimaryAddressID = nil

	if err := repo.q.PersonModel.WithContext(ctx).Create(personM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required person information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	person.ID = personM.ID
	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// Update persists name, birth date and the primary address reference.
func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)
	p := repo.q.PersonModel

	result, err := p.WithContext(ctx).
		Where(p.ID.Eq(person.ID)).
		Select(p.Name, p.BirthDate, p.PrimaryAddressID, p.UpdatedAt).
		Updates(personM)

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPersonUpdateFailed.WrapMessage("invalid primary address reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPersonUpdateFailed.WrapMessage("missing required person information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update person")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// Delete removes a person and its addresses in one unit of work.
func (repo *personRepository) Delete(ctx context.Context, id int64) error {
	return repo.q.Transaction(func(tx *query.Query) error {
		if _, err := tx.AddressModel.WithContext(ctx).
			Where(tx.AddressModel.PersonID.Eq(id)).
			Delete(); err != nil {
			return errors.Wrap(err, "failed to delete addresses of person")
		}

		result, err := tx.PersonModel.WithContext(ctx).
			Where(tx.PersonModel.ID.Eq(id)).
			Delete()
		if err != nil {
			return errors.Wrap(err, "failed to delete person")
		}

		if result.RowsAffected == 0 {
			return repository.ErrPersonNotFound
		}

		return nil
	})
}

// ExistsByID reports whether a person row exists.
func (repo *personRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	count, err := repo.q.PersonModel.WithContext(ctx).
		Where(repo.q.PersonModel.ID.Eq(id)).
		Count()

	if err != nil {
		return false, errors.Wrap(err, "failed to check person existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toPersonDomain assembles a Person aggregate from its row and its address rows.
// A dangling or missing primary reference falls back to the first address, and
// repaired reports whether the resolved primary differs from the stored reference.
func toPersonDomain(data *model.PersonModel, addressModels []*model.AddressModel) (person *entity.Person, repaired bool) {
	if data == nil {
		return nil, false
	}

	person = &entity.Person{
		ID:        data.ID,
		Name:      data.Name,
		BirthDate: time.Time(data.BirthDate),
		Addresses: toAddressDomainList(addressModels),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.PrimaryAddressID != nil {
		if primary, ok := person.FindAddress(*data.PrimaryAddressID); ok {
			person.PrimaryAddress = primary
		}
	}
	if person.PrimaryAddress == nil && len(person.Addresses) > 0 {
		person.PrimaryAddress = person.Addresses[0]
	}

	resolved := primaryAddressID(person)
	repaired = (resolved == nil) != (data.PrimaryAddressID == nil) ||
		(resolved != nil && *resolved != *data.PrimaryAddressID)

	return person, repaired
}

func primaryAddressID(person *entity.Person) *int64 {
	if person.PrimaryAddress == nil || person.PrimaryAddress.ID == 0 {
		return nil
	}

	id := person.PrimaryAddress.ID

	return &id
}

// fromPersonDomain converts a domain Person entity to a GORM PersonModel.
func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	personM := &model.PersonModel{
		ID:               data.ID,
		Name:             data.Name,
		BirthDate:        datatypes.Date(data.BirthDate),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		PrimaryAddressID: primaryAddressID(data),
	}

	return personM
}
