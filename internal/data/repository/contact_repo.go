package repository

import (
	"context"
	"errors"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error)
	FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []int64) (int64, error)
}

type contactRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewContactRepository(db database.DBTX, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func scanContact(row scanner) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.City,
		&c.Street,
		&c.House,
		&c.Structure,
		&c.Building,
		&c.Apartment,
		&c.Phone,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (user_id, city, street, house, structure,
		                      building, apartment, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		contact.UserID,
		contact.City,
		contact.Street,
		contact.House,
		contact.Structure,
		contact.Building,
		contact.Apartment,
		contact.Phone,
	).Scan(&contact.ID)
	if err != nil {
		r.log.Error("Failed to create contact",
			zap.Error(err),
			zap.String("user_id", contact.UserID.String()),
		)
		return fmt.Errorf("create contact: %w", err)
	}

	return nil
}

func (r *contactRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	query := `
		SELECT id, user_id, city, street, house, structure, building, apartment, phone
		FROM contacts
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to query contacts",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query contacts of %s: %w", userID.String(), err)
	}
	defer rows.Close()

	contacts := make([]entity.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			r.log.Error("Failed to scan contact", zap.Error(err))
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Contact, error) {
	query := `
		SELECT id, user_id, city, street, house, structure, building, apartment, phone
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`

	contact, err := scanContact(r.db.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact",
			zap.Error(err),
			zap.Int64("contact_id", id),
		)
		return nil, fmt.Errorf("find contact %d: %w", id, err)
	}

	return contact, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET city = $3, street = $4, house = $5, structure = $6,
		    building = $7, apartment = $8, phone = $9
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		contact.ID,
		contact.UserID,
		contact.City,
		contact.Street,
		contact.House,
		contact.Structure,
		contact.Building,
		contact.Apartment,
		contact.Phone,
	)
	if err != nil {
		r.log.Error("Failed to update contact",
			zap.Error(err),
			zap.Int64("contact_id", contact.ID),
		)
		return fmt.Errorf("update contact %d: %w", contact.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact %d: %w", contact.ID, ErrNotFound)
	}

	return nil
}

func (r *contactRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []int64) (int64, error) {
	query := `DELETE FROM contacts WHERE user_id = $1 AND id = ANY($2)`

	result, err := r.db.Exec(ctx, query, userID, ids)
	if err != nil {
		r.log.Error("Failed to delete contacts",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("delete contacts of %s: %w", userID.String(), err)
	}

	return result.RowsAffected(), nil
}
