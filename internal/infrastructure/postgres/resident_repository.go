package postgres

import (
	"context"
	"fmt"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
)

var _ repository.ResidentRepository = (*ResidentRepo)(nil)

const residentColumns = `id, first_name, last_name, national_id, registration_number, phone, address, status, created_at, updated_at`

// ResidentRepo implementación de ResidentRepository (usable con pool o tx).
type ResidentRepo struct {
	q Querier
}

// NewResidentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResidentRepository(q Querier) *ResidentRepo {
	return &ResidentRepo{q: q}
}

// Create persiste un nuevo residente.
func (r *ResidentRepo) Create(ctx context.Context, res *entity.Resident) error {
	query := `
		INSERT INTO residents (` + residentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.FirstName, res.LastName, res.NationalID, res.RegistrationNumber,
		res.Phone, res.Address, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert resident: %w", err)
	}
	return nil
}

// GetByID obtiene un residente por ID.
func (r *ResidentRepo) GetByID(ctx context.Context, id string) (*entity.Resident, error) {
	return r.getOne(ctx, `SELECT `+residentColumns+` FROM residents WHERE id = $1`, id)
}

// GetByNationalID obtiene un residente por cédula.
func (r *ResidentRepo) GetByNationalID(ctx context.Context, nationalID string) (*entity.Resident, error) {
	return r.getOne(ctx, `SELECT `+residentColumns+` FROM residents WHERE national_id = $1`, nationalID)
}

// List lista residentes ordenados por apellido. search filtra por nombre, cédula o matrícula.
func (r *ResidentRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Resident, error) {
	query := `
		SELECT ` + residentColumns + `
		FROM residents
		WHERE $1 = ''
		   OR (first_name || ' ' || last_name) ILIKE '%' || $1 || '%'
		   OR national_id ILIKE '%' || $1 || '%'
		   OR registration_number ILIKE '%' || $1 || '%'
		ORDER BY last_name, first_name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Resident
	for rows.Next() {
		var res entity.Resident
		if err := rows.Scan(
			&res.ID, &res.FirstName, &res.LastName, &res.NationalID, &res.RegistrationNumber,
			&res.Phone, &res.Address, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan resident: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Update actualiza los datos de un residente.
func (r *ResidentRepo) Update(ctx context.Context, res *entity.Resident) error {
	query := `
		UPDATE residents
		SET first_name = $2, last_name = $3, national_id = $4, registration_number = $5,
		    phone = $6, address = $7, status = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		res.ID, res.FirstName, res.LastName, res.NationalID, res.RegistrationNumber,
		res.Phone, res.Address, res.Status, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update resident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ResidentRepo) getOne(ctx context.Context, query string, arg string) (*entity.Resident, error) {
	var res entity.Resident
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&res.ID, &res.FirstName, &res.LastName, &res.NationalID, &res.RegistrationNumber,
		&res.Phone, &res.Address, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resident: %w", err)
	}
	return &res, nil
}
