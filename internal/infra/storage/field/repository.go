package field

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	"github.com/avolkhov/SFP-FieldService/pkg/dbmetrics"
	"github.com/avolkhov/SFP-FieldService/pkg/psqlbuilder"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

// Переиспользуем интерфейс исполнения запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var fieldColumns = []string{
	"id",
	"club_id",
	"name",
	"opening_time",
	"closing_time",
	"terrain_count",
	"min_slot_minutes",
	"fixed_slot_minutes",
	"price_per_hour",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с полями.
// Время работы хранится строками "HH:MM" (wire-формат платформы) и
// конвертируется в минуты на границе хранилища.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория полей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает поле по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		f                    domain.Field
		opening, closing     string
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&f.ID,
		&f.ClubID,
		&f.Name,
		&opening,
		&closing,
		&f.TerrainCount,
		&f.MinSlotMinutes,
		&f.FixedSlotMinutes,
		&f.PricePerHour,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan field: %v", ErrScanRow, err)
	}

	if f.OpeningTime, err = timeutil.ToMinutes(opening); err != nil {
		return nil, fmt.Errorf("%w: GetByID - opening_time: %v", ErrInvalidTime, err)
	}
	if f.ClosingTime, err = timeutil.ToMinutes(closing); err != nil {
		return nil, fmt.Errorf("%w: GetByID - closing_time: %v", ErrInvalidTime, err)
	}

	f.CreatedAt = createdAt.Time
	f.UpdatedAt = updatedAt.Time

	return &f, nil
}

// GetByClub получает все поля клуба
func (r *Repository) GetByClub(ctx context.Context, clubID int64) ([]*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClub - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClub - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	fields := make([]*domain.Field, 0)
	for rows.Next() {
		var (
			f                    domain.Field
			opening, closing     string
			createdAt, updatedAt sql.NullTime
		)
		err := rows.Scan(
			&f.ID,
			&f.ClubID,
			&f.Name,
			&opening,
			&closing,
			&f.TerrainCount,
			&f.MinSlotMinutes,
			&f.FixedSlotMinutes,
			&f.PricePerHour,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByClub - scan row: %v", ErrScanRow, err)
		}

		if f.OpeningTime, err = timeutil.ToMinutes(opening); err != nil {
			return nil, fmt.Errorf("%w: GetByClub - opening_time: %v", ErrInvalidTime, err)
		}
		if f.ClosingTime, err = timeutil.ToMinutes(closing); err != nil {
			return nil, fmt.Errorf("%w: GetByClub - closing_time: %v", ErrInvalidTime, err)
		}

		f.CreatedAt = createdAt.Time
		f.UpdatedAt = updatedAt.Time
		fields = append(fields, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClub - rows error: %v", ErrScanRow, err)
	}

	return fields, nil
}

// UpdateConfig применяет частичное обновление конфигурации поля.
// Обновляются только непустые поля команды - сущность целиком не
// передаётся и фиктивных значений не требуется.
func (r *Repository) UpdateConfig(ctx context.Context, id int64, update domain.FieldConfigUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("fields").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.OpeningTime != nil {
		updateBuilder = updateBuilder.Set("opening_time", timeutil.ToTime(*update.OpeningTime))
	}
	if update.ClosingTime != nil {
		updateBuilder = updateBuilder.Set("closing_time", timeutil.ToTime(*update.ClosingTime))
	}
	if update.TerrainCount != nil {
		updateBuilder = updateBuilder.Set("terrain_count", *update.TerrainCount)
	}
	if update.MinSlotMinutes != nil {
		updateBuilder = updateBuilder.Set("min_slot_minutes", *update.MinSlotMinutes)
	}
	if update.FixedSlotMinutes != nil {
		updateBuilder = updateBuilder.Set("fixed_slot_minutes", *update.FixedSlotMinutes)
	}
	if update.PricePerHour != nil {
		updateBuilder = updateBuilder.Set("price_per_hour", *update.PricePerHour)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}
